package whoop

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	authURL  = "https://api.prod.whoop.com/oauth/oauth2/auth"
	tokenURL = "https://api.prod.whoop.com/oauth/oauth2/token"
)

// Scopes requested during authorization.
var Scopes = []string{
	"read:recovery",
	"read:cycles",
	"read:workout",
	"read:sleep",
	"read:profile",
	"read:body_measurement",
}

// Authenticator owns the OAuth2 flow and the on-disk token cache.
type Authenticator struct {
	conf      *oauth2.Config
	cachePath string
	logger    zerolog.Logger
}

// AuthenticatorOptions holds options for creating a new Authenticator
type AuthenticatorOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CachePath    string
	AuthURL      string
	TokenURL     string
}

// NewAuthenticator creates an Authenticator for the WHOOP OAuth2 endpoints.
func NewAuthenticator(opts AuthenticatorOptions) *Authenticator {
	if opts.AuthURL == "" {
		opts.AuthURL = authURL
	}
	if opts.TokenURL == "" {
		opts.TokenURL = tokenURL
	}
	return &Authenticator{
		conf: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  opts.AuthURL,
				TokenURL: opts.TokenURL,
			},
		},
		cachePath: opts.CachePath,
		logger:    log.With().Str("component", "whoop_auth").Logger(),
	}
}

// AuthCodeURL returns the URL the user must visit to authorize the app.
func (a *Authenticator) AuthCodeURL(state string) string {
	return a.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and caches it.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	if err := a.saveToken(tok); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to cache token")
	}
	return tok, nil
}

// TokenSource returns a source backed by the cached token that persists
// refreshed tokens back to disk.
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := a.loadToken()
	if err != nil {
		return nil, err
	}
	return &cachingTokenSource{
		auth: a,
		src:  a.conf.TokenSource(ctx, tok),
		last: tok,
	}, nil
}

// LazyTokenSource defers loading the cached token until first use, so a
// token obtained after startup (e.g. via the dashboard's OAuth callback)
// is picked up without a restart.
func (a *Authenticator) LazyTokenSource(ctx context.Context) oauth2.TokenSource {
	return &lazyTokenSource{auth: a, ctx: ctx}
}

// HasToken reports whether a cached token exists on disk.
func (a *Authenticator) HasToken() bool {
	_, err := os.Stat(a.cachePath)
	return err == nil
}

func (a *Authenticator) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(a.cachePath)
	if err != nil {
		return nil, fmt.Errorf("reading token cache: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parsing token cache: %w", err)
	}
	return &tok, nil
}

func (a *Authenticator) saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(a.cachePath, data, 0600)
}

type lazyTokenSource struct {
	auth *Authenticator
	ctx  context.Context
	mu   sync.Mutex
	src  oauth2.TokenSource
}

func (s *lazyTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.src == nil {
		src, err := s.auth.TokenSource(s.ctx)
		if err != nil {
			return nil, err
		}
		s.src = src
	}
	return s.src.Token()
}

// cachingTokenSource persists tokens whenever the underlying source refreshes them.
type cachingTokenSource struct {
	auth *Authenticator
	src  oauth2.TokenSource
	mu   sync.Mutex
	last *oauth2.Token
}

func (s *cachingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || tok.AccessToken != s.last.AccessToken {
		if err := s.auth.saveToken(tok); err != nil {
			s.auth.logger.Warn().Err(err).Msg("Failed to persist refreshed token")
		}
		s.last = tok
	}
	return tok, nil
}
