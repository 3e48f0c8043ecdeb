package whoop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	httpClient "traincoach/internal/platform/http"
)

const defaultBaseURL = "https://api.prod.whoop.com/developer"

// Client is the WHOOP API client
type Client struct {
	baseURL     string
	httpClient  *httpClient.Client
	tokenSource oauth2.TokenSource
	logger      zerolog.Logger
}

// ClientOptions holds options for creating a new WHOOP client
type ClientOptions struct {
	TokenSource    oauth2.TokenSource
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewClient creates a new WHOOP API client
func NewClient(options ClientOptions) *Client {
	httpOpts := httpClient.ClientOptions{
		Timeout:        options.RequestTimeout,
		RequestsPerSec: options.RequestsPerSec,
	}

	// Apply defaults if not set
	if httpOpts.Timeout == 0 {
		httpOpts.Timeout = 30 * time.Second
	}
	if httpOpts.RequestsPerSec == 0 {
		httpOpts.RequestsPerSec = 5
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient.NewClient(httpOpts),
		tokenSource: options.TokenSource,
		logger:      log.With().Str("component", "whoop_client").Logger(),
	}
}

// get performs an authenticated GET against an API endpoint and decodes into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	c.logger.Debug().Str("url", u).Msg("Fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	tok, err := c.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("getting access token: %w", err)
	}
	tok.SetAuthHeader(req)

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return fmt.Errorf("parsing JSON: %w", err)
	}

	return nil
}

// getAllPages walks a paginated collection endpoint until next_token runs out.
func getAllPages[T any](ctx context.Context, c *Client, endpoint string, params url.Values, limit int) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("limit", strconv.Itoa(limit))

	var records []T
	for {
		var page pagedResponse[T]
		if err := c.get(ctx, endpoint, params, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if page.NextToken == "" {
			break
		}
		params.Set("nextToken", page.NextToken)
	}
	return records, nil
}

func rangeParams(start, end time.Time) url.Values {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		params.Set("end", end.UTC().Format(time.RFC3339))
	}
	return params
}

// GetProfile fetches the basic user profile
func (c *Client) GetProfile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.get(ctx, "/v2/user/profile/basic", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetBodyMeasurements fetches height, weight and max heart rate
func (c *Client) GetBodyMeasurements(ctx context.Context) (*BodyMeasurement, error) {
	var body BodyMeasurement
	if err := c.get(ctx, "/v2/user/measurement/body", nil, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

// GetRecovery fetches recovery records in the given range, newest first
func (c *Client) GetRecovery(ctx context.Context, start, end time.Time, limit int) ([]Recovery, error) {
	return getAllPages[Recovery](ctx, c, "/v2/recovery", rangeParams(start, end), limit)
}

// GetLatestRecovery fetches the most recent recovery record
func (c *Client) GetLatestRecovery(ctx context.Context) (*Recovery, error) {
	var page pagedResponse[Recovery]
	params := url.Values{}
	params.Set("limit", "1")
	if err := c.get(ctx, "/v2/recovery", params, &page); err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, nil
	}
	return &page.Records[0], nil
}

// GetCycles fetches physiological cycles (daily strain) in the given range
func (c *Client) GetCycles(ctx context.Context, start, end time.Time, limit int) ([]Cycle, error) {
	return getAllPages[Cycle](ctx, c, "/v2/cycle", rangeParams(start, end), limit)
}

// GetSleep fetches sleep records in the given range
func (c *Client) GetSleep(ctx context.Context, start, end time.Time, limit int) ([]Sleep, error) {
	return getAllPages[Sleep](ctx, c, "/v2/activity/sleep", rangeParams(start, end), limit)
}

// GetLatestSleep fetches the most recent sleep record
func (c *Client) GetLatestSleep(ctx context.Context) (*Sleep, error) {
	var page pagedResponse[Sleep]
	params := url.Values{}
	params.Set("limit", "1")
	if err := c.get(ctx, "/v2/activity/sleep", params, &page); err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, nil
	}
	return &page.Records[0], nil
}

// GetWorkouts fetches workout records in the given range
func (c *Client) GetWorkouts(ctx context.Context, start, end time.Time, limit int) ([]Workout, error) {
	return getAllPages[Workout](ctx, c, "/v2/activity/workout", rangeParams(start, end), limit)
}

// GetRecentWorkouts fetches workouts from the last N days
func (c *Client) GetRecentWorkouts(ctx context.Context, days int) ([]Workout, error) {
	start := time.Now().AddDate(0, 0, -days)
	return c.GetWorkouts(ctx, start, time.Time{}, 25)
}
