package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"traincoach/internal/activity"
	"traincoach/internal/api/whoop"
	"traincoach/internal/config"
	"traincoach/internal/engine"
	"traincoach/internal/report"
	"traincoach/internal/workout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	if cfg.WhoopClientID == "" || cfg.WhoopClientSecret == "" {
		fmt.Println("Missing credentials!")
		fmt.Println("\n1. Go to https://developer.whoop.com")
		fmt.Println("2. Create an app and get your Client ID and Secret")
		fmt.Println("3. Copy .env.example to .env and fill in your credentials")
		os.Exit(1)
	}

	ctx := context.Background()

	auth := whoop.NewAuthenticator(whoop.AuthenticatorOptions{
		ClientID:     cfg.WhoopClientID,
		ClientSecret: cfg.WhoopClientSecret,
		RedirectURI:  cfg.WhoopRedirectURI,
		CachePath:    cfg.TokenCachePath,
	})

	tokenSource, err := authenticate(ctx, auth, cfg.WhoopRedirectURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Authentication failed")
	}

	client := whoop.NewClient(whoop.ClientOptions{
		TokenSource:    tokenSource,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	profile, err := client.GetProfile(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch profile")
	}
	fmt.Printf("\n%s %s\n", profile.FirstName, profile.LastName)

	if body, err := client.GetBodyMeasurements(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to fetch body measurements")
	} else {
		fmt.Printf("   Max HR: %d bpm\n", body.MaxHeartRate)
	}

	snapshot, err := client.FetchSnapshot(ctx, cfg.HistoryDays)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch snapshot")
	}

	eng := engine.New(engine.Options{
		SleepDebtCutoffMin: cfg.SleepDebtCutoffMin,
		StrainAvgThreshold: cfg.StrainAvgThreshold,
		HistoryDays:        cfg.HistoryDays,
	})

	rec, err := eng.Recommend(snapshot.Bundle, snapshot.History)
	if err != nil {
		log.Fatal().Err(err).Msg("Recommendation failed")
	}

	buckets := activity.Categorize(snapshot.Sessions)
	daysSinceClimb := activity.DaysSinceClimbing(buckets, time.Now())
	climbCount, climbStrain := activity.ClimbingLoad7d(buckets)
	advice := activity.Advise(rec, daysSinceClimb, climbCount)

	report.RenderRecommendation(os.Stdout, rec, advice)
	report.RenderWorkouts(os.Stdout, workout.DayPlan(rec.Intensity, snapshot.Bundle.Strain.Date))

	plan := eng.WeeklyPlan(rec, snapshot.Recoveries, engine.ActivitySummary{
		Climbing:       climbCount,
		ClimbingStrain: climbStrain,
		Running:        len(buckets[activity.Running]),
		Gym:            len(buckets[activity.Gym]),
		Sauna:          len(buckets[activity.Sauna]),
	})
	report.RenderWeekly(os.Stdout, plan)
	report.RenderRecentActivity(os.Stdout, snapshot.Sessions, 8)
}

// authenticate returns a token source, running the browser authorization
// flow with a local callback listener when no cached token exists.
func authenticate(ctx context.Context, auth *whoop.Authenticator, redirectURI string) (oauth2.TokenSource, error) {
	if auth.HasToken() {
		src, err := auth.TokenSource(ctx)
		if err == nil {
			fmt.Println("Using saved authentication")
			return src, nil
		}
		log.Warn().Err(err).Msg("Cached token unusable, re-authorizing")
	}

	redirect, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("parsing redirect URI: %w", err)
	}

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			fmt.Fprint(w, "Error: no authorization code received")
			return
		}
		fmt.Fprint(w, "<h1>Authentication successful!</h1><p>You can close this window.</p>")
		codeCh <- code
	})

	srv := &http.Server{Addr: ":" + redirect.Port(), Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Callback server failed")
		}
	}()
	defer srv.Shutdown(ctx)

	fmt.Println("\nOpen this URL to authorize:")
	fmt.Println(auth.AuthCodeURL("traincoach"))
	fmt.Println("\nWaiting for authorization...")

	select {
	case code := <-codeCh:
		if _, err := auth.Exchange(ctx, code); err != nil {
			return nil, err
		}
		fmt.Println("Authentication complete!")
		return auth.TokenSource(ctx)
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("timed out waiting for authorization")
	}
}
