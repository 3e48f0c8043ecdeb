package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"traincoach/internal/activity"
	"traincoach/internal/api/whoop"
	"traincoach/internal/engine"
	"traincoach/internal/model"
	"traincoach/internal/workout"
)

func testRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := whoop.NewAuthenticator(whoop.AuthenticatorOptions{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8080/callback",
		CachePath:    "/nonexistent/tokens.json",
	})
	return NewHandler(service, auth).InitRoutes()
}

func TestHealthz(t *testing.T) {
	router := testRouter(NewService(nil, nil, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRecommendationBeforeFirstRefresh(t *testing.T) {
	router := testRouter(NewService(nil, nil, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendation", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 before first refresh", w.Code)
	}
}

func TestRecommendationCached(t *testing.T) {
	service := NewService(nil, nil, 7)
	service.cached = &PlanView{
		Plan: engine.WeeklyPlan{
			Today: &model.Recommendation{
				Zone:             model.ZoneGreen,
				Intensity:        "Hard",
				TargetStrainLow:  14,
				TargetStrainHigh: 18,
			},
		},
		Advice:      activity.Advice{Climbing: "Project day - go for something hard"},
		Workouts:    workout.DayPlan("Hard", time.Now()),
		RefreshedAt: time.Now(),
	}
	router := testRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendation", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Recommendation model.Recommendation        `json:"recommendation"`
		Workouts       map[string]workout.Template `json:"workouts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Recommendation.Zone != model.ZoneGreen || resp.Recommendation.TargetStrainHigh != 18 {
		t.Errorf("recommendation = %+v", resp.Recommendation)
	}
	if len(resp.Workouts) == 0 {
		t.Error("expected workout templates in the response")
	}
}

func TestCallbackRefreshesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/v2/cycle", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"records":[
			{"id":1,"start":%q,"score_state":"SCORED","score":{"strain":5.0}},
			{"id":2,"start":%q,"score_state":"SCORED","score":{"strain":8.0}}
		],"next_token":""}`, today.Format(time.RFC3339), yesterday.Format(time.RFC3339))
	})
	mux.HandleFunc("/v2/recovery", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"records":[{"cycle_id":1,"created_at":%q,"score_state":"SCORED","score":{"recovery_score":75,"resting_heart_rate":52,"hrv_rmssd_milli":48}}],"next_token":""}`,
			today.Format(time.RFC3339))
	})
	mux.HandleFunc("/v2/activity/sleep", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"records":[{"id":"s1","cycle_id":1,"start":%q,"end":%q,"score_state":"SCORED","score":{"sleep_needed":{"need_from_sleep_debt_milli":1200000},"sleep_performance_percentage":85}}],"next_token":""}`,
			yesterday.Format(time.RFC3339), today.Format(time.RFC3339))
	})
	mux.HandleFunc("/v2/activity/workout", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"records":[{"id":"w1","start":%q,"end":%q,"sport_name":"Bouldering","score_state":"SCORED","score":{"strain":9.5}}],"next_token":""}`,
			yesterday.Format(time.RFC3339), yesterday.Format(time.RFC3339))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	auth := whoop.NewAuthenticator(whoop.AuthenticatorOptions{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8080/callback",
		CachePath:    filepath.Join(t.TempDir(), "tokens.json"),
		TokenURL:     backend.URL + "/oauth/token",
	})
	client := whoop.NewClient(whoop.ClientOptions{
		TokenSource: auth.LazyTokenSource(context.Background()),
		BaseURL:     backend.URL,
	})
	service := NewService(client, engine.New(engine.Options{}), 7)
	router := NewHandler(service, auth).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?state="+oauthState+"&code=abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	view := service.Cached()
	if view == nil {
		t.Fatal("expected a cached plan right after authorization")
	}
	if view.Plan.Today == nil || view.Plan.Today.Zone != model.ZoneGreen {
		t.Errorf("cached plan today = %+v, want GREEN zone", view.Plan.Today)
	}
	if view.Plan.Summary.ClimbingStrain != 9.5 {
		t.Errorf("climbing strain = %.1f, want 9.5", view.Plan.Summary.ClimbingStrain)
	}
	if len(view.Workouts) == 0 {
		t.Error("expected workout templates in the cached plan")
	}
}

func TestCallbackStateMismatch(t *testing.T) {
	router := testRouter(NewService(nil, nil, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?state=wrong&code=abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 on state mismatch", w.Code)
	}
}

func TestCallbackMissingCode(t *testing.T) {
	router := testRouter(NewService(nil, nil, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?state="+oauthState, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 on missing code", w.Code)
	}
}
