package whoop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientOptions{
		TokenSource:    oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}),
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		RequestsPerSec: 100,
	})
}

func TestGetLatestRecovery(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/recovery" {
			t.Errorf("path = %q, want /v2/recovery", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"records": []map[string]any{
				{
					"cycle_id":    93845,
					"score_state": "SCORED",
					"score": map[string]any{
						"recovery_score":     75,
						"resting_heart_rate": 55,
						"hrv_rmssd_milli":    80.5,
					},
				},
			},
		})
	})

	recovery, err := client.GetLatestRecovery(context.Background())
	if err != nil {
		t.Fatalf("GetLatestRecovery() unexpected error: %v", err)
	}
	if recovery == nil || recovery.Score == nil {
		t.Fatal("expected a scored recovery record")
	}
	if recovery.Score.RecoveryScore != 75 {
		t.Errorf("recovery score = %v, want 75", recovery.Score.RecoveryScore)
	}
	if recovery.Score.HRVRmssdMilli != 80.5 {
		t.Errorf("hrv = %v, want 80.5", recovery.Score.HRVRmssdMilli)
	}
}

func TestGetLatestRecoveryEmpty(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"records": []any{}})
	})

	recovery, err := client.GetLatestRecovery(context.Background())
	if err != nil {
		t.Fatalf("GetLatestRecovery() unexpected error: %v", err)
	}
	if recovery != nil {
		t.Errorf("recovery = %+v, want nil for empty response", recovery)
	}
}

func TestGetCyclesPagination(t *testing.T) {
	calls := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("nextToken") {
		case "":
			json.NewEncoder(w).Encode(map[string]any{
				"records": []map[string]any{
					{"id": 1, "start": "2026-08-29T04:00:00Z", "score_state": "SCORED", "score": map[string]any{"strain": 9.5}},
				},
				"next_token": "page2",
			})
		case "page2":
			json.NewEncoder(w).Encode(map[string]any{
				"records": []map[string]any{
					{"id": 2, "start": "2026-08-28T04:00:00Z", "score_state": "SCORED", "score": map[string]any{"strain": 12.1}},
				},
			})
		default:
			t.Errorf("unexpected nextToken %q", r.URL.Query().Get("nextToken"))
		}
	})

	cycles, err := client.GetCycles(context.Background(), time.Time{}, time.Time{}, 25)
	if err != nil {
		t.Fatalf("GetCycles() unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 pages", calls)
	}
	if len(cycles) != 2 {
		t.Fatalf("cycles = %d, want 2", len(cycles))
	}
	if cycles[1].Score.Strain != 12.1 {
		t.Errorf("second cycle strain = %v, want 12.1", cycles[1].Score.Strain)
	}
}

func TestGetProfileHTTPError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.GetProfile(context.Background()); err == nil {
		t.Error("expected error on 401 response")
	}
}
