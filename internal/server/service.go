package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"traincoach/internal/activity"
	"traincoach/internal/api/whoop"
	"traincoach/internal/engine"
	"traincoach/internal/workout"
)

// PlanView is the cached output served by the dashboard.
type PlanView struct {
	Plan        engine.WeeklyPlan                      `json:"plan"`
	Advice      activity.Advice                        `json:"advice"`
	Workouts    map[activity.Category]workout.Template `json:"workouts,omitempty"`
	RefreshedAt time.Time                              `json:"refreshed_at"`
}

// Service fetches provider data, runs the engine and caches the result.
type Service struct {
	client  *whoop.Client
	engine  *engine.Engine
	history int
	logger  zerolog.Logger

	mu     sync.RWMutex
	cached *PlanView
}

// NewService creates a dashboard service.
func NewService(client *whoop.Client, eng *engine.Engine, historyDays int) *Service {
	return &Service{
		client:  client,
		engine:  eng,
		history: historyDays,
		logger:  log.With().Str("component", "dashboard_service").Logger(),
	}
}

// Refresh fetches a fresh snapshot and recomputes the cached plan.
func (s *Service) Refresh(ctx context.Context) error {
	snapshot, err := s.client.FetchSnapshot(ctx, s.history)
	if err != nil {
		return fmt.Errorf("fetching snapshot: %w", err)
	}

	rec, err := s.engine.Recommend(snapshot.Bundle, snapshot.History)
	if err != nil {
		return fmt.Errorf("computing recommendation: %w", err)
	}

	buckets := activity.Categorize(snapshot.Sessions)
	daysSinceClimb := activity.DaysSinceClimbing(buckets, time.Now())
	climbCount, climbStrain := activity.ClimbingLoad7d(buckets)

	plan := s.engine.WeeklyPlan(rec, snapshot.Recoveries, engine.ActivitySummary{
		Climbing:       climbCount,
		ClimbingStrain: climbStrain,
		Running:        len(buckets[activity.Running]),
		Gym:            len(buckets[activity.Gym]),
		Sauna:          len(buckets[activity.Sauna]),
	})

	view := &PlanView{
		Plan:        plan,
		Advice:      activity.Advise(rec, daysSinceClimb, climbCount),
		Workouts:    workout.DayPlan(rec.Intensity, snapshot.Bundle.Strain.Date),
		RefreshedAt: time.Now(),
	}

	s.mu.Lock()
	s.cached = view
	s.mu.Unlock()

	s.logger.Info().
		Str("zone", string(rec.Zone)).
		Float64("low", rec.TargetStrainLow).
		Float64("high", rec.TargetStrainHigh).
		Msg("Recommendation refreshed")
	return nil
}

// Cached returns the last computed plan, or nil before the first refresh.
func (s *Service) Cached() *PlanView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}
