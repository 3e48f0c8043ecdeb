package whoop

import (
	"context"
	"fmt"
	"time"

	"traincoach/internal/model"
)

// Snapshot is everything the planner needs for one run: today's bundle,
// the strain history and the recent activity context.
type Snapshot struct {
	Bundle     model.DailyBundle
	History    model.HistoryWindow
	Sessions   []model.WorkoutSession
	Recoveries []model.RecoverySignal
}

// FetchSnapshot pulls the latest records and maps them into engine inputs.
func (c *Client) FetchSnapshot(ctx context.Context, days int) (*Snapshot, error) {
	start := time.Now().AddDate(0, 0, -(days + 1))

	cycles, err := c.GetCycles(ctx, start, time.Time{}, days+1)
	if err != nil {
		return nil, fmt.Errorf("fetching cycles: %w", err)
	}
	if len(cycles) == 0 {
		return nil, fmt.Errorf("no cycles returned")
	}

	recovery, err := c.GetLatestRecovery(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching recovery: %w", err)
	}

	sleep, err := c.GetLatestSleep(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching sleep: %w", err)
	}

	// The provider returns cycles newest first.
	today := &cycles[0]
	for i := range cycles {
		if cycles[i].Start.After(today.Start) {
			today = &cycles[i]
		}
	}

	bundle, err := BuildDailyBundle(recovery, sleep, today)
	if err != nil {
		return nil, err
	}

	workouts, err := c.GetRecentWorkouts(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	recoveries, err := c.GetRecovery(ctx, start, time.Time{}, days)
	if err != nil {
		return nil, fmt.Errorf("fetching recovery history: %w", err)
	}

	return &Snapshot{
		Bundle:     bundle,
		History:    HistoryFromCycles(cycles, bundle.Strain.Date),
		Sessions:   SessionsFromWorkouts(workouts),
		Recoveries: RecoveriesFromRecords(recoveries),
	}, nil
}
