package whoop

import (
	"fmt"
	"sort"
	"time"

	"traincoach/internal/model"
)

// scored reports whether a record carries a usable score.
func scored(state ScoreState) bool {
	return state == ScoreStateScored
}

// BuildDailyBundle assembles today's bundle from the latest scored records.
// All three signals are stamped with the cycle's calendar day so the bundle
// invariant holds even when the provider timestamps straddle midnight.
func BuildDailyBundle(recovery *Recovery, sleep *Sleep, cycle *Cycle) (model.DailyBundle, error) {
	var bundle model.DailyBundle

	if cycle == nil || !scored(cycle.ScoreState) || cycle.Score == nil {
		return bundle, fmt.Errorf("no scored cycle available")
	}
	if recovery == nil || !scored(recovery.ScoreState) || recovery.Score == nil {
		return bundle, fmt.Errorf("no scored recovery available")
	}
	if sleep == nil || !scored(sleep.ScoreState) || sleep.Score == nil {
		return bundle, fmt.Errorf("no scored sleep available")
	}

	day := dayOf(cycle.Start)

	bundle.Recovery = model.RecoverySignal{
		Date:          day,
		RecoveryScore: int(recovery.Score.RecoveryScore),
		HRVMs:         recovery.Score.HRVRmssdMilli,
		RestingHRBPM:  recovery.Score.RestingHeartRate,
		Calibrating:   recovery.Score.UserCalibrating,
	}
	bundle.Sleep = model.SleepSignal{
		Date:           day,
		PerformancePct: int(sleep.Score.SleepPerformancePercentage),
		DebtMinutes:    sleep.Score.SleepNeeded.NeedFromSleepDebtMilli / 60000,
	}
	bundle.Strain = model.StrainSignal{
		Date:   day,
		Strain: cycle.Score.Strain,
	}

	return bundle, nil
}

// HistoryFromCycles converts scored cycles strictly before the bundle date
// into a history window, ordered oldest to newest with one entry per day.
func HistoryFromCycles(cycles []Cycle, bundleDate time.Time) model.HistoryWindow {
	byDay := make(map[time.Time]model.StrainSignal)
	for _, c := range cycles {
		if !scored(c.ScoreState) || c.Score == nil {
			continue
		}
		day := dayOf(c.Start)
		if !day.Before(dayOf(bundleDate)) {
			continue
		}
		byDay[day] = model.StrainSignal{Date: day, Strain: c.Score.Strain}
	}

	history := make(model.HistoryWindow, 0, len(byDay))
	for _, s := range byDay {
		history = append(history, s)
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history
}

// SessionsFromWorkouts flattens scored workouts into sessions.
func SessionsFromWorkouts(workouts []Workout) []model.WorkoutSession {
	var sessions []model.WorkoutSession
	for _, w := range workouts {
		if !scored(w.ScoreState) || w.Score == nil {
			continue
		}
		sessions = append(sessions, model.WorkoutSession{
			Date:   w.Start,
			Sport:  w.SportName,
			Strain: w.Score.Strain,
		})
	}
	return sessions
}

// RecoveriesFromRecords converts scored recovery records into signals,
// ordered oldest to newest.
func RecoveriesFromRecords(records []Recovery) []model.RecoverySignal {
	var recoveries []model.RecoverySignal
	for _, r := range records {
		if !scored(r.ScoreState) || r.Score == nil {
			continue
		}
		recoveries = append(recoveries, model.RecoverySignal{
			Date:          dayOf(r.CreatedAt),
			RecoveryScore: int(r.Score.RecoveryScore),
			HRVMs:         r.Score.HRVRmssdMilli,
			RestingHRBPM:  r.Score.RestingHeartRate,
			Calibrating:   r.Score.UserCalibrating,
		})
	}
	sort.Slice(recoveries, func(i, j int) bool {
		return recoveries[i].Date.Before(recoveries[j].Date)
	})
	return recoveries
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
