package model

import "time"

// RecoverySignal is one day's recovery reading from the provider.
type RecoverySignal struct {
	Date          time.Time `json:"date"`
	RecoveryScore int       `json:"recovery_score"`
	HRVMs         float64   `json:"hrv_ms"`
	RestingHRBPM  float64   `json:"resting_hr_bpm"`
	Calibrating   bool      `json:"calibrating,omitempty"`
}

// SleepSignal is one day's sleep reading. DebtMinutes accumulates on the
// provider side and is read as-is, never computed here.
type SleepSignal struct {
	Date           time.Time `json:"date"`
	PerformancePct int       `json:"performance_pct"`
	DebtMinutes    int       `json:"debt_minutes"`
}

// StrainSignal is one physiological cycle's strain on the provider's 0-21 scale.
type StrainSignal struct {
	Date   time.Time `json:"date"`
	Strain float64   `json:"strain"`
}

// DailyBundle groups the three signals for a single day. All three must
// share the same calendar date.
type DailyBundle struct {
	Recovery RecoverySignal `json:"recovery"`
	Sleep    SleepSignal    `json:"sleep"`
	Strain   StrainSignal   `json:"strain"`
}

// WorkoutSession is a scored workout, already flattened from the provider record.
type WorkoutSession struct {
	Date   time.Time `json:"date"`
	Sport  string    `json:"sport"`
	Strain float64   `json:"strain"`
}

// SameDay reports whether two timestamps fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Validate checks the bundle's date coherence and field ranges.
func (b DailyBundle) Validate() error {
	if !SameDay(b.Recovery.Date, b.Sleep.Date) || !SameDay(b.Recovery.Date, b.Strain.Date) {
		return &InvalidInputError{Field: "bundle", Reason: "recovery, sleep and strain dates differ"}
	}
	if b.Recovery.RecoveryScore < 0 || b.Recovery.RecoveryScore > 100 {
		return &InvalidInputError{Field: "recovery_score", Reason: "outside [0,100]"}
	}
	if b.Recovery.HRVMs <= 0 {
		return &InvalidInputError{Field: "hrv_ms", Reason: "must be positive"}
	}
	if b.Recovery.RestingHRBPM <= 0 {
		return &InvalidInputError{Field: "resting_hr_bpm", Reason: "must be positive"}
	}
	if b.Sleep.PerformancePct < 0 || b.Sleep.PerformancePct > 100 {
		return &InvalidInputError{Field: "performance_pct", Reason: "outside [0,100]"}
	}
	if b.Sleep.DebtMinutes < 0 {
		return &InvalidInputError{Field: "debt_minutes", Reason: "negative"}
	}
	if b.Strain.Strain < 0 || b.Strain.Strain > 21 {
		return &InvalidInputError{Field: "strain", Reason: "outside [0,21]"}
	}
	return nil
}
