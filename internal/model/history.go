package model

import "time"

// HistoryWindow is an ordered sequence of past strain signals, oldest first.
// It exists only to feed the rolling strain average.
type HistoryWindow []StrainSignal

// Validate checks ordering, duplicate dates and that every entry falls
// strictly before the given bundle date.
func (h HistoryWindow) Validate(bundleDate time.Time) error {
	var prev time.Time
	for i, s := range h {
		if !s.Date.Before(startOfDay(bundleDate)) {
			return &InvalidInputError{Field: "history", Reason: "entry not strictly before bundle date"}
		}
		if s.Strain < 0 || s.Strain > 21 {
			return &InvalidInputError{Field: "history", Reason: "strain outside [0,21]"}
		}
		if i > 0 {
			if SameDay(prev, s.Date) {
				return &InvalidInputError{Field: "history", Reason: "duplicate date"}
			}
			if s.Date.Before(prev) {
				return &InvalidInputError{Field: "history", Reason: "entries not ordered oldest to newest"}
			}
		}
		prev = s.Date
	}
	return nil
}

// StrainAvg returns the mean strain over up to the last n entries.
// An empty window yields 0.
func (h HistoryWindow) StrainAvg(n int) float64 {
	if len(h) == 0 || n <= 0 {
		return 0
	}
	start := len(h) - n
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, s := range h[start:] {
		sum += s.Strain
	}
	return sum / float64(len(h)-start)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
