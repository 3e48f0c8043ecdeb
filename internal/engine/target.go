package engine

import (
	"fmt"

	"traincoach/internal/model"
)

// Tunable thresholds. These are heuristics inferred from the provider's
// published factor list, not a disclosed formula; override via Options.
const (
	DefaultSleepDebtCutoffMin = 60
	DefaultStrainAvgThreshold = 12.0
	DefaultHistoryDays        = 7

	maxStrain = 21.0
)

// Options carries the tunable thresholds of the recommendation policy.
type Options struct {
	SleepDebtCutoffMin int
	StrainAvgThreshold float64
	HistoryDays        int
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		SleepDebtCutoffMin: DefaultSleepDebtCutoffMin,
		StrainAvgThreshold: DefaultStrainAvgThreshold,
		HistoryDays:        DefaultHistoryDays,
	}
}

// Target is a resolved strain range with the modifiers that shaped it.
type Target struct {
	Intensity string
	Low       float64
	High      float64
	Modifiers []string
}

// baseRange is the unmodified target range for a zone.
type baseRange struct {
	intensity string
	low       float64
	high      float64
}

var baseRanges = map[model.Zone]baseRange{
	model.ZoneRed:    {intensity: "Rest/Easy", low: 0, high: 8},
	model.ZoneYellow: {intensity: "Moderate", low: 8, high: 14},
	model.ZoneGreen:  {intensity: "Hard", low: 14, high: 18},
}

// nextLower maps a zone to the one below it. Red has no lower zone.
var nextLower = map[model.Zone]model.Zone{
	model.ZoneGreen:  model.ZoneYellow,
	model.ZoneYellow: model.ZoneRed,
}

// Resolve maps a zone plus modifiers to a target strain range. Modifiers
// apply in a fixed order: sleep-debt cap first, then the strain-accumulation
// shift, then a clamp to the provider's 0-21 scale.
func Resolve(zone model.Zone, sleepDebtMin int, recentStrainAvg float64, opts Options) (Target, error) {
	var target Target

	if sleepDebtMin < 0 {
		return target, &model.InvalidInputError{Field: "sleep_debt_minutes", Reason: "negative"}
	}
	if recentStrainAvg < 0 {
		return target, &model.InvalidInputError{Field: "recent_strain_avg", Reason: "negative"}
	}

	base, ok := baseRanges[zone]
	if !ok {
		return target, &model.InvalidInputError{Field: "zone", Reason: fmt.Sprintf("unknown zone %q", zone)}
	}

	target.Intensity = base.intensity
	target.Low = base.low
	target.High = base.high

	// Sleep-debt penalty: adaptive capacity is impaired even on a green day.
	if sleepDebtMin >= opts.SleepDebtCutoffMin {
		mid := (base.low + base.high) / 2
		if mid < target.High {
			target.High = mid
		}
		target.Modifiers = append(target.Modifiers, "high sleep debt: capped upper target")
	}

	// Strain-accumulation penalty: sustained load forces a taper toward the
	// next-lower zone's range. Red already is the floor.
	if recentStrainAvg > opts.StrainAvgThreshold && zone != model.ZoneRed {
		lower := baseRanges[nextLower[zone]]
		shift := base.low - lower.low
		target.Low -= shift
		target.High -= shift
		target.Modifiers = append(target.Modifiers, "elevated recent strain: shifted down")
	}

	target.Low = clamp(target.Low, 0, maxStrain)
	target.High = clamp(target.High, 0, maxStrain)

	// Internal consistency check: the policy above can shrink a range but
	// must never invert it.
	if target.Low > target.High {
		return Target{}, &model.InvalidInputError{
			Field:  "target_range",
			Reason: fmt.Sprintf("low %.1f above high %.1f after modifiers", target.Low, target.High),
		}
	}

	return target, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
