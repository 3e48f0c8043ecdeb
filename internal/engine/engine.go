package engine

import (
	"fmt"

	"traincoach/internal/model"
)

// Recovery scores below this usually mean illness or severe overreaching.
const veryLowRecovery = 20

// Low sleep performance is worth a warning even when debt stays under the cutoff.
const lowSleepPerformancePct = 70

// Engine derives a daily training recommendation from physiological signals.
// It is stateless: every call is a pure function of its inputs.
type Engine struct {
	opts Options
}

// New creates an Engine with the given thresholds.
func New(opts Options) *Engine {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = DefaultHistoryDays
	}
	if opts.SleepDebtCutoffMin <= 0 {
		opts.SleepDebtCutoffMin = DefaultSleepDebtCutoffMin
	}
	if opts.StrainAvgThreshold <= 0 {
		opts.StrainAvgThreshold = DefaultStrainAvgThreshold
	}
	return &Engine{opts: opts}
}

// Recommend produces the training recommendation for the bundle's day.
func (e *Engine) Recommend(bundle model.DailyBundle, history model.HistoryWindow) (*model.Recommendation, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	if err := history.Validate(bundle.Recovery.Date); err != nil {
		return nil, err
	}

	recentStrainAvg := history.StrainAvg(e.opts.HistoryDays)

	zone, err := Classify(bundle.Recovery.RecoveryScore)
	if err != nil {
		return nil, err
	}

	target, err := Resolve(zone, bundle.Sleep.DebtMinutes, recentStrainAvg, e.opts)
	if err != nil {
		return nil, err
	}

	rationale := []string{
		fmt.Sprintf("recovery at %d%% → %s", bundle.Recovery.RecoveryScore, zone),
	}
	if len(history) == 0 {
		rationale = append(rationale, "insufficient history: no strain-accumulation adjustment")
	}
	rationale = append(rationale, target.Modifiers...)
	rationale = append(rationale,
		fmt.Sprintf("HRV: %.1fms", bundle.Recovery.HRVMs),
		fmt.Sprintf("resting HR: %.0fbpm", bundle.Recovery.RestingHRBPM),
	)

	var warnings []string
	if bundle.Recovery.Calibrating {
		warnings = append(warnings, "provider is still calibrating - recommendations may be less accurate")
	}
	if bundle.Recovery.RecoveryScore < veryLowRecovery {
		warnings = append(warnings, "very low recovery - check if you're getting sick or overstressed")
	}
	if bundle.Sleep.PerformancePct < lowSleepPerformancePct {
		warnings = append(warnings, fmt.Sprintf("sleep performance only %d%% - consider an earlier night", bundle.Sleep.PerformancePct))
	}

	return &model.Recommendation{
		Zone:             zone,
		Intensity:        target.Intensity,
		TargetStrainLow:  target.Low,
		TargetStrainHigh: target.High,
		Rationale:        rationale,
		Warnings:         warnings,
	}, nil
}
