package engine

import "traincoach/internal/model"

// ActivitySummary counts the last week's sessions per activity.
// ClimbingStrain is the accumulated strain of those climbing sessions.
type ActivitySummary struct {
	Climbing       int     `json:"climbing"`
	ClimbingStrain float64 `json:"climbing_strain_7d"`
	Running        int     `json:"running"`
	Gym            int     `json:"gym"`
	Sauna          int     `json:"sauna"`
}

// WeeklyPlan is a 7-day outlook layered on top of today's recommendation.
type WeeklyPlan struct {
	Today         *model.Recommendation `json:"today"`
	AvgRecovery7d float64               `json:"avg_recovery_7d"`
	Trend         string                `json:"trend"`
	Summary       ActivitySummary       `json:"weekly_summary"`
	Suggestion    string                `json:"suggestion"`
}

// WeeklyPlan builds the weekly outlook. Recoveries must be ordered oldest
// to newest; with fewer than two entries the trend defaults to declining.
func (e *Engine) WeeklyPlan(today *model.Recommendation, recoveries []model.RecoverySignal, summary ActivitySummary) WeeklyPlan {
	avgRecovery := 50.0
	if len(recoveries) > 0 {
		var sum float64
		for _, r := range recoveries {
			sum += float64(r.RecoveryScore)
		}
		avgRecovery = sum / float64(len(recoveries))
	}

	trend := "declining"
	if len(recoveries) >= 2 && recoveries[len(recoveries)-1].RecoveryScore > recoveries[0].RecoveryScore {
		trend = "improving"
	}

	return WeeklyPlan{
		Today:         today,
		AvgRecovery7d: avgRecovery,
		Trend:         trend,
		Summary:       summary,
		Suggestion:    weeklySuggestion(avgRecovery, summary.Climbing),
	}
}

func weeklySuggestion(avgRecovery float64, climbCount int) string {
	switch {
	case avgRecovery >= 60 && climbCount < 3:
		return "Recovery is solid - you could add another climbing session this week."
	case avgRecovery >= 60:
		return "Good recovery trend. Maintain current volume."
	case avgRecovery >= 40 && climbCount >= 4:
		return "Recovery is mixed and climbing volume is high - consider dropping a session."
	case avgRecovery >= 40:
		return "Mixed recovery - alternate hard and easy days."
	default:
		return "Recovery has been low. Prioritize sleep and lighter training."
	}
}
