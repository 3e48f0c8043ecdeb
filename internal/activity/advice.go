package activity

import (
	"fmt"

	"traincoach/internal/model"
)

// Advice is per-activity guidance layered on top of a recommendation.
// It never changes the recommendation's target range.
type Advice struct {
	Climbing string   `json:"climbing"`
	Running  string   `json:"running"`
	Gym      string   `json:"gym"`
	Sauna    string   `json:"sauna"`
	Warnings []string `json:"warnings,omitempty"`
}

// Advise derives activity guidance from the zone and recent climbing load.
// Finger tendons recover slower than the cardiovascular system, so climbing
// gets its own rest logic independent of the recovery score.
func Advise(rec *model.Recommendation, daysSinceClimb, climbCount int) Advice {
	var a Advice

	switch rec.Zone {
	case model.ZoneGreen:
		switch {
		case daysSinceClimb == 0:
			a.Climbing = "Rest fingers - climbed today. Light hangboard at most"
			a.Running = "Good day for a harder run"
			a.Gym = "Upper body might be fatigued - focus on legs and cardio"
		case daysSinceClimb == 1:
			a.Climbing = "Easy climbing OK if fingers feel good, no projecting"
			a.Running = "Moderate to hard effort OK"
			a.Gym = "Full session OK"
		case climbCount >= 4:
			a.Climbing = "Consider a rest day from climbing - high weekly volume"
			a.Running = "Good alternative - run or gym"
			a.Gym = "Good option today"
			a.Warnings = append(a.Warnings,
				fmt.Sprintf("already %d climbing sessions this week - watch for overuse", climbCount))
		default:
			a.Climbing = "Project day - go for something hard"
			a.Running = "Intervals or long run"
			a.Gym = "Heavy session OK"
		}
	case model.ZoneYellow:
		if daysSinceClimb <= 1 {
			a.Climbing = "Rest from climbing today"
			a.Running = "Easy jog only"
			a.Gym = "Light session or skip"
		} else {
			a.Climbing = "Moderate routes - volume over intensity"
			a.Running = "Steady state, nothing too hard"
			a.Gym = "Normal session, moderate weights"
		}
	default:
		a.Climbing = "Skip climbing - fingers need recovery too"
		a.Running = "Light walk at most"
		a.Gym = "Skip or very light mobility work"
	}

	switch rec.Intensity {
	case "Rest/Easy":
		a.Sauna = "Sauna is a good option for recovery"
	case "Moderate":
		a.Sauna = "Optional - fine if you want it"
	default:
		a.Sauna = "Skip or do post-workout only"
	}

	return a
}
