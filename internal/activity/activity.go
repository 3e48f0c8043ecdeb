package activity

import (
	"strings"
	"time"

	"traincoach/internal/model"
)

// Category is the training activity bucket a workout falls into.
type Category string

const (
	Climbing Category = "climbing"
	Running  Category = "running"
	Gym      Category = "gym"
	Sauna    Category = "sauna"
	Other    Category = "other"
)

// NoRecentClimbing is returned by DaysSinceClimbing when the window holds
// no climbing sessions at all.
const NoRecentClimbing = 999

var keywords = map[Category][]string{
	Climbing: {"climbing", "bouldering", "rock climbing", "lead climbing"},
	Running:  {"running", "run", "jogging", "trail running", "treadmill"},
	Gym:      {"functional fitness", "weightlifting", "strength training", "crossfit", "gym", "weight training"},
	Sauna:    {"sauna", "steam room", "hot tub"},
}

// order keeps categorization deterministic when keyword sets overlap.
var order = []Category{Climbing, Running, Gym, Sauna}

// Categorize buckets sessions by sport-name keywords.
func Categorize(sessions []model.WorkoutSession) map[Category][]model.WorkoutSession {
	buckets := make(map[Category][]model.WorkoutSession)
	for _, s := range sessions {
		cat := categoryOf(s.Sport)
		buckets[cat] = append(buckets[cat], s)
	}
	return buckets
}

func categoryOf(sport string) Category {
	sport = strings.ToLower(sport)
	for _, cat := range order {
		for _, k := range keywords[cat] {
			if strings.Contains(sport, k) {
				return cat
			}
		}
	}
	return Other
}

// DaysSinceClimbing returns whole days since the most recent climbing session.
func DaysSinceClimbing(buckets map[Category][]model.WorkoutSession, now time.Time) int {
	climbing := buckets[Climbing]
	if len(climbing) == 0 {
		return NoRecentClimbing
	}
	last := climbing[0].Date
	for _, s := range climbing[1:] {
		if s.Date.After(last) {
			last = s.Date
		}
	}
	return int(now.Sub(last).Hours() / 24)
}

// ClimbingLoad7d returns the climbing session count and total strain in the window.
func ClimbingLoad7d(buckets map[Category][]model.WorkoutSession) (int, float64) {
	climbing := buckets[Climbing]
	var total float64
	for _, s := range climbing {
		total += s.Strain
	}
	return len(climbing), total
}
