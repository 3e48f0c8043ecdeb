package activity

import (
	"testing"
	"time"

	"traincoach/internal/model"
)

var now = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func session(daysAgo int, sport string, strain float64) model.WorkoutSession {
	return model.WorkoutSession{Date: now.AddDate(0, 0, -daysAgo), Sport: sport, Strain: strain}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		sport    string
		expected Category
	}{
		{name: "Bouldering", sport: "Bouldering", expected: Climbing},
		{name: "Rock climbing", sport: "Rock Climbing", expected: Climbing},
		{name: "Trail running", sport: "Trail Running", expected: Running},
		{name: "Treadmill", sport: "Treadmill", expected: Running},
		{name: "Weightlifting", sport: "Weightlifting", expected: Gym},
		{name: "Functional fitness", sport: "Functional Fitness", expected: Gym},
		{name: "Sauna", sport: "Sauna", expected: Sauna},
		{name: "Unknown sport", sport: "Table Tennis", expected: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := Categorize([]model.WorkoutSession{session(1, tt.sport, 8)})
			if len(buckets[tt.expected]) != 1 {
				t.Errorf("Categorize(%q) bucket %q empty: %v", tt.sport, tt.expected, buckets)
			}
		})
	}
}

func TestDaysSinceClimbing(t *testing.T) {
	buckets := Categorize([]model.WorkoutSession{
		session(5, "Bouldering", 9),
		session(2, "Rock Climbing", 11),
		session(1, "Running", 10),
	})
	if got := DaysSinceClimbing(buckets, now); got != 2 {
		t.Errorf("DaysSinceClimbing() = %d, want 2", got)
	}
}

func TestDaysSinceClimbingNone(t *testing.T) {
	buckets := Categorize([]model.WorkoutSession{session(1, "Running", 10)})
	if got := DaysSinceClimbing(buckets, now); got != NoRecentClimbing {
		t.Errorf("DaysSinceClimbing() = %d, want %d", got, NoRecentClimbing)
	}
}

func TestClimbingLoad7d(t *testing.T) {
	buckets := Categorize([]model.WorkoutSession{
		session(6, "Bouldering", 9),
		session(3, "Lead Climbing", 12.5),
		session(1, "Sauna", 1),
	})
	count, total := ClimbingLoad7d(buckets)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if total != 21.5 {
		t.Errorf("total = %v, want 21.5", total)
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		name           string
		zone           model.Zone
		intensity      string
		daysSinceClimb int
		climbCount     int
		wantClimbing   string
		wantWarning    bool
	}{
		{
			name: "Green fresh fingers", zone: model.ZoneGreen, intensity: "Hard",
			daysSinceClimb: 3, climbCount: 2,
			wantClimbing: "Project day - go for something hard",
		},
		{
			name: "Green climbed today", zone: model.ZoneGreen, intensity: "Moderate",
			daysSinceClimb: 0, climbCount: 2,
			wantClimbing: "Rest fingers - climbed today. Light hangboard at most",
		},
		{
			name: "Green high volume", zone: model.ZoneGreen, intensity: "Moderate",
			daysSinceClimb: 2, climbCount: 5,
			wantClimbing: "Consider a rest day from climbing - high weekly volume",
			wantWarning:  true,
		},
		{
			name: "Yellow recent climb", zone: model.ZoneYellow, intensity: "Moderate",
			daysSinceClimb: 1, climbCount: 2,
			wantClimbing: "Rest from climbing today",
		},
		{
			name: "Red", zone: model.ZoneRed, intensity: "Rest/Easy",
			daysSinceClimb: 3, climbCount: 1,
			wantClimbing: "Skip climbing - fingers need recovery too",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &model.Recommendation{Zone: tt.zone, Intensity: tt.intensity}
			advice := Advise(rec, tt.daysSinceClimb, tt.climbCount)
			if advice.Climbing != tt.wantClimbing {
				t.Errorf("climbing = %q, want %q", advice.Climbing, tt.wantClimbing)
			}
			if tt.wantWarning && len(advice.Warnings) == 0 {
				t.Errorf("expected an overuse warning")
			}
			if advice.Sauna == "" || advice.Running == "" || advice.Gym == "" {
				t.Errorf("advice incomplete: %+v", advice)
			}
		})
	}
}

func TestAdviseSaunaByIntensity(t *testing.T) {
	rest := Advise(&model.Recommendation{Zone: model.ZoneRed, Intensity: "Rest/Easy"}, 5, 0)
	if rest.Sauna != "Sauna is a good option for recovery" {
		t.Errorf("rest sauna = %q", rest.Sauna)
	}
	hard := Advise(&model.Recommendation{Zone: model.ZoneGreen, Intensity: "Hard"}, 5, 0)
	if hard.Sauna != "Skip or do post-workout only" {
		t.Errorf("hard sauna = %q", hard.Sauna)
	}
}
