package workout

import "traincoach/internal/activity"

// Template is a structured workout suggestion.
type Template struct {
	Title       string   `json:"title"`
	DurationMin int      `json:"duration_min"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	StrainLow   float64  `json:"strain_low"`
	StrainHigh  float64  `json:"strain_high"`
}

// Effort is the catalog's intensity axis.
type Effort string

const (
	EffortEasy     Effort = "easy"
	EffortModerate Effort = "moderate"
	EffortHard     Effort = "hard"
)

var catalog = map[activity.Category]map[Effort][]Template{
	activity.Climbing: {
		EffortEasy: {
			{
				Title:       "Easy Climbing + Finger Maintenance",
				DurationMin: 60,
				Description: "Light session with low-intensity finger work",
				Details: []string{
					"Warm up: 15 min easy traversing",
					"Hangboard: 3x10s half crimp at bodyweight",
					"Climb 2-3 grades below max",
					"Cool down: finger stretches",
				},
				StrainLow: 5, StrainHigh: 8,
			},
			{
				Title:       "Volume Session - Grip Endurance",
				DurationMin: 75,
				Description: "High volume for finger stamina",
				Details: []string{
					"Warm up: 10 min + progressive hangs",
					"Climb 15-20 easy problems focusing on grip",
					"Repeaters: 7s on/3s off x6 (half crimp)",
					"Cool down: reverse wrist curls + stretching",
				},
				StrainLow: 6, StrainHigh: 9,
			},
		},
		EffortModerate: {
			{
				Title:       "Hangboard - Repeaters Protocol",
				DurationMin: 90,
				Description: "Build finger endurance with repeaters",
				Details: []string{
					"Warm up: 20 min climbing + progressive hangs",
					"Repeaters: 7s on/3s off x6 reps per set",
					"4-6 sets on 20mm edge (half crimp)",
					"Finish with easy climbing: 15-20 min",
				},
				StrainLow: 10, StrainHigh: 13,
			},
			{
				Title:       "Finger Strength + Crimpy Problems",
				DurationMin: 90,
				Description: "Target crimp strength on small holds",
				Details: []string{
					"Warm up: 15 min easy + finger prep",
					"Max hangs: 10s x5 on 18-20mm edge",
					"Climb crimpy problems at moderate grade",
					"Cool down: antagonist + finger stretches",
				},
				StrainLow: 9, StrainHigh: 12,
			},
		},
		EffortHard: {
			{
				Title:       "Max Hangs - Strength Protocol",
				DurationMin: 90,
				Description: "Maximum finger recruitment for strength gains",
				Details: []string{
					"Extended warm up: 30 min climbing + hangs",
					"Max hangs: 10s x5-6 on 18mm edge",
					"Add weight until 10s is near-max effort",
					"Full rest: 3-5 min between hangs",
				},
				StrainLow: 12, StrainHigh: 15,
			},
			{
				Title:       "Limit Bouldering + Finger Power",
				DurationMin: 120,
				Description: "Maximum power on small holds",
				Details: []string{
					"Warm up: 30 min including progressive hangs",
					"Limit boulders: focus on hard finger moves",
					"Full recovery between attempts (4-5 min)",
					"Stop when power drops",
				},
				StrainLow: 14, StrainHigh: 17,
			},
		},
	},
	activity.Running: {
		EffortEasy: {
			{
				Title:       "Recovery Run",
				DurationMin: 30,
				Description: "Very easy conversational pace",
				Details: []string{
					"Keep heart rate in zone 1-2",
					"Flat route, no strides",
					"Walk breaks are fine",
				},
				StrainLow: 4, StrainHigh: 7,
			},
			{
				Title:       "Easy Jog + Mobility",
				DurationMin: 40,
				Description: "Short jog with a mobility finish",
				Details: []string{
					"20-30 min easy jog",
					"10 min hip and ankle mobility",
				},
				StrainLow: 4, StrainHigh: 7,
			},
		},
		EffortModerate: {
			{
				Title:       "Steady State Run",
				DurationMin: 50,
				Description: "Comfortably hard aerobic effort",
				Details: []string{
					"10 min warm up jog",
					"30 min steady at marathon-ish effort",
					"10 min cool down",
				},
				StrainLow: 9, StrainHigh: 12,
			},
			{
				Title:       "Hilly Endurance Run",
				DurationMin: 60,
				Description: "Rolling terrain at an honest but sustainable pace",
				Details: []string{
					"Pick a route with 200-400m of gain",
					"Run the ups, float the downs",
				},
				StrainLow: 10, StrainHigh: 13,
			},
		},
		EffortHard: {
			{
				Title:       "Interval Session",
				DurationMin: 60,
				Description: "VO2-style intervals",
				Details: []string{
					"15 min warm up with strides",
					"5x3 min hard / 2 min jog",
					"10 min cool down",
				},
				StrainLow: 13, StrainHigh: 16,
			},
			{
				Title:       "Long Run",
				DurationMin: 100,
				Description: "Extended aerobic run",
				Details: []string{
					"90-110 min at easy-to-steady effort",
					"Fuel after the first hour",
				},
				StrainLow: 13, StrainHigh: 17,
			},
		},
	},
	activity.Gym: {
		EffortEasy: {
			{
				Title:       "Mobility + Light Circuit",
				DurationMin: 40,
				Description: "Movement quality day",
				Details: []string{
					"15 min full-body mobility",
					"2 rounds light circuit: squat, push, pull, carry",
				},
				StrainLow: 4, StrainHigh: 7,
			},
		},
		EffortModerate: {
			{
				Title:       "Full Body Strength",
				DurationMin: 60,
				Description: "Standard strength session at moderate loads",
				Details: []string{
					"Squat or hinge: 4x5 at RPE 7",
					"Press + row supersets: 3x8",
					"Core finisher",
				},
				StrainLow: 9, StrainHigh: 12,
			},
		},
		EffortHard: {
			{
				Title:       "Heavy Lower + Upper Accessories",
				DurationMin: 75,
				Description: "Top sets near max, then volume",
				Details: []string{
					"Squat: work to a heavy 3, back-off 3x5",
					"Deadlift: 3x3 at RPE 8",
					"Pull-ups and dips: 4 sets each",
				},
				StrainLow: 12, StrainHigh: 15,
			},
		},
	},
	activity.Sauna: {
		EffortEasy: {
			{
				Title:       "Recovery Sauna",
				DurationMin: 30,
				Description: "Heat exposure for recovery",
				Details: []string{
					"2-3 rounds of 10-15 min",
					"Cool down and hydrate between rounds",
				},
				StrainLow: 0, StrainHigh: 2,
			},
		},
	},
}
