package workout

import (
	"time"

	"traincoach/internal/activity"
)

// EffortForIntensity maps the engine's intensity label to a catalog effort.
// Rest days get no workout at all.
func EffortForIntensity(intensity string) (Effort, bool) {
	switch intensity {
	case "Moderate":
		return EffortModerate, true
	case "Hard":
		return EffortHard, true
	case "Rest/Easy":
		return EffortEasy, true
	default:
		return "", false
	}
}

// ForActivity picks a template for the activity at the given effort.
// Selection is keyed on the date so the same day always yields the same
// workout, while consecutive days rotate through the catalog.
func ForActivity(cat activity.Category, effort Effort, date time.Time) (Template, bool) {
	templates := catalog[cat][effort]
	if len(templates) == 0 {
		return Template{}, false
	}
	return templates[date.YearDay()%len(templates)], true
}

// DayPlan picks one template per activity for the date, matched to the
// recommended intensity. Activities with no template at that effort are
// left out. An unknown intensity yields no plan.
func DayPlan(intensity string, date time.Time) map[activity.Category]Template {
	effort, ok := EffortForIntensity(intensity)
	if !ok {
		return nil
	}
	plans := make(map[activity.Category]Template)
	for _, cat := range Categories() {
		if tpl, ok := ForActivity(cat, effort, date); ok {
			plans[cat] = tpl
		}
	}
	return plans
}

// Categories lists the activities the catalog knows about.
func Categories() []activity.Category {
	return []activity.Category{activity.Climbing, activity.Running, activity.Gym, activity.Sauna}
}
