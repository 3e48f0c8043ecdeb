package report

import (
	"fmt"
	"io"
	"strings"

	"traincoach/internal/activity"
	"traincoach/internal/engine"
	"traincoach/internal/model"
	"traincoach/internal/workout"
)

var zoneMarkers = map[model.Zone]string{
	model.ZoneRed:    "[RED]",
	model.ZoneYellow: "[YELLOW]",
	model.ZoneGreen:  "[GREEN]",
}

// RenderRecommendation prints today's recommendation with activity advice.
func RenderRecommendation(w io.Writer, rec *model.Recommendation, advice activity.Advice) {
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	fmt.Fprintf(w, "\n%s\nTODAY'S TRAINING RECOMMENDATION\n%s\n", rule, rule)
	fmt.Fprintf(w, "\n%s Overall: %s\n", zoneMarkers[rec.Zone], strings.ToUpper(rec.Intensity))
	fmt.Fprintf(w, "   Target Strain: %.1f - %.1f\n", rec.TargetStrainLow, rec.TargetStrainHigh)

	fmt.Fprintf(w, "\n%s\nACTIVITY RECOMMENDATIONS\n%s\n", thin, thin)
	fmt.Fprintf(w, "\nClimbing:  %s\n", advice.Climbing)
	fmt.Fprintf(w, "Running:   %s\n", advice.Running)
	fmt.Fprintf(w, "Gym:       %s\n", advice.Gym)
	fmt.Fprintf(w, "Sauna:     %s\n", advice.Sauna)

	fmt.Fprintf(w, "\n%s\nANALYSIS\n%s\n", thin, thin)
	for _, reason := range rec.Rationale {
		fmt.Fprintf(w, "   - %s\n", reason)
	}

	warnings := append(append([]string{}, rec.Warnings...), advice.Warnings...)
	if len(warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n")
		for _, warning := range warnings {
			fmt.Fprintf(w, "   - %s\n", warning)
		}
	}
	fmt.Fprintln(w)
}

// RenderWorkouts prints today's workout options, one per activity.
func RenderWorkouts(w io.Writer, plans map[activity.Category]workout.Template) {
	if len(plans) == 0 {
		return
	}
	thin := strings.Repeat("-", 60)
	fmt.Fprintf(w, "%s\nWORKOUT OPTIONS\n%s\n", thin, thin)

	for _, cat := range workout.Categories() {
		tpl, ok := plans[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\n%s: %s (%d min, strain %.0f-%.0f)\n", cat, tpl.Title, tpl.DurationMin, tpl.StrainLow, tpl.StrainHigh)
		fmt.Fprintf(w, "   %s\n", tpl.Description)
		for _, detail := range tpl.Details {
			fmt.Fprintf(w, "   - %s\n", detail)
		}
	}
	fmt.Fprintln(w)
}

// RenderWeekly prints the weekly overview.
func RenderWeekly(w io.Writer, plan engine.WeeklyPlan) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(w, "%s\nWEEKLY OVERVIEW\n%s\n", rule, rule)
	fmt.Fprintf(w, "\nLast 7 days:\n")
	fmt.Fprintf(w, "   Climbing sessions: %d (%.1f total strain)\n", plan.Summary.Climbing, plan.Summary.ClimbingStrain)
	fmt.Fprintf(w, "   Running sessions:  %d\n", plan.Summary.Running)
	fmt.Fprintf(w, "   Gym sessions:      %d\n", plan.Summary.Gym)
	fmt.Fprintf(w, "\n   Avg recovery: %.0f%%\n", plan.AvgRecovery7d)
	fmt.Fprintf(w, "   Trend: %s\n", plan.Trend)
	fmt.Fprintf(w, "\nSuggestion: %s\n\n", plan.Suggestion)
}

// RenderRecentActivity prints the last sessions, most recent first.
func RenderRecentActivity(w io.Writer, sessions []model.WorkoutSession, max int) {
	thin := strings.Repeat("-", 60)
	fmt.Fprintf(w, "%s\nRECENT ACTIVITY\n%s\n", thin, thin)

	count := 0
	for _, s := range sessions {
		if count >= max {
			break
		}
		fmt.Fprintf(w, "   %s: %-20s strain %.1f\n", s.Date.Format("Mon 02"), s.Sport, s.Strain)
		count++
	}
	fmt.Fprintln(w)
}
