package stats

import (
	"runlog/internal/models"
)

type GoalProgressEntry struct {
	Current         float64 `json:"current"`
	Target          float64 `json:"target"`
	PercentComplete float64 `json:"percent_complete"`
	Reached         bool    `json:"reached"`
}

// GoalProgress reports one entry per configured target; unconfigured targets
// stay nil so the client can tell "no goal" apart from "goal of zero".
type GoalProgress struct {
	WeeklyDistance  *GoalProgressEntry `json:"weekly_distance,omitempty"`
	WeeklyRuns      *GoalProgressEntry `json:"weekly_runs,omitempty"`
	Pace            *GoalProgressEntry `json:"pace,omitempty"`
	MonthlyDistance *GoalProgressEntry `json:"monthly_distance,omitempty"`
}

// EvaluateGoals compares the current week's and month's runs against the
// configured targets. A nil goal row means nothing is configured.
func EvaluateGoals(goal *models.WeeklyGoal, weekRuns, monthRuns []models.Run) GoalProgress {
	var progress GoalProgress
	if goal == nil {
		return progress
	}

	week := Summarize(weekRuns)

	if goal.TargetKm != nil {
		progress.WeeklyDistance = progressToward(week.TotalDistanceKm, *goal.TargetKm)
	}
	if goal.TargetRuns != nil {
		progress.WeeklyRuns = progressToward(float64(week.TotalRuns), float64(*goal.TargetRuns))
	}
	if goal.TargetPaceSecPerKm != nil {
		progress.Pace = paceProgress(week.AvgPaceSecPerKm, float64(*goal.TargetPaceSecPerKm))
	}
	if goal.TargetMonthlyKm != nil {
		month := Summarize(monthRuns)
		progress.MonthlyDistance = progressToward(month.TotalDistanceKm, *goal.TargetMonthlyKm)
	}

	return progress
}

func progressToward(current, target float64) *GoalProgressEntry {
	return &GoalProgressEntry{
		Current:         current,
		Target:          target,
		PercentComplete: clampPercent(current, target),
		Reached:         current >= target,
	}
}

// paceProgress inverts the comparison: a lower pace is better, so the goal is
// reached when the current pace is at or below the target.
func paceProgress(current, target float64) *GoalProgressEntry {
	e := &GoalProgressEntry{Current: current, Target: target}
	if current > 0 {
		e.PercentComplete = clampPercent(target, current)
		e.Reached = current <= target
	}
	return e
}

func clampPercent(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	pct := num / den * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
