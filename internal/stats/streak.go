package stats

import (
	"sort"
	"time"

	"runlog/internal/calendarutil"
	"runlog/internal/models"
)

type Streak struct {
	CurrentWeekStreak  int `json:"current_week_streak"`
	BestWeekStreak     int `json:"best_week_streak"`
	TotalWeeksWithRuns int `json:"total_weeks_with_runs"`
}

// ComputeStreak counts consecutive Monday-start weeks containing at least one
// run. The current streak anchors on this week when it has a run, otherwise
// on last week; the best streak is the longest chain of exactly-7-day gaps
// across the whole history.
func ComputeStreak(runs []models.Run, now time.Time) Streak {
	weekSet := make(map[string]time.Time)
	for _, r := range runs {
		ws := calendarutil.MondayStart(r.Date)
		weekSet[calendarutil.FormatYMD(ws)] = ws
	}

	s := Streak{TotalWeeksWithRuns: len(weekSet)}
	if len(weekSet) == 0 {
		return s
	}

	thisWeek := calendarutil.MondayStart(now)
	anchor := thisWeek
	if _, ok := weekSet[calendarutil.FormatYMD(anchor)]; !ok {
		anchor = calendarutil.AddDays(thisWeek, -7)
	}
	for {
		if _, ok := weekSet[calendarutil.FormatYMD(anchor)]; !ok {
			break
		}
		s.CurrentWeekStreak++
		anchor = calendarutil.AddDays(anchor, -7)
	}

	weeks := make([]time.Time, 0, len(weekSet))
	for _, ws := range weekSet {
		weeks = append(weeks, ws)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	best, run := 1, 1
	for i := 1; i < len(weeks); i++ {
		if weeks[i].Sub(weeks[i-1]) == 7*24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	s.BestWeekStreak = best

	return s
}
