// Package stats computes every aggregate the tracker exposes. All functions
// are pure: they take runs already queried from the store (soft-deleted rows
// never reach them) plus request parameters, and never fail on empty input.
package stats

import (
	"runlog/internal/models"
)

type Summary struct {
	TotalRuns        int     `json:"total_runs"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationSec int     `json:"total_duration_sec"`
	AvgDistanceKm    float64 `json:"avg_distance_km"`
	AvgDurationSec   float64 `json:"avg_duration_sec"`
	AvgPaceSecPerKm  float64 `json:"avg_pace_sec_per_km"`
}

// Summarize totals the given runs. Zero runs yields a zero-valued summary,
// never an error or NaN.
func Summarize(runs []models.Run) Summary {
	var s Summary
	s.TotalRuns = len(runs)
	for _, r := range runs {
		s.TotalDistanceKm += r.DistanceKm
		s.TotalDurationSec += r.DurationSec
	}

	if s.TotalRuns > 0 {
		s.AvgDistanceKm = s.TotalDistanceKm / float64(s.TotalRuns)
		s.AvgDurationSec = float64(s.TotalDurationSec) / float64(s.TotalRuns)
	}
	if s.TotalDistanceKm > 0 {
		s.AvgPaceSecPerKm = float64(s.TotalDurationSec) / s.TotalDistanceKm
	}
	return s
}
