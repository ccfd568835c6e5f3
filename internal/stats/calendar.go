package stats

import (
	"math"

	"runlog/internal/calendarutil"
	"runlog/internal/models"
)

type CalendarEntry struct {
	Count   int     `json:"count"`
	TotalKm float64 `json:"total_km"`
}

// CalendarDays buckets runs by UTC calendar day for heatmap rendering. Keys
// are "YYYY-MM-DD"; distance is rounded to one decimal.
func CalendarDays(runs []models.Run) map[string]CalendarEntry {
	days := make(map[string]CalendarEntry)
	for _, r := range runs {
		key := calendarutil.FormatYMD(r.Date)
		e := days[key]
		e.Count++
		e.TotalKm += r.DistanceKm
		days[key] = e
	}
	for key, e := range days {
		e.TotalKm = math.Round(e.TotalKm*10) / 10
		days[key] = e
	}
	return days
}
