package stats

import (
	"time"

	"runlog/internal/calendarutil"
	"runlog/internal/models"
)

type WeekBucket struct {
	WeekStart        time.Time `json:"week_start"`
	WeekEnd          time.Time `json:"week_end"`
	TotalRuns        int       `json:"total_runs"`
	TotalDistanceKm  float64   `json:"total_distance_km"`
	TotalDurationSec int       `json:"total_duration_sec"`
}

// WeeklyWindow returns the [from, to) range covering the `weeks` calendar
// weeks ending with the week containing now.
func WeeklyWindow(now time.Time, weeks int) (time.Time, time.Time) {
	thisWeek := calendarutil.MondayStart(now)
	from := calendarutil.AddDays(thisWeek, -7*(weeks-1))
	to := calendarutil.AddDays(thisWeek, 7)
	return from, to
}

// WeeklyBuckets assigns each run to its Monday-start week and returns a dense
// series: every week in the window is present even when empty, so charts
// render without gaps. Runs outside the window are ignored.
func WeeklyBuckets(runs []models.Run, now time.Time, weeks int) []WeekBucket {
	from, _ := WeeklyWindow(now, weeks)

	series := make([]WeekBucket, weeks)
	index := make(map[string]int, weeks)
	for i := 0; i < weeks; i++ {
		weekStart := calendarutil.AddDays(from, 7*i)
		series[i] = WeekBucket{
			WeekStart: weekStart,
			WeekEnd:   calendarutil.AddDays(weekStart, 7),
		}
		index[calendarutil.FormatYMD(weekStart)] = i
	}

	for _, r := range runs {
		key := calendarutil.FormatYMD(calendarutil.MondayStart(r.Date))
		i, ok := index[key]
		if !ok {
			continue
		}
		series[i].TotalRuns++
		series[i].TotalDistanceKm += r.DistanceKm
		series[i].TotalDurationSec += r.DurationSec
	}

	return series
}
