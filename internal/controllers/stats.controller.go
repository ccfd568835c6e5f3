package controllers

import (
	"net/http"
	"time"

	"runlog/internal/calendarutil"
	"runlog/internal/repository"
	"runlog/internal/stats"

	"github.com/gin-gonic/gin"
)

const (
	defaultWeeks = 12
	maxWeeks     = 52

	defaultMonths = 12
	maxMonths     = 24
)

type StatsController struct {
	runRepo repository.RunRepository
}

func NewStatsController(runRepo repository.RunRepository) *StatsController {
	return &StatsController{runRepo: runRepo}
}

// GetSummary godoc
// @Summary Aggregate totals over a date range
// @Description Count, distance, duration and pace totals for the authenticated user; both range bounds optional
// @Tags stats
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Router /stats/summary [get]
func (sc *StatsController) GetSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	from, err := calendarutil.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
		return
	}
	to, err := calendarutil.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
		return
	}

	var fromPtr, toPtr *time.Time
	if !from.IsZero() {
		fromPtr = &from
	}
	if !to.IsZero() {
		toPtr = &to
	}

	runs, err := sc.runRepo.FindByUserIDAndDateRange(userID, fromPtr, toPtr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	var rangeFrom, rangeTo interface{}
	if fromPtr != nil {
		rangeFrom = fromPtr
	}
	if toPtr != nil {
		rangeTo = toPtr
	}

	summary := stats.Summarize(runs)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data": gin.H{
			"range":               gin.H{"from": rangeFrom, "to": rangeTo},
			"total_runs":          summary.TotalRuns,
			"total_distance_km":   summary.TotalDistanceKm,
			"total_duration_sec":  summary.TotalDurationSec,
			"avg_distance_km":     summary.AvgDistanceKm,
			"avg_duration_sec":    summary.AvgDurationSec,
			"avg_pace_sec_per_km": summary.AvgPaceSecPerKm,
		},
	})
}

// GetWeekly godoc
// @Summary Weekly distance series
// @Description Dense Monday-start weekly buckets for chart rendering; empty weeks included
// @Tags stats
// @Produce json
// @Param weeks query int false "Week count (1-52, default 12)"
// @Success 200 {object} map[string]interface{} "Weekly series retrieved successfully"
// @Router /stats/weekly [get]
func (sc *StatsController) GetWeekly(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	weeks := clampInt(parseIntQuery(c, "weeks", defaultWeeks), 1, maxWeeks)

	now := time.Now().UTC()
	from, to := stats.WeeklyWindow(now, weeks)
	runs, err := sc.runRepo.FindByUserIDAndDateSpan(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly series retrieved successfully",
		"data": gin.H{
			"weeks":  weeks,
			"from":   from,
			"to":     to,
			"series": stats.WeeklyBuckets(runs, now, weeks),
		},
	})
}

// GetPersonalBests godoc
// @Summary Personal bests
// @Description Fastest run per reference distance band, best pace over 3 km, and longest run
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Personal bests retrieved successfully"
// @Router /stats/personal-bests [get]
func (sc *StatsController) GetPersonalBests(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	runs, err := sc.runRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Personal bests retrieved successfully",
		"data":    stats.ComputePersonalBests(runs),
	})
}

// GetStreak godoc
// @Summary Week streaks
// @Description Current and best runs of consecutive active Monday-start weeks
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Streak retrieved successfully"
// @Router /stats/streak [get]
func (sc *StatsController) GetStreak(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	runs, err := sc.runRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Streak retrieved successfully",
		"data":    stats.ComputeStreak(runs, time.Now().UTC()),
	})
}

// GetCalendar godoc
// @Summary Per-day activity calendar
// @Description Run count and distance per UTC calendar day for heatmap rendering
// @Tags stats
// @Produce json
// @Param months query int false "Month count (1-24, default 12)"
// @Success 200 {object} map[string]interface{} "Calendar retrieved successfully"
// @Router /stats/calendar [get]
func (sc *StatsController) GetCalendar(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	months := clampInt(parseIntQuery(c, "months", defaultMonths), 1, maxMonths)

	now := time.Now().UTC()
	from := calendarutil.MonthStart(now.AddDate(0, -months, 0))

	runs, err := sc.runRepo.FindByUserIDAndDateRange(userID, &from, &now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve statistics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Calendar retrieved successfully",
		"data": gin.H{
			"from":    from,
			"entries": stats.CalendarDays(runs),
		},
	})
}
