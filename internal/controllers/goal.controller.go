package controllers

import (
	"net/http"
	"time"

	"runlog/internal/calendarutil"
	"runlog/internal/models"
	"runlog/internal/repository"
	"runlog/internal/stats"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type GoalController struct {
	goalRepo repository.GoalRepository
	runRepo  repository.RunRepository
}

func NewGoalController(goalRepo repository.GoalRepository, runRepo repository.RunRepository) *GoalController {
	return &GoalController{goalRepo: goalRepo, runRepo: runRepo}
}

type setGoalRequest struct {
	TargetKm           *float64 `json:"target_km" binding:"omitempty,gt=0,max=1000"`
	TargetRuns         *int     `json:"target_runs" binding:"omitempty,gt=0,max=50"`
	TargetPaceSecPerKm *int     `json:"target_pace_sec_per_km" binding:"omitempty,gt=0"`
	TargetMonthlyKm    *float64 `json:"target_monthly_km" binding:"omitempty,gt=0,max=5000"`
}

// GetGoalProgress godoc
// @Summary Goal progress
// @Description Progress toward each configured target this week and month; unconfigured targets are omitted
// @Tags goals
// @Produce json
// @Success 200 {object} map[string]interface{} "Goal progress retrieved successfully"
// @Router /goals [get]
func (gc *GoalController) GetGoalProgress(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	goal, err := gc.goalRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goal",
			"error":   err.Error(),
		})
		return
	}

	now := time.Now().UTC()
	weekStart := calendarutil.MondayStart(now)
	weekEnd := calendarutil.AddDays(weekStart, 7)
	monthStart := calendarutil.MonthStart(now)

	// Week and month windows are independent queries; fetch them in parallel
	// and join before evaluating.
	var weekRuns, monthRuns []models.Run
	var g errgroup.Group
	g.Go(func() error {
		var err error
		weekRuns, err = gc.runRepo.FindByUserIDAndDateSpan(userID, weekStart, weekEnd)
		return err
	})
	g.Go(func() error {
		var err error
		monthRuns, err = gc.runRepo.FindByUserIDAndDateRange(userID, &monthStart, &now)
		return err
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goal progress",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal progress retrieved successfully",
		"data": gin.H{
			"goal":       goal,
			"week_start": weekStart,
			"progress":   stats.EvaluateGoals(goal, weekRuns, monthRuns),
		},
	})
}

// SetGoal godoc
// @Summary Set weekly goal targets
// @Description Upsert the user's goal row; only fields present in the request are touched
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body setGoalRequest true "Goal targets"
// @Success 200 {object} map[string]interface{} "Goal saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /goals [put]
func (gc *GoalController) SetGoal(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req setGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	goal, err := gc.goalRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save goal",
			"error":   err.Error(),
		})
		return
	}
	if goal == nil {
		goal = &models.WeeklyGoal{UserID: userID}
	}

	if req.TargetKm != nil {
		goal.TargetKm = req.TargetKm
	}
	if req.TargetRuns != nil {
		goal.TargetRuns = req.TargetRuns
	}
	if req.TargetPaceSecPerKm != nil {
		goal.TargetPaceSecPerKm = req.TargetPaceSecPerKm
	}
	if req.TargetMonthlyKm != nil {
		goal.TargetMonthlyKm = req.TargetMonthlyKm
	}

	if err := gc.goalRepo.Save(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal saved successfully",
		"data":    goal,
	})
}
