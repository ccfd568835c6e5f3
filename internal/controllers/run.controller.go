package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"runlog/internal/calendarutil"
	"runlog/internal/models"
	"runlog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type RunController struct {
	runRepo repository.RunRepository
}

func NewRunController(runRepo repository.RunRepository) *RunController {
	return &RunController{runRepo: runRepo}
}

type runCreateRequest struct {
	Date        string  `json:"date" binding:"required"`
	DistanceKm  float64 `json:"distance_km" binding:"required,gt=0"`
	DurationSec int     `json:"duration_sec" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"omitempty,oneof=easy tempo interval long race strength"`
	RPE         *int    `json:"rpe" binding:"omitempty,min=1,max=10"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

type runUpdateRequest struct {
	Date        *string  `json:"date"`
	DistanceKm  *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	DurationSec *int     `json:"duration_sec" binding:"omitempty,gt=0"`
	Type        *string  `json:"type" binding:"omitempty,oneof=easy tempo interval long race strength"`
	RPE         *int     `json:"rpe" binding:"omitempty,min=1,max=10"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}

// CreateRun godoc
// @Summary Log a run
// @Description Create a run for the authenticated user
// @Tags runs
// @Accept json
// @Produce json
// @Param run body runCreateRequest true "Run data"
// @Success 201 {object} map[string]interface{} "Run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /runs [post]
func (rc *RunController) CreateRun(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req runCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := calendarutil.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must be YYYY-MM-DD or an RFC3339 timestamp",
		})
		return
	}

	runType := req.Type
	if runType == "" {
		runType = models.RunTypeEasy
	}

	run := models.Run{
		UserID:      userID,
		Date:        date,
		DistanceKm:  req.DistanceKm,
		DurationSec: req.DurationSec,
		Type:        runType,
		RPE:         req.RPE,
		Notes:       req.Notes,
	}
	if err := rc.runRepo.Create(&run); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create run",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Run created successfully",
		"data":    run,
	})
}

// ListRuns godoc
// @Summary List runs
// @Description Paged listing of the authenticated user's runs, newest first
// @Tags runs
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param type query string false "Run type filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (max 50)"
// @Success 200 {object} map[string]interface{} "Runs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Router /runs [get]
func (rc *RunController) ListRuns(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	filter := repository.RunFilter{Type: c.Query("type")}
	if filter.Type != "" && !models.IsValidRunType(filter.Type) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid query parameters",
			"error":   "unknown run type",
		})
		return
	}

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
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	filter.Page = clampInt(parseIntQuery(c, "page", 1), 1, 1<<30)
	filter.PageSize = clampInt(parseIntQuery(c, "pageSize", defaultPageSize), 1, maxPageSize)

	runs, total, err := rc.runRepo.FindPageByUserID(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve runs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Runs retrieved successfully",
		"data": gin.H{
			"page":     filter.Page,
			"pageSize": filter.PageSize,
			"total":    total,
			"runs":     runs,
		},
	})
}

// GetRunByID godoc
// @Summary Get a run by ID
// @Tags runs
// @Produce json
// @Param id path int true "Run ID"
// @Success 200 {object} map[string]interface{} "Run retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func (rc *RunController) GetRunByID(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid run ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	run, err := rc.runRepo.FindByIDAndUserID(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Run not found",
				"error":   "No run exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve run",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Run retrieved successfully",
		"data":    run,
	})
}

// UpdateRun godoc
// @Summary Update a run
// @Description Partially update a run owned by the authenticated user
// @Tags runs
// @Accept json
// @Produce json
// @Param id path int true "Run ID"
// @Param run body runUpdateRequest true "Run data"
// @Success 200 {object} map[string]interface{} "Run updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [put]
func (rc *RunController) UpdateRun(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid run ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req runUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	run, err := rc.runRepo.FindByIDAndUserID(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Run not found",
				"error":   "No run exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve run",
			"error":   err.Error(),
		})
		return
	}

	if req.Date != nil {
		date, err := calendarutil.ParseDate(*req.Date)
		if err != nil || date.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "date must be YYYY-MM-DD or an RFC3339 timestamp",
			})
			return
		}
		run.Date = date
	}
	if req.DistanceKm != nil {
		run.DistanceKm = *req.DistanceKm
	}
	if req.DurationSec != nil {
		run.DurationSec = *req.DurationSec
	}
	if req.Type != nil {
		run.Type = *req.Type
	}
	if req.RPE != nil {
		run.RPE = req.RPE
	}
	if req.Notes != nil {
		run.Notes = req.Notes
	}

	if err := rc.runRepo.Update(run); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update run",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Run updated successfully",
		"data":    run,
	})
}

// DeleteRun godoc
// @Summary Delete a run
// @Description Soft-delete a run owned by the authenticated user
// @Tags runs
// @Produce json
// @Param id path int true "Run ID"
// @Success 200 {object} map[string]interface{} "Run deleted successfully"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [delete]
func (rc *RunController) DeleteRun(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid run ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := rc.runRepo.Delete(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Run not found",
				"error":   "No run exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete run",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Run deleted successfully",
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
