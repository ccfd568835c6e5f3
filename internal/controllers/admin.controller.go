package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"runlog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	adminDefaultPageSize = 20
	adminMaxPageSize     = 100

	adminRecentRunCount = 20
)

type AdminController struct {
	userRepo repository.UserRepository
	runRepo  repository.RunRepository
}

func NewAdminController(userRepo repository.UserRepository, runRepo repository.RunRepository) *AdminController {
	return &AdminController{userRepo: userRepo, runRepo: runRepo}
}

// GetUsers godoc
// @Summary List users
// @Description Paged user listing with optional name/email search (admin only)
// @Tags admin
// @Produce json
// @Param search query string false "Name or email fragment"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Router /admin/users [get]
func (ac *AdminController) GetUsers(c *gin.Context) {
	page := clampInt(parseIntQuery(c, "page", 1), 1, 1<<30)
	pageSize := clampInt(parseIntQuery(c, "pageSize", adminDefaultPageSize), 1, adminMaxPageSize)
	search := c.Query("search")

	users, total, err := ac.userRepo.FindPage(search, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users",
			"error":   err.Error(),
		})
		return
	}

	rows := make([]gin.H, 0, len(users))
	for i := range users {
		runCount, err := ac.runRepo.CountByUserID(users[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve users",
				"error":   err.Error(),
			})
			return
		}
		rows = append(rows, gin.H{
			"id":         users[i].ID,
			"name":       users[i].Name,
			"email":      users[i].Email,
			"role":       users[i].Role,
			"created_at": users[i].CreatedAt,
			"run_count":  runCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data": gin.H{
			"page":     page,
			"pageSize": pageSize,
			"total":    total,
			"users":    rows,
		},
	})
}

// GetUserDetail godoc
// @Summary Get a user with their recent runs
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /admin/users/{id} [get]
func (ac *AdminController) GetUserDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := ac.userRepo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve user",
			"error":   err.Error(),
		})
		return
	}

	runs, err := ac.runRepo.FindRecentByUserID(user.ID, adminRecentRunCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve user runs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data": gin.H{
			"user": userResponse(user),
			"runs": runs,
		},
	})
}
