package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"runlog/internal/controllers"
	"runlog/internal/models"
	"runlog/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetGoalProgress(t *testing.T) {
	t.Run("no goal configured", func(t *testing.T) {
		mockGoalRepo := new(mocks.MockGoalRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockGoalRepo.On("FindByUserID", uint(1)).Return(nil, nil)
		mockRunRepo.On("FindByUserIDAndDateSpan", uint(1), mock.Anything, mock.Anything).
			Return([]models.Run{}, nil)
		mockRunRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
			Return([]models.Run{}, nil)

		controller := controllers.NewGoalController(mockGoalRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1))
		router.GET("/goals", controller.GetGoalProgress)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Goal     *models.WeeklyGoal     `json:"goal"`
				Progress map[string]interface{} `json:"progress"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.Data.Goal)
		assert.Empty(t, resp.Data.Progress)
	})

	t.Run("only configured targets appear", func(t *testing.T) {
		target := 30.0
		goal := &models.WeeklyGoal{UserID: 1, TargetKm: &target}

		mockGoalRepo := new(mocks.MockGoalRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockGoalRepo.On("FindByUserID", uint(1)).Return(goal, nil)

		weekRuns := []models.Run{
			{ID: 1, UserID: 1, Date: time.Now().UTC(), DistanceKm: 12, DurationSec: 3600},
		}
		mockRunRepo.On("FindByUserIDAndDateSpan", uint(1), mock.Anything, mock.Anything).
			Return(weekRuns, nil)
		mockRunRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
			Return(weekRuns, nil)

		controller := controllers.NewGoalController(mockGoalRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1))
		router.GET("/goals", controller.GetGoalProgress)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Progress map[string]struct {
					Current         float64 `json:"current"`
					Target          float64 `json:"target"`
					PercentComplete float64 `json:"percent_complete"`
					Reached         bool    `json:"reached"`
				} `json:"progress"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		entry, ok := resp.Data.Progress["weekly_distance"]
		assert.True(t, ok)
		assert.InDelta(t, 12.0, entry.Current, 0.001)
		assert.InDelta(t, 30.0, entry.Target, 0.001)
		assert.InDelta(t, 40.0, entry.PercentComplete, 0.001)
		assert.False(t, entry.Reached)

		assert.NotContains(t, resp.Data.Progress, "weekly_runs")
		assert.NotContains(t, resp.Data.Progress, "pace")
		assert.NotContains(t, resp.Data.Progress, "monthly_distance")
	})
}

func TestSetGoal(t *testing.T) {
	t.Run("creates a goal row when none exists", func(t *testing.T) {
		mockGoalRepo := new(mocks.MockGoalRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockGoalRepo.On("FindByUserID", uint(1)).Return(nil, nil)

		var saved *models.WeeklyGoal
		mockGoalRepo.On("Save", mock.AnythingOfType("*models.WeeklyGoal")).Run(func(args mock.Arguments) {
			saved = args.Get(0).(*models.WeeklyGoal)
		}).Return(nil)

		controller := controllers.NewGoalController(mockGoalRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1))
		router.PUT("/goals", controller.SetGoal)

		body, _ := json.Marshal(map[string]interface{}{"target_km": 30, "target_runs": 4})
		req := httptest.NewRequest(http.MethodPut, "/goals", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Goal saved successfully")
		assert.NotNil(t, saved)
		assert.Equal(t, uint(1), saved.UserID)
		assert.NotNil(t, saved.TargetKm)
		assert.InDelta(t, 30.0, *saved.TargetKm, 0.001)
		assert.NotNil(t, saved.TargetRuns)
		assert.Equal(t, 4, *saved.TargetRuns)
		assert.Nil(t, saved.TargetPaceSecPerKm)
	})

	t.Run("partial update keeps absent targets", func(t *testing.T) {
		km := 25.0
		runs := 3
		existing := &models.WeeklyGoal{UserID: 1, TargetKm: &km, TargetRuns: &runs}

		mockGoalRepo := new(mocks.MockGoalRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockGoalRepo.On("FindByUserID", uint(1)).Return(existing, nil)

		var saved *models.WeeklyGoal
		mockGoalRepo.On("Save", mock.AnythingOfType("*models.WeeklyGoal")).Run(func(args mock.Arguments) {
			saved = args.Get(0).(*models.WeeklyGoal)
		}).Return(nil)

		controller := controllers.NewGoalController(mockGoalRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1))
		router.PUT("/goals", controller.SetGoal)

		body, _ := json.Marshal(map[string]interface{}{"target_km": 40})
		req := httptest.NewRequest(http.MethodPut, "/goals", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, saved)
		assert.InDelta(t, 40.0, *saved.TargetKm, 0.001)
		assert.NotNil(t, saved.TargetRuns)
		assert.Equal(t, 3, *saved.TargetRuns)
	})

	t.Run("rejects non-positive targets", func(t *testing.T) {
		mockGoalRepo := new(mocks.MockGoalRepository)
		mockRunRepo := new(mocks.MockRunRepository)

		controller := controllers.NewGoalController(mockGoalRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1))
		router.PUT("/goals", controller.SetGoal)

		body, _ := json.Marshal(map[string]interface{}{"target_km": -5})
		req := httptest.NewRequest(http.MethodPut, "/goals", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request data")
	})
}
