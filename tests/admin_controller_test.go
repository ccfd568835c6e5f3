package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"runlog/internal/controllers"
	"runlog/internal/middleware"
	"runlog/internal/models"
	"runlog/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func addAdminContext(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", "admin@example.com")
		c.Set("role", models.RoleAdmin)
		c.Next()
	}
}

func TestGetUsers(t *testing.T) {
	t.Run("lists users with run counts", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockRunRepo := new(mocks.MockRunRepository)

		alice := models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
		alice.ID = 1
		bob := models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}
		bob.ID = 2

		mockUserRepo.On("FindPage", "", 1, 20).Return([]models.User{alice, bob}, int64(2), nil)
		mockRunRepo.On("CountByUserID", uint(1)).Return(int64(14), nil)
		mockRunRepo.On("CountByUserID", uint(2)).Return(int64(0), nil)

		controller := controllers.NewAdminController(mockUserRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAdminContext(99), middleware.AdminMiddleware())
		router.GET("/admin/users", controller.GetUsers)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Total int64 `json:"total"`
				Users []struct {
					ID       uint   `json:"id"`
					Email    string `json:"email"`
					RunCount int64  `json:"run_count"`
				} `json:"users"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Data.Total)
		assert.Len(t, resp.Data.Users, 2)
		assert.Equal(t, int64(14), resp.Data.Users[0].RunCount)
		assert.NotContains(t, w.Body.String(), "password_hash")
	})

	t.Run("search is forwarded to the repository", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockUserRepo.On("FindPage", "alice", 1, 20).Return([]models.User{}, int64(0), nil)

		controller := controllers.NewAdminController(mockUserRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAdminContext(99), middleware.AdminMiddleware())
		router.GET("/admin/users", controller.GetUsers)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?search=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockRunRepo := new(mocks.MockRunRepository)

		controller := controllers.NewAdminController(mockUserRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAuthContext(1), middleware.AdminMiddleware())
		router.GET("/admin/users", controller.GetUsers)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUserRepo.AssertNotCalled(t, "FindPage")
	})
}

func TestGetUserDetail(t *testing.T) {
	t.Run("returns user with recent runs", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockRunRepo := new(mocks.MockRunRepository)

		alice := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
		alice.ID = 1
		mockUserRepo.On("FindByID", uint(1)).Return(alice, nil)
		mockRunRepo.On("FindRecentByUserID", uint(1), 20).Return([]models.Run{
			{ID: 5, UserID: 1, DistanceKm: 10, DurationSec: 3000},
		}, nil)

		controller := controllers.NewAdminController(mockUserRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAdminContext(99), middleware.AdminMiddleware())
		router.GET("/admin/users/:id", controller.GetUserDetail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				User struct {
					Email string `json:"email"`
				} `json:"user"`
				Runs []models.Run `json:"runs"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice@example.com", resp.Data.User.Email)
		assert.Len(t, resp.Data.Runs, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockRunRepo := new(mocks.MockRunRepository)
		mockUserRepo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

		controller := controllers.NewAdminController(mockUserRepo, mockRunRepo)
		router := setupTestRouter()
		router.Use(addAdminContext(99), middleware.AdminMiddleware())
		router.GET("/admin/users/:id", controller.GetUserDetail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users/42", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}
