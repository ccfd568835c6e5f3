package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController) {
	goalRoutes := router.Group("/goals", middleware.AuthMiddleware())
	{
		goalRoutes.GET("", goalController.GetGoalProgress)
		goalRoutes.PUT("", goalController.SetGoal)
	}
}
