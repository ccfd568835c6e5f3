package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRunRoutes(router *gin.Engine, runController *controllers.RunController) {
	runRoutes := router.Group("/runs", middleware.AuthMiddleware())
	{
		runRoutes.POST("", runController.CreateRun)
		runRoutes.GET("", runController.ListRuns)
		runRoutes.GET("/:id", runController.GetRunByID)
		runRoutes.PUT("/:id", runController.UpdateRun)
		runRoutes.DELETE("/:id", runController.DeleteRun)
	}
}
