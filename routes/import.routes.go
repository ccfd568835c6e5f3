package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterImportRoutes(router *gin.Engine, importController *controllers.ImportController) {
	importRoutes := router.Group("/import", middleware.AuthMiddleware())
	{
		importRoutes.POST("/gpx", importController.ImportGPX)
	}
}
