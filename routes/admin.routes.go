package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController) {
	adminRoutes := router.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminRoutes.GET("/users", adminController.GetUsers)
		adminRoutes.GET("/users/:id", adminController.GetUserDetail)
	}
}
