package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users", middleware.AuthMiddleware())
	{
		userRoutes.PUT("/me", userController.UpdateProfile)
		userRoutes.PUT("/me/password", userController.ChangePassword)
	}
}
