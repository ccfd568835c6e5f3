package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterStravaRoutes(router *gin.Engine, stravaController *controllers.StravaController) {
	stravaRoutes := router.Group("/integrations/strava")
	{
		// Connect and callback are browser navigations; they carry their own
		// token/state checks instead of the bearer middleware.
		stravaRoutes.GET("/connect", stravaController.Connect)
		stravaRoutes.GET("/callback", stravaController.Callback)

		stravaRoutes.GET("/status", middleware.AuthMiddleware(), stravaController.Status)
		stravaRoutes.POST("/import", middleware.AuthMiddleware(), stravaController.Import)
		stravaRoutes.DELETE("/disconnect", middleware.AuthMiddleware(), stravaController.Disconnect)
	}
}
