package routes

import (
	"runlog/internal/controllers"
	"runlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(router *gin.Engine, statsController *controllers.StatsController) {
	statsRoutes := router.Group("/stats", middleware.AuthMiddleware())
	{
		statsRoutes.GET("/summary", statsController.GetSummary)
		statsRoutes.GET("/weekly", statsController.GetWeekly)
		statsRoutes.GET("/personal-bests", statsController.GetPersonalBests)
		statsRoutes.GET("/streak", statsController.GetStreak)
		statsRoutes.GET("/calendar", statsController.GetCalendar)
	}
}
