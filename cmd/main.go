package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"runlog/database"
	"runlog/internal/controllers"
	"runlog/internal/importer"
	"runlog/internal/repository"
	"runlog/internal/strava"
	"runlog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	runRepo := repository.NewRunRepository(database.DB)
	goalRepo := repository.NewGoalRepository(database.DB)
	stravaAccountRepo := repository.NewStravaAccountRepository(database.DB)

	stravaClient := strava.NewClient(
		os.Getenv("STRAVA_CLIENT_ID"),
		os.Getenv("STRAVA_CLIENT_SECRET"),
	)
	runImporter := importer.New(runRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	userController := controllers.NewUserController(userRepo)
	runController := controllers.NewRunController(runRepo)
	statsController := controllers.NewStatsController(runRepo)
	goalController := controllers.NewGoalController(goalRepo, runRepo)
	importController := controllers.NewImportController(runImporter)
	stravaController := controllers.NewStravaController(stravaAccountRepo, runImporter, stravaClient)
	adminController := controllers.NewAdminController(userRepo, runRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "RunLog API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterRunRoutes(router, runController)
	routes.RegisterStatsRoutes(router, statsController)
	routes.RegisterGoalRoutes(router, goalController)
	routes.RegisterImportRoutes(router, importController)
	routes.RegisterStravaRoutes(router, stravaController)
	routes.RegisterAdminRoutes(router, adminController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("RunLog API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
