package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/careercode/careercode-api/internal/auth"
	"github.com/careercode/careercode-api/internal/config"
	"github.com/careercode/careercode-api/internal/database"
	"github.com/careercode/careercode-api/internal/handlers"
	"github.com/careercode/careercode-api/internal/logger"
	"github.com/careercode/careercode-api/internal/middleware"
	"github.com/careercode/careercode-api/internal/repositories"
	"github.com/careercode/careercode-api/internal/services"
)

func main() {
	// 1. Environment: a local .env is optional, real deployments set vars
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer zl.Sync()

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	zl.Info("database connection established")

	// 3. Core services
	tokens := auth.NewService(cfg.JWTSecret, time.Hour)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	jobService := services.NewJobService(jobRepo)
	appService := services.NewApplicationService(appRepo, jobRepo, zl)

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(tokens, cfg.CookieSecure)
	jobHandler := handlers.NewJobHandler(jobService)
	appHandler := handlers.NewApplicationHandler(appService)

	// 5. Router, logging and CORS
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zl))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)

	r.POST("/jwt", authHandler.IssueToken)

	r.GET("/jobs", jobHandler.ListJobs)
	r.GET("/jobs/:id", jobHandler.GetJob)
	r.POST("/jobs", jobHandler.CreateJob)

	r.GET("/applications", middleware.RequireToken(tokens), appHandler.ListMine)
	r.GET("/applications/job/:job_id", appHandler.ListByJob)
	r.POST("/applications", appHandler.CreateApplication)
	r.PATCH("/applications/:id", appHandler.UpdateStatus)

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}
