package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a job board: users, candidates, companies, jobs and applications.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; rate limiting falls back to in-memory without it.
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting degrades to in-memory", "error", err)
		}
		defer redis.Close()
	}

	presigner, err := storage.NewPresignClient(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
	})
	if err != nil {
		logger.Log.Error("Failed to configure S3 presigner", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewJobApplicationRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// Usecases
	userUC := usecase.NewUserUsecase(userRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo, txManager)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	applicationUC := usecase.NewJobApplicationUsecase(applicationRepo, jobRepo, candidateRepo, txManager)

	router := v1.NewRouter(v1.RouterDeps{
		UserUC:        userUC,
		CandidateUC:   candidateUC,
		CompanyUC:     companyUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Presigner:     presigner,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
