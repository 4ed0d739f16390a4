package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // Important for Swagger
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/metrics"
	"go-jobportal-backend/internal/notification"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/email"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Job Portal API
// @version         1.0
// @description     Job board backend: employers post jobs, candidates apply with resumes, and interviews get scheduled.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional, rate limiting)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Resume Storage
	var resumes storage.ResumeStore
	switch cfg.StorageBackend {
	case "s3":
		s3Client, err := storage.NewS3Client(context.Background(), cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
		if err != nil {
			logger.Log.Error("Failed to configure S3 storage", "error", err)
			os.Exit(1)
		}
		resumes = storage.NewS3Store(s3Client, cfg.S3Bucket)
	default:
		resumes = storage.NewLocalStore(cfg.UploadDir)
	}

	// 6. Setup Metrics and Notifications
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	mailer := email.NewSMTPMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - notification emails will be skipped")
	}
	dispatcher := notification.NewDispatcher(mailer, collector)

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)

	// 8. Setup UseCases
	validate := validator.New()
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	authUC := usecase.NewAuthUsecase(userRepo, dispatcher, validate, cfg.JWTSecret, tokenTTL)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, userRepo, cfg.JobsPageSize)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo, resumes, dispatcher)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo, jobRepo, userRepo, dispatcher, validate)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		Metrics:       collector,
		Gatherer:      registry,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
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
