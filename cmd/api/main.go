package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	_ "jobboard-backend/docs" // Important for Swagger
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/email"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/storage"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job board platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
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
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - interview emails disabled")
	}

	// 6. Validators (shared instance plus gin's binding engine)
	validate := validator.New()
	validation.RegisterValidators(validate)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(engine)
	}

	// 7. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiryHours)

	// 8. Setup Notifier and UseCases
	notifier := usecase.NewNotifier(notificationRepo, userRepo, emailService)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, notifier)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo, notifier)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, notifier)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, validate)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)

	// 9. Setup File Storage
	var store storage.Store
	if cfg.StorageDriver == "s3" {
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
	} else {
		store, err = storage.NewLocalStore(cfg.StorageLocalDir, cfg.StoragePublicBase)
		if err != nil {
			logger.Log.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
	}

	// 10. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		InterviewUC:    interviewUC,
		MessageUC:      messageUC,
		NotificationUC: notificationUC,
		ProfileUC:      profileUC,
		RecruiterUC:    recruiterUC,
		SavedJobUC:     savedJobUC,
		Tokens:         tokens,
		Store:          store,
		Redis:          redis.Client(),
		Config:         cfg,
	})

	// 12. Start Server
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
