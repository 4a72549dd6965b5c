package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "arenahub-backend/internal/api/http"
	"arenahub-backend/internal/api/ws"
	"arenahub-backend/internal/config"
	"arenahub-backend/internal/jobs"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/repository/postgres"
	"arenahub-backend/internal/scheduler"
	"arenahub-backend/internal/security"
	"arenahub-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ArenaHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema
	if err := postgres.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Push Hub
	hub := ws.NewHub()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	noteSvc := service.NewNotificationService(store.NotificationRepository, hub)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	walletSvc := service.NewWalletService(
		store.WalletRepository,
		store.MoneyRequestRepository,
		store.TeamRepository,
		store.UserRepository,
		noteSvc,
		emailSvc,
	)
	friendSvc := service.NewFriendService(
		store.FriendshipRepository,
		store.UserRepository,
		noteSvc,
		emailSvc,
	)
	messageSvc := service.NewMessageService(store.MessageRepository, store.UserRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Notification: noteSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Initialize Router
	router := httpapi.NewRouter(tokenManager, httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Wallet:       httpapi.NewWalletHandler(walletSvc),
		Friend:       httpapi.NewFriendHandler(friendSvc),
		Notification: httpapi.NewNotificationHandler(noteSvc),
		Message:      httpapi.NewMessageHandler(messageSvc),
		WS:           ws.Handler(hub),
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
