package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"arenahub-backend/internal/config"
	"arenahub-backend/internal/jobs"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/repository/postgres"
	"arenahub-backend/internal/scheduler"
	"arenahub-backend/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'flush-notifications', 'purge-read-notifications')")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ArenaHub Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// The runner has no live connections, so notifications are store-only here
	noteSvc := service.NewNotificationService(store.NotificationRepository, nil)

	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Notification: noteSvc}, cfg)

	// Run a single job and exit if requested
	if *runOnce != "" {
		switch *runOnce {
		case "flush-notifications":
			jobRunner.FlushPendingNotifications()
		case "purge-read-notifications":
			jobRunner.PurgeReadNotifications()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Job finished, exiting", "job", *runOnce)
		return
	}

	// Otherwise run the scheduler as a daemon
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
