package main

import (
	"net/http"
	"os"
	"time"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/api"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/config"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/database"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/engagement"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/handler"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/logger"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/mailer"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/scheduler"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// One canonical timezone for every day-boundary comparison.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("Invalid timezone %q: %v", cfg.Timezone, err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	pool, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := database.NewStore(pool)
	service := engagement.NewService(store, loc)

	var sender engagement.ReminderSender = mailer.LogSender{}
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(cfg)
	} else {
		logger.Warning("SMTP_HOST not set, reminders will only be logged")
	}

	// Recurring jobs: daily reminders, weekly leaderboard reset.
	jobs := scheduler.New(service, sender, loc, cfg.ReminderHour)
	jobs.Start()
	defer jobs.Stop()

	// Initialize routes
	router := api.SetupRouter(handler.New(service, sender))

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
