package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/engagement"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/logger"
)

// Scheduler owns the recurring engagement jobs: the daily reminder
// batch and the weekly leaderboard reset. Both run in the canonical
// timezone so day boundaries agree with the streak logic.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *engagement.Service
	sender    engagement.ReminderSender
	hour      int
}

func New(service *engagement.Service, sender engagement.ReminderSender, loc *time.Location, reminderHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		service:   service,
		sender:    sender,
		hour:      reminderHour,
	}
}

// Start registers the jobs and runs them asynchronously.
func (s *Scheduler) Start() {
	at := fmt.Sprintf("%02d:00", s.hour)
	s.scheduler.Every(1).Day().At(at).Do(s.runDailyReminders)
	s.scheduler.Every(1).Week().Monday().At("00:00").Do(s.resetWeeklyLeaderboard)
	s.scheduler.StartAsync()
	logger.Info("Scheduler started: reminders daily at %s, leaderboard reset Mondays", at)
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runDailyReminders() {
	report, err := s.service.RunDailyReminders(context.Background(), s.sender)
	if err != nil {
		logger.Error("daily reminder batch: %v", err)
		return
	}
	if len(report.Failed) > 0 {
		logger.Warning("daily reminders: %d eligible, %d sent, %d failed", report.Eligible, report.Sent, len(report.Failed))
		return
	}
	logger.Success("daily reminders: %d eligible, %d sent", report.Eligible, report.Sent)
}

func (s *Scheduler) resetWeeklyLeaderboard() {
	if err := s.service.ResetWeeklyLeaderboard(context.Background()); err != nil {
		logger.Error("weekly leaderboard reset: %v", err)
		return
	}
	logger.Success("weekly leaderboard reset")
}
