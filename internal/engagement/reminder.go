package engagement

import (
	"context"
	"time"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/logger"
	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// ReminderSender delivers one reminder. Delivery failure is reported
// as false, never as a panic or error: transport mechanics live behind
// this interface.
type ReminderSender interface {
	Send(email, fullname string) bool
}

// BatchReport summarizes one daily reminder run.
type BatchReport struct {
	Eligible int      `json:"eligible"`
	Sent     int      `json:"sent"`
	Failed   []string `json:"failed,omitempty"`
}

// CollectUsersNeedingReminder lists users with no qualifying activity
// on or after the start of asOf's day in the canonical timezone. The
// result is a one-shot snapshot: re-invocation re-queries from scratch.
func (s *Service) CollectUsersNeedingReminder(ctx context.Context, asOf time.Time) ([]model.ReminderTarget, error) {
	dayStart := dayOf(asOf, s.loc)
	targets, err := s.store.UsersNeedingReminder(ctx, dayStart)
	if err != nil {
		return nil, &PersistenceError{Op: "query reminder targets", Err: err}
	}
	return targets, nil
}

// RunDailyReminders sends today's reminders in a single pass. A failed
// send is logged and collected but never aborts the remaining sends;
// the only fatal condition is the initial eligibility query failing.
func (s *Service) RunDailyReminders(ctx context.Context, sender ReminderSender) (BatchReport, error) {
	targets, err := s.CollectUsersNeedingReminder(ctx, s.now())
	if err != nil {
		return BatchReport{}, err
	}

	report := BatchReport{Eligible: len(targets)}
	for _, t := range targets {
		if sender.Send(t.Email, t.FullName) {
			report.Sent++
			continue
		}
		logger.Warning("reminder to %s failed", t.Email)
		report.Failed = append(report.Failed, t.Email)
	}
	return report, nil
}
