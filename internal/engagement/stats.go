package engagement

import (
	"context"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// GetDashboardStats composes the read-only dashboard summary. Users
// with no engagement rows yet get the documented defaults (streak 0,
// level 1, exp 0) rather than an error. Performs no writes.
func (s *Service) GetDashboardStats(ctx context.Context, userID string) (model.StatsSummary, error) {
	if err := validateUserID(userID); err != nil {
		return model.StatsSummary{}, err
	}

	summary := model.StatsSummary{Level: 1}

	streak, err := s.store.FindStreak(ctx, userID)
	if err != nil {
		return model.StatsSummary{}, &PersistenceError{Op: "find streak", Err: err}
	}
	if streak != nil {
		summary.CurrentStreak = streak.CurrentStreak
		summary.LongestStreak = streak.LongestStreak
	}

	exp, err := s.store.FindExp(ctx, userID)
	if err != nil {
		return model.StatsSummary{}, &PersistenceError{Op: "find exp", Err: err}
	}
	summary.Exp = exp
	summary.Level = levelFor(exp)
	summary.CurrentLevelExp = exp % expPerLevel

	totals, err := s.store.ListeningTotals(ctx, userID)
	if err != nil {
		return model.StatsSummary{}, &PersistenceError{Op: "listening totals", Err: err}
	}
	summary.DaysListened = totals.DaysListened
	summary.SessionsCompleted = totals.SessionsCompleted
	if totals.QuizAnswered > 0 {
		summary.Accuracy = float64(totals.QuizCorrect) / float64(totals.QuizAnswered) * 100
	}

	return summary, nil
}

// WeeklyLeaderboard returns the top weekly XP earners.
func (s *Service) WeeklyLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.store.WeeklyLeaderboard(ctx, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "weekly leaderboard", Err: err}
	}
	return entries, nil
}

// ResetWeeklyLeaderboard zeroes every weekly snapshot. The scheduler
// calls this at the start of each week.
func (s *Service) ResetWeeklyLeaderboard(ctx context.Context) error {
	if err := s.store.ResetWeeklyExp(ctx); err != nil {
		return &PersistenceError{Op: "reset weekly exp", Err: err}
	}
	return nil
}
