package engagement

import (
	"context"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// ListeningCompleteResult combines the engagement effects of one
// finished listening session.
type ListeningCompleteResult struct {
	Streak model.StreakRecord `json:"streak"`
	XP     model.XPResult     `json:"xp"`
}

// CompleteListening is the entry point for the "finished a session"
// user action: it marks today's daily activity, then updates the
// streak and credits XP. Streak and XP are independent counters; the
// daily-activity mark is what the reminder batch reads.
func (s *Service) CompleteListening(ctx context.Context, userID string, xp int) (ListeningCompleteResult, error) {
	if err := validateUserID(userID); err != nil {
		return ListeningCompleteResult{}, err
	}
	if xp <= 0 {
		xp = DefaultSessionXP
	}

	if err := s.store.UpsertDailyActivity(ctx, userID, s.today(), true); err != nil {
		return ListeningCompleteResult{}, &PersistenceError{Op: "record daily activity", Err: err}
	}

	streak, err := s.UpdateStreak(ctx, userID)
	if err != nil {
		return ListeningCompleteResult{}, err
	}

	result, err := s.AddXP(ctx, userID, xp)
	if err != nil {
		return ListeningCompleteResult{}, err
	}

	return ListeningCompleteResult{Streak: streak, XP: result}, nil
}
