package engagement

import (
	"context"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// AddXP credits amount experience points to the user and reports the
// resulting level. The increment is a single atomic store operation,
// so concurrent awards for the same user never lose updates. The
// weekly leaderboard snapshot is bumped by the same amount.
func (s *Service) AddXP(ctx context.Context, userID string, amount int) (model.XPResult, error) {
	if err := validateUserID(userID); err != nil {
		return model.XPResult{}, err
	}
	if amount <= 0 {
		return model.XPResult{}, &ValidationError{Field: "amount", Reason: "must be a positive integer"}
	}

	newTotal, err := s.store.IncrementExp(ctx, userID, amount)
	if err != nil {
		return model.XPResult{}, &PersistenceError{Op: "increment exp", Err: err}
	}

	if err := s.store.IncrementWeeklyExp(ctx, userID, amount); err != nil {
		return model.XPResult{}, &PersistenceError{Op: "increment weekly exp", Err: err}
	}

	oldLevel := levelFor(newTotal - amount)
	newLevel := levelFor(newTotal)

	return model.XPResult{
		TotalExp:        newTotal,
		Level:           newLevel,
		XPGained:        amount,
		IsLevelUp:       newLevel > oldLevel,
		CurrentLevelExp: newTotal % expPerLevel,
		NextLevelExp:    expPerLevel,
	}, nil
}
