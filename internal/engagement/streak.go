package engagement

import (
	"context"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// UpdateStreak records a qualifying activity for today and returns the
// post-update record. Calling it again on the same calendar day is a
// no-op. Concurrent calls for the same user are serialized through the
// store: creation races on a conditional insert, updates on a guarded
// write keyed to the previous last-active date.
func (s *Service) UpdateStreak(ctx context.Context, userID string) (model.StreakRecord, error) {
	if err := validateUserID(userID); err != nil {
		return model.StreakRecord{}, err
	}

	today := s.today()

	for attempt := 0; attempt < maxStreakRetries; attempt++ {
		rec, err := s.store.FindStreak(ctx, userID)
		if err != nil {
			return model.StreakRecord{}, &PersistenceError{Op: "find streak", Err: err}
		}

		if rec == nil {
			fresh := model.StreakRecord{
				UserID:         userID,
				CurrentStreak:  1,
				LongestStreak:  1,
				LastActiveDate: today,
			}
			inserted, err := s.store.InsertStreak(ctx, fresh)
			if err != nil {
				return model.StreakRecord{}, &PersistenceError{Op: "insert streak", Err: err}
			}
			if inserted {
				return fresh, nil
			}
			// Lost the creation race; re-read and evaluate normally.
			continue
		}

		gap := daysBetween(rec.LastActiveDate, today, s.loc)
		if gap <= 0 {
			// Same day, or a last-active date in the future (clock
			// skew). Never decrement, never move the date backward.
			return *rec, nil
		}

		updated := *rec
		updated.LastActiveDate = today
		if gap == 1 {
			updated.CurrentStreak = rec.CurrentStreak + 1
		} else {
			updated.CurrentStreak = 1
		}
		if updated.CurrentStreak > updated.LongestStreak {
			updated.LongestStreak = updated.CurrentStreak
		}

		swapped, err := s.store.UpdateStreakGuarded(ctx, updated, rec.LastActiveDate)
		if err != nil {
			return model.StreakRecord{}, &PersistenceError{Op: "update streak", Err: err}
		}
		if swapped {
			return updated, nil
		}
	}

	return model.StreakRecord{}, &PersistenceError{Op: "update streak", Err: ErrRetryExhausted}
}
