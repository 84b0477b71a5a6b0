package engagement

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSessionXP is awarded for a completed listening session
	// when the caller does not specify an amount.
	DefaultSessionXP = 20

	// expPerLevel is the size of every level bucket.
	expPerLevel = 100

	// maxStreakRetries bounds the compare-and-set loop in UpdateStreak.
	maxStreakRetries = 3
)

// Service exposes the engagement operations. It is stateless apart
// from its injected dependencies; all durable state lives in the store.
type Service struct {
	store ActivityStore
	loc   *time.Location
	now   func() time.Time
}

func NewService(store ActivityStore, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// today is the current calendar day in the canonical timezone.
func (s *Service) today() time.Time {
	return dayOf(s.now(), s.loc)
}

// levelFor derives the level from lifetime XP.
func levelFor(exp int) int {
	return exp/expPerLevel + 1
}

func validateUserID(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return &ValidationError{Field: "userId", Reason: "must be a UUID"}
	}
	return nil
}
