package engagement

import (
	"context"
	"time"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// ActivityStore is the single source of truth for engagement state.
// The Postgres implementation lives in internal/database; tests use an
// in-memory double. Find* methods return (nil, nil) style absences
// rather than errors, because a missing record is a normal state here.
type ActivityStore interface {
	// FindStreak returns nil when the user has no streak row yet.
	FindStreak(ctx context.Context, userID string) (*model.StreakRecord, error)
	// InsertStreak creates the row only if none exists. Returns false
	// when a concurrent insert won the race.
	InsertStreak(ctx context.Context, rec model.StreakRecord) (bool, error)
	// UpdateStreakGuarded applies rec only while last_active_date still
	// equals prevLastActive. Returns false on conflict.
	UpdateStreakGuarded(ctx context.Context, rec model.StreakRecord, prevLastActive time.Time) (bool, error)

	// IncrementExp atomically adds amount to the user's lifetime XP,
	// creating the row at zero first if needed, and returns the new total.
	IncrementExp(ctx context.Context, userID string, amount int) (int, error)
	// FindExp returns 0 for users with no XP row.
	FindExp(ctx context.Context, userID string) (int, error)

	// IncrementWeeklyExp bumps the rolling leaderboard snapshot.
	IncrementWeeklyExp(ctx context.Context, userID string, amount int) error
	WeeklyLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	ResetWeeklyExp(ctx context.Context) error

	// UpsertDailyActivity records a qualifying activity for day. A
	// didListen=true mark is never downgraded by a later false.
	UpsertDailyActivity(ctx context.Context, userID string, day time.Time, didListen bool) error
	FindDailyActivity(ctx context.Context, userID string, day time.Time) (*model.DailyActivity, error)

	// UsersNeedingReminder lists users with no didListen activity on or
	// after dayStart.
	UsersNeedingReminder(ctx context.Context, dayStart time.Time) ([]model.ReminderTarget, error)

	// ListeningTotals aggregates history for the dashboard.
	ListeningTotals(ctx context.Context, userID string) (model.ListeningTotals, error)
}
