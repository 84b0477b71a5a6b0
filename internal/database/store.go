package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// Store is the Postgres-backed ActivityStore. Every per-user mutation
// is a single SQL statement (conditional insert, guarded update or
// in-place increment) so concurrent requests for the same user cannot
// interleave a read-modify-write.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) FindStreak(ctx context.Context, userID string) (*model.StreakRecord, error) {
	var rec model.StreakRecord
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, current_streak, longest_streak, last_active_date
		FROM streaks
		WHERE user_id = $1
	`, userID).Scan(&rec.UserID, &rec.CurrentStreak, &rec.LongestStreak, &rec.LastActiveDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) InsertStreak(ctx context.Context, rec model.StreakRecord) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO streaks (user_id, current_streak, longest_streak, last_active_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, rec.UserID, rec.CurrentStreak, rec.LongestStreak, rec.LastActiveDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) UpdateStreakGuarded(ctx context.Context, rec model.StreakRecord, prevLastActive time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE streaks
		SET current_streak = $2, longest_streak = $3, last_active_date = $4
		WHERE user_id = $1 AND last_active_date = $5
	`, rec.UserID, rec.CurrentStreak, rec.LongestStreak, rec.LastActiveDate, prevLastActive)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) IncrementExp(ctx context.Context, userID string, amount int) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO exp_records (user_id, exp)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET exp = exp_records.exp + EXCLUDED.exp
		RETURNING exp
	`, userID, amount).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) FindExp(ctx context.Context, userID string) (int, error) {
	var exp int
	err := s.pool.QueryRow(ctx, `
		SELECT exp FROM exp_records WHERE user_id = $1
	`, userID).Scan(&exp)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return exp, nil
}

func (s *Store) IncrementWeeklyExp(ctx context.Context, userID string, amount int) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO leaderboard_points (user_id, weekly_exp)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET weekly_exp = leaderboard_points.weekly_exp + EXCLUDED.weekly_exp
	`, userID, amount)
	return err
}

func (s *Store) WeeklyLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		WITH ranked_users AS (
			SELECT
				lp.user_id,
				lp.weekly_exp,
				ROW_NUMBER() OVER (ORDER BY lp.weekly_exp DESC) AS rank
			FROM leaderboard_points lp
			WHERE lp.weekly_exp > 0
		)
		SELECT ru.user_id, u.full_name, ru.rank, ru.weekly_exp
		FROM ranked_users ru
		INNER JOIN users u ON ru.user_id = u.id
		ORDER BY ru.rank
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.Rank, &e.WeeklyExp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ResetWeeklyExp(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `UPDATE leaderboard_points SET weekly_exp = 0`)
	return err
}

func (s *Store) UpsertDailyActivity(ctx context.Context, userID string, day time.Time, didListen bool) error {
	// did_listen only ever flips to true; a later false never clears it.
	_, err := s.pool.Exec(ctx, `
		INSERT INTO daily_activities (user_id, activity_date, did_listen)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, activity_date)
		DO UPDATE SET did_listen = daily_activities.did_listen OR EXCLUDED.did_listen
	`, userID, day, didListen)
	return err
}

func (s *Store) FindDailyActivity(ctx context.Context, userID string, day time.Time) (*model.DailyActivity, error) {
	var act model.DailyActivity
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, activity_date, did_listen
		FROM daily_activities
		WHERE user_id = $1 AND activity_date = $2
	`, userID, day).Scan(&act.UserID, &act.Date, &act.DidListen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (s *Store) UsersNeedingReminder(ctx context.Context, dayStart time.Time) ([]model.ReminderTarget, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT u.email, u.full_name
		FROM users u
		WHERE u.reminder_enabled
		  AND NOT EXISTS (
			SELECT 1
			FROM daily_activities da
			WHERE da.user_id = u.id
			  AND da.activity_date >= $1
			  AND da.did_listen
		  )
		ORDER BY u.email
	`, dayStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []model.ReminderTarget
	for rows.Next() {
		var t model.ReminderTarget
		if err := rows.Scan(&t.Email, &t.FullName); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (s *Store) ListeningTotals(ctx context.Context, userID string) (model.ListeningTotals, error) {
	var totals model.ListeningTotals

	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM daily_activities
		WHERE user_id = $1 AND did_listen
	`, userID).Scan(&totals.DaysListened)
	if err != nil {
		return model.ListeningTotals{}, err
	}

	err = s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(correct_answers), 0),
			COALESCE(SUM(total_questions), 0)
		FROM listening_sessions
		WHERE user_id = $1 AND completed_at IS NOT NULL
	`, userID).Scan(&totals.SessionsCompleted, &totals.QuizCorrect, &totals.QuizAnswered)
	if err != nil {
		return model.ListeningTotals{}, err
	}

	return totals, nil
}
