package engagement

import (
	"context"
	"sync"
	"time"

	model "github.com/manhnd52/japanese-listening-trainer-sub001/internal/models"
)

// memStore is the in-memory ActivityStore double. The mutex gives it
// the same atomicity guarantees the Postgres store gets from single
// SQL statements, so the concurrency tests are meaningful.
type memStore struct {
	mu      sync.Mutex
	streaks map[string]model.StreakRecord
	exp     map[string]int
	weekly  map[string]int
	daily   map[string]model.DailyActivity
	users   []memUser
	totals  map[string]model.ListeningTotals

	// failOp makes the named operation return errInjected.
	failOp string
	// conflicts forces UpdateStreakGuarded to report a lost race n times.
	conflicts int
	// stealInsert makes the next InsertStreak lose its race: the row
	// appears (as if a concurrent request created it) but the call
	// reports false.
	stealInsert bool
}

type memUser struct {
	id       string
	email    string
	fullname string
}

func newMemStore() *memStore {
	return &memStore{
		streaks: make(map[string]model.StreakRecord),
		exp:     make(map[string]int),
		weekly:  make(map[string]int),
		daily:   make(map[string]model.DailyActivity),
		totals:  make(map[string]model.ListeningTotals),
	}
}

func dailyKey(userID string, day time.Time) string {
	return userID + "|" + day.Format("2006-01-02")
}

func (m *memStore) injected(op string) error {
	if m.failOp == op {
		return errInjected
	}
	return nil
}

func (m *memStore) FindStreak(_ context.Context, userID string) (*model.StreakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("FindStreak"); err != nil {
		return nil, err
	}
	rec, ok := m.streaks[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) InsertStreak(_ context.Context, rec model.StreakRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("InsertStreak"); err != nil {
		return false, err
	}
	if m.stealInsert {
		m.stealInsert = false
		m.streaks[rec.UserID] = rec
		return false, nil
	}
	if _, ok := m.streaks[rec.UserID]; ok {
		return false, nil
	}
	m.streaks[rec.UserID] = rec
	return true, nil
}

func (m *memStore) UpdateStreakGuarded(_ context.Context, rec model.StreakRecord, prevLastActive time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("UpdateStreakGuarded"); err != nil {
		return false, err
	}
	if m.conflicts > 0 {
		m.conflicts--
		return false, nil
	}
	current, ok := m.streaks[rec.UserID]
	if !ok || !current.LastActiveDate.Equal(prevLastActive) {
		return false, nil
	}
	m.streaks[rec.UserID] = rec
	return true, nil
}

func (m *memStore) IncrementExp(_ context.Context, userID string, amount int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("IncrementExp"); err != nil {
		return 0, err
	}
	m.exp[userID] += amount
	return m.exp[userID], nil
}

func (m *memStore) FindExp(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("FindExp"); err != nil {
		return 0, err
	}
	return m.exp[userID], nil
}

func (m *memStore) IncrementWeeklyExp(_ context.Context, userID string, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("IncrementWeeklyExp"); err != nil {
		return err
	}
	m.weekly[userID] += amount
	return nil
}

func (m *memStore) WeeklyLeaderboard(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("WeeklyLeaderboard"); err != nil {
		return nil, err
	}
	var entries []model.LeaderboardEntry
	for id, exp := range m.weekly {
		entries = append(entries, model.LeaderboardEntry{UserID: id, WeeklyExp: exp})
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *memStore) ResetWeeklyExp(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("ResetWeeklyExp"); err != nil {
		return err
	}
	for id := range m.weekly {
		m.weekly[id] = 0
	}
	return nil
}

func (m *memStore) UpsertDailyActivity(_ context.Context, userID string, day time.Time, didListen bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("UpsertDailyActivity"); err != nil {
		return err
	}
	key := dailyKey(userID, day)
	existing, ok := m.daily[key]
	if ok {
		existing.DidListen = existing.DidListen || didListen
		m.daily[key] = existing
		return nil
	}
	m.daily[key] = model.DailyActivity{UserID: userID, Date: day, DidListen: didListen}
	return nil
}

func (m *memStore) FindDailyActivity(_ context.Context, userID string, day time.Time) (*model.DailyActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("FindDailyActivity"); err != nil {
		return nil, err
	}
	act, ok := m.daily[dailyKey(userID, day)]
	if !ok {
		return nil, nil
	}
	return &act, nil
}

func (m *memStore) UsersNeedingReminder(_ context.Context, dayStart time.Time) ([]model.ReminderTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("UsersNeedingReminder"); err != nil {
		return nil, err
	}
	var targets []model.ReminderTarget
	for _, u := range m.users {
		active := false
		for _, act := range m.daily {
			if act.UserID == u.id && act.DidListen && !act.Date.Before(dayStart) {
				active = true
				break
			}
		}
		if !active {
			targets = append(targets, model.ReminderTarget{Email: u.email, FullName: u.fullname})
		}
	}
	return targets, nil
}

func (m *memStore) ListeningTotals(_ context.Context, userID string) (model.ListeningTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("ListeningTotals"); err != nil {
		return model.ListeningTotals{}, err
	}
	return m.totals[userID], nil
}
