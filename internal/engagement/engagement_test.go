package engagement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var errInjected = errors.New("store unavailable")

// jst is the canonical zone pinned for tests. A fixed offset avoids
// depending on the host's tzdata.
var jst = time.FixedZone("JST", 9*60*60)

// newTestService wires a Service to a fresh in-memory store with the
// clock frozen at noon on 2026-08-20 JST.
func newTestService() (*Service, *memStore) {
	store := newMemStore()
	svc := NewService(store, jst)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 20, 12, 0, 0, 0, jst)
	}
	return svc, store
}

func newUserID() string {
	return uuid.NewString()
}

// day returns midnight JST n days before the frozen test day.
func day(daysAgo int) time.Time {
	return time.Date(2026, time.August, 20, 0, 0, 0, 0, jst).AddDate(0, 0, -daysAgo)
}
