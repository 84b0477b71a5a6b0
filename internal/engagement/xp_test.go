package engagement

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// TestLevelFormula checks level derivation over the bucket boundaries.
func TestLevelFormula(t *testing.T) {
	tcs := []struct {
		exp  int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{110, 2},
		{250, 3},
		{1000, 11},
	}
	for _, tc := range tcs {
		if got := levelFor(tc.exp); got != tc.want {
			t.Fatalf("levelFor(%d) = %d, want %d", tc.exp, got, tc.want)
		}
	}
}

// TestAddXPLevelUp ensures crossing a 100-point boundary reports a
// level-up with the right remainder.
func TestAddXPLevelUp(t *testing.T) {
	svc, store := newTestService()
	userID := newUserID()
	store.exp[userID] = 90

	result, err := svc.AddXP(context.Background(), userID, 20)
	if err != nil {
		t.Fatalf("AddXP returned error: %v", err)
	}
	if result.TotalExp != 110 || result.Level != 2 {
		t.Fatalf("result = %d exp / level %d, want 110 / 2", result.TotalExp, result.Level)
	}
	if !result.IsLevelUp {
		t.Fatal("expected isLevelUp = true")
	}
	if result.CurrentLevelExp != 10 || result.NextLevelExp != 100 {
		t.Fatalf("level progress = %d/%d, want 10/100", result.CurrentLevelExp, result.NextLevelExp)
	}
}

// TestAddXPNoLevelUp ensures staying inside a bucket does not report a
// level-up.
func TestAddXPNoLevelUp(t *testing.T) {
	svc, _ := newTestService()
	userID := newUserID()

	result, err := svc.AddXP(context.Background(), userID, 50)
	if err != nil {
		t.Fatalf("AddXP returned error: %v", err)
	}
	if result.TotalExp != 50 || result.Level != 1 || result.IsLevelUp {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// TestAddXPExactBoundary ensures landing exactly on a boundary levels
// up with zero progress into the new bucket.
func TestAddXPExactBoundary(t *testing.T) {
	svc, store := newTestService()
	userID := newUserID()
	store.exp[userID] = 70

	result, err := svc.AddXP(context.Background(), userID, 30)
	if err != nil {
		t.Fatalf("AddXP returned error: %v", err)
	}
	if result.Level != 2 || !result.IsLevelUp || result.CurrentLevelExp != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// TestAddXPRejectsNonPositiveAmount ensures zero and negative awards
// are validation failures.
func TestAddXPRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newTestService()
	userID := newUserID()

	for _, amount := range []int{0, -5} {
		_, err := svc.AddXP(context.Background(), userID, amount)
		if !IsValidation(err) {
			t.Fatalf("AddXP(%d) error = %v, want ValidationError", amount, err)
		}
	}
}

// TestAddXPRejectsMalformedUserID ensures a non-UUID id never reaches
// the store.
func TestAddXPRejectsMalformedUserID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddXP(context.Background(), "user-42", 10)
	if !IsValidation(err) {
		t.Fatalf("AddXP error = %v, want ValidationError", err)
	}
}

// TestAddXPBumpsWeeklyLeaderboard ensures the rolling snapshot moves
// with every award.
func TestAddXPBumpsWeeklyLeaderboard(t *testing.T) {
	svc, store := newTestService()
	userID := newUserID()

	if _, err := svc.AddXP(context.Background(), userID, 30); err != nil {
		t.Fatalf("AddXP returned error: %v", err)
	}
	if _, err := svc.AddXP(context.Background(), userID, 15); err != nil {
		t.Fatalf("AddXP returned error: %v", err)
	}
	if got := store.weekly[userID]; got != 45 {
		t.Fatalf("weekly exp = %d, want 45", got)
	}
}

// TestAddXPStoreFailurePropagates ensures a failed increment surfaces
// as a PersistenceError.
func TestAddXPStoreFailurePropagates(t *testing.T) {
	svc, store := newTestService()
	store.failOp = "IncrementExp"

	_, err := svc.AddXP(context.Background(), newUserID(), 10)
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("AddXP error = %T (%v), want *PersistenceError", err, err)
	}
}

// TestAddXPConcurrentAwards hammers one user from many goroutines and
// checks no increment is lost.
func TestAddXPConcurrentAwards(t *testing.T) {
	svc, store := newTestService()
	userID := newUserID()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AddXP(context.Background(), userID, 10); err != nil {
				t.Errorf("AddXP returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := store.exp[userID]; got != workers*10 {
		t.Fatalf("total exp = %d, want %d", got, workers*10)
	}
	if got := store.weekly[userID]; got != workers*10 {
		t.Fatalf("weekly exp = %d, want %d", got, workers*10)
	}
}
