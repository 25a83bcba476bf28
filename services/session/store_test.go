package session

import (
	"sync"
	"testing"
	"time"

	"flywise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := NewStore(DefaultTTL)

	first := store.GetOrCreate("+911234567890")
	second := store.GetOrCreate("911234567890")

	assert.Same(t, first, second, "normalized phone keys must resolve to one session")
	assert.Equal(t, models.StateGreeting, first.State)
	assert.Equal(t, 1, store.Count())
}

func TestExpiredSessionIsDiscardedNotReused(t *testing.T) {
	store := NewStore(50 * time.Millisecond)

	sess := store.GetOrCreate("15550001111")
	sess.Data.DepartureDate = "2026-09-10"
	sess.LastActivity = time.Now().Add(-time.Minute)

	fresh := store.GetOrCreate("15550001111")
	require.NotSame(t, sess, fresh)
	assert.Empty(t, fresh.Data.DepartureDate, "expired session slot data must not survive")
	assert.Equal(t, models.StateGreeting, fresh.State)
}

func TestReset(t *testing.T) {
	store := NewStore(DefaultTTL)
	store.GetOrCreate("15550001111")
	require.Equal(t, 1, store.Count())

	store.Reset("+1 555 000 1111")
	assert.Equal(t, 0, store.Count())
}

func TestSweepExpiredRemovesOnlyStale(t *testing.T) {
	store := NewStore(time.Minute)

	stale := store.GetOrCreate("15550001111")
	stale.LastActivity = time.Now().Add(-2 * time.Minute)
	store.GetOrCreate("15550002222")

	removed := store.SweepExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Count())

	_, ok := store.Get("15550002222")
	assert.True(t, ok)
}

func TestListActiveExcludesExpired(t *testing.T) {
	store := NewStore(time.Minute)
	stale := store.GetOrCreate("15550001111")
	stale.LastActivity = time.Now().Add(-2 * time.Minute)
	store.GetOrCreate("15550002222")

	active := store.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, "15550002222", active[0].PhoneNumber)
}

func TestTurnLockSerializesSameUser(t *testing.T) {
	store := NewStore(DefaultTTL)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.TurnLock("15550001111")
			defer store.TurnUnlock("15550001111")
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, order, 10, "all turns must complete without deadlock")
}

func TestSweepLeavesTurnLocksUsable(t *testing.T) {
	store := NewStore(time.Minute)

	sess := store.GetOrCreate("15550001111")
	store.TurnLock("15550001111")
	sess.LastActivity = time.Now().Add(-2 * time.Minute)
	store.SweepExpired()
	store.TurnUnlock("15550001111")

	// Lock must still function after its session was swept.
	store.TurnLock("15550001111")
	store.TurnUnlock("15550001111")
}

func TestTouchIsMonotonic(t *testing.T) {
	sess := models.NewConversationSession("15550001111")
	before := sess.LastActivity
	sess.Touch()
	assert.False(t, sess.LastActivity.Before(before))
}
