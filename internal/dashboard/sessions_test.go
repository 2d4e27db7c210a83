package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClockedStore(capacity int) (*SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	st := NewSessionStore(capacity)
	st.nowFn = clock.Now
	return st, clock
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	st, _ := newClockedStore(2)

	a := st.Create(filter.Selection{})
	b := st.Create(filter.Selection{})

	// Touch a so b becomes the oldest.
	_, err := st.Get(a.ID)
	require.NoError(t, err)

	c := st.Create(filter.Selection{})
	require.Equal(t, 2, st.Len())

	_, err = st.Get(b.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(a.ID)
	require.NoError(t, err)
	_, err = st.Get(c.ID)
	require.NoError(t, err)
}

func TestSessionStore_GetTouchesSession(t *testing.T) {
	st, clock := newClockedStore(4)

	sess := st.Create(filter.Selection{})
	created := sess.LastAccess()

	clock.Advance(5 * time.Minute)
	got, err := st.Get(sess.ID)
	require.NoError(t, err)
	require.Equal(t, created.Add(5*time.Minute), got.LastAccess())
	require.Equal(t, created, got.CreatedAt)
}

func TestSessionStore_Delete(t *testing.T) {
	st, _ := newClockedStore(4)

	sess := st.Create(filter.Selection{})
	require.NoError(t, st.Delete(sess.ID))
	require.ErrorIs(t, st.Delete(sess.ID), ErrSessionNotFound)
	require.Equal(t, 0, st.Len())
}

func TestSessionStore_EvictIdle(t *testing.T) {
	st, clock := newClockedStore(10)

	stale := st.Create(filter.Selection{})
	clock.Advance(20 * time.Minute)
	fresh := st.Create(filter.Selection{})
	clock.Advance(20 * time.Minute)

	evicted := st.EvictIdle(clock.Now().Add(-30 * time.Minute))
	require.Equal(t, 1, evicted)

	_, err := st.Get(stale.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(fresh.ID)
	require.NoError(t, err)
}

func TestSession_SelectionIsACopy(t *testing.T) {
	st, _ := newClockedStore(1)
	sess := st.Create(filter.Selection{Countries: []string{"UK"}})

	sel := sess.Selection()
	sel.Countries[0] = "USA"

	require.Equal(t, []string{"UK"}, sess.Selection().Countries)
}

func TestSession_ApplyIsSerialized(t *testing.T) {
	st, _ := newClockedStore(1)
	sess := st.Create(filter.Selection{})

	var wg sync.WaitGroup
	for _, country := range []string{"UK", "USA", "Germany", "France"} {
		wg.Add(1)
		go func(country string) {
			defer wg.Done()
			values := []string{country}
			sess.Apply(filter.Change{Countries: &values}, filter.Selection{})
		}(country)
	}
	wg.Wait()

	require.Len(t, sess.Selection().Countries, 1)
}

func TestJanitor_Sweep(t *testing.T) {
	st, clock := newClockedStore(10)
	j := NewJanitor(st, time.Minute, 30*time.Minute)
	j.nowFn = clock.Now

	st.Create(filter.Selection{})
	st.Create(filter.Selection{})
	require.Equal(t, 0, j.Sweep())

	clock.Advance(31 * time.Minute)
	require.Equal(t, 2, j.Sweep())
	require.Equal(t, 0, st.Len())
}

func TestJanitor_StartStopsOnCancel(t *testing.T) {
	st, _ := newClockedStore(1)
	j := NewJanitor(st, 10*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Start(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
