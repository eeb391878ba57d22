package cart

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForCount(t *testing.T, counts <-chan int, want int) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-counts:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for item count %d", want)
		}
	}
}

func TestWatcher_ReportsInitialCount(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveCart([]LineItem{{ID: "cart-1", Quantity: 3}}))

	counts := make(chan int, 16)
	w := NewWatcher(store, 10*time.Millisecond, func(n int) { counts <- n }, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitForCount(t, counts, 3)
}

func TestWatcher_PollDetectsExternalWrite(t *testing.T) {
	store := NewMemoryStore()

	counts := make(chan int, 16)
	w := NewWatcher(store, 10*time.Millisecond, func(n int) { counts <- n }, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitForCount(t, counts, 0)

	// A mutation written by another context, without any change event.
	require.NoError(t, store.SaveCart([]LineItem{
		{ID: "cart-1", Quantity: 2},
		{ID: "cart-2", Quantity: 3},
	}))

	waitForCount(t, counts, 5)
}

func TestWatcher_AttachDeliversChangeEvents(t *testing.T) {
	store := NewMemoryStore()
	c, err := New(store, zerolog.Nop())
	require.NoError(t, err)

	var counts []int
	w := NewWatcher(store, time.Hour, func(n int) { counts = append(counts, n) }, zerolog.Nop())
	w.Attach(c)

	// No poll is running; events alone keep the badge current.
	_, err = c.AddItem(menuItem("ni1", "Butter Chicken Bowl", "189"), 2, nil)
	require.NoError(t, err)
	require.NoError(t, c.Clear())

	assert.Equal(t, []int{2, 0}, counts)
}

func TestNewWatcher_DefaultsInterval(t *testing.T) {
	w := NewWatcher(NewMemoryStore(), 0, func(int) {}, zerolog.Nop())
	assert.Equal(t, DefaultPollInterval, w.interval)
}
