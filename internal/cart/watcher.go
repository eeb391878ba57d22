package cart

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval is the reconciliation cadence for missed events.
const DefaultPollInterval = time.Second

// Watcher keeps an external view's item count in sync with the persisted
// cart. Direct change events from the cart take precedence; a periodic
// poll of the store catches mutations written by another context.
// Concurrent edits are last-write-wins and can overwrite each other
// silently.
type Watcher struct {
	store    Store
	interval time.Duration
	onCount  func(itemCount int)
	logger   zerolog.Logger
}

// NewWatcher creates a watcher that invokes onCount whenever the observed
// item count changes. A non-positive interval falls back to the default.
func NewWatcher(store Store, interval time.Duration, onCount func(itemCount int), logger zerolog.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		store:    store,
		interval: interval,
		onCount:  onCount,
		logger:   logger.With().Str("component", "cart-watcher").Logger(),
	}
}

// Attach subscribes the watcher to a cart's change events. Events deliver
// the count immediately; the poll remains as a fallback.
func (w *Watcher) Attach(c *Cart) {
	c.OnChange(w.onCount)
}

// Run polls the store until the context is cancelled, reporting the count
// whenever it differs from the last observation.
func (w *Watcher) Run(ctx context.Context) {
	last := -1
	if count, err := w.countFromStore(); err == nil {
		last = count
		w.onCount(count)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.countFromStore()
			if err != nil {
				w.logger.Warn().Err(err).Msg("failed to poll persisted cart")
				continue
			}
			if count != last {
				last = count
				w.onCount(count)
			}
		}
	}
}

func (w *Watcher) countFromStore() (int, error) {
	items, err := w.store.LoadCart()
	if err != nil {
		return 0, err
	}
	return countItems(items), nil
}
