package board

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay between the last keystroke and the search
// filter actually firing.
const DefaultDebounce = 300 * time.Millisecond

// debouncer coalesces rapid calls into one: each Call cancels the pending
// timer and schedules fn after the interval. Only the last fn runs.
type debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// Call schedules fn after the interval, replacing any pending call.
func (d *debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending call.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
