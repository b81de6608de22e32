// Package debounce coalesces a rapidly changing input value into a single
// settled value emitted after a quiet interval with no further updates.
package debounce

import (
	"sync"
	"time"
)

// Debouncer emits the most recent value passed to Update once the quiet
// interval elapses without a newer update. Every update supersedes any
// pending emission, so for a burst of updates exactly one value, the last,
// is ever emitted. The debouncer is restartable: it can be driven by a
// changing input indefinitely.
type Debouncer[T any] struct {
	mu    sync.Mutex
	quiet time.Duration
	emit  func(T)
	timer *time.Timer
	gen   uint64
}

// New creates a Debouncer that calls emit with each settled value. emit
// runs on a timer goroutine and must be safe to call from there.
func New[T any](quiet time.Duration, emit func(T)) *Debouncer[T] {
	return &Debouncer[T]{quiet: quiet, emit: emit}
}

// Update feeds a new value, cancelling any pending emission. A zero value
// (e.g. a cleared input) debounces through the same path as any other.
func (d *Debouncer[T]) Update(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		// A timer that lost the Stop race checks its generation at fire
		// time; only the last-scheduled one may emit.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.emit(v)
	})
}

// Stop cancels any pending emission. The debouncer remains usable.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
