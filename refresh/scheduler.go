// Package refresh drives the dashboard's auto-refresh loop: one
// self-rescheduling timer per view, never a repeating ticker, so a slow
// refresh can never overlap the next one.
package refresh

import (
	"context"
	"sync"
	"time"
)

// noticeFor is how long Refreshed keeps reporting true after a refresh.
const noticeFor = 3 * time.Second

// Callback is the refresh work. Its error is surfaced on Errors() and
// otherwise ignored: the schedule re-arms on the normal interval whether
// the refresh succeeded or not.
type Callback func(ctx context.Context) error

// Scheduler re-runs a callback at a fixed interval. The timer is re-armed
// only after the callback settles. Trigger runs the callback immediately
// and resets the phase of the schedule. After Stop (or context
// cancellation), an in-flight callback may finish but nothing re-arms.
type Scheduler struct {
	interval time.Duration
	callback Callback
	errs     chan error

	mu          sync.Mutex
	cancel      context.CancelFunc
	trigger     chan struct{}
	noticeUntil time.Time
	running     bool
}

// New builds a scheduler; Start arms it.
func New(interval time.Duration, callback Callback) *Scheduler {
	return &Scheduler{
		interval: interval,
		callback: callback,
		errs:     make(chan error, 1),
		trigger:  make(chan struct{}, 1),
	}
}

// Start arms the first timer and runs the loop until the context is
// cancelled or Stop is called. Starting a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.mu.Unlock()

	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.trigger:
			// Manual refresh: drop the pending timer, the phase restarts
			// from now.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}

		if err := s.callback(ctx); err != nil {
			select {
			case s.errs <- err:
			default:
			}
		}
		s.markRefreshed()

		// Liveness check: a callback that outlived Stop must not re-arm.
		if ctx.Err() != nil {
			return
		}
		timer.Reset(s.interval)
	}
}

// Trigger requests an immediate out-of-band refresh. It never blocks; a
// trigger arriving while one is already pending folds into it.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the pending timer. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
}

// Errors exposes callback failures. The channel holds one error; while it
// is full, newer failures are dropped.
func (s *Scheduler) Errors() <-chan error { return s.errs }

// Refreshed reports whether a refresh completed within the last 3 seconds,
// the transient "just refreshed" indicator.
func (s *Scheduler) Refreshed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().Before(s.noticeUntil)
}

func (s *Scheduler) markRefreshed() {
	s.mu.Lock()
	s.noticeUntil = time.Now().Add(noticeFor)
	s.mu.Unlock()
}
