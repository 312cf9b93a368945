package scheduler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/gridmenu/internal/logger"
)

// TickDuration is the wall-clock length of one tick.
const TickDuration = 50 * time.Millisecond

// Ticker schedules tasks on the wall clock. Each task runs in its own
// goroutine; Wait blocks until all of them have finished.
type Ticker struct {
	tick   time.Duration
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithTickDuration overrides the length of one tick.
func WithTickDuration(d time.Duration) Option {
	return func(t *Ticker) {
		if d > 0 {
			t.tick = d
		}
	}
}

// NewTicker returns a Ticker whose tasks stop when ctx is done or Stop is
// called.
func NewTicker(ctx context.Context, opts ...Option) *Ticker {
	t := &Ticker{tick: TickDuration}
	for _, opt := range opts {
		opt(t)
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.group, t.ctx = errgroup.WithContext(ctx)
	return t
}

// Schedule implements Scheduler.
func (t *Ticker) Schedule(delay, period int, fn TickFunc) Task {
	tk := newTask()
	wait := time.Duration(atLeastOne(delay)) * t.tick
	every := time.Duration(atLeastOne(period)) * t.tick

	t.group.Go(func() error {
		defer tk.Cancel()
		logger.Logger().Debug("task started", "task", tk.id, "delay", wait, "period", every)

		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-t.ctx.Done():
			return nil
		case <-tk.done:
			return nil
		case <-timer.C:
		}
		if !fn() {
			logger.Logger().Debug("task finished", "task", tk.id)
			return nil
		}

		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-t.ctx.Done():
				return nil
			case <-tk.done:
				return nil
			case <-ticker.C:
				if tk.cancelled() {
					return nil
				}
				if !fn() {
					logger.Logger().Debug("task finished", "task", tk.id)
					return nil
				}
			}
		}
	})
	return tk
}

// Stop cancels every task. It does not wait for them.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until every scheduled task has returned.
func (t *Ticker) Wait() error {
	return t.group.Wait()
}
