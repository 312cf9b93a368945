// Package scheduler runs periodic tick callbacks. Ticker drives them from the
// wall clock, Manual from explicit Advance calls.
package scheduler

import (
	"sync"

	"github.com/google/uuid"
)

// TickFunc is invoked once per scheduled tick. Returning false stops the task.
type TickFunc func() bool

// Task is a handle to a scheduled callback.
type Task interface {
	ID() string
	// Cancel stops future invocations. It is safe to call more than once and
	// from inside the callback.
	Cancel()
	// Done is closed once the task will never run again.
	Done() <-chan struct{}
}

// Scheduler invokes fn after delay ticks and then every period ticks until the
// task is cancelled or fn returns false. Delay and period below one are
// treated as one.
type Scheduler interface {
	Schedule(delay, period int, fn TickFunc) Task
}

type task struct {
	id   string
	once sync.Once
	done chan struct{}
}

func newTask() *task {
	return &task{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}
}

func (t *task) ID() string { return t.id }

func (t *task) Cancel() {
	t.once.Do(func() { close(t.done) })
}

func (t *task) Done() <-chan struct{} { return t.done }

func (t *task) cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
