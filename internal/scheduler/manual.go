package scheduler

import "sync"

// Manual is a deterministic clock. Tasks only run inside Advance, in the
// order they were scheduled.
type Manual struct {
	mu    sync.Mutex
	now   int
	tasks []*manualTask
}

type manualTask struct {
	*task
	next   int
	period int
	fn     TickFunc
}

// NewManual returns a clock at tick zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler.
func (m *Manual) Schedule(delay, period int, fn TickFunc) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt := &manualTask{
		task:   newTask(),
		next:   m.now + atLeastOne(delay),
		period: atLeastOne(period),
		fn:     fn,
	}
	m.tasks = append(m.tasks, mt)
	return mt
}

// Now returns the current tick.
func (m *Manual) Now() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that may still run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	return len(m.tasks)
}

// Advance moves the clock forward n ticks, running every task that is due on
// each of them. Callbacks run without the clock's lock held and may schedule
// or cancel tasks.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		m.now++
		now := m.now
		due := make([]*manualTask, 0, len(m.tasks))
		for _, mt := range m.tasks {
			if mt.next == now && !mt.cancelled() {
				due = append(due, mt)
			}
		}
		m.mu.Unlock()

		for _, mt := range due {
			if mt.cancelled() {
				continue
			}
			if !mt.fn() {
				mt.Cancel()
				continue
			}
			mt.next = now + mt.period
		}

		m.mu.Lock()
		m.prune()
		m.mu.Unlock()
	}
}

func (m *Manual) prune() {
	kept := m.tasks[:0]
	for _, mt := range m.tasks {
		if !mt.cancelled() {
			kept = append(kept, mt)
		}
	}
	for i := len(kept); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = kept
}
