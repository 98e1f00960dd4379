package schedule

import "time"

// Manual is a Scheduler driven by an explicit clock, for tests.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
	done      bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// After schedules fn to run once the clock has advanced by d.
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.seq++
	t := &manualTask{due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward and runs every task that became due, in
// due order. Tasks scheduled by a running task are honoured if they fall
// within the same advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.done = true
		t.fn()
	}
	m.now = target
	m.compact()
}

// Now returns the elapsed clock time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live task due by target. Ties run in
// scheduling order.
func (m *Manual) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.done || t.cancelled || t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.done && !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}
