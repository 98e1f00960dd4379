// Package schedule provides cancellable one-shot tasks that run on the
// bubbletea update loop.
package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Task is a scheduled callback that has not necessarily run yet.
type Task interface {
	// Cancel prevents the callback from running. Cancelling a task that
	// already ran is a no-op.
	Cancel()
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// FireMsg is delivered when a task's delay has elapsed. The receiving model
// passes it to Tea.Fire so the task runs on the update loop.
type FireMsg struct {
	ID uint64
}

// Tea schedules tasks through tea.Tick commands. Callbacks never run on the
// tick goroutine: the tick only produces a FireMsg, and the callback runs
// when the model hands that message back to Fire.
type Tea struct {
	next    uint64
	tasks   map[uint64]func()
	pending []tea.Cmd
}

// NewTea creates an empty bubbletea scheduler.
func NewTea() *Tea {
	return &Tea{tasks: make(map[uint64]func())}
}

type teaTask struct {
	s  *Tea
	id uint64
}

func (t teaTask) Cancel() {
	delete(t.s.tasks, t.id)
}

// After registers fn and queues the tick command that will fire it.
// Queued commands are collected with Cmds.
func (s *Tea) After(d time.Duration, fn func()) Task {
	s.next++
	id := s.next
	s.tasks[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return FireMsg{ID: id}
	}))
	return teaTask{s: s, id: id}
}

// Cmds drains the commands queued since the last call.
func (s *Tea) Cmds() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Fire runs the task with the given id unless it was cancelled.
// Returns true if a callback ran.
func (s *Tea) Fire(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (s *Tea) Pending() int {
	return len(s.tasks)
}
