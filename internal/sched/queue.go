// Package sched provides the next-tick task queue used to defer work by one
// UI turn. Deferral exists to avoid reentrant focus mutation from inside the
// event that is itself changing key-routing state; tasks never run inline.
package sched

import "sync"

// Queue collects tasks to run on the next scheduling tick. Tasks posted
// while a tick is draining run on the following tick, never the current one.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post schedules fn for the next tick. Nil tasks are ignored.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Tick runs every task posted before this call, in posting order, and
// returns the number of tasks run.
func (q *Queue) Tick() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
