package schedule

import (
	"sync"
	"time"
)

// TaskID identifies a kind of delayed task. A Scheduler keeps at most one
// pending task per ID.
type TaskID int

const (
	TaskAutoHide TaskID = iota + 1
	TaskPollProgress
)

func (id TaskID) String() string {
	switch id {
	case TaskAutoHide:
		return "auto-hide"
	case TaskPollProgress:
		return "poll-progress"
	default:
		return "unknown"
	}
}

// Scheduler runs delayed callbacks on the event thread.
type Scheduler interface {
	// ScheduleOnce replaces any pending task with the same id by fn, due
	// delay from now.
	ScheduleOnce(delay time.Duration, id TaskID, fn func())
	// Cancel drops the pending task with the given id, if any.
	Cancel(id TaskID)
	// Pending reports whether a task with the given id is waiting to run.
	Pending(id TaskID) bool
}

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Queue is a single-threaded task queue driven by a virtual clock. Time only
// moves when the owner calls Advance, so the host game loop advances it by
// the real frame delta and tests advance it by exact amounts.
//
// All methods except Post must be called from the event thread.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks map[TaskID]*task

	mu     sync.Mutex
	posted []func()
}

// NewQueue creates an empty queue at virtual time zero.
func NewQueue() *Queue {
	return &Queue{tasks: make(map[TaskID]*task)}
}

// Now returns the virtual time elapsed since the queue was created.
func (q *Queue) Now() time.Duration {
	return q.now
}

func (q *Queue) ScheduleOnce(delay time.Duration, id TaskID, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	q.tasks[id] = &task{due: q.now + delay, seq: q.seq, fn: fn}
}

func (q *Queue) Cancel(id TaskID) {
	delete(q.tasks, id)
}

func (q *Queue) Pending(id TaskID) bool {
	_, ok := q.tasks[id]
	return ok
}

// Due returns how long until the task with the given id runs.
func (q *Queue) Due(id TaskID) (time.Duration, bool) {
	t, ok := q.tasks[id]
	if !ok {
		return 0, false
	}
	return t.due - q.now, true
}

// Len returns the number of pending delayed tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Post queues fn to run on the event thread during the next Advance. It is
// the only method safe to call from other goroutines.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.posted = append(q.posted, fn)
	q.mu.Unlock()
}

// Advance moves the clock forward by d, running posted work and every task
// that falls due on the way, in due-time order. Tasks scheduled by a running
// task are eligible within the same call if they fall due before the target.
func (q *Queue) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := q.now + d
	for {
		q.runPosted()
		id, t := q.next(target)
		if t == nil {
			break
		}
		q.now = t.due
		delete(q.tasks, id)
		t.fn()
	}
	q.now = target
}

// Reset drops every pending task and posted callback.
func (q *Queue) Reset() {
	q.tasks = make(map[TaskID]*task)
	q.mu.Lock()
	q.posted = nil
	q.mu.Unlock()
}

func (q *Queue) next(target time.Duration) (TaskID, *task) {
	var (
		bestID TaskID
		best   *task
	)
	for id, t := range q.tasks {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestID, best = id, t
		}
	}
	return bestID, best
}

func (q *Queue) runPosted() {
	q.mu.Lock()
	posted := q.posted
	q.posted = nil
	q.mu.Unlock()
	for _, fn := range posted {
		fn()
	}
}
