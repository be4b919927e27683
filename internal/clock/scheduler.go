package clock

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type task struct {
	id     Handle
	due    time.Duration
	seq    uint64
	period time.Duration // zero for one-shot tasks
	fn     func()
	index  int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs deferred and periodic callbacks against a virtual clock.
// Time only moves when Advance is called, so every surface drives it from
// its own frame loop and tests drive it directly.
//
// Callbacks run to completion on the goroutine calling Advance. A Scheduler
// is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	nextID Handle
	queue  taskQueue
	tasks  map[Handle]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make(map[Handle]*task),
	}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every period, first firing one period from now.
// Non-positive periods are treated as one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.schedule(period, period, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.seq++
	t := &task{
		id:     s.nextID,
		due:    s.now + d,
		seq:    s.seq,
		period: period,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	s.tasks[t.id] = t
	return t.id
}

// Cancel stops a pending callback. Cancelling an unknown, fired or already
// cancelled handle is a no-op. Returns whether something was cancelled.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.tasks[h]
	if !ok {
		return false
	}
	delete(s.tasks, h)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Active reports whether h is still scheduled.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves virtual time forward by d, running every callback that
// falls due on the way in due order (FIFO for equal due times). Callbacks
// scheduled from inside a callback run in the same call if they fall due
// before the target time.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due

		if next.period > 0 {
			s.seq++
			next.due += next.period
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			delete(s.tasks, next.id)
		}
		next.fn()
	}
	s.now = target
}

// Reset drops every pending callback. Virtual time is kept.
func (s *Scheduler) Reset() {
	s.queue = nil
	s.tasks = make(map[Handle]*task)
}
