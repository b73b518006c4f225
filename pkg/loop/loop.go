// Package loop provides a single-threaded cooperative scheduler with a
// virtual clock.
//
// All callbacks run on the goroutine that calls Advance, in deadline order.
// Nothing runs in the background: a host drives the loop from its own frame
// or tick handler, and tests drive it with exact durations.
//
//	l := loop.New(time.Now())
//	l.AfterFunc(250*time.Millisecond, func() { fmt.Println("done") })
//	l.Advance(16 * time.Millisecond) // nothing yet
//	l.Advance(time.Second)           // prints "done"
package loop

import (
	"container/heap"
	"time"
)

// Loop is a virtual-time scheduler. It is not safe for concurrent use.
type Loop struct {
	now    time.Time
	timers timerHeap
	seq    uint64
}

// Timer is a scheduled callback returned by AfterFunc or Every.
type Timer struct {
	loop     *Loop
	fn       func()
	deadline time.Time
	interval time.Duration // zero for one-shot timers
	seq      uint64
	index    int // heap index, -1 when not scheduled
	stopped  bool
}

// New creates a loop whose clock starts at start.
func New(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop's current virtual time.
func (l *Loop) Now() time.Time {
	return l.now
}

// Since returns the virtual time elapsed since t.
func (l *Loop) Since(t time.Time) time.Duration {
	return l.now.Sub(t)
}

// AfterFunc schedules fn to run once, d after the current virtual time.
// A non-positive d runs fn on the next Advance call.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return l.schedule(&Timer{loop: l, fn: fn, deadline: l.now.Add(d)})
}

// Every schedules fn to run every d. The first call happens d from now.
// Panics if d is not positive.
func (l *Loop) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		panic("loop: non-positive interval for Every")
	}
	return l.schedule(&Timer{loop: l, fn: fn, deadline: l.now.Add(d), interval: d})
}

func (l *Loop) schedule(t *Timer) *Timer {
	l.seq++
	t.seq = l.seq
	heap.Push(&l.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback whose deadline
// falls inside the window. Callbacks observe Now() equal to their own
// deadline and may schedule or stop other timers. Returns the number of
// callbacks run.
func (l *Loop) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := l.now.Add(d)
	ran := 0
	for len(l.timers) > 0 {
		next := l.timers[0]
		if next.deadline.After(target) {
			break
		}
		heap.Pop(&l.timers)
		if next.deadline.After(l.now) {
			l.now = next.deadline
		}
		if next.interval > 0 {
			next.deadline = next.deadline.Add(next.interval)
			l.schedule(next)
		}
		next.fn()
		ran++
	}
	l.now = target
	return ran
}

// RunFor advances the clock in steps of step until total has elapsed.
// It mirrors a host that ticks at a fixed frame rate.
func (l *Loop) RunFor(total, step time.Duration) int {
	if step <= 0 {
		return l.Advance(total)
	}
	ran := 0
	for total > 0 {
		d := step
		if total < step {
			d = total
		}
		ran += l.Advance(d)
		total -= d
	}
	return ran
}

// Pending returns the number of scheduled timers.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Stop cancels the timer. It returns false if the timer had already fired
// (one-shot) or was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.loop.timers, t.index)
	return true
}

// Active reports whether the timer is still scheduled.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && t.index >= 0
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
