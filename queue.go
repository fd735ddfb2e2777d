package hidapi

import "sync"

// maxQueuedReports bounds the input-report queue. Insertion at capacity drops
// the oldest entry: readers that fall behind see bounded staleness instead of
// unbounded memory growth.
const maxQueuedReports = 30

// reportQueue is the single hand-off point between the pump goroutine and
// foreground readers: a mutex-guarded FIFO plus a broadcast channel that is
// closed and replaced on every wake-up, which gives waiters a timed wait that
// sync.Cond cannot.
type reportQueue struct {
	mu      sync.Mutex
	reports [][]byte
	wake    chan struct{}
}

func newReportQueue() *reportQueue {
	return &reportQueue{wake: make(chan struct{})}
}

// push appends rep, evicting the oldest entry when the queue is full, and
// wakes waiters. It reports whether an entry was dropped.
func (q *reportQueue) push(rep []byte) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	dropped := false
	if len(q.reports) >= maxQueuedReports {
		copy(q.reports, q.reports[1:])
		q.reports = q.reports[:len(q.reports)-1]
		dropped = true
	}
	q.reports = append(q.reports, rep)
	q.wakeLocked()
	return dropped
}

// popLocked removes and returns the oldest report. Caller holds q.mu and has
// checked the queue is non-empty.
func (q *reportQueue) popLocked() []byte {
	rep := q.reports[0]
	q.reports[0] = nil
	q.reports = q.reports[1:]
	return rep
}

// wakeLocked releases every current waiter. Caller holds q.mu.
func (q *reportQueue) wakeLocked() {
	close(q.wake)
	q.wake = make(chan struct{})
}

// broadcast releases every current waiter. Used when the pump drains so no
// reader stays blocked past that point.
func (q *reportQueue) broadcast() {
	q.mu.Lock()
	q.wakeLocked()
	q.mu.Unlock()
}

func (q *reportQueue) clear() {
	q.mu.Lock()
	q.reports = nil
	q.mu.Unlock()
}

func (q *reportQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.reports)
}
