package interop

import "sync"

// pendingCall is a request waiting for its response.
type pendingCall struct {
	req   Request
	reply chan callResult // buffered, size 1
}

type callResult struct {
	resp Response
	err  error
}

// requestQueue is the unbounded FIFO feeding the single writer.
//
// Enqueue is safe from any goroutine. The writer waits on Wait() in a select
// alongside its context, so shutdown never strands it.
type requestQueue struct {
	mu      sync.Mutex
	pending []*pendingCall
	closed  bool
	signal  chan struct{} // buffered, size 1
}

func newRequestQueue() *requestQueue {
	return &requestQueue{
		pending: make([]*pendingCall, 0, 16),
		signal:  make(chan struct{}, 1),
	}
}

// Enqueue adds a call to the back of the queue.
// Returns false if the queue is closed.
func (q *requestQueue) Enqueue(p *pendingCall) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.pending = append(q.pending, p)

	// Non-blocking; the buffer of 1 coalesces signals.
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// TryDequeue removes the front call without blocking.
func (q *requestQueue) TryDequeue() (*pendingCall, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil, false
	}
	p := q.pending[0]
	q.pending[0] = nil
	if len(q.pending) == 1 {
		q.pending = q.pending[:0]
	} else {
		q.pending = q.pending[1:]
	}
	return p, true
}

// Wait returns a channel that signals when calls may be available.
// The channel is closed by Close.
func (q *requestQueue) Wait() <-chan struct{} {
	return q.signal
}

// Closed reports whether Close has been called.
func (q *requestQueue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Close stops further enqueues and wakes the writer.
func (q *requestQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}
