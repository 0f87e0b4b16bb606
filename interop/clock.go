package interop

import "sync/atomic"

// Clock is the monotonic sequence source for requests.
//
// Every request is stamped with a strictly increasing seq, so the journal
// and replays see calls in the order they were written to the host.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}
