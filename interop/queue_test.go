package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestQueueFIFO(t *testing.T) {
	q := newRequestQueue()
	for i := int64(1); i <= 3; i++ {
		require.True(t, q.Enqueue(&pendingCall{req: Request{Seq: i}}))
	}

	for i := int64(1); i <= 3; i++ {
		p, ok := q.TryDequeue()
		require.True(t, ok)
		assert.Equal(t, i, p.req.Seq)
	}
	_, ok := q.TryDequeue()
	assert.False(t, ok)
}

func TestRequestQueueSignal(t *testing.T) {
	q := newRequestQueue()
	q.Enqueue(&pendingCall{})
	q.Enqueue(&pendingCall{})

	select {
	case <-q.Wait():
	default:
		t.Fatal("expected a signal after enqueue")
	}
	// Signals coalesce.
	select {
	case <-q.Wait():
		t.Fatal("expected a single coalesced signal")
	default:
	}
}

func TestRequestQueueClose(t *testing.T) {
	q := newRequestQueue()
	q.Close()
	q.Close()

	assert.True(t, q.Closed())
	assert.False(t, q.Enqueue(&pendingCall{}))

	_, open := <-q.Wait()
	assert.False(t, open, "Wait channel is closed")
}
