package interop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// RecordedCall is one journaled request and the response the host gave.
type RecordedCall struct {
	Request  Request
	Response Response
}

// ReplaySource loads the recorded calls of a session in seq order.
type ReplaySource interface {
	ReplayCalls(ctx context.Context, sessionID string) ([]RecordedCall, error)
}

// ReplayTransport answers requests from a recorded session instead of a
// live host. Requests must arrive in the recorded order with the same op,
// path, value and args; IDs and seqs may differ. A diverging request fails
// with ReplayMismatchError and does not consume the recorded call.
type ReplayTransport struct {
	mu    sync.Mutex
	calls []RecordedCall
	next  int

	responses chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewReplayTransport replays calls in order.
func NewReplayTransport(calls []RecordedCall) *ReplayTransport {
	return &ReplayTransport{
		calls:     calls,
		responses: make(chan []byte, len(calls)),
		done:      make(chan struct{}),
	}
}

// OpenReplay loads sessionID from src and returns a transport replaying it.
func OpenReplay(ctx context.Context, src ReplaySource, sessionID string) (*ReplayTransport, error) {
	calls, err := src.ReplayCalls(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return NewReplayTransport(calls), nil
}

// Kind implements the journal naming hook.
func (t *ReplayTransport) Kind() string { return "replay" }

// WriteMessage matches data against the next recorded request and queues
// the recorded response under the new request ID.
func (t *ReplayTransport) WriteMessage(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return &ProtocolError{Message: "decode request", Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return ErrClosed
	default:
	}

	if t.next >= len(t.calls) {
		return &ReplayMismatchError{Index: t.next, Got: describeRequest(req)}
	}
	rec := t.calls[t.next]
	if !sameRequest(rec.Request, req) {
		return &ReplayMismatchError{
			Index:    t.next,
			Expected: describeRequest(rec.Request),
			Got:      describeRequest(req),
		}
	}
	t.next++

	resp := rec.Response
	resp.ID = req.ID
	out, err := json.Marshal(resp)
	if err != nil {
		return &ProtocolError{Message: "encode recorded response", Err: err}
	}
	t.responses <- out
	return nil
}

// ReadMessage returns the next queued response.
func (t *ReplayTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case data := <-t.responses:
		return data, nil
	case <-t.done:
		return nil, io.EOF
	}
}

// Close stops the transport. Unread responses are dropped.
func (t *ReplayTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
	})
	return nil
}

// Remaining returns how many recorded calls have not been replayed.
func (t *ReplayTransport) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls) - t.next
}

func sameRequest(a, b Request) bool {
	if a.Op != b.Op || a.Path != b.Path {
		return false
	}
	return canonicalString(a.Value) == canonicalString(b.Value) &&
		canonicalString(a.Args) == canonicalString(b.Args)
}

func describeRequest(r Request) string {
	s := fmt.Sprintf("%s %s", r.Op, r.Path)
	if r.Value != nil {
		s += " value=" + canonicalString(r.Value)
	}
	if len(r.Args) > 0 {
		s += " args=" + canonicalString(r.Args)
	}
	return s
}

// canonicalString renders v as canonical JSON, or its Go form if it cannot
// be encoded.
func canonicalString(v ir.IRValue) string {
	if obj, ok := v.(ir.IRObject); ok && len(obj) == 0 {
		return "{}"
	}
	data, err := ir.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}
