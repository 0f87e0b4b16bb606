package store

import (
	"context"
	"fmt"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Recorder journals a client's calls into a Store.
type Recorder struct {
	store *Store
}

// NewRecorder returns a recorder writing to s.
func NewRecorder(s *Store) *Recorder {
	return &Recorder{store: s}
}

var (
	_ interop.Recorder     = (*Recorder)(nil)
	_ interop.ReplaySource = (*Store)(nil)
)

// RecordSession implements interop.Recorder.
func (r *Recorder) RecordSession(ctx context.Context, s interop.Session) error {
	return r.store.WriteSession(ctx, ir.Session{
		ID:              s.ID,
		Transport:       s.Transport,
		HostVersion:     s.HostVersion,
		ProtocolVersion: s.ProtocolVersion,
	})
}

// RecordCall implements interop.Recorder.
func (r *Recorder) RecordCall(ctx context.Context, sessionID string, req interop.Request, resp interop.Response) error {
	rec, err := NewCallRecord(sessionID, req, resp)
	if err != nil {
		return err
	}
	return r.store.WriteCall(ctx, rec)
}

// NewCallRecord builds the journal record of one request/response pair.
// The recorded arguments are the value for set and the keyword arguments
// otherwise.
func NewCallRecord(sessionID string, req interop.Request, resp interop.Response) (ir.CallRecord, error) {
	args := requestArgs(req)
	id, err := ir.CallID(sessionID, req.Seq, string(req.Op), req.Path, args)
	if err != nil {
		return ir.CallRecord{}, fmt.Errorf("record call %d: %w", req.Seq, err)
	}

	rec := ir.CallRecord{
		ID:        id,
		SessionID: sessionID,
		Seq:       req.Seq,
		Op:        string(req.Op),
		Path:      req.Path,
		Args:      args,
		Value:     ir.IRNull{},
		Outcome:   ir.OutcomeOK,
	}
	if resp.OK {
		if resp.Value != nil {
			rec.Value = resp.Value
		}
		return rec, nil
	}
	rec.Outcome = ir.OutcomeError
	if resp.Error != nil {
		rec.ErrorType = resp.Error.Type
		rec.ErrorMessage = resp.Error.Message
	}
	return rec, nil
}

func requestArgs(req interop.Request) ir.IRValue {
	if req.Op == interop.OpSet {
		if req.Value == nil {
			return ir.IRNull{}
		}
		return req.Value
	}
	if req.Args == nil {
		return ir.IRNull{}
	}
	return req.Args
}

// ReplayCalls implements interop.ReplaySource. It returns the session's
// calls in seq order as request/response pairs. A session with no row is
// an error; a session with no calls is not.
func (s *Store) ReplayCalls(ctx context.Context, sessionID string) ([]interop.RecordedCall, error) {
	if _, err := s.ReadSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("replay calls: session %s: %w", sessionID, err)
	}
	recs, err := s.ReadCalls(ctx, Filter{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("replay calls: %w", err)
	}

	calls := make([]interop.RecordedCall, len(recs))
	for i, rec := range recs {
		calls[i] = recordedCall(rec)
	}
	return calls, nil
}

// recordedCall rebuilds the wire pair of a journal record.
func recordedCall(rec ir.CallRecord) interop.RecordedCall {
	req := interop.Request{
		ID:   rec.ID,
		Seq:  rec.Seq,
		Op:   interop.Op(rec.Op),
		Path: rec.Path,
	}
	if req.Op == interop.OpSet {
		req.Value = rec.Args
	} else if obj, ok := rec.Args.(ir.IRObject); ok {
		req.Args = obj
	}

	resp := interop.Response{ID: rec.ID, OK: rec.Outcome == ir.OutcomeOK, Value: rec.Value}
	if !resp.OK {
		resp.Value = nil
		resp.Error = &interop.WireError{Type: rec.ErrorType, Message: rec.ErrorMessage}
	}
	return interop.RecordedCall{Request: req, Response: resp}
}
