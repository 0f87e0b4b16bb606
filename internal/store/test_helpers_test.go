package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// createTestStore creates a new store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestSession writes a session row and returns it.
func createTestSession(t *testing.T, s *Store, id string) ir.Session {
	t.Helper()
	sess := ir.Session{ID: id, Transport: "stdio", HostVersion: "4.1.0", ProtocolVersion: ir.ProtocolVersion}
	if err := s.WriteSession(context.Background(), sess); err != nil {
		t.Fatalf("WriteSession() failed: %v", err)
	}
	return sess
}

// createTestCall creates a successful get record with a content-addressed ID.
func createTestCall(sessionID string, seq int64, path string, value ir.IRValue) ir.CallRecord {
	return ir.CallRecord{
		ID:        ir.MustCallID(sessionID, seq, "get", path, ir.IRNull{}),
		SessionID: sessionID,
		Seq:       seq,
		Op:        "get",
		Path:      path,
		Args:      ir.IRNull{},
		Value:     value,
		Outcome:   ir.OutcomeOK,
	}
}
