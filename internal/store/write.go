package store

import (
	"context"
	"fmt"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// WriteSession inserts or updates a session record.
//
// A new session gets the next session seq. Writing an existing ID keeps
// its seq and fills in version fields the first write did not know yet,
// since calls can be journaled before the handshake completes.
func (s *Store) WriteSession(ctx context.Context, sess ir.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("write session: empty id")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions
		(id, transport, host_version, protocol_version, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM sessions))
		ON CONFLICT(id) DO UPDATE SET
			host_version = CASE WHEN excluded.host_version != '' THEN excluded.host_version ELSE sessions.host_version END,
			protocol_version = CASE WHEN excluded.protocol_version != '' THEN excluded.protocol_version ELSE sessions.protocol_version END
	`,
		sess.ID,
		sess.Transport,
		sess.HostVersion,
		sess.ProtocolVersion,
	)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// WriteCall inserts a call record into the store.
// Uses ON CONFLICT DO NOTHING for idempotency: a duplicate ID, or a second
// record for the same (session_id, seq), is silently ignored.
//
// The session referenced by SessionID must exist (foreign key constraint).
func (s *Store) WriteCall(ctx context.Context, rec ir.CallRecord) error {
	argsJSON, err := marshalValue(rec.Args)
	if err != nil {
		return fmt.Errorf("write call: %w", err)
	}
	valueJSON, err := marshalValue(rec.Value)
	if err != nil {
		return fmt.Errorf("write call: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calls
		(id, session_id, seq, op, path, args, value, outcome, error_type, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		rec.ID,
		rec.SessionID,
		rec.Seq,
		rec.Op,
		rec.Path,
		argsJSON,
		valueJSON,
		string(rec.Outcome),
		rec.ErrorType,
		rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("write call: %w", err)
	}
	return nil
}
