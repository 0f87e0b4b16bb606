package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

const callColumns = "id, session_id, seq, op, path, args, value, outcome, error_type, error_message"

// ReadSession retrieves a single session by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadSession(ctx context.Context, id string) (ir.Session, error) {
	var sess ir.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, transport, host_version, protocol_version, seq
		FROM sessions
		WHERE id = ?
	`, id).Scan(&sess.ID, &sess.Transport, &sess.HostVersion, &sess.ProtocolVersion, &sess.Seq)
	if err != nil {
		return ir.Session{}, err
	}
	return sess, nil
}

// ReadSessions returns all sessions in the order they were first recorded.
//
// Returns an empty slice (not nil) if no sessions exist.
func (s *Store) ReadSessions(ctx context.Context) ([]ir.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, transport, host_version, protocol_version, seq
		FROM sessions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []ir.Session{}
	for rows.Next() {
		var sess ir.Session
		if err := rows.Scan(&sess.ID, &sess.Transport, &sess.HostVersion, &sess.ProtocolVersion, &sess.Seq); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// LatestSession returns the most recently started session.
// Returns sql.ErrNoRows if the journal is empty.
func (s *Store) LatestSession(ctx context.Context) (ir.Session, error) {
	var sess ir.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, transport, host_version, protocol_version, seq
		FROM sessions
		ORDER BY seq DESC, id COLLATE BINARY DESC
		LIMIT 1
	`).Scan(&sess.ID, &sess.Transport, &sess.HostVersion, &sess.ProtocolVersion, &sess.Seq)
	if err != nil {
		return ir.Session{}, err
	}
	return sess, nil
}

// ReadCall retrieves a single call by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadCall(ctx context.Context, id string) (ir.CallRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+callColumns+" FROM calls WHERE id = ?", id)
	return scanCall(row)
}

// ReadCalls returns the calls matching f, ordered by seq ASC, id ASC.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ReadCalls(ctx context.Context, f Filter) ([]ir.CallRecord, error) {
	query, params, err := f.Compile()
	if err != nil {
		return nil, fmt.Errorf("read calls: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query calls: %w", err)
	}
	defer rows.Close()

	calls := []ir.CallRecord{}
	for rows.Next() {
		rec, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calls: %w", err)
	}
	return calls, nil
}

// CountCalls returns how many calls a session recorded.
func (s *Store) CountCalls(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM calls WHERE session_id = ?
	`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count calls: %w", err)
	}
	return n, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanCall scans a row into a CallRecord. sql.ErrNoRows is returned
// unwrapped so callers can compare against it.
func scanCall(row scanner) (ir.CallRecord, error) {
	var rec ir.CallRecord
	var outcome, argsJSON, valueJSON string

	if err := row.Scan(
		&rec.ID, &rec.SessionID, &rec.Seq, &rec.Op, &rec.Path,
		&argsJSON, &valueJSON, &outcome, &rec.ErrorType, &rec.ErrorMessage,
	); err != nil {
		if err == sql.ErrNoRows {
			return ir.CallRecord{}, err
		}
		return ir.CallRecord{}, fmt.Errorf("scan call: %w", err)
	}
	rec.Outcome = ir.CallOutcome(outcome)

	args, err := unmarshalValue(argsJSON)
	if err != nil {
		return ir.CallRecord{}, err
	}
	rec.Args = args

	value, err := unmarshalValue(valueJSON)
	if err != nil {
		return ir.CallRecord{}, err
	}
	rec.Value = value

	return rec, nil
}
