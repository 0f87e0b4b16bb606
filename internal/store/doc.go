// Package store provides SQLite-backed durable storage for the call journal.
//
// The journal is append-only and holds two tables:
//   - sessions: one row per client connection to a host
//   - calls: one row per completed request/response pair
//
// # Identity and Ordering
//
// Call IDs are content-addressed (ir.CallID over session, seq, op, path and
// arguments), so recording the same call twice is a no-op. Writes use
// ON CONFLICT DO NOTHING.
//
// All ordering uses the client's seq counter, never timestamps. Every query
// ends in ORDER BY seq ASC, id COLLATE BINARY ASC so reads are identical
// across replays.
//
// # Connections
//
// Every connection runs in WAL mode with synchronous=NORMAL, waits up to
// five seconds for a lock, and enforces foreign keys, so a call can only be
// journaled under a recorded session. The schema is versioned through
// PRAGMA user_version and migrated on Open.
//
// Values are stored as JSON with sorted object keys (ir.MarshalIRValue).
// Strings are not normalized, so a replay sends exactly what was recorded.
// Host references keep their {"$ref": "<path>"} form.
package store
