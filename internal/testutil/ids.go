// Package testutil holds deterministic stand-ins used by the harness and by
// tests that compare journals or transcripts byte for byte.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates request IDs in a fixed sequence.
//
// The first call to Generate returns "<prefix>-0001". Two clients driven
// through the same calls with fresh generators produce identical IDs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int64
}

// NewSequentialIDs creates a generator. If prefix is empty, "req" is used.
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "req"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next ID.
//
// Implements interop.IDGenerator.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
