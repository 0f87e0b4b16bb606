package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows the algorithm to change later.
const (
	DomainCall   = "blender-go/call/v1"
	DomainSchema = "blender-go/schema/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CallID computes the content-addressed ID of a journaled call.
// The ID is stable across replays given the same inputs, so recording the
// same call twice is a no-op.
func CallID(sessionID string, seq int64, op, path string, args IRValue) (string, error) {
	if args == nil {
		args = IRNull{}
	}
	obj := IRObject{
		"session_id": IRString(sessionID),
		"seq":        IRInt(seq),
		"op":         IRString(op),
		"path":       IRString(path),
		"args":       args,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("CallID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainCall, canonical), nil
}

// SchemaHash computes a stable hash over compiled classes. Generated files
// record it so stale output can be detected.
func SchemaHash(classes []ClassSpec) (string, error) {
	raw, err := json.Marshal(classes)
	if err != nil {
		return "", fmt.Errorf("SchemaHash: failed to marshal: %w", err)
	}
	v, err := UnmarshalIRValue(raw)
	if err != nil {
		return "", fmt.Errorf("SchemaHash: failed to decode: %w", err)
	}
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("SchemaHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSchema, canonical), nil
}

// MustCallID is like CallID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustCallID(sessionID string, seq int64, op, path string, args IRValue) string {
	id, err := CallID(sessionID, seq, op, path, args)
	if err != nil {
		panic(err)
	}
	return id
}
