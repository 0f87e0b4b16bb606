package interop

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned for calls made on, or pending at, a closed client.
	ErrClosed = errors.New("interop: client closed")

	// ErrNone is returned when a class-valued read or call yields the host's None.
	ErrNone = errors.New("interop: host returned None")
)

// HostErrorCode categorizes host exceptions.
type HostErrorCode string

const (
	CodeAttributeError HostErrorCode = "ATTRIBUTE_ERROR"
	CodeTypeError      HostErrorCode = "TYPE_ERROR"
	CodeKeyError       HostErrorCode = "KEY_ERROR"
	CodeIndexError     HostErrorCode = "INDEX_ERROR"
	CodeValueError     HostErrorCode = "VALUE_ERROR"
	CodeRuntimeError   HostErrorCode = "RUNTIME_ERROR"
	CodeUnknown        HostErrorCode = "UNKNOWN"
)

// codeForType maps a host exception class name to a code.
func codeForType(typ string) HostErrorCode {
	switch typ {
	case "AttributeError":
		return CodeAttributeError
	case "TypeError":
		return CodeTypeError
	case "KeyError":
		return CodeKeyError
	case "IndexError":
		return CodeIndexError
	case "ValueError":
		return CodeValueError
	case "RuntimeError":
		return CodeRuntimeError
	default:
		return CodeUnknown
	}
}

// HostError is an exception raised by the host while serving a request.
type HostError struct {
	// Code identifies the error category.
	Code HostErrorCode

	// Type is the host exception class name.
	Type string

	// Message is the exception message.
	Message string

	// Op and Path identify the failed request.
	Op   Op
	Path string

	// Traceback is the host-side traceback, when the host sent one.
	Traceback string
}

func newHostError(req Request, we *WireError) *HostError {
	return &HostError{
		Code:      codeForType(we.Type),
		Type:      we.Type,
		Message:   we.Message,
		Op:        req.Op,
		Path:      req.Path,
		Traceback: we.Traceback,
	}
}

// Error implements the error interface.
func (e *HostError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Path, e.Type, e.Message)
}

// IsAttributeError returns true if err is a host AttributeError.
// Uses errors.As to handle wrapped errors.
func IsAttributeError(err error) bool {
	var he *HostError
	if errors.As(err, &he) {
		return he.Code == CodeAttributeError
	}
	return false
}

// IsKeyError returns true if err is a host KeyError.
func IsKeyError(err error) bool {
	var he *HostError
	if errors.As(err, &he) {
		return he.Code == CodeKeyError
	}
	return false
}

// ProtocolError reports a malformed or unexpected message.
type ProtocolError struct {
	Message string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("interop protocol: %s: %v", e.Message, e.Err)
	}
	return "interop protocol: " + e.Message
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// KindError reports a response value of the wrong kind for the accessor.
type KindError struct {
	Path string
	Want string
	Got  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: expected %s, host returned %s", e.Path, e.Want, e.Got)
}

// LengthError reports a fixed-length array of the wrong size.
type LengthError struct {
	Path string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected array of %d items, got %d", e.Path, e.Want, e.Got)
}

// IncompatibleHostError is returned by the handshake when the host does not
// satisfy the version constraint or speaks another protocol version.
type IncompatibleHostError struct {
	HostVersion     string
	ProtocolVersion string
	Constraint      string
	Reason          string
}

func (e *IncompatibleHostError) Error() string {
	return fmt.Sprintf("incompatible host %s (protocol %s): %s", e.HostVersion, e.ProtocolVersion, e.Reason)
}

// ReplayMismatchError reports a request that differs from the recorded one
// at the same position of a replayed session.
type ReplayMismatchError struct {
	// Index is the zero-based position in the recorded session.
	Index int

	// Expected describes the recorded request; empty when the session is exhausted.
	Expected string

	// Got describes the request that was issued.
	Got string
}

func (e *ReplayMismatchError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("replay mismatch at #%d: session exhausted, got %s", e.Index, e.Got)
	}
	return fmt.Sprintf("replay mismatch at #%d: expected %s, got %s", e.Index, e.Expected, e.Got)
}
