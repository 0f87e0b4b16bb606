package interop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeForType(t *testing.T) {
	tests := map[string]HostErrorCode{
		"AttributeError": CodeAttributeError,
		"TypeError":      CodeTypeError,
		"KeyError":       CodeKeyError,
		"IndexError":     CodeIndexError,
		"ValueError":     CodeValueError,
		"RuntimeError":   CodeRuntimeError,
		"ReferenceError": CodeUnknown,
		"":               CodeUnknown,
	}
	for typ, want := range tests {
		assert.Equal(t, want, codeForType(typ), typ)
	}
}

func TestHostErrorHelpers(t *testing.T) {
	req := Request{Op: OpGet, Path: "bpy.context.object.nope"}
	err := newHostError(req, &WireError{Type: "AttributeError", Message: "'Object' object has no attribute 'nope'"})

	assert.Equal(t, "get bpy.context.object.nope: AttributeError: 'Object' object has no attribute 'nope'", err.Error())

	wrapped := fmt.Errorf("reading: %w", err)
	assert.True(t, IsAttributeError(wrapped))
	assert.False(t, IsKeyError(wrapped))
	assert.False(t, IsAttributeError(errors.New("plain")))

	keyErr := newHostError(req, &WireError{Type: "KeyError", Message: "x"})
	assert.True(t, IsKeyError(keyErr))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "n.location: expected array of 2 items, got 3",
		(&LengthError{Path: "n.location", Want: 2, Got: 3}).Error())
	assert.Equal(t, "n.name: expected string, host returned int",
		(&KindError{Path: "n.name", Want: "string", Got: "int"}).Error())
	assert.Contains(t, (&ReplayMismatchError{Index: 4, Got: "get x"}).Error(), "session exhausted")
	assert.Contains(t, (&IncompatibleHostError{HostVersion: "2.80.0", Reason: "too old"}).Error(), "2.80.0")

	pe := &ProtocolError{Message: "decode", Err: errors.New("boom")}
	assert.ErrorIs(t, pe, pe.Err)
}
