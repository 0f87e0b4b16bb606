package store

import (
	"fmt"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// marshalValue converts an IRValue to JSON TEXT for storage. Strings are
// kept byte for byte so a replay sends what was recorded; object keys are
// still sorted. A nil value is stored as null.
func marshalValue(v ir.IRValue) (string, error) {
	if v == nil {
		return "null", nil
	}
	data, err := ir.MarshalIRValue(v)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}
	return string(data), nil
}

// unmarshalValue parses stored JSON TEXT back into an IRValue.
// Host references come back as ir.IRRef and large integers keep their
// precision.
func unmarshalValue(data string) (ir.IRValue, error) {
	if data == "" {
		return ir.IRNull{}, nil
	}
	v, err := ir.UnmarshalIRValue([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal value: %w", err)
	}
	return v, nil
}
