package harness

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// nodeValue decodes a YAML node into a wire value.
func nodeValue(n *yaml.Node) (ir.IRValue, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return toIRValue(v)
}

// toIRValue converts decoded YAML into a wire value. A map whose only key
// is "$ref" becomes a host reference.
func toIRValue(v any) (ir.IRValue, error) {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["$ref"]; ok && len(val) == 1 {
			path, ok := ref.(string)
			if !ok {
				return nil, fmt.Errorf("$ref must be a string, got %T", ref)
			}
			return ir.IRRef{Path: path}, nil
		}
		return toIRObject(val)
	case []any:
		arr := make(ir.IRArray, len(val))
		for i, elem := range val {
			irElem, err := toIRValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = irElem
		}
		return arr, nil
	}
	return ir.FromGo(v)
}

func toIRObject(m map[string]any) (ir.IRObject, error) {
	obj := make(ir.IRObject, len(m))
	for k, elem := range m {
		irElem, err := toIRValue(elem)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", k, err)
		}
		obj[k] = irElem
	}
	return obj, nil
}

// sameValue reports whether two values have the same canonical encoding.
// Ints and floats never compare equal.
func sameValue(want, got ir.IRValue) bool {
	a, errA := ir.MarshalCanonical(want)
	b, errB := ir.MarshalCanonical(got)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// formatValue renders v as canonical JSON for messages.
func formatValue(v ir.IRValue) string {
	data, err := ir.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}
