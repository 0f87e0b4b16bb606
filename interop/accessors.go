package interop

import (
	"context"
	"errors"
	"fmt"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Scalar is the element type of fixed-length host arrays.
type Scalar interface {
	bool | int64 | float64
}

// Options holds the named, all-optional parameters of a host call.
// Nil entries are omitted; a nil map means no parameters.
type Options map[string]any

// encode converts o to wire form.
func (o Options) encode() (ir.IRObject, error) {
	if len(o) == 0 {
		return nil, nil
	}
	obj := make(ir.IRObject, len(o))
	for k, v := range o {
		if v == nil {
			continue
		}
		irv, err := ir.FromGo(v)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", k, err)
		}
		obj[k] = irv
	}
	return obj, nil
}

// Accessor is implemented by every proxy.
type Accessor interface {
	Accessor() string
}

func get(ctx context.Context, c Caller, path string) (ir.IRValue, error) {
	return c.Invoke(ctx, Request{Op: OpGet, Path: path})
}

func set(ctx context.Context, c Caller, path string, v ir.IRValue) error {
	_, err := c.Invoke(ctx, Request{Op: OpSet, Path: path, Value: v})
	return err
}

func call(ctx context.Context, c Caller, path string, opts Options) (ir.IRValue, error) {
	args, err := opts.encode()
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	return c.Invoke(ctx, Request{Op: OpCall, Path: path, Args: args})
}

// GetVoid reads path and discards the value.
func GetVoid(ctx context.Context, c Caller, path string) error {
	_, err := get(ctx, c, path)
	return err
}

// GetBoolean reads a boolean property.
func GetBoolean(ctx context.Context, c Caller, path string) (bool, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return false, err
	}
	return asBool(path, v)
}

// GetInteger reads an integer property.
func GetInteger(ctx context.Context, c Caller, path string) (int64, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return 0, err
	}
	return asInt(path, v)
}

// GetFloat reads a float property. Integral host values are accepted.
func GetFloat(ctx context.Context, c Caller, path string) (float64, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return 0, err
	}
	return asFloat(path, v)
}

// GetString reads a string property.
func GetString(ctx context.Context, c Caller, path string) (string, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return "", err
	}
	return asString(path, v)
}

// GetEnum reads an enum property as its identifier.
func GetEnum[E ~string](ctx context.Context, c Caller, path string) (E, error) {
	s, err := GetString(ctx, c, path)
	return E(s), err
}

// GetEnumSet reads an enum-flag property. The host sends the set as a
// sorted list of identifiers.
func GetEnumSet[E ~string](ctx context.Context, c Caller, path string) ([]E, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return nil, err
	}
	return asEnumSet[E](path, v)
}

// GetArray reads a fixed-length array property. length 0 accepts any size.
func GetArray[T Scalar](ctx context.Context, c Caller, path string, length int) ([]T, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		return nil, err
	}
	return asArray[T](path, v, length)
}

// GetClass reads a pointer property and wraps the result with factory.
// A host None yields ErrNone.
func GetClass[T any](ctx context.Context, c Caller, path string, factory func(Caller, string) T) (T, error) {
	v, err := get(ctx, c, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return asClass(c, path, v, factory)
}

// SetBoolean writes a boolean property.
func SetBoolean(ctx context.Context, c Caller, path string, v bool) error {
	return set(ctx, c, path, ir.IRBool(v))
}

// SetInteger writes an integer property.
func SetInteger(ctx context.Context, c Caller, path string, v int64) error {
	return set(ctx, c, path, ir.IRInt(v))
}

// SetFloat writes a float property.
func SetFloat(ctx context.Context, c Caller, path string, v float64) error {
	irv, err := ir.FromGo(v)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return set(ctx, c, path, irv)
}

// SetString writes a string property.
func SetString(ctx context.Context, c Caller, path string, v string) error {
	return set(ctx, c, path, ir.IRString(v))
}

// SetEnum writes an enum property.
func SetEnum[E ~string](ctx context.Context, c Caller, path string, v E) error {
	return set(ctx, c, path, ir.IRString(string(v)))
}

// SetEnumSet writes an enum-flag property.
func SetEnumSet[E ~string](ctx context.Context, c Caller, path string, v []E) error {
	arr := make(ir.IRArray, len(v))
	for i, e := range v {
		arr[i] = ir.IRString(string(e))
	}
	return set(ctx, c, path, arr)
}

// SetArray writes an array property.
func SetArray[T Scalar](ctx context.Context, c Caller, path string, v []T) error {
	irv, err := ir.FromGo(v)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return set(ctx, c, path, irv)
}

// SetClass points a property at another host object. A nil v sets None.
func SetClass(ctx context.Context, c Caller, path string, v Accessor) error {
	if v == nil {
		return set(ctx, c, path, ir.IRNull{})
	}
	return set(ctx, c, path, ir.IRRef{Path: v.Accessor()})
}

// CallVoid calls a host method and discards its result.
func CallVoid(ctx context.Context, c Caller, path string, opts Options) error {
	_, err := call(ctx, c, path, opts)
	return err
}

// CallBoolean calls a host method returning a boolean.
func CallBoolean(ctx context.Context, c Caller, path string, opts Options) (bool, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		return false, err
	}
	return asBool(path, v)
}

// CallInteger calls a host method returning an integer.
func CallInteger(ctx context.Context, c Caller, path string, opts Options) (int64, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		return 0, err
	}
	return asInt(path, v)
}

// CallFloat calls a host method returning a float.
func CallFloat(ctx context.Context, c Caller, path string, opts Options) (float64, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		return 0, err
	}
	return asFloat(path, v)
}

// CallString calls a host method returning a string.
func CallString(ctx context.Context, c Caller, path string, opts Options) (string, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		return "", err
	}
	return asString(path, v)
}

// CallEnumSet calls a host method returning a set of identifiers, such as an
// operator's {'FINISHED'}.
func CallEnumSet[E ~string](ctx context.Context, c Caller, path string, opts Options) ([]E, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		return nil, err
	}
	return asEnumSet[E](path, v)
}

// CallClass calls a host method returning an object and wraps it with
// factory. A host None yields ErrNone.
func CallClass[T any](ctx context.Context, c Caller, path string, opts Options, factory func(Caller, string) T) (T, error) {
	v, err := call(ctx, c, path, opts)
	if err != nil {
		var zero T
		return zero, err
	}
	return asClass(c, path+"()", v, factory)
}

// Len returns the number of items in a host collection.
func Len(ctx context.Context, c Caller, path string) (int, error) {
	v, err := c.Invoke(ctx, Request{Op: OpLen, Path: path})
	if err != nil {
		return 0, err
	}
	n, err := asInt(path, v)
	return int(n), err
}

// Keys returns the item names of a host collection in order.
func Keys(ctx context.Context, c Caller, path string) ([]string, error) {
	v, err := c.Invoke(ctx, Request{Op: OpKeys, Path: path})
	if err != nil {
		return nil, err
	}
	return asEnumSet[string](path, v)
}

// Find returns the index of key in a host collection, or -1.
func Find(ctx context.Context, c Caller, path, key string) (int, error) {
	v, err := c.Invoke(ctx, Request{Op: OpFind, Path: path, Args: ir.IRObject{"key": ir.IRString(key)}})
	if err != nil {
		return 0, err
	}
	n, err := asInt(path, v)
	return int(n), err
}

func asBool(path string, v ir.IRValue) (bool, error) {
	b, ok := v.(ir.IRBool)
	if !ok {
		return false, &KindError{Path: path, Want: "bool", Got: ir.Kind(v)}
	}
	return bool(b), nil
}

func asInt(path string, v ir.IRValue) (int64, error) {
	n, ok := v.(ir.IRInt)
	if !ok {
		return 0, &KindError{Path: path, Want: "int", Got: ir.Kind(v)}
	}
	return int64(n), nil
}

func asFloat(path string, v ir.IRValue) (float64, error) {
	switch n := v.(type) {
	case ir.IRFloat:
		return float64(n), nil
	case ir.IRInt:
		return float64(n), nil
	default:
		return 0, &KindError{Path: path, Want: "float", Got: ir.Kind(v)}
	}
}

func asString(path string, v ir.IRValue) (string, error) {
	s, ok := v.(ir.IRString)
	if !ok {
		return "", &KindError{Path: path, Want: "string", Got: ir.Kind(v)}
	}
	return string(s), nil
}

func asEnumSet[E ~string](path string, v ir.IRValue) ([]E, error) {
	arr, ok := v.(ir.IRArray)
	if !ok {
		return nil, &KindError{Path: path, Want: "array", Got: ir.Kind(v)}
	}
	out := make([]E, len(arr))
	for i, elem := range arr {
		s, err := asString(fmt.Sprintf("%s[%d]", path, i), elem)
		if err != nil {
			return nil, err
		}
		out[i] = E(s)
	}
	return out, nil
}

func asArray[T Scalar](path string, v ir.IRValue, length int) ([]T, error) {
	arr, ok := v.(ir.IRArray)
	if !ok {
		return nil, &KindError{Path: path, Want: "array", Got: ir.Kind(v)}
	}
	if length > 0 && len(arr) != length {
		return nil, &LengthError{Path: path, Want: length, Got: len(arr)}
	}
	out := make([]T, len(arr))
	for i, elem := range arr {
		ep := fmt.Sprintf("%s[%d]", path, i)
		var err error
		switch p := any(&out[i]).(type) {
		case *bool:
			*p, err = asBool(ep, elem)
		case *int64:
			*p, err = asInt(ep, elem)
		case *float64:
			*p, err = asFloat(ep, elem)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// asClass wraps a reference. The host's path for the object is preferred;
// fallback is the path the value was read from.
func asClass[T any](c Caller, path string, v ir.IRValue, factory func(Caller, string) T) (T, error) {
	var zero T
	switch ref := v.(type) {
	case ir.IRRef:
		if ref.Path == "" {
			return factory(c, path), nil
		}
		return factory(c, ref.Path), nil
	case ir.IRNull, nil:
		return zero, fmt.Errorf("%s: %w", path, ErrNone)
	default:
		return zero, &KindError{Path: path, Want: "ref", Got: ir.Kind(v)}
	}
}

// IsNone reports whether err came from a host None.
func IsNone(err error) bool {
	return errors.Is(err, ErrNone)
}
