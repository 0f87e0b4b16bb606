// Package collection wraps host collections (bpy_prop_collection) as typed
// Go values.
//
// Collection[T] is the generic wrapper. Specialized collections such as
// NodeInputs embed it and add the host wrapper's own methods. Indexing never
// talks to the host: Index and Key only build the element accessor, and the
// host resolves it on first use.
package collection

import (
	"context"
	"iter"

	"github.com/abyssparanoia/blender-go/interop"
)

// Factory builds an element proxy for an accessor.
type Factory[T any] func(c interop.Caller, accessor string) T

// Collection is a host collection whose elements are T.
type Collection[T any] struct {
	interop.Proxy
	factory Factory[T]
}

// New returns the collection at accessor.
func New[T any](c interop.Caller, accessor string, factory func(interop.Caller, string) T) Collection[T] {
	return Collection[T]{Proxy: interop.NewProxy(c, accessor), factory: factory}
}

// Of adapts an element factory into a collection factory, for class-valued
// calls that return a collection.
func Of[T any](factory func(interop.Caller, string) T) func(interop.Caller, string) Collection[T] {
	return func(c interop.Caller, accessor string) Collection[T] {
		return New(c, accessor, factory)
	}
}

// Index returns the element at position i. Negative indexes count from the
// end, as on the host.
func (c Collection[T]) Index(i int) T {
	return c.factory(c.Caller(), c.Proxy.Index(i))
}

// Key returns the element named name.
func (c Collection[T]) Key(name string) T {
	return c.factory(c.Caller(), c.Proxy.Key(name))
}

// Len returns the number of elements.
func (c Collection[T]) Len(ctx context.Context) (int, error) {
	return interop.Len(ctx, c.Caller(), c.Accessor())
}

// Keys returns the element names in order.
func (c Collection[T]) Keys(ctx context.Context) ([]string, error) {
	return interop.Keys(ctx, c.Caller(), c.Accessor())
}

// Find returns the position of the element named key, or -1.
func (c Collection[T]) Find(ctx context.Context, key string) (int, error) {
	return interop.Find(ctx, c.Caller(), c.Accessor(), key)
}

// Get returns the element named key and whether it exists.
func (c Collection[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T
	i, err := c.Find(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if i < 0 {
		return zero, false, nil
	}
	return c.Key(key), true, nil
}

// Items returns a proxy for every element, addressed by position.
func (c Collection[T]) Items(ctx context.Context) ([]T, error) {
	n, err := c.Len(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		out[i] = c.Index(i)
	}
	return out, nil
}

// All iterates the elements. A failed length lookup is yielded once as
// (zero, err) and ends the sequence.
func (c Collection[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n, err := c.Len(ctx)
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for i := 0; i < n; i++ {
			if !yield(c.Index(i), nil) {
				return
			}
		}
	}
}
