// Package interoptest provides an in-memory host for exercising the interop
// client and generated proxies without a running Blender.
//
// The Host serves every protocol op over an object graph keyed by accessor
// and raises the same exception types Blender would: AttributeError for a
// missing or read-only attribute, KeyError for a missing collection key,
// IndexError for an index out of range.
package interoptest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// DefaultVersion is the Blender version reported by a new Host.
const DefaultVersion = "4.1.0"

// Method is a fake host method.
type Method func(args ir.IRObject) (ir.IRValue, error)

// Raise is a host exception. Methods return it to fail with a given type.
type Raise struct {
	Type    string
	Message string
}

func (r *Raise) Error() string {
	return r.Type + ": " + r.Message
}

// Object is one host object.
type Object struct {
	Class    string
	Props    map[string]ir.IRValue
	Readonly map[string]bool
	Methods  map[string]Method

	// Collection marks the object as a bpy_prop_collection; Items are its
	// elements in order.
	Collection bool
	Items      []Item

	path string
}

// Item is one named collection element.
type Item struct {
	Key    string
	Object *Object
}

// Path returns the accessor the object was registered under.
func (o *Object) Path() string { return o.path }

// Host is an in-memory stand-in for Blender. It is safe for concurrent use.
type Host struct {
	mu      sync.Mutex
	version string
	banner  []string
	objects map[string]*Object
	calls   []interop.Request
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithVersion sets the version reported by hello.
func WithVersion(v string) HostOption {
	return func(h *Host) {
		h.version = v
	}
}

// WithBanner sets unframed lines written before serving, like the startup
// output of a real host.
func WithBanner(lines ...string) HostOption {
	return func(h *Host) {
		h.banner = lines
	}
}

// NewHost returns an empty host.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		version: DefaultVersion,
		objects: make(map[string]*Object),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add registers obj at path. Collection items are registered under both
// path[i] and path["key"].
func (h *Host) Add(path string, obj *Object) *Object {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(path, obj)
	return obj
}

func (h *Host) add(path string, obj *Object) {
	if obj.Props == nil {
		obj.Props = make(map[string]ir.IRValue)
	}
	if obj.path == "" {
		obj.path = path
	}
	if len(obj.Items) > 0 {
		obj.Collection = true
	}
	h.objects[path] = obj
	for i, item := range obj.Items {
		keyed := path + "[" + interop.Quote(item.Key) + "]"
		h.add(keyed, item.Object)
		h.objects[path+"["+strconv.Itoa(i)+"]"] = item.Object
	}
}

// Object returns the object registered at path.
func (h *Host) Object(path string) (*Object, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	obj, ok := h.objects[path]
	return obj, ok
}

// Prop returns the current value of a property, following references.
func (h *Host) Prop(path string) (ir.IRValue, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, err := h.get(path)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Calls returns every request served so far, in order.
func (h *Host) Calls() []interop.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.calls)
}

// Paths returns the path of every request served so far, in order.
func (h *Host) Paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.calls))
	for i, c := range h.calls {
		out[i] = c.Path
	}
	return out
}

// Reset forgets recorded requests. Objects are kept.
func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}

// Handle serves one request.
func (h *Host) Handle(req interop.Request) interop.Response {
	h.mu.Lock()
	h.calls = append(h.calls, req)
	h.mu.Unlock()

	value, err := h.serve(req)
	if err != nil {
		raise, ok := err.(*Raise)
		if !ok {
			raise = &Raise{Type: "RuntimeError", Message: err.Error()}
		}
		return interop.Response{
			ID: req.ID,
			Error: &interop.WireError{
				Type:    raise.Type,
				Message: raise.Message,
			},
		}
	}
	if value == nil {
		value = ir.IRNull{}
	}
	return interop.Response{ID: req.ID, OK: true, Value: value}
}

func (h *Host) serve(req interop.Request) (ir.IRValue, error) {
	switch req.Op {
	case interop.OpHello:
		return ir.IRObject{
			"version":  ir.IRString(h.version),
			"protocol": ir.IRString(ir.ProtocolVersion),
		}, nil
	case interop.OpPing:
		return ir.IRNull{}, nil
	}

	// Method bodies run without the lock so they may call back into the host.
	if req.Op == interop.OpCall {
		h.mu.Lock()
		m, err := h.method(req.Path)
		h.mu.Unlock()
		if err != nil {
			return nil, err
		}
		args := req.Args
		if args == nil {
			args = ir.IRObject{}
		}
		return m(args)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch req.Op {
	case interop.OpGet:
		return h.get(req.Path)
	case interop.OpSet:
		return ir.IRNull{}, h.set(req.Path, req.Value)
	case interop.OpLen:
		coll, err := h.collection(req.Path)
		if err != nil {
			return nil, err
		}
		return ir.IRInt(len(coll.Items)), nil
	case interop.OpKeys:
		coll, err := h.collection(req.Path)
		if err != nil {
			return nil, err
		}
		keys := make(ir.IRArray, len(coll.Items))
		for i, item := range coll.Items {
			keys[i] = ir.IRString(item.Key)
		}
		return keys, nil
	case interop.OpFind:
		coll, err := h.collection(req.Path)
		if err != nil {
			return nil, err
		}
		key, _ := req.Args["key"].(ir.IRString)
		for i, item := range coll.Items {
			if item.Key == string(key) {
				return ir.IRInt(i), nil
			}
		}
		return ir.IRInt(-1), nil
	default:
		return nil, &Raise{Type: "ValueError", Message: fmt.Sprintf("unknown op %q", req.Op)}
	}
}

// resolve finds the object path evaluates to.
func (h *Host) resolve(path string) (*Object, error) {
	if obj, ok := h.objects[path]; ok {
		return obj, nil
	}
	v, err := h.get(path)
	if err != nil {
		return nil, err
	}
	if _, isNone := v.(ir.IRNull); isNone {
		return nil, &Raise{Type: "AttributeError", Message: fmt.Sprintf("'NoneType' object at %s has no attributes", path)}
	}
	ref, ok := v.(ir.IRRef)
	if !ok {
		return nil, &Raise{Type: "TypeError", Message: fmt.Sprintf("%s is %s, not an object", path, ir.Kind(v))}
	}
	obj, ok := h.objects[ref.Path]
	if !ok {
		return nil, &Raise{Type: "ReferenceError", Message: fmt.Sprintf("StructRNA of type %s has been removed", ref.Path)}
	}
	return obj, nil
}

func (h *Host) get(path string) (ir.IRValue, error) {
	if obj, ok := h.objects[path]; ok {
		return ir.IRRef{Path: obj.path}, nil
	}
	parentPath, member, ok := interop.SplitMember(path)
	if !ok {
		return nil, &Raise{Type: "NameError", Message: fmt.Sprintf("name '%s' is not defined", path)}
	}
	parent, err := h.resolve(parentPath)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(member, "[") {
		item, err := subscript(parent, member)
		if err != nil {
			return nil, err
		}
		return ir.IRRef{Path: item.path}, nil
	}
	v, ok := parent.Props[member]
	if !ok {
		return nil, attributeError(parent, member)
	}
	return v, nil
}

func (h *Host) set(path string, value ir.IRValue) error {
	parentPath, member, ok := interop.SplitMember(path)
	if !ok || strings.HasPrefix(member, "[") {
		return &Raise{Type: "TypeError", Message: fmt.Sprintf("cannot assign to %s", path)}
	}
	parent, err := h.resolve(parentPath)
	if err != nil {
		return err
	}
	old, ok := parent.Props[member]
	if !ok {
		return attributeError(parent, member)
	}
	if parent.Readonly[member] {
		return &Raise{
			Type:    "AttributeError",
			Message: fmt.Sprintf("bpy_struct: attribute %q from %q is read-only", member, parent.Class),
		}
	}
	converted, err := assignable(old, value)
	if err != nil {
		return err
	}
	if ref, ok := converted.(ir.IRRef); ok {
		if _, ok := h.objects[ref.Path]; !ok {
			return &Raise{Type: "ReferenceError", Message: fmt.Sprintf("%s does not exist", ref.Path)}
		}
	}
	parent.Props[member] = converted
	return nil
}

func (h *Host) method(path string) (Method, error) {
	parentPath, member, ok := interop.SplitMember(path)
	if !ok {
		return nil, &Raise{Type: "NameError", Message: fmt.Sprintf("name '%s' is not defined", path)}
	}
	parent, err := h.resolve(parentPath)
	if err != nil {
		return nil, err
	}
	m, ok := parent.Methods[member]
	if !ok {
		return nil, attributeError(parent, member)
	}
	return m, nil
}

func (h *Host) collection(path string) (*Object, error) {
	obj, err := h.resolve(path)
	if err != nil {
		return nil, err
	}
	if !obj.Collection {
		return nil, &Raise{Type: "TypeError", Message: fmt.Sprintf("object of type '%s' has no len()", obj.Class)}
	}
	return obj, nil
}

func subscript(coll *Object, member string) (*Object, error) {
	if !coll.Collection {
		return nil, &Raise{Type: "TypeError", Message: fmt.Sprintf("'%s' object is not subscriptable", coll.Class)}
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(member, "["), "]")
	if i, err := strconv.Atoi(inner); err == nil {
		if i < 0 {
			i += len(coll.Items)
		}
		if i < 0 || i >= len(coll.Items) {
			return nil, &Raise{Type: "IndexError", Message: fmt.Sprintf("bpy_prop_collection[index]: index %s out of range, size %d", inner, len(coll.Items))}
		}
		return coll.Items[i].Object, nil
	}
	key, err := strconv.Unquote(inner)
	if err != nil {
		return nil, &Raise{Type: "TypeError", Message: fmt.Sprintf("bpy_prop_collection[key]: invalid key %s", inner)}
	}
	for _, item := range coll.Items {
		if item.Key == key {
			return item.Object, nil
		}
	}
	return nil, &Raise{Type: "KeyError", Message: fmt.Sprintf("bpy_prop_collection[key]: key %q not found", key)}
}

func attributeError(obj *Object, member string) *Raise {
	return &Raise{
		Type:    "AttributeError",
		Message: fmt.Sprintf("'%s' object has no attribute '%s'", obj.Class, member),
	}
}

// assignable checks that value may replace old and converts ints to floats
// where the property holds floats.
func assignable(old, value ir.IRValue) (ir.IRValue, error) {
	if value == nil {
		value = ir.IRNull{}
	}
	switch o := old.(type) {
	case ir.IRFloat:
		if n, ok := value.(ir.IRInt); ok {
			return ir.IRFloat(n), nil
		}
	case ir.IRArray:
		arr, ok := value.(ir.IRArray)
		if !ok {
			break
		}
		// Enum sets vary in size; numeric arrays are fixed.
		fixed := len(o) > 0 && ir.Kind(o[0]) != "string"
		if fixed && len(arr) != len(o) {
			return nil, &Raise{Type: "ValueError", Message: fmt.Sprintf("sequences of dimension 0 should contain %d items, not %d", len(o), len(arr))}
		}
		out := make(ir.IRArray, len(arr))
		for i := range arr {
			if i >= len(o) || !fixed {
				out[i] = arr[i]
				continue
			}
			v, err := assignable(o[i], arr[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case ir.IRRef, ir.IRNull:
		switch value.(type) {
		case ir.IRRef, ir.IRNull:
			return value, nil
		}
	}
	if ir.Kind(old) != ir.Kind(value) {
		return nil, &Raise{
			Type:    "TypeError",
			Message: fmt.Sprintf("expected %s, not %s", ir.Kind(old), ir.Kind(value)),
		}
	}
	return value, nil
}
