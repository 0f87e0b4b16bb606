package interop

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Proxy is the state every generated class carries: the handle it talks
// through and the host expression that names its object. The accessor must
// stay valid for the host object's lifetime; the host enforces that.
type Proxy struct {
	caller   Caller
	accessor string
}

// NewProxy returns a proxy for the object at accessor.
func NewProxy(c Caller, accessor string) Proxy {
	return Proxy{caller: c, accessor: accessor}
}

// Caller returns the handle the proxy talks through.
func (p Proxy) Caller() Caller { return p.caller }

// Accessor returns the host expression naming the object.
func (p Proxy) Accessor() string { return p.accessor }

// Path returns the accessor of member.
func (p Proxy) Path(member string) string {
	return p.accessor + "." + member
}

// Index returns the accessor of item i.
func (p Proxy) Index(i int) string {
	return p.accessor + "[" + strconv.Itoa(i) + "]"
}

// Key returns the accessor of the item named k.
func (p Proxy) Key(k string) string {
	return p.accessor + "[" + Quote(k) + "]"
}

// String renders the accessor.
func (p Proxy) String() string { return p.accessor }

// GoString renders the accessor for %#v.
func (p Proxy) GoString() string { return p.accessor }

// LogValue renders the accessor in structured logs.
func (p Proxy) LogValue() slog.Value { return slog.StringValue(p.accessor) }

var _ slog.LogValuer = Proxy{}
var _ fmt.GoStringer = Proxy{}

// Quote returns s as a double-quoted Python string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// SplitMember splits the final member off path. Dots inside brackets or
// string literals are not separators, and a trailing subscript is a member
// of its own:
//
//	SplitMember(`bpy.data.objects["a.b"].location`) // `bpy.data.objects["a.b"]`, "location"
//	SplitMember(`bpy.data.objects["a.b"]`)          // "bpy.data.objects", `["a.b"]`
//
// ok is false when path has no parent.
func SplitMember(path string) (parent, member string, ok bool) {
	split := -1
	depth := 0
	var quote rune
	escaped := false

	for i, r := range path {
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
		case '[':
			if depth == 0 {
				split = i
			}
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				split = i
			}
		}
	}

	if split <= 0 {
		return "", path, false
	}
	if path[split] == '.' {
		return path[:split], path[split+1:], true
	}
	return path[:split], path[split:], true
}
