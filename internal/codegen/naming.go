package codegen

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// reserved are method names every generated type already has, through
// interop.Proxy, collection.Collection, or the operator template.
var reserved = map[string]bool{
	"Caller": true, "Accessor": true, "Path": true, "Index": true, "Key": true,
	"String": true, "GoString": true, "LogValue": true,
	"Len": true, "Keys": true, "Find": true, "Get": true, "Items": true, "All": true,
	"Call": true, "Poll": true,
}

// ClassName turns a host class name into a Go type name. Acronym runs are
// kept and underscores are dropped with the next letter upper-cased:
// LineStyleThicknessModifier_Calligraphy becomes
// LineStyleThicknessModifierCalligraphy and bpy_struct becomes BpyStruct.
func ClassName(name string) string {
	if module, op, ok := SplitOperator(name); ok {
		return strcase.ToCamel(strings.ToLower(module)) + strcase.ToCamel(op)
	}
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return exported(b.String())
}

// MemberName turns a host property or function name into a Go method name.
func MemberName(name string) string {
	return exported(strcase.ToCamel(name))
}

// ConstName turns an enum identifier into a constant-name suffix.
func ConstName(item string) string {
	clean := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, strings.ToLower(item))
	s := strcase.ToCamel(clean)
	if s == "" {
		return "Empty"
	}
	return s
}

// exported makes s a valid exported identifier.
func exported(s string) string {
	if s == "" {
		return "X"
	}
	r := []rune(s)
	if !unicode.IsLetter(r[0]) {
		return "X" + s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SplitOperator splits an operator class name such as MESH_OT_rip_edge into
// its module and operator parts.
func SplitOperator(name string) (module, op string, ok bool) {
	module, op, ok = strings.Cut(name, "_OT_")
	if !ok || module == "" || op == "" {
		return "", "", false
	}
	return module, op, true
}

// OperatorPath returns the accessor of an operator class:
// MESH_OT_rip_edge lives at bpy.ops.mesh.rip_edge.
func OperatorPath(name string) string {
	module, op, ok := SplitOperator(name)
	if !ok {
		return "bpy.ops." + name
	}
	return "bpy.ops." + strings.ToLower(module) + "." + op
}

// FileName returns the file a class is written to.
func FileName(goName string) string {
	base := strcase.ToSnake(goName)
	if i := strings.LastIndexByte(base, '_'); i >= 0 && buildSuffixes[base[i+1:]] {
		base += "_gen"
	}
	return base + ".go"
}

// buildSuffixes are file name suffixes the go tool treats as build
// constraints or test markers.
var buildSuffixes = map[string]bool{
	"test": true,
	"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
	"hurd": true, "illumos": true, "ios": true, "js": true, "linux": true, "nacl": true,
	"netbsd": true, "openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
	"windows": true, "zos": true,
	"386": true, "amd64": true, "arm": true, "arm64": true, "loong64": true,
	"mips": true, "mipsle": true, "mips64": true, "mips64le": true, "ppc64": true,
	"ppc64le": true, "riscv64": true, "s390x": true, "wasm": true,
}

// names hands out unique identifiers within one scope. A taken name gets
// a trailing underscore.
type names map[string]bool

func (n names) take(name string) string {
	for n[name] {
		name += "_"
	}
	n[name] = true
	return name
}

// receiver picks the receiver name for a Go type.
func receiver(goName string) string {
	return string(unicode.ToLower([]rune(goName)[0]))
}
