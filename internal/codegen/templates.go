package codegen

import "text/template"

// Header starts every generated file. It matches the pattern the go tool
// uses to recognize generated code.
const Header = "// Code generated by blender-go; DO NOT EDIT."

var templates = template.Must(template.New("codegen").Parse(`
{{- define "doc"}}{{range .}}//{{if .}} {{.}}{{end}}
{{end}}{{end}}

{{- define "class" -}}
` + Header + `

package {{.Package}}

import (
	"context"

	"{{.Module}}/bpy/collection"
	"{{.Module}}/interop"
)

{{template "doc" .Doc -}}
type {{.Name}} struct {
	{{.Embed}}
}

// New{{.Name}} returns the {{.Host}} at accessor.
func New{{.Name}}(c interop.Caller, accessor string) {{.Name}} {
	return {{.Name}}{ {{- .EmbedField}}: {{.EmbedInit}}}
}
{{- if .Operator}}

// {{.Name}}Path is the accessor of {{.Host}}.
const {{.Name}}Path = "{{.OpPath}}"

// Call runs the operator with opts as its keyword arguments and returns the
// result flags, such as FINISHED or CANCELLED.
func ({{.Recv}} {{.Name}}) Call(ctx context.Context, opts interop.Options) ([]string, error) {
	return interop.CallEnumSet[string](ctx, {{.Recv}}.Caller(), {{.Recv}}.Accessor(), opts)
}

// Poll reports whether the operator can run in the current context.
func ({{.Recv}} {{.Name}}) Poll(ctx context.Context) (bool, error) {
	return interop.CallBoolean(ctx, {{.Recv}}.Caller(), {{.Recv}}.Path("poll"), nil)
}
{{- end}}
{{- range .Props}}

{{template "doc" .Doc -}}
{{- if .Lazy}}func ({{.Recv}} {{.Class}}) {{.Name}}() {{.Type}} {
	return {{.Get}}
}
{{- else if .Void}}func ({{.Recv}} {{.Class}}) {{.Name}}(ctx context.Context) error {
	return {{.Get}}
}
{{- else}}func ({{.Recv}} {{.Class}}) {{.Name}}(ctx context.Context) ({{.Type}}, error) {
	return {{.Get}}
}
{{- end}}
{{- if .Setter}}

{{template "doc" .SetDoc -}}
func ({{.Recv}} {{.Class}}) {{.Setter}}(ctx context.Context, value {{.SetType}}) error {
	return {{.Set}}
}
{{- end}}
{{- end}}
{{- range .Funcs}}

{{template "doc" .Doc -}}
func ({{.Recv}} {{.Class}}) {{.Name}}(ctx context.Context{{if .HasOpts}}, opts interop.Options{{end}}) {{if .Type}}({{.Type}}, error){{else}}error{{end}} {
	return {{.Call}}
}
{{- end}}
{{end}}

{{- define "enums" -}}
` + Header + `

package {{.Package}}
{{- range $e := .Enums}}

{{template "doc" $e.Doc -}}
type {{$e.Name}} string

const (
{{- range $e.Consts}}
	{{.Name}} {{$e.Name}} = {{printf "%q" .Value}}
{{- end}}
)

// Valid reports whether e is one of the {{$e.Name}} identifiers.
func (e {{$e.Name}}) Valid() bool {
	switch e {
	case {{$e.Cases}}:
		return true
	}
	return false
}
{{- end}}
{{end}}

{{- define "doc.go" -}}
` + Header + `

// Package {{.Package}} holds proxies for bpy.{{.Package}}, generated from
// {{.Count}} host classes by blender-go {{.Version}}.
package {{.Package}}
{{end}}
`))
