package codegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// docBase is the root of the host's API reference.
const docBase = "https://docs.blender.org/api/current/"

type classView struct {
	Module     string
	Package    string
	Host       string // host class name
	Name       string
	Recv       string
	Doc        []string
	Embed      string
	EmbedField string
	EmbedInit  string
	Operator   bool
	OpPath     string
	Props      []propView
	Funcs      []funcView
}

type propView struct {
	Recv    string
	Class   string
	Name    string
	Doc     []string
	Lazy    bool // collection: built locally, no host call
	Void    bool
	Type    string
	Get     string
	Setter  string
	SetDoc  []string
	SetType string
	Set     string
}

type funcView struct {
	Recv    string
	Class   string
	Name    string
	Doc     []string
	HasOpts bool
	Type    string // empty for void
	Call    string
}

type enumView struct {
	Name   string
	Doc    []string
	Consts []constView
	Cases  string
}

type constView struct {
	Name  string
	Value string
}

type packageView struct {
	Module  string
	Package string
	Count   int
	Version string
	Enums   []enumView
}

// planner assigns Go names for one package.
type planner struct {
	module  string
	pkg     string
	global  names
	classes map[string]string // host class -> Go type
	enums   map[string]string // "Class.prop" -> enum type
	views   []enumView
}

func newPlanner(module, pkg string, classes []ir.ClassSpec) *planner {
	p := &planner{
		module:  module,
		pkg:     pkg,
		global:  names{},
		classes: make(map[string]string, len(classes)),
		enums:   make(map[string]string),
	}
	for _, c := range classes {
		p.classes[c.Name] = p.global.take(ClassName(c.Name))
	}
	for _, c := range classes {
		for _, prop := range c.Properties {
			if prop.Type != ir.TypeEnum && (prop.Type != ir.TypeEnumSet || len(prop.Items) == 0) {
				continue
			}
			name := p.global.take(p.classes[c.Name] + MemberName(prop.Name))
			p.enums[c.Name+"."+prop.Name] = name

			ev := enumView{
				Name: name,
				Doc:  []string{fmt.Sprintf("%s enumerates %s.%s.", name, c.Name, prop.Name)},
			}
			cases := make([]string, 0, len(prop.Items))
			for _, item := range prop.Items {
				cn := p.global.take(name + ConstName(item))
				ev.Consts = append(ev.Consts, constView{Name: cn, Value: item})
				cases = append(cases, cn)
			}
			ev.Cases = strings.Join(cases, ", ")
			p.views = append(p.views, ev)
		}
	}
	slices.SortFunc(p.views, func(a, b enumView) int { return strings.Compare(a.Name, b.Name) })
	return p
}

// class returns the Go type for a referenced host class.
func (p *planner) class(host string) (string, error) {
	name, ok := p.classes[host]
	if !ok {
		return "", fmt.Errorf("unknown class %q", host)
	}
	return name, nil
}

func (p *planner) classView(c ir.ClassSpec) (*classView, error) {
	name := p.classes[c.Name]
	v := &classView{
		Module:     p.module,
		Package:    p.pkg,
		Host:       c.Name,
		Name:       name,
		Recv:       receiver(name),
		Embed:      "interop.Proxy",
		EmbedField: "Proxy",
		EmbedInit:  "interop.NewProxy(c, accessor)",
		Operator:   c.IsOperator(),
	}

	if v.Operator {
		v.OpPath = OperatorPath(c.Name)
		v.Doc = []string{fmt.Sprintf("%s is the %s operator (%s).", name, v.OpPath, c.Name)}
		v.Doc = appendText(v.Doc, c.Description)
		module, _, _ := SplitOperator(c.Name)
		v.Doc = append(v.Doc, "", docBase+"bpy.ops."+strings.ToLower(module)+".html#"+v.OpPath)
	} else {
		v.Doc = []string{fmt.Sprintf("%s wraps bpy.types.%s.", name, c.Name)}
		v.Doc = appendText(v.Doc, c.Description)
		v.Doc = append(v.Doc, "", docBase+"bpy.types."+c.Name+".html")
	}

	switch {
	case c.CollectionOf != "":
		elem, err := p.class(c.CollectionOf)
		if err != nil {
			return nil, fmt.Errorf("%s.collection_of: %w", c.Name, err)
		}
		v.Embed = "collection.Collection[" + elem + "]"
		v.EmbedField = "Collection"
		v.EmbedInit = "collection.New(c, accessor, New" + elem + ")"
	case c.Base != "":
		base, err := p.class(c.Base)
		if err != nil {
			return nil, fmt.Errorf("%s.base: %w", c.Name, err)
		}
		v.Embed = base
		v.EmbedField = base
		v.EmbedInit = "New" + base + "(c, accessor)"
	}

	members := names{v.EmbedField: true}
	for r := range reserved {
		members[r] = true
	}
	for _, prop := range c.Properties {
		pv, err := p.propView(c, v, prop, members)
		if err != nil {
			return nil, err
		}
		v.Props = append(v.Props, pv)
	}
	for _, fn := range c.Functions {
		fv, err := p.funcView(v, fn, members)
		if err != nil {
			return nil, err
		}
		v.Funcs = append(v.Funcs, fv)
	}
	return v, nil
}

func (p *planner) propView(c ir.ClassSpec, cv *classView, prop ir.PropertySpec, members names) (propView, error) {
	r := cv.Recv
	caller := r + ".Caller()"
	path := fmt.Sprintf("%s.Path(%q)", r, prop.Name)

	pv := propView{
		Recv:  r,
		Class: cv.Name,
		Name:  members.take(MemberName(prop.Name)),
	}
	pv.Doc = []string{fmt.Sprintf("%s returns %s.", pv.Name, prop.Name)}
	pv.Doc = appendText(pv.Doc, prop.Description)
	if prop.Detail != "" {
		pv.Doc = append(pv.Doc, "", docQuotes.Replace(prop.Detail))
	}

	args := fmt.Sprintf("ctx, %s, %s", caller, path)
	switch {
	case prop.ArrayLength > 0:
		elem := scalarGoType(prop.Type)
		pv.Type = "[]" + elem
		pv.Get = fmt.Sprintf("interop.GetArray[%s](%s, %d)", elem, args, prop.ArrayLength)
		pv.SetType = pv.Type
		pv.Set = fmt.Sprintf("interop.SetArray(%s, value)", args)
	case prop.Type == ir.TypeBoolean, prop.Type == ir.TypeInt, prop.Type == ir.TypeFloat, prop.Type == ir.TypeString:
		suffix := accessorSuffix(prop.Type)
		pv.Type = scalarGoType(prop.Type)
		pv.Get = fmt.Sprintf("interop.Get%s(%s)", suffix, args)
		pv.SetType = pv.Type
		pv.Set = fmt.Sprintf("interop.Set%s(%s, value)", suffix, args)
	case prop.Type == ir.TypeEnum:
		enum := p.enums[c.Name+"."+prop.Name]
		pv.Type = enum
		pv.Get = fmt.Sprintf("interop.GetEnum[%s](%s)", enum, args)
		pv.SetType = enum
		pv.Set = fmt.Sprintf("interop.SetEnum(%s, value)", args)
	case prop.Type == ir.TypeEnumSet:
		elem := "string"
		if enum, ok := p.enums[c.Name+"."+prop.Name]; ok {
			elem = enum
		}
		pv.Type = "[]" + elem
		pv.Get = fmt.Sprintf("interop.GetEnumSet[%s](%s)", elem, args)
		pv.SetType = pv.Type
		pv.Set = fmt.Sprintf("interop.SetEnumSet(%s, value)", args)
	case prop.Type == ir.TypeClass:
		target, err := p.class(prop.Class)
		if err != nil {
			return pv, fmt.Errorf("%s.%s: %w", c.Name, prop.Name, err)
		}
		pv.Type = target
		pv.Get = fmt.Sprintf("interop.GetClass(%s, New%s)", args, target)
		pv.SetType = "interop.Accessor"
		pv.Set = fmt.Sprintf("interop.SetClass(%s, value)", args)
	case prop.Type == ir.TypeCollection:
		pv.Lazy = true
		if prop.Wrapper != "" {
			wrapper, err := p.class(prop.Wrapper)
			if err != nil {
				return pv, fmt.Errorf("%s.%s: %w", c.Name, prop.Name, err)
			}
			pv.Type = wrapper
			pv.Get = fmt.Sprintf("New%s(%s, %s)", wrapper, caller, path)
			break
		}
		elem, err := p.class(prop.Class)
		if err != nil {
			return pv, fmt.Errorf("%s.%s: %w", c.Name, prop.Name, err)
		}
		pv.Type = "collection.Collection[" + elem + "]"
		pv.Get = fmt.Sprintf("collection.New(%s, %s, New%s)", caller, path, elem)
	case prop.Type == ir.TypeVoid:
		pv.Void = true
		pv.Get = fmt.Sprintf("interop.GetVoid(%s)", args)
	default:
		return pv, fmt.Errorf("%s.%s: unsupported type %q", c.Name, prop.Name, prop.Type)
	}

	if prop.Readonly || pv.Lazy || pv.Void {
		pv.Set = ""
		pv.SetType = ""
		return pv, nil
	}
	pv.Setter = members.take("Set" + pv.Name)
	pv.SetDoc = []string{fmt.Sprintf("%s assigns %s.", pv.Setter, prop.Name)}
	if prop.Detail != "" {
		pv.SetDoc = append(pv.SetDoc, "", docQuotes.Replace(prop.Detail))
	}
	return pv, nil
}

func (p *planner) funcView(cv *classView, fn ir.FunctionSpec, members names) (funcView, error) {
	r := cv.Recv
	fv := funcView{
		Recv:    r,
		Class:   cv.Name,
		Name:    members.take(MemberName(fn.Name)),
		HasOpts: len(fn.Params) > 0,
	}
	fv.Doc = []string{fmt.Sprintf("%s calls %s.", fv.Name, fn.Name)}
	fv.Doc = appendText(fv.Doc, fn.Description)
	if fv.HasOpts {
		fv.Doc = append(fv.Doc, "", "Options:")
		for _, param := range fn.Params {
			fv.Doc = append(fv.Doc, "  - "+param.Name+": "+paramType(param))
		}
	}

	opts := "nil"
	if fv.HasOpts {
		opts = "opts"
	}
	args := fmt.Sprintf("ctx, %s.Caller(), %s.Path(%q), %s", r, r, fn.Name, opts)

	switch fn.Returns {
	case "", ir.TypeVoid:
		fv.Call = fmt.Sprintf("interop.CallVoid(%s)", args)
	case ir.TypeBoolean, ir.TypeInt, ir.TypeFloat, ir.TypeString:
		fv.Type = scalarGoType(fn.Returns)
		fv.Call = fmt.Sprintf("interop.Call%s(%s)", accessorSuffix(fn.Returns), args)
	case ir.TypeEnum:
		fv.Type = "string"
		fv.Call = fmt.Sprintf("interop.CallString(%s)", args)
	case ir.TypeEnumSet:
		fv.Type = "[]string"
		fv.Call = fmt.Sprintf("interop.CallEnumSet[string](%s)", args)
	case ir.TypeClass:
		target, err := p.class(fn.ReturnClass)
		if err != nil {
			return fv, fmt.Errorf("%s.%s: %w", cv.Host, fn.Name, err)
		}
		fv.Type = target
		fv.Call = fmt.Sprintf("interop.CallClass(%s, New%s)", args, target)
	case ir.TypeCollection:
		elem, err := p.class(fn.ReturnClass)
		if err != nil {
			return fv, fmt.Errorf("%s.%s: %w", cv.Host, fn.Name, err)
		}
		fv.Type = "collection.Collection[" + elem + "]"
		fv.Call = fmt.Sprintf("interop.CallClass(%s, collection.Of(New%s))", args, elem)
	default:
		return fv, fmt.Errorf("%s.%s: unsupported return type %q", cv.Host, fn.Name, fn.Returns)
	}
	return fv, nil
}

func scalarGoType(t ir.PropType) string {
	switch t {
	case ir.TypeBoolean:
		return "bool"
	case ir.TypeInt:
		return "int64"
	case ir.TypeFloat:
		return "float64"
	default:
		return "string"
	}
}

func accessorSuffix(t ir.PropType) string {
	switch t {
	case ir.TypeBoolean:
		return "Boolean"
	case ir.TypeInt:
		return "Integer"
	case ir.TypeFloat:
		return "Float"
	default:
		return "String"
	}
}

func paramType(p ir.ParamSpec) string {
	s := string(p.Type)
	switch {
	case p.Class != "":
		s += " " + p.Class
	case len(p.Items) > 0:
		s += " in [" + strings.Join(p.Items, ", ") + "]"
	}
	if p.ArrayLength > 0 {
		s += fmt.Sprintf(" array of %d", p.ArrayLength)
	}
	return s
}

// docQuotes rewrites the quote pairs gofmt would turn into typographic
// quotes in a doc comment.
var docQuotes = strings.NewReplacer("''", `""`, "``", `""`)

// appendText adds a free-form description as comment lines.
func appendText(doc []string, text string) []string {
	text = docQuotes.Replace(strings.TrimSpace(text))
	if text == "" {
		return doc
	}
	return append(doc, strings.Split(text, "\n")...)
}
