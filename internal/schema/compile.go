package schema

import (
	_ "embed"
	"fmt"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

//go:embed class.cue
var classDefinition string

// Definition returns the #Class definition compiled in ctx's runtime.
// Values from different runtimes cannot be unified, so callers compile it
// once per cue.Context.
func Definition(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(classDefinition, cue.Filename("class.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, formatCUEError(err)
	}
	return v.LookupPath(cue.ParsePath("#Class")), nil
}

// CompileClass unifies v with def and decodes the result into a ClassSpec.
// The class name is the last path selector of v.
//
//	ctx := cuecontext.New()
//	def, _ := Definition(ctx)
//	v := ctx.CompileString(`class: Speaker: { base: "ID" }`)
//	spec, err := CompileClass(def, v.LookupPath(cue.ParsePath("class.Speaker")))
func CompileClass(def, v cue.Value) (*ir.ClassSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	name := labelName(v)
	if name == "" {
		return nil, &CompileError{Field: "class", Message: "class name is required", Pos: v.Pos()}
	}

	u := def.Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}
	spec := &ir.ClassSpec{}
	if err := u.Decode(spec); err != nil {
		return nil, formatCUEError(err)
	}
	spec.Name = name

	// Decode leaves absent lists nil; compiled specs always carry slices.
	if spec.Properties == nil {
		spec.Properties = []ir.PropertySpec{}
	}
	if spec.Functions == nil {
		spec.Functions = []ir.FunctionSpec{}
	}
	for i := range spec.Functions {
		if spec.Functions[i].Params == nil {
			spec.Functions[i].Params = []ir.ParamSpec{}
		}
	}
	return spec, nil
}

// labelName returns the last selector of v's path without CUE quoting.
func labelName(v cue.Value) string {
	labels := v.Path().Selectors()
	if len(labels) == 0 {
		return ""
	}
	name := labels[len(labels)-1].String()
	if unquoted, err := strconv.Unquote(name); err == nil {
		return unquoted
	}
	return name
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Report the first error, with its position when CUE has one.
	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &CompileError{Field: "cue", Message: first.Error()}
}
