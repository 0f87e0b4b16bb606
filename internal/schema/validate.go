package schema

import (
	"fmt"
	"regexp"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Validation error codes (E200-E299)
const (
	ErrDuplicateClass   = "E201" // class declared twice
	ErrDuplicateMember  = "E202" // property or function name repeated within a class
	ErrUnknownType      = "E203" // type string is not a known PropType
	ErrEnumWithoutItems = "E204" // enum or enum_set has no items
	ErrUnknownClass     = "E205" // referenced class is not declared
	ErrArrayOnNonScalar = "E206" // array_length on a non-scalar type
	ErrOperatorProperty = "E207" // operator classes cannot declare properties
	ErrInvalidName      = "E208" // member name is not an identifier
	ErrBaseCycle        = "E209" // inheritance cycle
)

// ValidationError represents a schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a set of compiled classes as a whole.
// Returns all errors found (does not fail-fast).
func Validate(classes []ir.ClassSpec) []ValidationError {
	var errs []ValidationError

	declared := make(map[string]bool, len(classes))
	for i, c := range classes {
		// E201: duplicate class
		if declared[c.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("classes[%d].name", i),
				Message: fmt.Sprintf("duplicate class: %q", c.Name),
				Code:    ErrDuplicateClass,
			})
		}
		declared[c.Name] = true
	}

	for _, c := range classes {
		errs = append(errs, validateClass(c, declared)...)
	}

	for _, cycle := range AnalyzeBases(classes) {
		errs = append(errs, ValidationError{
			Field:   fmt.Sprintf("%s.base", cycle.Path[0]),
			Message: cycle.Message,
			Code:    ErrBaseCycle,
		})
	}

	return errs
}

func validateClass(c ir.ClassSpec, declared map[string]bool) []ValidationError {
	var errs []ValidationError
	classRef := func(field, name string) {
		// E205: referenced class must exist
		if name != "" && !declared[name] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown class %q", name),
				Code:    ErrUnknownClass,
			})
		}
	}

	classRef(c.Name+".base", c.Base)
	classRef(c.Name+".collection_of", c.CollectionOf)

	// E207: operators take their parameters through Options
	if c.IsOperator() && len(c.Properties) > 0 {
		errs = append(errs, ValidationError{
			Field:   c.Name + ".properties",
			Message: fmt.Sprintf("operator %q cannot declare properties", c.Name),
			Code:    ErrOperatorProperty,
		})
	}

	members := make(map[string]bool)
	member := func(field, name string) {
		// E208: member names become Go identifiers and host attribute names
		if !identPattern.MatchString(name) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("member name %q is not an identifier", name),
				Code:    ErrInvalidName,
			})
		}
		// E202: properties and functions share one namespace on the host
		if members[name] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate member %q in class %q", name, c.Name),
				Code:    ErrDuplicateMember,
			})
		}
		members[name] = true
	}

	for _, p := range c.Properties {
		field := c.Name + "." + p.Name
		member(field, p.Name)
		errs = append(errs, validateType(field, p.Type, p.Items, p.ArrayLength)...)
		classRef(field+".class", p.Class)
		classRef(field+".wrapper", p.Wrapper)
	}

	for _, f := range c.Functions {
		field := c.Name + "." + f.Name
		member(field, f.Name)
		if f.Returns != "" {
			errs = append(errs, validateType(field+".returns", f.Returns, nil, 0)...)
		}
		classRef(field+".return_class", f.ReturnClass)

		params := make(map[string]bool)
		for _, p := range f.Params {
			pfield := field + "(" + p.Name + ")"
			if !identPattern.MatchString(p.Name) {
				errs = append(errs, ValidationError{
					Field:   pfield,
					Message: fmt.Sprintf("parameter name %q is not an identifier", p.Name),
					Code:    ErrInvalidName,
				})
			}
			if params[p.Name] {
				errs = append(errs, ValidationError{
					Field:   pfield,
					Message: fmt.Sprintf("duplicate parameter %q", p.Name),
					Code:    ErrDuplicateMember,
				})
			}
			params[p.Name] = true
			errs = append(errs, validateType(pfield, p.Type, p.Items, p.ArrayLength)...)
			classRef(pfield+".class", p.Class)
		}
	}

	return errs
}

// validateType checks one type with its enum items and array length.
func validateType(field string, t ir.PropType, items []string, arrayLength int) []ValidationError {
	var errs []ValidationError

	// E203: known type
	if !ir.ValidPropTypes[t] {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("unknown type %q", t),
			Code:    ErrUnknownType,
		})
		return errs
	}

	// E204: enum needs items. An enum_set may be empty ("enum set in {}").
	if t == ir.TypeEnum && len(items) == 0 {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "enum requires at least one item",
			Code:    ErrEnumWithoutItems,
		})
	}

	// E206: only scalars form fixed-length arrays
	if arrayLength > 0 && !t.IsScalar() {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("array_length on non-scalar type %q", t),
			Code:    ErrArrayOnNonScalar,
		})
	}

	return errs
}
