package dynschema

import (
	"fmt"
	"strings"
)

// ObjectFunc is the custom validation hook for object validators, running
// after the built-in checks and field descent pass.
type ObjectFunc func(value map[string]any, ctx *Context) (map[string]any, error)

// FieldSpec declares one named field of an object schema. Declaration order
// is the validation order, which fixes the order failures are recorded.
type FieldSpec struct {
	Name      string
	Validator Validator
}

// ObjectConfig configures an object validator.
type ObjectConfig struct {
	Required bool
	// Min and Max bound the number of keys present in the input. A violated
	// bound is reported once and suppresses per-field validation.
	Min *int
	Max *int
	// Nest prefixes every failure path of this object with the given
	// segments, for mounting a shared sub-schema without introducing real
	// nested field names (e.g. Nest: []string{"user"} reports user.name).
	Nest     []string
	Function ObjectFunc
}

// ObjectValidator validates that a value is an object and applies a named
// validator per declared field, tracking the field for error paths.
type ObjectValidator struct {
	required   bool
	min        *int
	max        *int
	minInvalid Invalid
	maxInvalid Invalid
	fields     []objectField
	fn         ObjectFunc
}

type objectField struct {
	name      string
	field     *field
	validator Validator
}

func newObjectValidator(specs []FieldSpec, cfg ObjectConfig) *ObjectValidator {
	v := &ObjectValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		fields:   make([]objectField, 0, len(specs)),
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeObjectLenMin,
			Err:  fmt.Sprintf("must have at least %d fields", *cfg.Min),
			Data: map[string]any{"min": *cfg.Min},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeObjectLenMax,
			Err:  fmt.Sprintf("must have at most %d fields", *cfg.Max),
			Data: map[string]any{"max": *cfg.Max},
		}
	}

	for _, spec := range specs {
		f := &field{path: spec.Name}
		spec.Validator.nestField(f)
		v.fields = append(v.fields, objectField{
			name:      spec.Name,
			field:     f,
			validator: spec.Validator,
		})
	}

	if len(cfg.Nest) > 0 {
		v.nestField(&field{path: strings.Join(cfg.Nest, ".")})
	}

	return v
}

// Validate checks the object constraints and descends into every declared
// field. Coerced field values are written back in place, so the input doubles
// as the normalized output. Input keys with no declared validator pass
// through untouched.
func (v *ObjectValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	m, ok := value.(map[string]any)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeObject, Err: "must be an object"})
		return nil, nil
	}

	if v.min != nil && len(m) < *v.min {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && len(m) > *v.max {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	prev := ctx.field
	for _, of := range v.fields {
		ctx.field = of.field
		out, err := of.validator.Validate(m[of.name], ctx)
		if err != nil {
			ctx.field = prev
			return nil, err
		}
		if out != nil {
			m[of.name] = out
		}
	}
	ctx.field = prev

	return v.executeFunction(m, ctx)
}

func (v *ObjectValidator) executeFunction(value map[string]any, ctx *Context) (any, error) {
	if v.fn == nil {
		if value == nil {
			return nil, nil
		}
		return value, nil
	}
	out, err := v.fn(value, ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out, nil
}

// nestField prefixes every declared field with the parent path and pushes the
// new prefix down the subtree so deeply nested paths stay consistent. An
// object schema can be mounted under one parent; to reuse the same shape in
// two places, build it twice.
func (v *ObjectValidator) nestField(parent *field) {
	for _, of := range v.fields {
		of.field.applyPrefix(parent)
		of.validator.prefixPaths(parent)
	}
}

func (v *ObjectValidator) prefixPaths(parent *field) {
	v.nestField(parent)
}

func (v *ObjectValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
