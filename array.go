package dynschema

import "fmt"

// ArrayFunc is the custom validation hook for array validators. It runs after
// the built-in checks and element descent pass, may transform the value, and
// may record further failures on the Context.
type ArrayFunc func(value []any, ctx *Context) ([]any, error)

// ArrayConfig configures an array validator.
type ArrayConfig struct {
	Required bool
	// Min and Max bound the element count. A violated bound is reported once
	// and suppresses per-element validation.
	Min      *int
	Max      *int
	Function ArrayFunc
}

// ArrayValidator validates that a value is an array and applies its element
// validator to every member, tracking the element index for error paths.
type ArrayValidator struct {
	required   bool
	min        *int
	max        *int
	minInvalid Invalid
	maxInvalid Invalid
	child      Validator
	fn         ArrayFunc
}

func newArrayValidator(child Validator, cfg ArrayConfig) *ArrayValidator {
	v := &ArrayValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		child:    child,
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeArrayLenMin,
			Err:  fmt.Sprintf("must have at least %d items", *cfg.Min),
			Data: map[string]any{"min": *cfg.Min},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeArrayLenMax,
			Err:  fmt.Sprintf("must have at most %d items", *cfg.Max),
			Data: map[string]any{"max": *cfg.Max},
		}
	}
	return v
}

// Validate checks the array constraints and descends into every element.
// Coerced element values are written back in place, so the input doubles as
// the normalized output.
func (v *ArrayValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	arr, ok := value.([]any)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeArray, Err: "must be an array"})
		return nil, nil
	}

	// A length violation makes per-element errors noise; report it alone.
	if v.min != nil && len(arr) < *v.min {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && len(arr) > *v.max {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	ctx.StartArray()
	for i, item := range arr {
		ctx.ArrayIndex(i)
		out, err := v.child.Validate(item, ctx)
		if err != nil {
			ctx.EndArray()
			return nil, err
		}
		if out != nil {
			arr[i] = out
		}
	}
	ctx.EndArray()

	return v.executeFunction(arr, ctx)
}

func (v *ArrayValidator) executeFunction(value []any, ctx *Context) (any, error) {
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

func (v *ArrayValidator) nestField(f *field) {
	if f.parts == nil {
		f.parts = []string{f.path, ""}
	} else {
		f.parts = append(f.parts, "")
	}
	v.child.nestField(f)
}

func (v *ArrayValidator) prefixPaths(parent *field) {
	v.child.prefixPaths(parent)
}

func (v *ArrayValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
