package dynschema

// AnyFunc is the custom validation hook for pass-through validators.
type AnyFunc func(value any, ctx *Context) (any, error)

// AnyConfig configures a pass-through validator.
type AnyConfig struct {
	Required bool
	Default  any
	Function AnyFunc
}

// AnyValidator accepts any value unchanged. It exists so schemas can mark a
// field required (or attach a custom function) without constraining its type.
type AnyValidator struct {
	required bool
	dflt     any
	fn       AnyFunc
}

func newAnyValidator(cfg AnyConfig) *AnyValidator {
	return &AnyValidator{required: cfg.Required, dflt: cfg.Default, fn: cfg.Function}
}

func (v *AnyValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		if v.fn == nil {
			return v.dflt, nil
		}
	}
	if v.fn == nil {
		return value, nil
	}
	return v.fn(value, ctx)
}

func (v *AnyValidator) nestField(*field) {}

func (v *AnyValidator) prefixPaths(*field) {}

func (v *AnyValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
