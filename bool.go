package dynschema

// BoolFunc is the custom validation hook for boolean validators.
type BoolFunc func(value *bool, ctx *Context) (*bool, error)

// BoolConfig configures a boolean validator.
type BoolConfig struct {
	Required bool
	// Parse also accepts string input: "true"/"t"/"1" and "false"/"f"/"0"
	// (case-insensitive) coerce to the corresponding boolean; any other
	// string is a type failure.
	Parse    bool
	Default  *bool
	Function BoolFunc
}

// BoolValidator validates and coerces boolean values.
type BoolValidator struct {
	required bool
	parse    bool
	dflt     *bool
	fn       BoolFunc
}

func newBoolValidator(cfg BoolConfig) *BoolValidator {
	return &BoolValidator{
		required: cfg.Required,
		parse:    cfg.Parse,
		dflt:     cfg.Default,
		fn:       cfg.Function,
	}
}

func (v *BoolValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	b, ok := value.(bool)
	if !ok {
		if s, isString := value.(string); isString && v.parse {
			b, ok = parseBool(s)
		}
		if !ok {
			ctx.Add(Invalid{Code: CodeTypeBool, Err: "must be a bool"})
			return nil, nil
		}
	}

	return v.executeFunction(&b, ctx)
}

func (v *BoolValidator) executeFunction(value *bool, ctx *Context) (any, error) {
	if v.fn == nil {
		if value == nil {
			if v.dflt != nil {
				return *v.dflt, nil
			}
			return nil, nil
		}
		return *value, nil
	}
	out, err := v.fn(value, ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

func (v *BoolValidator) nestField(*field) {}

func (v *BoolValidator) prefixPaths(*field) {}

func (v *BoolValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true", "True", "TRUE", "t", "T", "1":
		return true, true
	case "false", "False", "FALSE", "f", "F", "0":
		return false, true
	default:
		return false, false
	}
}
