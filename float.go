package dynschema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FloatFunc is the custom validation hook for float validators.
type FloatFunc func(value *float64, ctx *Context) (*float64, error)

// FloatConfig configures a float validator.
type FloatConfig struct {
	Required bool
	Min      *float64
	Max      *float64
	// Parse also accepts string input, converting it to a float.
	Parse    bool
	Default  *float64
	Function FloatFunc
}

// FloatValidator validates and coerces floating point values. Integer inputs
// are widened; strings are accepted when Parse is set.
type FloatValidator struct {
	required   bool
	min        *float64
	max        *float64
	minInvalid Invalid
	maxInvalid Invalid
	parse      bool
	dflt       *float64
	fn         FloatFunc
}

func newFloatValidator(cfg FloatConfig) *FloatValidator {
	v := &FloatValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		parse:    cfg.Parse,
		dflt:     cfg.Default,
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeFloatMin,
			Err:  fmt.Sprintf("cannot be less than %v", *cfg.Min),
			Data: map[string]any{"min": *cfg.Min},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeFloatMax,
			Err:  fmt.Sprintf("cannot be greater than %v", *cfg.Max),
			Data: map[string]any{"max": *cfg.Max},
		}
	}
	return v
}

func (v *FloatValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	f, ok := coerceFloat(value, v.parse)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeFloat, Err: "must be a float"})
		return nil, nil
	}

	if v.min != nil && f < *v.min {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && f > *v.max {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	return v.executeFunction(&f, ctx)
}

func (v *FloatValidator) executeFunction(value *float64, ctx *Context) (any, error) {
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

func (v *FloatValidator) nestField(*field) {}

func (v *FloatValidator) prefixPaths(*field) {}

func (v *FloatValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}

func coerceFloat(value any, parse bool) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		if !parse {
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
