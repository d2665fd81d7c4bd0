package dynschema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IntFunc is the custom validation hook for integer validators. A nil input
// pointer means the value was absent; returning nil produces a null result.
type IntFunc func(value *int64, ctx *Context) (*int64, error)

// IntConfig configures an integer validator.
type IntConfig struct {
	Required bool
	Min      *int64
	Max      *int64
	// Parse also accepts string input, converting it to an integer. The
	// coerced value replaces the string in the validated output.
	Parse    bool
	Default  *int64
	Function IntFunc
}

// IntValidator validates and coerces integer values. Floats with an exact
// integral value and json.Number inputs are accepted; strings are accepted
// when Parse is set.
type IntValidator struct {
	required   bool
	min        *int64
	max        *int64
	minInvalid Invalid
	maxInvalid Invalid
	parse      bool
	dflt       *int64
	fn         IntFunc
}

func newIntValidator(cfg IntConfig) *IntValidator {
	v := &IntValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		parse:    cfg.Parse,
		dflt:     cfg.Default,
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeIntMin,
			Err:  fmt.Sprintf("cannot be less than %d", *cfg.Min),
			Data: map[string]any{"min": *cfg.Min},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeIntMax,
			Err:  fmt.Sprintf("cannot be greater than %d", *cfg.Max),
			Data: map[string]any{"max": *cfg.Max},
		}
	}
	return v
}

func (v *IntValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	n, ok := coerceInt(value, v.parse)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeInt, Err: "must be an int"})
		return nil, nil
	}

	if v.min != nil && n < *v.min {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && n > *v.max {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	return v.executeFunction(&n, ctx)
}

func (v *IntValidator) executeFunction(value *int64, ctx *Context) (any, error) {
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

func (v *IntValidator) nestField(*field) {}

func (v *IntValidator) prefixPaths(*field) {}

func (v *IntValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}

func coerceInt(value any, parse bool) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case float64:
		// encoding/json decodes all numbers as float64; accept values that
		// are whole numbers, reject anything with a fractional part.
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case float32:
		if float64(n) != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		if !parse {
			return 0, false
		}
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
