package dynschema

import (
	"fmt"
	"time"
)

// DateTimeFunc is the custom validation hook for datetime validators.
type DateTimeFunc func(value *time.Time, ctx *Context) (*time.Time, error)

// DateTimeConfig configures an RFC 3339 timestamp validator.
type DateTimeConfig struct {
	Required bool
	// Min and Max bound the accepted timestamp range, inclusive.
	Min      *time.Time
	Max      *time.Time
	Default  *time.Time
	Function DateTimeFunc
}

// DateTimeValidator validates RFC 3339 strings and coerces them to
// time.Time. time.Time input passes through unchanged.
type DateTimeValidator struct {
	required   bool
	min        *time.Time
	max        *time.Time
	minInvalid Invalid
	maxInvalid Invalid
	dflt       *time.Time
	fn         DateTimeFunc
}

func newDateTimeValidator(cfg DateTimeConfig) *DateTimeValidator {
	v := &DateTimeValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		dflt:     cfg.Default,
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeDateMin,
			Err:  fmt.Sprintf("cannot be before %s", cfg.Min.Format(time.RFC3339)),
			Data: map[string]any{"min": cfg.Min.Format(time.RFC3339)},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeDateMax,
			Err:  fmt.Sprintf("cannot be after %s", cfg.Max.Format(time.RFC3339)),
			Data: map[string]any{"max": cfg.Max.Format(time.RFC3339)},
		}
	}
	return v
}

func (v *DateTimeValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	var t time.Time
	switch in := value.(type) {
	case time.Time:
		t = in
	case string:
		parsed, err := time.Parse(time.RFC3339, in)
		if err != nil {
			ctx.Add(Invalid{Code: CodeTypeDateTime, Err: "must be a datetime"})
			return nil, nil
		}
		t = parsed
	default:
		ctx.Add(Invalid{Code: CodeTypeDateTime, Err: "must be a datetime"})
		return nil, nil
	}

	if v.min != nil && t.Before(*v.min) {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && t.After(*v.max) {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	return v.executeFunction(&t, ctx)
}

func (v *DateTimeValidator) executeFunction(value *time.Time, ctx *Context) (any, error) {
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

func (v *DateTimeValidator) nestField(*field) {}

func (v *DateTimeValidator) prefixPaths(*field) {}

func (v *DateTimeValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
