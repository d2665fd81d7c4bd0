package dynschema

import (
	"fmt"
	"time"
)

// DateLayout is the accepted calendar date format.
const DateLayout = "2006-01-02"

// DateFunc is the custom validation hook for date validators.
type DateFunc func(value *time.Time, ctx *Context) (*time.Time, error)

// DateConfig configures a calendar date validator.
type DateConfig struct {
	Required bool
	// Min and Max bound the accepted date range, inclusive.
	Min      *time.Time
	Max      *time.Time
	Default  *time.Time
	Function DateFunc
}

// DateValidator validates "YYYY-MM-DD" strings and coerces them to a
// time.Time at midnight UTC. time.Time input passes through with its clock
// portion truncated.
type DateValidator struct {
	required   bool
	min        *time.Time
	max        *time.Time
	minInvalid Invalid
	maxInvalid Invalid
	dflt       *time.Time
	fn         DateFunc
}

func newDateValidator(cfg DateConfig) *DateValidator {
	v := &DateValidator{
		required: cfg.Required,
		min:      cfg.Min,
		max:      cfg.Max,
		dflt:     cfg.Default,
		fn:       cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeDateMin,
			Err:  fmt.Sprintf("cannot be before %s", cfg.Min.Format(DateLayout)),
			Data: map[string]any{"min": cfg.Min.Format(DateLayout)},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeDateMax,
			Err:  fmt.Sprintf("cannot be after %s", cfg.Max.Format(DateLayout)),
			Data: map[string]any{"max": cfg.Max.Format(DateLayout)},
		}
	}
	return v
}

func (v *DateValidator) Validate(value any, ctx *Context) (any, error) {
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
		t = in.Truncate(24 * time.Hour)
	case string:
		parsed, err := time.Parse(DateLayout, in)
		if err != nil {
			ctx.Add(Invalid{Code: CodeTypeDate, Err: "must be a date"})
			return nil, nil
		}
		t = parsed
	default:
		ctx.Add(Invalid{Code: CodeTypeDate, Err: "must be a date"})
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

func (v *DateValidator) executeFunction(value *time.Time, ctx *Context) (any, error) {
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

func (v *DateValidator) nestField(*field) {}

func (v *DateValidator) prefixPaths(*field) {}

func (v *DateValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
