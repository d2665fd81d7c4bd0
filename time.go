package dynschema

import "time"

// Accepted time-of-day formats, longest first.
var timeLayouts = []string{"15:04:05", "15:04"}

// TimeFunc is the custom validation hook for time-of-day validators.
type TimeFunc func(value *time.Time, ctx *Context) (*time.Time, error)

// TimeConfig configures a time-of-day validator.
type TimeConfig struct {
	Required bool
	Default  *time.Time
	Function TimeFunc
}

// TimeValidator validates "HH:MM:SS" (or "HH:MM") strings and coerces them
// to a time.Time on the zero date.
type TimeValidator struct {
	required bool
	dflt     *time.Time
	fn       TimeFunc
}

func newTimeValidator(cfg TimeConfig) *TimeValidator {
	return &TimeValidator{required: cfg.Required, dflt: cfg.Default, fn: cfg.Function}
}

func (v *TimeValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	s, ok := value.(string)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeTime, Err: "must be a time"})
		return nil, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return v.executeFunction(&t, ctx)
		}
	}
	ctx.Add(Invalid{Code: CodeTypeTime, Err: "must be a time"})
	return nil, nil
}

func (v *TimeValidator) executeFunction(value *time.Time, ctx *Context) (any, error) {
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

func (v *TimeValidator) nestField(*field) {}

func (v *TimeValidator) prefixPaths(*field) {}

func (v *TimeValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
