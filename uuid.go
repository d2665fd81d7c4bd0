package dynschema

import "github.com/google/uuid"

// UUIDFunc is the custom validation hook for UUID validators.
type UUIDFunc func(value *uuid.UUID, ctx *Context) (*uuid.UUID, error)

// UUIDConfig configures a UUID validator.
type UUIDConfig struct {
	Required bool
	Function UUIDFunc
}

// UUIDValidator validates that a value is a canonically formatted UUID
// string and coerces it to a uuid.UUID.
type UUIDValidator struct {
	required bool
	fn       UUIDFunc
}

func newUUIDValidator(cfg UUIDConfig) *UUIDValidator {
	return &UUIDValidator{required: cfg.Required, fn: cfg.Function}
}

func (v *UUIDValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	if id, ok := value.(uuid.UUID); ok {
		return v.executeFunction(&id, ctx)
	}

	s, ok := value.(string)
	if !ok || !isUUIDShaped(s) {
		ctx.Add(Invalid{Code: CodeTypeUUID, Err: "must be a UUID"})
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		ctx.Add(Invalid{Code: CodeTypeUUID, Err: "must be a UUID"})
		return nil, nil
	}

	return v.executeFunction(&id, ctx)
}

func (v *UUIDValidator) executeFunction(value *uuid.UUID, ctx *Context) (any, error) {
	if v.fn == nil {
		if value == nil {
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

func (v *UUIDValidator) nestField(*field) {}

func (v *UUIDValidator) prefixPaths(*field) {}

func (v *UUIDValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}

// isUUIDShaped cheaply rejects values that cannot parse, avoiding the full
// parse for obvious garbage.
func isUUIDShaped(s string) bool {
	if len(s) != 36 {
		return false
	}
	return s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}
