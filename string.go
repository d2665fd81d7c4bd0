package dynschema

import (
	"fmt"
	"regexp"
	"strings"
)

// StringFunc is the custom validation hook for string validators.
type StringFunc func(value *string, ctx *Context) (*string, error)

// StringConfig configures a string validator.
type StringConfig struct {
	Required bool
	// Min and Max bound the string length in bytes.
	Min *int
	Max *int
	// Choices restricts the value to an enumerated set.
	Choices []string
	// Pattern is a regular expression the value must match. It is compiled
	// at schema build time; an invalid pattern panics the build.
	Pattern string
	// TrimSpace normalizes the value before any checks run; the trimmed
	// value is what constraints see and what the output carries.
	TrimSpace bool
	Default   *string
	Function  StringFunc
}

// StringValidator validates string values against length, choice, and
// pattern constraints.
type StringValidator struct {
	required       bool
	min            *int
	max            *int
	minInvalid     Invalid
	maxInvalid     Invalid
	choices        []string
	choiceInvalid  Invalid
	pattern        *regexp.Regexp
	patternInvalid Invalid
	trimSpace      bool
	dflt           *string
	fn             StringFunc
}

func newStringValidator(cfg StringConfig) *StringValidator {
	v := &StringValidator{
		required:  cfg.Required,
		min:       cfg.Min,
		max:       cfg.Max,
		choices:   cfg.Choices,
		trimSpace: cfg.TrimSpace,
		dflt:      cfg.Default,
		fn:        cfg.Function,
	}
	if cfg.Min != nil {
		v.minInvalid = Invalid{
			Code: CodeStringLenMin,
			Err:  fmt.Sprintf("must be at least %d characters long", *cfg.Min),
			Data: map[string]any{"min": *cfg.Min},
		}
	}
	if cfg.Max != nil {
		v.maxInvalid = Invalid{
			Code: CodeStringLenMax,
			Err:  fmt.Sprintf("must be at most %d characters long", *cfg.Max),
			Data: map[string]any{"max": *cfg.Max},
		}
	}
	if len(cfg.Choices) > 0 {
		v.choiceInvalid = Invalid{
			Code: CodeStringChoice,
			Err:  fmt.Sprintf("must be one of: %s", strings.Join(cfg.Choices, ", ")),
			Data: map[string]any{"choices": cfg.Choices},
		}
	}
	if cfg.Pattern != "" {
		v.pattern = regexp.MustCompile(cfg.Pattern)
		v.patternInvalid = Invalid{
			Code: CodeStringPattern,
			Err:  "is not valid",
			Data: map[string]any{"pattern": cfg.Pattern},
		}
	}
	return v
}

func (v *StringValidator) Validate(value any, ctx *Context) (any, error) {
	if value == nil {
		if v.required {
			ctx.Add(invalidRequired())
			return nil, nil
		}
		return v.executeFunction(nil, ctx)
	}

	s, ok := value.(string)
	if !ok {
		ctx.Add(Invalid{Code: CodeTypeString, Err: "must be a string"})
		return nil, nil
	}
	if v.trimSpace {
		s = strings.TrimSpace(s)
	}

	if v.min != nil && len(s) < *v.min {
		ctx.Add(v.minInvalid)
		return nil, nil
	}
	if v.max != nil && len(s) > *v.max {
		ctx.Add(v.maxInvalid)
		return nil, nil
	}

	if len(v.choices) > 0 {
		matched := false
		for _, choice := range v.choices {
			if s == choice {
				matched = true
				break
			}
		}
		if !matched {
			ctx.Add(v.choiceInvalid)
			return nil, nil
		}
	}

	if v.pattern != nil && !v.pattern.MatchString(s) {
		ctx.Add(v.patternInvalid)
		return nil, nil
	}

	return v.executeFunction(&s, ctx)
}

func (v *StringValidator) executeFunction(value *string, ctx *Context) (any, error) {
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

func (v *StringValidator) nestField(*field) {}

func (v *StringValidator) prefixPaths(*field) {}

func (v *StringValidator) copyWithRequired(required bool) Validator {
	clone := *v
	clone.required = required
	return &clone
}
