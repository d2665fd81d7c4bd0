package dynschema

// Validator is the uniform capability every leaf and composite validator
// implements: given an input value (nil when absent) and the Context of the
// current run, produce a possibly coerced value and record zero or more
// failures into the Context.
//
// The returned error carries only fatal conditions (a custom validation
// function failing); ordinary validation failures are recorded on the
// Context and never abort the run.
//
// The interface is sealed: the unexported schema-wiring methods keep the
// field-path bookkeeping consistent, so new validator kinds are added inside
// this package. Arbitrary domain rules plug in through the per-kind Function
// hooks instead.
type Validator interface {
	Validate(value any, ctx *Context) (any, error)

	// nestField is invoked exactly once per (validator, field) pairing when
	// the validator is attached under a named field. Arrays use it to
	// establish the field's placeholder shape and forward it to their
	// element validator; leaves ignore it.
	nestField(f *field)

	// prefixPaths propagates a newly added ancestor prefix down an already
	// attached subtree, keeping precomputed descendant paths consistent.
	prefixPaths(parent *field)

	// copyWithRequired returns a shallow copy with the required flag
	// overridden, leaving the shared original untouched.
	copyWithRequired(required bool) Validator
}

// Builder constructs an immutable validator schema. It retains every
// validator it creates, so a schema built once can be validated against from
// arbitrarily many goroutines for the lifetime of the Builder.
//
// Builders are not safe for concurrent construction; build the schema up
// front, then share the resulting validators freely.
type Builder struct {
	validators []Validator
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func register[T Validator](b *Builder, v T) T {
	b.validators = append(b.validators, v)
	return v
}

// Any creates a pass-through validator; see AnyConfig.
func (b *Builder) Any(cfg AnyConfig) *AnyValidator { return register(b, newAnyValidator(cfg)) }

// Bool creates a boolean validator; see BoolConfig.
func (b *Builder) Bool(cfg BoolConfig) *BoolValidator { return register(b, newBoolValidator(cfg)) }

// Int creates an integer validator; see IntConfig.
func (b *Builder) Int(cfg IntConfig) *IntValidator { return register(b, newIntValidator(cfg)) }

// Float creates a float validator; see FloatConfig.
func (b *Builder) Float(cfg FloatConfig) *FloatValidator { return register(b, newFloatValidator(cfg)) }

// String creates a string validator; see StringConfig.
func (b *Builder) String(cfg StringConfig) *StringValidator {
	return register(b, newStringValidator(cfg))
}

// UUID creates a UUID validator; see UUIDConfig.
func (b *Builder) UUID(cfg UUIDConfig) *UUIDValidator { return register(b, newUUIDValidator(cfg)) }

// Date creates a calendar date validator; see DateConfig.
func (b *Builder) Date(cfg DateConfig) *DateValidator { return register(b, newDateValidator(cfg)) }

// Time creates a time-of-day validator; see TimeConfig.
func (b *Builder) Time(cfg TimeConfig) *TimeValidator { return register(b, newTimeValidator(cfg)) }

// DateTime creates an RFC 3339 timestamp validator; see DateTimeConfig.
func (b *Builder) DateTime(cfg DateTimeConfig) *DateTimeValidator {
	return register(b, newDateTimeValidator(cfg))
}

// Array creates an array validator applying inner to every element; see
// ArrayConfig.
func (b *Builder) Array(inner Validator, cfg ArrayConfig) *ArrayValidator {
	return register(b, newArrayValidator(inner, cfg))
}

// Object creates an object validator from the declared fields; see
// ObjectConfig. Field declaration order is preserved and determines the
// order failures are recorded.
func (b *Builder) Object(fields []FieldSpec, cfg ObjectConfig) *ObjectValidator {
	return register(b, newObjectValidator(fields, cfg))
}

// Required returns a copy of v with the required flag set, without mutating
// the original. This supports sharing one base validator across schemas
// while making it required in a specific context.
func (b *Builder) Required(v Validator) Validator {
	return register(b, v.copyWithRequired(true))
}

// Optional returns a copy of v with the required flag cleared, the
// counterpart of Required.
func (b *Builder) Optional(v Validator) Validator {
	return register(b, v.copyWithRequired(false))
}
