package dynschema

const (
	// DefaultMaxErrors bounds the failure buffer when ContextConfig leaves it unset.
	DefaultMaxErrors = 20
	// DefaultMaxNesting bounds array index tracking when ContextConfig leaves it unset.
	DefaultMaxNesting = 10
)

// ContextConfig configures the fixed resource bounds of a Context.
type ContextConfig struct {
	// MaxErrors caps the number of recorded failures. Failures past the cap
	// are silently dropped; validation itself never fails from too many
	// errors.
	MaxErrors int
	// MaxNesting caps array index tracking depth. Validation of deeper input
	// still runs, but indexes beyond the cap stop contributing to paths.
	MaxNesting int
	// State is an opaque caller value passed through to custom validation
	// functions.
	State any
}

// Context holds the state of a single validation run: the bounded failure
// buffer, the active field, and the array nesting-index stack.
//
// A Context is not safe for concurrent use; own one per in-flight validation,
// either standalone via NewContext or drawn from a Pool.
type Context struct {
	// State is the opaque caller value supplied at creation or checkout.
	// Custom validation functions read it to apply context-dependent rules.
	State any

	errors  []InvalidField
	field   *field
	indexes []int
	// depth is the true array nesting depth (-1 outside arrays). It can
	// exceed the index stack capacity; tracking saturates, it never grows.
	depth int
}

// NewContext creates a standalone Context with the given bounds.
// Zero or negative bounds fall back to the package defaults.
func NewContext(cfg ContextConfig) *Context {
	maxErrors := cfg.MaxErrors
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	maxNesting := cfg.MaxNesting
	if maxNesting <= 0 {
		maxNesting = DefaultMaxNesting
	}

	return &Context{
		State:   cfg.State,
		errors:  make([]InvalidField, 0, maxErrors),
		indexes: make([]int, 0, maxNesting),
		depth:   -1,
	}
}

// Add records a validation failure against the currently active field,
// resolving the full dotted/indexed path. Once the failure buffer is full,
// further failures are dropped.
func (c *Context) Add(inv Invalid) {
	c.AddOn(c.FieldPath(), inv)
}

// AddOn records a validation failure against an explicit field path. Custom
// validation functions use it to report failures for fields the schema does
// not model directly.
func (c *Context) AddOn(fieldPath string, inv Invalid) {
	if len(c.errors) == cap(c.errors) {
		return
	}
	c.errors = append(c.errors, InvalidField{Invalid: inv, Field: fieldPath})
}

// FieldPath resolves the path of the currently active field, including any
// recorded array indexes. Empty at the root.
func (c *Context) FieldPath() string {
	if c.field == nil {
		if len(c.indexes) == 0 {
			return ""
		}
		return (&field{}).render(c.indexes)
	}
	return c.field.render(c.indexes)
}

// StartArray pushes one level onto the nesting-index stack. Called by array
// validators before visiting elements; custom composite validators may call
// it for the same purpose.
func (c *Context) StartArray() {
	c.depth++
	if c.depth < cap(c.indexes) {
		c.indexes = c.indexes[:c.depth+1]
		c.indexes[c.depth] = 0
	}
}

// ArrayIndex records the element index at the innermost array level.
func (c *Context) ArrayIndex(i int) {
	if c.depth >= 0 && c.depth < cap(c.indexes) {
		c.indexes[c.depth] = i
	}
}

// EndArray pops one level off the nesting-index stack. Calling it without a
// matching StartArray is a bug in the calling validator and panics.
func (c *Context) EndArray() {
	if c.depth < 0 {
		panic("dynschema: EndArray without matching StartArray")
	}
	if c.depth < cap(c.indexes) {
		c.indexes = c.indexes[:c.depth]
	}
	c.depth--
}

// IsValid reports whether the run recorded no failures.
func (c *Context) IsValid() bool {
	return len(c.errors) == 0
}

// Errors returns the recorded failures in recording order. The returned
// slice aliases the Context's buffer and is invalidated by Reset.
func (c *Context) Errors() Invalids {
	return Invalids(c.errors)
}

// Reset clears recorded failures and nesting state so the Context can be
// reused for another run. Capacity is retained.
func (c *Context) Reset() {
	c.errors = c.errors[:0]
	c.indexes = c.indexes[:0]
	c.depth = -1
	c.field = nil
}
