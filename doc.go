// Package dynschema validates dynamically typed values (the shapes produced
// by decoding JSON: nil, bool, numbers, strings, arrays, objects) against a
// declaratively built schema of composable validators, producing either a
// normalized value or an ordered list of failures annotated with the exact
// dotted/indexed path where each failure occurred (e.g. items.3.fav.232).
//
// The package does not decode wire formats; callers hand it an
// already-decoded value tree and stay in charge of serialization.
//
// # Architecture
//
// A Builder constructs an immutable tree of validators: leaves for atomic
// types (Int, Float, Bool, String, UUID, Date, Time, DateTime, Any) and
// composites (Array, Object) that recurse into children. The tree is shared
// freely across goroutines. Each validation run owns a Context, which holds
// the bounded failure buffer and the array nesting state used to render
// field paths; Contexts are either created standalone or drawn from a Pool
// on hot paths. Both the failure buffer and the nesting stack are fixed
// capacity and saturate instead of growing, so pathological input cannot
// consume unbounded memory.
//
// # Usage
//
//	b := dynschema.NewBuilder()
//	minLen, minVal := 2, int64(4)
//	schema := b.Object([]dynschema.FieldSpec{
//	    {Name: "name", Validator: b.String(dynschema.StringConfig{Required: true, Min: &minLen})},
//	    {Name: "items", Validator: b.Array(b.Int(dynschema.IntConfig{Min: &minVal}), dynschema.ArrayConfig{Required: true})},
//	}, dynschema.ObjectConfig{Required: true})
//
//	ctx := dynschema.NewContext(dynschema.ContextConfig{MaxErrors: 10})
//	normalized, err := schema.Validate(input, ctx)
//	if err != nil {
//	    // fatal: a custom validation function failed
//	}
//	if !ctx.IsValid() {
//	    for _, inv := range ctx.Errors() {
//	        // inv.Field, inv.Code, inv.Err, inv.Data
//	    }
//	}
//
// # Error Handling
//
// Validation failures are data, not errors: a run always completes and
// reports failures through Context.Errors. The error return of Validate
// carries only fatal conditions, such as a custom Function hook failing.
// When the failure buffer fills, further failures are silently dropped;
// IsValid still reports false.
//
// # Concurrency
//
// Schemas are immutable after construction and safe for concurrent use. A
// Context must never be shared by two goroutines at once; acquire one per
// in-flight validation, directly or from a Pool.
package dynschema
