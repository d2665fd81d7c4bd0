package dynschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynschema/dynschema"
)

func ptr[T any](v T) *T {
	return &v
}

func TestContextAdd(t *testing.T) {
	t.Parallel()

	t.Run("records failure without field at root", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		ctx.Add(dynschema.Invalid{Code: dynschema.CodeRequired, Err: "field is required"})

		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, "", ctx.Errors()[0].Field)
		assert.Equal(t, dynschema.CodeRequired, ctx.Errors()[0].Code)
		assert.False(t, ctx.IsValid())
	})

	t.Run("records failure on explicit field path", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		ctx.AddOn("user.email", dynschema.Invalid{Code: dynschema.CodeRequired, Err: "field is required"})

		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, "user.email", ctx.Errors()[0].Field)
	})

	t.Run("drops failures past the configured cap", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{MaxErrors: 2})
		for i := 0; i < 5; i++ {
			ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		}

		assert.Len(t, ctx.Errors(), 2)
		assert.False(t, ctx.IsValid())
	})

	t.Run("is valid with no failures", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		assert.True(t, ctx.IsValid())
		assert.Empty(t, ctx.Errors())
	})
}

func TestContextArrayNesting(t *testing.T) {
	t.Parallel()

	t.Run("renders bare index at root", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		ctx.StartArray()
		ctx.ArrayIndex(7)
		ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		ctx.EndArray()

		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, "7", ctx.Errors()[0].Field)
	})

	t.Run("saturates index tracking past max nesting", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{MaxNesting: 2})
		for i := 0; i < 5; i++ {
			ctx.StartArray()
			ctx.ArrayIndex(i)
		}
		ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		for i := 0; i < 5; i++ {
			ctx.EndArray()
		}

		// Only the first two levels contribute to the path.
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, "0.1", ctx.Errors()[0].Field)
	})

	t.Run("panics on EndArray without StartArray", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		assert.Panics(t, func() { ctx.EndArray() })
	})
}

func TestContextReset(t *testing.T) {
	t.Parallel()

	t.Run("clears failures and nesting state", func(t *testing.T) {
		ctx := dynschema.NewContext(dynschema.ContextConfig{MaxErrors: 3})
		ctx.StartArray()
		ctx.ArrayIndex(2)
		ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		require.False(t, ctx.IsValid())

		ctx.Reset()

		assert.True(t, ctx.IsValid())
		assert.Empty(t, ctx.Errors())
		assert.Equal(t, "", ctx.FieldPath())

		// The buffer cap survives reset.
		for i := 0; i < 5; i++ {
			ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		}
		assert.Len(t, ctx.Errors(), 3)
	})
}

func TestInvalids(t *testing.T) {
	t.Parallel()

	invs := dynschema.Invalids{
		{Invalid: dynschema.Invalid{Code: dynschema.CodeRequired, Err: "field is required"}, Field: "name"},
		{Invalid: dynschema.Invalid{Code: dynschema.CodeIntMin, Err: "cannot be less than 4"}, Field: "age"},
		{Invalid: dynschema.Invalid{Code: dynschema.CodeTypeString, Err: "must be a string"}, Field: "name"},
	}

	t.Run("implements error with all failures", func(t *testing.T) {
		msg := invs.Error()
		assert.Contains(t, msg, "name: field is required")
		assert.Contains(t, msg, "age: cannot be less than 4")
	})

	t.Run("collection helpers", func(t *testing.T) {
		assert.True(t, invs.Has("name"))
		assert.False(t, invs.Has("email"))
		assert.Equal(t, []string{"field is required", "must be a string"}, invs.Get("name"))
		assert.Len(t, invs.On("name"), 2)
		assert.Equal(t, []string{"name", "age"}, invs.Fields())
		assert.False(t, invs.IsEmpty())
		assert.True(t, dynschema.Invalids{}.IsEmpty())
	})
}
