package dynschema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynschema/dynschema"
)

func TestIntValidator(t *testing.T) {
	t.Parallel()

	t.Run("passes and coerces json float to int64", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(float64(42), ctx)
		require.NoError(t, err)
		assert.True(t, ctx.IsValid())
		assert.Equal(t, int64(42), out)
	})

	t.Run("fails for fractional float", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := v.Validate(4.5, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeTypeInt, ctx.Errors()[0].Code)
	})

	t.Run("accepts json.Number", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(json.Number("7"), ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})

	t.Run("parses strings only when configured", func(t *testing.T) {
		b := dynschema.NewBuilder()
		strict := b.Int(dynschema.IntConfig{})
		lenient := b.Int(dynschema.IntConfig{Parse: true})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := strict.Validate("8", ctx)
		require.NoError(t, err)
		assert.False(t, ctx.IsValid())

		ctx.Reset()
		out, err := lenient.Validate("8", ctx)
		require.NoError(t, err)
		assert.True(t, ctx.IsValid())
		assert.Equal(t, int64(8), out)
	})

	t.Run("enforces min with structured data", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{Min: ptr(int64(4))})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := v.Validate(3, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeIntMin, ctx.Errors()[0].Code)
		assert.Equal(t, "cannot be less than 4", ctx.Errors()[0].Err)
		assert.Equal(t, map[string]any{"min": int64(4)}, ctx.Errors()[0].Data)
	})

	t.Run("enforces max", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{Max: ptr(int64(10))})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := v.Validate(11, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeIntMax, ctx.Errors()[0].Code)
	})

	t.Run("required fails once for nil and returns null", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{Required: true})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(nil, ctx)
		require.NoError(t, err)
		assert.Nil(t, out)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeRequired, ctx.Errors()[0].Code)
	})

	t.Run("optional returns default for nil", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{Default: ptr(int64(99))})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(nil, ctx)
		require.NoError(t, err)
		assert.True(t, ctx.IsValid())
		assert.Equal(t, int64(99), out)
	})

	t.Run("custom function transforms the value", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{
			Function: func(value *int64, ctx *dynschema.Context) (*int64, error) {
				doubled := *value * 2
				return &doubled, nil
			},
		})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(21, ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), out)
	})

	t.Run("custom function reads caller state", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Int(dynschema.IntConfig{
			Function: func(value *int64, ctx *dynschema.Context) (*int64, error) {
				limit := ctx.State.(int64)
				if value != nil && *value > limit {
					ctx.Add(dynschema.Invalid{Code: 9003, Err: "over caller limit"})
				}
				return value, nil
			},
		})

		ctx := dynschema.NewContext(dynschema.ContextConfig{State: int64(5)})
		_, err := v.Validate(9, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, 9003, ctx.Errors()[0].Code)
	})
}

func TestFloatValidator(t *testing.T) {
	t.Parallel()

	t.Run("passes and widens int input", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Float(dynschema.FloatConfig{})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate(3, ctx)
		require.NoError(t, err)
		assert.Equal(t, float64(3), out)
	})

	t.Run("fails for non-numeric input", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Float(dynschema.FloatConfig{})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := v.Validate(true, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeTypeFloat, ctx.Errors()[0].Code)
	})

	t.Run("enforces range", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Float(dynschema.FloatConfig{Min: ptr(0.5), Max: ptr(1.5)})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		_, err := v.Validate(0.25, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeFloatMin, ctx.Errors()[0].Code)

		ctx.Reset()
		_, err = v.Validate(2.0, ctx)
		require.NoError(t, err)
		require.Len(t, ctx.Errors(), 1)
		assert.Equal(t, dynschema.CodeFloatMax, ctx.Errors()[0].Code)
	})

	t.Run("parses strings when configured", func(t *testing.T) {
		b := dynschema.NewBuilder()
		v := b.Float(dynschema.FloatConfig{Parse: true})

		ctx := dynschema.NewContext(dynschema.ContextConfig{})
		out, err := v.Validate("2.5", ctx)
		require.NoError(t, err)
		assert.Equal(t, 2.5, out)
	})
}
