package dynschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynschema/dynschema"
)

func TestLoadConfig(t *testing.T) {
	t.Run("falls back to defaults when env is unset", func(t *testing.T) {
		cfg, err := dynschema.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.MaxErrors)
		assert.Equal(t, 10, cfg.MaxNesting)
		assert.Equal(t, 32, cfg.PoolSize)
	})

	t.Run("builds a pool from the env config", func(t *testing.T) {
		pool, err := dynschema.NewPoolFromEnv()
		require.NoError(t, err)

		ctx := pool.Acquire(nil)
		require.NotNil(t, ctx)
		for i := 0; i < 25; i++ {
			ctx.Add(dynschema.Invalid{Code: dynschema.CodeTypeInt, Err: "must be an int"})
		}
		// Bounded by DYNSCHEMA_MAX_ERRORS default.
		assert.Len(t, ctx.Errors(), 20)
		pool.Release(ctx)
	})
}
