package dynschema_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynschema/dynschema"
)

func TestPoolAcquireRelease(t *testing.T) {
	t.Parallel()

	t.Run("reuses released contexts LIFO", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{Size: 2})

		c1 := pool.Acquire("one")
		assert.Equal(t, "one", c1.State)
		pool.Release(c1)

		c2 := pool.Acquire("two")
		assert.Same(t, c1, c2)
		assert.Equal(t, "two", c2.State)
	})

	t.Run("allocates fresh context when pool is empty", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{Size: 1})

		c1 := pool.Acquire(nil)
		c2 := pool.Acquire(nil)
		require.NotSame(t, c1, c2)
	})

	t.Run("release resets the context and clears state", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{Size: 1, MaxErrors: 5})

		c := pool.Acquire("state")
		c.Add(dynschema.Invalid{Code: dynschema.CodeRequired, Err: "field is required"})
		require.False(t, c.IsValid())
		pool.Release(c)

		reused := pool.Acquire(nil)
		assert.Same(t, c, reused)
		assert.True(t, reused.IsValid())
		assert.Nil(t, reused.State)
	})

	t.Run("discards contexts past pool capacity", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{Size: 1})

		c1 := pool.Acquire(nil)
		c2 := pool.Acquire(nil)
		pool.Release(c1)
		// The free list is full again; c2 is discarded rather than pooled.
		pool.Release(c2)

		assert.Same(t, c1, pool.Acquire(nil))
		assert.NotSame(t, c2, pool.Acquire(nil))
	})

	t.Run("release of nil is a no-op", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{})
		assert.NotPanics(t, func() { pool.Release(nil) })
	})
}

func TestPoolConcurrency(t *testing.T) {
	t.Parallel()

	t.Run("never hands the same context to two goroutines", func(t *testing.T) {
		pool := dynschema.NewPool(dynschema.PoolConfig{Size: 4})

		const goroutines = 16
		const iterations = 500

		var wg sync.WaitGroup
		errs := make(chan error, goroutines)
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func(marker int) {
				defer wg.Done()
				for i := 0; i < iterations; i++ {
					ctx := pool.Acquire(marker)
					if ctx.State != marker {
						errs <- assert.AnError
						return
					}
					ctx.Add(dynschema.Invalid{Code: dynschema.CodeRequired, Err: "field is required"})
					if ctx.State != marker {
						errs <- assert.AnError
						return
					}
					pool.Release(ctx)
				}
			}(g)
		}
		wg.Wait()
		close(errs)

		assert.Empty(t, errs)
	})
}
