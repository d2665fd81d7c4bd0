package dynschema

import "sync"

// PoolConfig configures a Pool and the Contexts it hands out.
type PoolConfig struct {
	// Size is the fixed capacity of the free list. Defaults to 32.
	Size int
	// MaxErrors and MaxNesting configure every Context the pool creates.
	MaxErrors  int
	MaxNesting int
}

// DefaultPoolSize is used when PoolConfig.Size is unset.
const DefaultPoolSize = 32

// Pool is a fixed-size, thread-safe cache of reusable Contexts, amortizing
// Context construction across many validation calls (typically one per
// inbound request).
//
// Acquire never blocks: when the free list is empty it constructs a fresh
// Context outside the lock. Release resets and recycles a Context while the
// free list has room, and discards it otherwise, so the pool never grows
// past its configured capacity.
type Pool struct {
	mu   sync.Mutex
	free []*Context
	cfg  ContextConfig
}

// NewPool creates a Pool pre-populated to its full capacity.
func NewPool(cfg PoolConfig) *Pool {
	size := cfg.Size
	if size <= 0 {
		size = DefaultPoolSize
	}

	ctxCfg := ContextConfig{MaxErrors: cfg.MaxErrors, MaxNesting: cfg.MaxNesting}
	free := make([]*Context, size)
	for i := range free {
		free[i] = NewContext(ctxCfg)
	}

	return &Pool{free: free, cfg: ctxCfg}
}

// Acquire returns a Context with State set to the supplied value, reusing a
// pooled instance when one is available. LIFO reuse keeps recently touched
// Contexts warm.
func (p *Pool) Acquire(state any) *Context {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.mu.Unlock()
		c.State = state
		return c
	}
	p.mu.Unlock()

	// Construction stays outside the lock so contention past pool capacity
	// costs the caller an allocation, never a wait.
	c := NewContext(p.cfg)
	c.State = state
	return c
}

// Release returns a Context to the pool, resetting it and clearing its State.
// If the free list is already at capacity the Context is discarded.
func (p *Pool) Release(c *Context) {
	if c == nil {
		return
	}
	c.Reset()
	c.State = nil

	p.mu.Lock()
	if len(p.free) < cap(p.free) {
		p.free = append(p.free, c)
	}
	p.mu.Unlock()
}
