package resetter

import "github.com/peczenyj/spawnpool"

// ResetterMonadic interface.
type ResetterMonadic[T any] interface {
	Reset(t T)
}

// PoolResetterMonadic pool specialized type.
// Objects are reset with a state on Get and with the zero state on Put.
type PoolResetterMonadic[T any, R ResetterMonadic[T]] struct {
	ctor func() R
	pool *spawnpool.Pool[R]
}

// NewPoolMonadic is the constructor of an *resetter.PoolResetterMonadic.
// Receives the constructor of the type R that implements ResetterMonadic[T] interface.
func NewPoolMonadic[T any, R ResetterMonadic[T]](ctor func() R, opts ...spawnpool.Option) *PoolResetterMonadic[T, R] {
	return &PoolResetterMonadic[T, R]{
		ctor: ctor,
		pool: spawnpool.New[R](opts...),
	}
}

// Get spawns one object from the pool, creating it if needed.
// Will call Reset(T) with the given argument of type T.
func (p *PoolResetterMonadic[T, R]) Get(t T) R {
	resetter := p.pool.SpawnOr(p.ctor)

	resetter.Reset(t)

	return resetter
}

// Put return the object to the pool.
// Will call Reset(T) with a zero value of T on the object before send back to the pool.
func (p *PoolResetterMonadic[T, R]) Put(resetter R) {
	p.pool.DespawnWith(resetter, func(r R) {
		var zero T

		r.Reset(zero)
	})
}

// Len returns how many objects are waiting to be reused.
func (p *PoolResetterMonadic[T, R]) Len() int {
	return p.pool.Len()
}
