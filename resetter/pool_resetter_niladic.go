package resetter

import "github.com/peczenyj/spawnpool"

// Resetter interface.
type Resetter = spawnpool.Resetter

// PoolResetter pool specialized type.
// Will call Reset on each object before send it back to the pool.
type PoolResetter[R Resetter] struct {
	ctor func() R
	pool *spawnpool.Pool[R]
}

// NewPool is the constructor of an *resetter.PoolResetter.
// Receives the constructor of the type R that implements Resetter interface.
func NewPool[R Resetter](ctor func() R, opts ...spawnpool.Option) *PoolResetter[R] {
	return &PoolResetter[R]{
		ctor: ctor,
		pool: spawnpool.New[R](opts...),
	}
}

// Get spawns one object from the pool.
// If the pool is empty, will create another object.
func (p *PoolResetter[R]) Get() R {
	return p.pool.SpawnOr(p.ctor)
}

// Put return the object to the pool.
// Will call Reset on the object before send back to the pool.
func (p *PoolResetter[R]) Put(resetter R) {
	p.pool.DespawnWith(resetter, func(r R) {
		r.Reset()
	})
}

// Len returns how many objects are waiting to be reused.
func (p *PoolResetter[R]) Len() int {
	return p.pool.Len()
}
