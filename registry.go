package spawnpool

import (
	"reflect"
	"slices"
)

type clearer interface {
	Clear()
	Len() int
}

// Registry owns one Pool per type and one Shared pool.
// Keep one in the application context instead of using globals;
// tests can build a fresh one each. The zero value is ready to use.
type Registry struct {
	pools  map[reflect.Type]clearer
	shared *Shared
	opts   []Option
}

// NewRegistry is the constructor of a *spawnpool.Registry.
// The options are applied to every pool the registry creates.
// Typed pools are always named after their type, WithName only renames the shared pool.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		pools:  make(map[reflect.Type]clearer),
		shared: NewShared(opts...),
		opts:   opts,
	}
}

// For returns the Pool of T owned by r, creating it on first use.
func For[T any](r *Registry) *Pool[T] {
	kind := reflect.TypeOf((*T)(nil)).Elem()

	if pool, ok := r.pools[kind]; ok {
		return pool.(*Pool[T])
	}

	if r.pools == nil {
		r.pools = make(map[reflect.Type]clearer)
	}

	pool := New[T](append(slices.Clone(r.opts), WithName(typeName[T]()))...)
	r.pools[kind] = pool

	return pool
}

// Shared returns the shared pool owned by r.
func (r *Registry) Shared() *Shared {
	if r.shared == nil {
		r.shared = NewShared(r.opts...)
	}

	return r.shared
}

// Clear empties every pool owned by r.
func (r *Registry) Clear() {
	for _, pool := range r.pools {
		pool.Clear()
	}

	r.Shared().Clear()
}

// Len returns the number of objects cached across all pools of r.
func (r *Registry) Len() int {
	n := r.Shared().Len()

	for _, pool := range r.pools {
		n += pool.Len()
	}

	return n
}
