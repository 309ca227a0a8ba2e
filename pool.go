// Package spawnpool recycles objects instead of allocating new ones.
//
// A [Pool] caches instances of one type T, a [Shared] pool caches instances of
// any type and hands them out by runtime type. Neither constructs objects: a
// spawn that finds nothing reports it, and the caller builds a fresh one:
//
//	bullet, ok := pool.Spawn()
//	if !ok {
//		bullet = NewBullet()
//	}
//	// ...
//	pool.Despawn(bullet)
//
// Pools are not safe for concurrent use. They are meant to be driven from a
// single game loop.
package spawnpool

import "go.uber.org/zap"

// Pool is a cache of inactive instances of type T.
// The zero value is an empty pool ready to use.
type Pool[T any] struct {
	cache  []T
	config poolConfig
}

// New is the constructor of a *spawnpool.Pool.
func New[T any](opts ...Option) *Pool[T] {
	return &Pool[T]{
		config: newPoolConfig(typeName[T](), opts),
	}
}

// Spawn removes and returns the most recently despawned object.
// If the pool is empty, returns the zero value of T and ok will be false.
func (p *Pool[T]) Spawn() (object T, ok bool) {
	return p.SpawnMatchingWith(nil, nil)
}

// SpawnMatching removes and returns the first cached object, in despawn
// order, for which match returns true.
func (p *Pool[T]) SpawnMatching(match func(T) bool) (object T, ok bool) {
	return p.SpawnMatchingWith(match, nil)
}

// SpawnWith is like Spawn, but calls onSpawn on the object before returning it.
// onSpawn is not called when the pool is empty.
func (p *Pool[T]) SpawnWith(onSpawn func(T)) (object T, ok bool) {
	return p.SpawnMatchingWith(nil, onSpawn)
}

// SpawnMatchingWith selects the first object for which match returns true
// (the most recent one if match is nil), removes it from the pool and calls
// onSpawn on it, if not nil. onSpawn is only called when an object is found.
func (p *Pool[T]) SpawnMatchingWith(match func(T) bool, onSpawn func(T)) (object T, ok bool) {
	index := p.find(match)

	p.config.metrics.spawned(p.label(), index >= 0)

	if index < 0 {
		p.config.log().Debug("spawn miss",
			zap.String("pool", p.label()),
			zap.Int("size", len(p.cache)),
		)

		return object, false
	}

	object = p.remove(index)

	if onSpawn != nil {
		onSpawn(object)
	}

	return object, true
}

// SpawnOr spawns an object or, if the pool has none, creates one with ctor.
func (p *Pool[T]) SpawnOr(ctor func() T) T {
	object, ok := p.Spawn()
	if !ok {
		object = ctor()
	}

	return object
}

// Despawn returns the object to the pool. Nil objects are ignored.
func (p *Pool[T]) Despawn(object T) {
	p.DespawnWith(object, nil)
}

// DespawnWith calls onDespawn on the object, then returns it to the pool.
// Nil objects are ignored and onDespawn is not called.
func (p *Pool[T]) DespawnWith(object T, onDespawn func(T)) {
	if isNil(object) {
		p.config.log().Debug("nil despawn ignored", zap.String("pool", p.label()))

		return
	}

	if onDespawn != nil {
		onDespawn(object)
	}

	p.config.reset(object)

	p.cache = append(p.cache, object)

	p.config.metrics.despawned(p.label())
}

// Clear drops every cached object.
func (p *Pool[T]) Clear() {
	p.config.log().Debug("clear",
		zap.String("pool", p.label()),
		zap.Int("size", len(p.cache)),
	)

	clear(p.cache)
	p.cache = p.cache[:0]

	p.config.metrics.cleared(p.label())
}

// Len returns the number of cached objects.
func (p *Pool[T]) Len() int {
	return len(p.cache)
}

func (p *Pool[T]) find(match func(T) bool) int {
	if match == nil {
		return len(p.cache) - 1
	}

	for i, object := range p.cache {
		if match(object) {
			return i
		}
	}

	return -1
}

func (p *Pool[T]) remove(index int) T {
	object := p.cache[index]

	last := len(p.cache) - 1
	copy(p.cache[index:], p.cache[index+1:])

	var zero T
	p.cache[last] = zero
	p.cache = p.cache[:last]

	return object
}

func (p *Pool[T]) label() string {
	if p.config.name == "" {
		return typeName[T]()
	}

	return p.config.name
}
