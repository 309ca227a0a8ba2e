package spawnpool

import (
	"reflect"

	"go.uber.org/zap"
)

const sharedName = "shared"

type entry struct {
	kind   reflect.Type
	object any
}

// Shared is a single cache for objects of any type.
// Objects are handed out by type with SpawnFrom.
// The zero value is an empty pool ready to use.
type Shared struct {
	cache  []entry
	config poolConfig
}

// NewShared is the constructor of a *spawnpool.Shared.
func NewShared(opts ...Option) *Shared {
	return &Shared{
		config: newPoolConfig(sharedName, opts),
	}
}

// SpawnFrom removes and returns the first object of s, in despawn order,
// that is a T: either its type is T, or T is an interface it implements.
// If there is none, returns the zero value of T and ok will be false.
func SpawnFrom[T any](s *Shared) (object T, ok bool) {
	found, ok := s.SpawnType(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return object, false
	}

	return found.(T), true
}

// SpawnType removes and returns the first object whose type is want,
// or implements want when want is an interface type.
// A nil want matches nothing.
func (s *Shared) SpawnType(want reflect.Type) (any, bool) {
	if want == nil {
		return nil, false
	}

	for i, e := range s.cache {
		if !compatible(e.kind, want) {
			continue
		}

		copy(s.cache[i:], s.cache[i+1:])
		s.cache[len(s.cache)-1] = entry{}
		s.cache = s.cache[:len(s.cache)-1]

		s.config.metrics.spawned(s.label(), true)

		return e.object, true
	}

	s.config.metrics.spawned(s.label(), false)
	s.config.log().Debug("spawn miss",
		zap.String("pool", s.label()),
		zap.Stringer("type", want),
		zap.Int("size", len(s.cache)),
	)

	return nil, false
}

// Despawn adds the object to the pool, tagged with its dynamic type.
// Nil objects are ignored.
func (s *Shared) Despawn(object any) {
	if isNil(object) {
		s.config.log().Debug("nil despawn ignored", zap.String("pool", s.label()))

		return
	}

	s.config.reset(object)

	s.cache = append(s.cache, entry{
		kind:   reflect.TypeOf(object),
		object: object,
	})

	s.config.metrics.despawned(s.label())
}

// Clear drops every cached object.
func (s *Shared) Clear() {
	s.config.log().Debug("clear",
		zap.String("pool", s.label()),
		zap.Int("size", len(s.cache)),
	)

	clear(s.cache)
	s.cache = s.cache[:0]

	s.config.metrics.cleared(s.label())
}

// Len returns the number of cached objects, of all types.
func (s *Shared) Len() int {
	return len(s.cache)
}

func (s *Shared) label() string {
	if s.config.name == "" {
		return sharedName
	}

	return s.config.name
}
