package spawnpool_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peczenyj/spawnpool"
)

func TestRegistryPoolPerType(t *testing.T) {
	t.Parallel()

	registry := spawnpool.NewRegistry()

	widgets := spawnpool.For[*widget](registry)
	require.NotNil(t, widgets)

	assert.Same(t, widgets, spawnpool.For[*widget](registry), "one pool per type")
	assert.Same(t, registry.Shared(), registry.Shared())

	w := &widget{id: 1}
	widgets.Despawn(w)

	_, ok := spawnpool.For[*foo](registry).Spawn()
	assert.False(t, ok, "pools of different types are independent")

	_, ok = spawnpool.SpawnFrom[*widget](registry.Shared())
	assert.False(t, ok, "typed pools and the shared pool are independent")

	got, ok := spawnpool.For[*widget](registry).Spawn()
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestRegistryClear(t *testing.T) {
	t.Parallel()

	var registry spawnpool.Registry

	spawnpool.For[*widget](&registry).Despawn(&widget{})
	spawnpool.For[*foo](&registry).Despawn(&foo{})
	registry.Shared().Despawn(&bar{})

	require.Equal(t, 3, registry.Len())

	registry.Clear()

	assert.Zero(t, registry.Len())

	_, ok := spawnpool.For[*widget](&registry).Spawn()
	assert.False(t, ok)

	_, ok = spawnpool.SpawnFrom[*bar](registry.Shared())
	assert.False(t, ok)
}

func TestRegistriesAreHermetic(t *testing.T) {
	t.Parallel()

	first, second := spawnpool.NewRegistry(), spawnpool.NewRegistry()

	spawnpool.For[*widget](first).Despawn(&widget{})

	_, ok := spawnpool.For[*widget](second).Spawn()
	assert.False(t, ok)
	assert.Equal(t, 1, first.Len())
}

func ExampleRegistry() {
	registry := spawnpool.NewRegistry()
	defer registry.Clear()

	bullets := spawnpool.For[*widget](registry)

	bullet := bullets.SpawnOr(func() *widget { return &widget{id: 1} })
	bullets.Despawn(bullet)

	again, ok := spawnpool.For[*widget](registry).Spawn()
	fmt.Println(again.id, ok)
	// Output: 1 true
}
