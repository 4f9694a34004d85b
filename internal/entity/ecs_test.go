package entity

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnAt(ecs *ECS, kind component.Kind, x, y float64, priority int) types.EntityID {
	id := ecs.NewEntity(kind)
	ecs.Positions[id] = &component.Position{Vec2: geom.V(x, y)}
	ecs.Renderables[id] = &component.Renderable{Priority: priority}
	return id
}

func TestRemoveIsIdempotent(t *testing.T) {
	ecs := NewECS()
	id := spawnAt(ecs, component.KindAircraft, 0, 0, component.PriorityAircraft)
	ecs.Aircraft[id] = &component.Aircraft{}

	ecs.Remove(id)
	ecs.Remove(id)
	ecs.Remove(999)

	assert.False(t, ecs.Alive(id))
	assert.Empty(t, ecs.Aircraft)
	assert.Empty(t, ecs.Positions)
	assert.Equal(t, 0, ecs.Len())
}

func TestIDsAreNeverReused(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity(component.KindAircraft)
	ecs.Remove(a)
	ecs.EndFrame()
	b := ecs.NewEntity(component.KindAircraft)
	assert.NotEqual(t, a, b)
	assert.False(t, ecs.Alive(a), "stale handle must not resolve to the new entity")
}

func TestSnapshotExcludesEntitiesBornThisFrame(t *testing.T) {
	ecs := NewECS()
	old := spawnAt(ecs, component.KindBlast, 0, 0, component.PriorityBlast)

	ecs.BeginFrame()
	born := spawnAt(ecs, component.KindBlast, 1, 1, component.PriorityBlast)

	assert.Equal(t, []types.EntityID{old}, ecs.Snapshot(component.KindBlast))
	assert.Contains(t, ecs.DrawOrder(), born, "new entities are drawn in the same frame")

	ecs.EndFrame()
	assert.Equal(t, []types.EntityID{old, born}, ecs.Snapshot(component.KindBlast))
}

func TestRemovalDuringIteration(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, spawnAt(ecs, component.KindSmoke, float64(i), 0, component.PriorityEffect))
	}

	ecs.BeginFrame()
	visited := 0
	for _, id := range ecs.Snapshot(component.KindSmoke) {
		if !ecs.Alive(id) {
			continue
		}
		visited++
		// Each entity removes itself and its right neighbour.
		ecs.Remove(id)
		if int(id) < len(ids) {
			ecs.Remove(id + 1)
		}
	}
	ecs.EndFrame()

	assert.Equal(t, 3, visited)
	assert.Equal(t, 0, ecs.Len())
	assert.Empty(t, ecs.DrawOrder())
}

func TestDrawOrderStableByPriority(t *testing.T) {
	ecs := NewECS()
	plane := spawnAt(ecs, component.KindAircraft, 0, 0, component.PriorityAircraft)
	smoke1 := spawnAt(ecs, component.KindSmoke, 0, 0, component.PriorityEffect)
	missile := spawnAt(ecs, component.KindInterceptor, 0, 0, component.PriorityInterceptor)
	smoke2 := spawnAt(ecs, component.KindSmoke, 0, 0, component.PriorityEffect)
	blast := spawnAt(ecs, component.KindBlast, 0, 0, component.PriorityBlast)

	assert.Equal(t, []types.EntityID{smoke1, smoke2, blast, plane, missile}, ecs.DrawOrder())
}

func TestFindNearest(t *testing.T) {
	ecs := NewECS()
	_, ok := ecs.FindNearest(component.KindAircraft, geom.V(0, 0))
	assert.False(t, ok, "empty registry")

	far := spawnAt(ecs, component.KindAircraft, 100, 0, component.PriorityAircraft)
	near := spawnAt(ecs, component.KindAircraft, 10, 0, component.PriorityAircraft)
	spawnAt(ecs, component.KindInterceptor, 1, 0, component.PriorityInterceptor)

	got, ok := ecs.FindNearest(component.KindAircraft, geom.V(0, 0))
	require.True(t, ok)
	assert.Equal(t, near, got)

	got, ok = ecs.FindNearestMatching(component.KindAircraft, geom.V(0, 0), func(id types.EntityID) bool {
		return id != near
	})
	require.True(t, ok)
	assert.Equal(t, far, got)
}

func TestFindNearestTieGoesToOldest(t *testing.T) {
	ecs := NewECS()
	first := spawnAt(ecs, component.KindAircraft, -5, 0, component.PriorityAircraft)
	spawnAt(ecs, component.KindAircraft, 5, 0, component.PriorityAircraft)

	got, ok := ecs.FindNearest(component.KindAircraft, geom.V(0, 0))
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestCount(t *testing.T) {
	ecs := NewECS()
	spawnAt(ecs, component.KindAircraft, 0, 0, 0)
	spawnAt(ecs, component.KindAircraft, 0, 0, 0)
	spawnAt(ecs, component.KindBlip, 0, 0, 0)
	assert.Equal(t, 2, ecs.Count(component.KindAircraft))
	assert.Equal(t, 1, ecs.Count(component.KindBlip))
	assert.Equal(t, 0, ecs.Count(component.KindBlast))
}

func TestLiveIncludesEntitiesBornThisFrame(t *testing.T) {
	ecs := NewECS()
	old := spawnAt(ecs, component.KindAircraft, 0, 0, component.PriorityAircraft)
	ecs.BeginFrame()
	born := spawnAt(ecs, component.KindAircraft, 0, 0, component.PriorityAircraft)
	ecs.Remove(old)

	assert.Equal(t, []types.EntityID{born}, ecs.Live(component.KindAircraft))
	assert.Empty(t, ecs.Snapshot(component.KindAircraft))
}
