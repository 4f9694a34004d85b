// internal/entity/ecs.go
package entity

import (
	"go-radar-scope/internal/component"
	"go-radar-scope/internal/types"
	"go-radar-scope/pkg/geom"
	"math"
	"sort"
)

// ECS owns every live entity of the scope. Component data lives in per-kind
// maps; order keeps insertion order for deterministic iteration and drawing.
//
// Structural changes are safe at any point of a frame: Remove drops the
// entity's components at once (so later lookups miss) and leaves the order
// slice to be compacted by EndFrame. Entities created after BeginFrame are
// visible to DrawOrder but excluded from Snapshot until the next frame.
type ECS struct {
	GameTime float64 // simulated ms
	NextID   types.EntityID

	Kinds        map[types.EntityID]component.Kind
	Positions    map[types.EntityID]*component.Position
	Velocities   map[types.EntityID]*component.Velocity
	Renderables  map[types.EntityID]*component.Renderable
	Aircraft     map[types.EntityID]*component.Aircraft
	Interceptors map[types.EntityID]*component.Interceptor
	Blasts       map[types.EntityID]*component.Blast
	Puffs        map[types.EntityID]*component.Puff
	Beam         *component.RadarBeam
	GameState    component.GameState

	order      []types.EntityID
	removed    int
	frameLimit types.EntityID // IDs >= frameLimit were born this frame
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Kinds:        make(map[types.EntityID]component.Kind),
		Positions:    make(map[types.EntityID]*component.Position),
		Velocities:   make(map[types.EntityID]*component.Velocity),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		Aircraft:     make(map[types.EntityID]*component.Aircraft),
		Interceptors: make(map[types.EntityID]*component.Interceptor),
		Blasts:       make(map[types.EntityID]*component.Blast),
		Puffs:        make(map[types.EntityID]*component.Puff),
		GameState:    component.RunningState,
	}
}

// NewEntity allocates an ID of the given kind and appends it to the draw order.
func (ecs *ECS) NewEntity(kind component.Kind) types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Kinds[id] = kind
	ecs.order = append(ecs.order, id)
	return id
}

// Alive reports whether id still refers to a live entity.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Kinds[id]
	return ok
}

// KindOf returns the variant of id, KindNone if it is gone.
func (ecs *ECS) KindOf(id types.EntityID) component.Kind {
	return ecs.Kinds[id]
}

// Remove deletes every component of id. Removing a missing entity is a no-op.
func (ecs *ECS) Remove(id types.EntityID) {
	if _, ok := ecs.Kinds[id]; !ok {
		return
	}
	delete(ecs.Kinds, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Aircraft, id)
	delete(ecs.Interceptors, id)
	delete(ecs.Blasts, id)
	delete(ecs.Puffs, id)
	ecs.removed++
}

// BeginFrame freezes the set of entities that take part in this frame's update.
func (ecs *ECS) BeginFrame() {
	ecs.frameLimit = ecs.NextID
}

// EndFrame compacts the order slice and lifts the frame limit.
func (ecs *ECS) EndFrame() {
	ecs.frameLimit = 0
	if ecs.removed == 0 {
		return
	}
	live := ecs.order[:0]
	for _, id := range ecs.order {
		if ecs.Alive(id) {
			live = append(live, id)
		}
	}
	// Clear the tail so removed IDs don't linger in the backing array.
	for i := len(live); i < len(ecs.order); i++ {
		ecs.order[i] = 0
	}
	ecs.order = live
	ecs.removed = 0
}

// Snapshot returns the live entities of kind in registry order, skipping
// entities created during the current frame. The slice is a copy; callers
// must still check Alive for entities removed while they iterate.
func (ecs *ECS) Snapshot(kind component.Kind) []types.EntityID {
	var ids []types.EntityID
	for _, id := range ecs.order {
		if ecs.frameLimit != 0 && id >= ecs.frameLimit {
			break
		}
		if k, ok := ecs.Kinds[id]; ok && k == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// Live returns every live entity of kind in registry order, including those
// created during the current frame.
func (ecs *ECS) Live(kind component.Kind) []types.EntityID {
	var ids []types.EntityID
	for _, id := range ecs.order {
		if k, ok := ecs.Kinds[id]; ok && k == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of live entities of kind.
func (ecs *ECS) Count(kind component.Kind) int {
	n := 0
	for _, k := range ecs.Kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (ecs *ECS) Len() int {
	return len(ecs.Kinds)
}

// FindNearest returns the live entity of kind closest to point. Ties go to the
// entity that was created first.
func (ecs *ECS) FindNearest(kind component.Kind, point geom.Vec2) (types.EntityID, bool) {
	return ecs.FindNearestMatching(kind, point, nil)
}

// FindNearestMatching is FindNearest restricted to entities accepted by keep.
func (ecs *ECS) FindNearestMatching(kind component.Kind, point geom.Vec2, keep func(types.EntityID) bool) (types.EntityID, bool) {
	var nearest types.EntityID
	best := math.Inf(1)
	for _, id := range ecs.order {
		if ecs.Kinds[id] != kind {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if keep != nil && !keep(id) {
			continue
		}
		if d := pos.Dist(point); d < best {
			best = d
			nearest = id
		}
	}
	return nearest, nearest != types.NoEntity
}

// DrawOrder returns live renderable entities sorted by ascending priority,
// ties kept in insertion order.
func (ecs *ECS) DrawOrder() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.order))
	for _, id := range ecs.order {
		if _, ok := ecs.Renderables[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return ecs.Renderables[ids[i]].Priority < ecs.Renderables[ids[j]].Priority
	})
	return ids
}
