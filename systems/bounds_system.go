package systems

import (
	"ebiten-tanks/components"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// UpdateBoundsSystem copies transforms into the cached collider shapes of
// dynamic entities. Static entities keep the bounds they were spawned with.
type UpdateBoundsSystem struct{}

// NewUpdateBoundsSystem creates a new bounds system
func NewUpdateBoundsSystem() *UpdateBoundsSystem {
	return &UpdateBoundsSystem{}
}

// Update refreshes every dynamic, non-static collider
func (s *UpdateBoundsSystem) Update(world *ecs.World, dt float64) {
	entities := world.QueryWithout(
		[]ecs.ComponentID{components.Dynamic, components.Transform, components.Collider},
		components.Static,
	)

	for _, entity := range entities {
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		colliderComp, _ := world.GetComponent(entity.ID, components.Collider)
		transform := transformComp.(*components.TransformComponent)
		collider := colliderComp.(*components.ColliderComponent)

		switch shape := collider.Shape.(type) {
		case *geom.AABB:
			shape.Center = transform.Translation
		case *geom.OBB:
			shape.Center = transform.Translation
			shape.Rotation = transform.RotationDegrees()
		}
	}
}
