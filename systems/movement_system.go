package systems

import (
	"ebiten-tanks/components"
	"ebiten-tanks/ecs"
)

// MovementSystem integrates positions from velocities
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update advances tanks by velocity and bullets along their heading
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Query(components.Velocity, components.Transform) {
		velocityComp, _ := world.GetComponent(entity.ID, components.Velocity)
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		transform := transformComp.(*components.TransformComponent)
		transform.Translation = transform.Translation.Add(velocityComp.(*components.VelocityComponent).Mul(dt))
	}

	for _, entity := range world.Query(components.Bullet, components.Transform) {
		bulletComp, _ := world.GetComponent(entity.ID, components.Bullet)
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		transform := transformComp.(*components.TransformComponent)
		transform.Translation = transform.Translation.Add(bulletComp.(*components.BulletComponent).Velocity().Mul(dt))
	}
}
