package systems

import (
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
)

// RegisterCollisionSystems appends the collision chain to the world.
// Order matters: bounds are refreshed before either response system reads them.
func RegisterCollisionSystems(world *ecs.World, tuning config.CollisionTuning) {
	world.AddSystem(NewUpdateBoundsSystem())
	world.AddSystem(NewBulletWallCollisionSystem(tuning))
	world.AddSystem(NewTankWallCollisionSystem(tuning))
}
