package systems

import (
	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// TankWallCollisionSystem pushes tanks back out of any wall they overlap
type TankWallCollisionSystem struct {
	push float64
}

// NewTankWallCollisionSystem creates a tank/wall system from tuning
func NewTankWallCollisionSystem(tuning config.CollisionTuning) *TankWallCollisionSystem {
	return &TankWallCollisionSystem{push: tuning.TankPush}
}

// ContactDirection works out which side of the tank a directionless wall is on
func ContactDirection(wallType components.WallType, wallCentre, tankCentre geom.Vec2) components.WallDirection {
	if wallType == components.WallHorizontal {
		if tankCentre.Y() < wallCentre.Y() {
			return components.DirUp
		}
		return components.DirDown
	}
	if tankCentre.X() < wallCentre.X() {
		return components.DirRight
	}
	return components.DirLeft
}

// blockers returns every collider a tank is pushed out of: walls, plus any
// other collider that carries a push direction.
func blockers(world *ecs.World) []*ecs.Entity {
	var out []*ecs.Entity
	for _, entity := range world.Query(components.Collider) {
		if world.HasComponent(entity.ID, components.Wall) || world.HasComponent(entity.ID, components.Direction) {
			out = append(out, entity)
		}
	}
	return out
}

// Update pushes each tank once per wall it overlaps
func (s *TankWallCollisionSystem) Update(world *ecs.World, dt float64) {
	tanks := world.Query(components.Tank, components.Transform, components.Collider)
	walls := blockers(world)

	for _, tankEntity := range tanks {
		transformComp, _ := world.GetComponent(tankEntity.ID, components.Transform)
		colliderComp, _ := world.GetComponent(tankEntity.ID, components.Collider)
		transform := transformComp.(*components.TransformComponent)
		tankCollider := colliderComp.(*components.ColliderComponent)

		for _, wallEntity := range walls {
			if wallEntity.ID == tankEntity.ID {
				continue
			}
			wallColliderComp, _ := world.GetComponent(wallEntity.ID, components.Collider)
			wallCollider := wallColliderComp.(*components.ColliderComponent)

			if !tankCollider.CollidesWith(wallCollider) {
				continue
			}

			var direction components.WallDirection
			if dirComp, ok := world.GetComponent(wallEntity.ID, components.Direction); ok {
				direction = dirComp.(*components.DirectionComponent).Direction
			} else {
				wallComp, _ := world.GetComponent(wallEntity.ID, components.Wall)
				direction = ContactDirection(
					wallComp.(*components.WallComponent).WallType,
					wallCollider.Shape.Centre(),
					tankCollider.Shape.Centre(),
				)
			}

			// Push tank slightly away from wall to prevent sticking
			push := direction.PushVector().Mul(s.push)
			transform.Translation = transform.Translation.Add(push)

			world.EmitEvent(TankWallContactEvent{
				TankID: tankEntity.ID,
				WallID: wallEntity.ID,
				Push:   push,
			})
		}
	}
}

// Overlap is a tank sunk into a blocker, with the minimum translation that
// would separate them
type Overlap struct {
	TankID ecs.EntityID
	WallID ecs.EntityID
	Centre geom.Vec2
	MTV    geom.Vec2
}

// TankWallOverlaps lists every tank/blocker pair that currently overlaps
func TankWallOverlaps(world *ecs.World) []Overlap {
	var out []Overlap
	walls := blockers(world)

	for _, tankEntity := range world.Query(components.Tank, components.Collider) {
		colliderComp, _ := world.GetComponent(tankEntity.ID, components.Collider)
		hull := colliderComp.(*components.ColliderComponent).Shape

		for _, wallEntity := range walls {
			if wallEntity.ID == tankEntity.ID {
				continue
			}
			wallComp, _ := world.GetComponent(wallEntity.ID, components.Collider)
			mtv, ok := geom.Penetration(hull, wallComp.(*components.ColliderComponent).Shape)
			if !ok {
				continue
			}
			out = append(out, Overlap{TankID: tankEntity.ID, WallID: wallEntity.ID, Centre: hull.Centre(), MTV: mtv})
		}
	}
	return out
}
