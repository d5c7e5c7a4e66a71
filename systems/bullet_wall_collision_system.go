package systems

import (
	"fmt"
	"math"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// BulletWallCollisionSystem bounces bullets off walls and retires bullets
// that have bounced too often
type BulletWallCollisionSystem struct {
	nudge      float64
	maxBounces int
}

// NewBulletWallCollisionSystem creates a bullet/wall system from tuning
func NewBulletWallCollisionSystem(tuning config.CollisionTuning) *BulletWallCollisionSystem {
	return &BulletWallCollisionSystem{
		nudge:      tuning.BulletNudge,
		maxBounces: tuning.MaxBounces,
	}
}

// ReflectAngle mirrors a heading in degrees off a wall, normalised to (-180, 180]
func ReflectAngle(angle float64, wallType components.WallType) float64 {
	switch wallType {
	case components.WallHorizontal:
		return normaliseAngle(-angle)
	default:
		return normaliseAngle(180 - angle)
	}
}

// WallNormal returns the unit normal of a wall facing back against velocity
func WallNormal(wallType components.WallType, velocity geom.Vec2) geom.Vec2 {
	if wallType == components.WallHorizontal {
		if velocity.Y() > 0 {
			return geom.Vec2{0, -1}
		}
		return geom.Vec2{0, 1}
	}
	if velocity.X() > 0 {
		return geom.Vec2{-1, 0}
	}
	return geom.Vec2{1, 0}
}

func normaliseAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// Update handles at most one bounce per bullet per frame
func (s *BulletWallCollisionSystem) Update(world *ecs.World, dt float64) {
	bullets := world.Query(components.Bullet, components.Collider, components.Transform)
	walls := world.Query(components.Wall, components.Collider)

	for _, bulletEntity := range bullets {
		bulletComp, _ := world.GetComponent(bulletEntity.ID, components.Bullet)
		colliderComp, _ := world.GetComponent(bulletEntity.ID, components.Collider)
		transformComp, _ := world.GetComponent(bulletEntity.ID, components.Transform)
		bullet := bulletComp.(*components.BulletComponent)
		bulletCollider := colliderComp.(*components.ColliderComponent)
		transform := transformComp.(*components.TransformComponent)

		var hitWall ecs.EntityID
		for _, wallEntity := range walls {
			wallColliderComp, _ := world.GetComponent(wallEntity.ID, components.Collider)
			wallComp, _ := world.GetComponent(wallEntity.ID, components.Wall)
			wallCollider := wallColliderComp.(*components.ColliderComponent)
			wall := wallComp.(*components.WallComponent)

			// Walls are axis-aligned; anything else cannot be reflected off
			wallBox, ok := wallCollider.Shape.(*geom.AABB)
			if !ok {
				continue
			}

			if bullet.HitWall(wallBox.Center) {
				continue
			}

			if !bulletCollider.CollidesWith(wallCollider) {
				continue
			}

			incoming := bullet.Velocity()
			bullet.Angle = ReflectAngle(bullet.Angle, wall.WallType)
			centre := wallBox.Center
			bullet.LastHitWall = &centre

			normal := WallNormal(wall.WallType, incoming)
			transform.Translation = transform.Translation.Add(normal.Mul(s.nudge))

			hitWall = wallEntity.ID
			break
		}

		if hitWall == 0 {
			continue
		}

		bullet.BounceCount++
		world.EmitEvent(BulletBounceEvent{
			BulletID: bulletEntity.ID,
			WallID:   hitWall,
			Position: transform.Translation,
			Bounces:  bullet.BounceCount,
		})

		if bullet.BounceCount > s.maxBounces {
			world.Despawn(bulletEntity.ID)
			world.EmitEvent(BulletExpiredEvent{BulletID: bulletEntity.ID, OwnerID: bullet.Owner})
			GetDebugLog().Add(fmt.Sprintf("bullet #%d expired after %d bounces", bulletEntity.ID, bullet.BounceCount))
		}
	}
}
