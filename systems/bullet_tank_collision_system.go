package systems

import (
	"ebiten-tanks/components"
	"ebiten-tanks/ecs"
)

// BulletTankCollisionSystem destroys tanks struck by bullets
type BulletTankCollisionSystem struct{}

// NewBulletTankCollisionSystem creates a new bullet/tank system
func NewBulletTankCollisionSystem() *BulletTankCollisionSystem {
	return &BulletTankCollisionSystem{}
}

// Update checks every live bullet against every live tank
func (s *BulletTankCollisionSystem) Update(world *ecs.World, dt float64) {
	tanks := world.Query(components.Tank, components.Collider)

	for _, bulletEntity := range world.Query(components.Bullet, components.Collider) {
		bulletComp, _ := world.GetComponent(bulletEntity.ID, components.Bullet)
		colliderComp, _ := world.GetComponent(bulletEntity.ID, components.Collider)
		bullet := bulletComp.(*components.BulletComponent)
		bulletCollider := colliderComp.(*components.ColliderComponent)

		for _, tankEntity := range tanks {
			tankComp, _ := world.GetComponent(tankEntity.ID, components.Tank)
			tank := tankComp.(*components.TankComponent)
			if tank.Destroyed {
				continue
			}

			// A fresh shell cannot hit the tank that fired it
			if tankEntity.ID == bullet.Owner && bullet.BounceCount == 0 {
				continue
			}

			tankColliderComp, _ := world.GetComponent(tankEntity.ID, components.Collider)
			if !bulletCollider.CollidesWith(tankColliderComp.(*components.ColliderComponent)) {
				continue
			}

			tank.Destroyed = true
			world.Despawn(bulletEntity.ID)
			world.Despawn(tankEntity.ID)
			world.EmitEvent(TankHitEvent{
				TankID:    tankEntity.ID,
				BulletID:  bulletEntity.ID,
				ShooterID: bullet.Owner,
				Player:    tank.Player,
			})
			break
		}
	}
}
