package systems

import (
	"fmt"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
	"ebiten-tanks/spawners"
)

// ShootingSystem fires bullets from tank muzzles
type ShootingSystem struct {
	input    InputSource
	bindings map[int]KeyBindings
	spawner  *spawners.EntitySpawner
	tuning   config.TankTuning
	bullet   config.BulletTuning
}

// NewShootingSystem creates a new shooting system
func NewShootingSystem(input InputSource, bindings map[int]KeyBindings, spawner *spawners.EntitySpawner, tuning *config.Tuning) *ShootingSystem {
	return &ShootingSystem{
		input:    input,
		bindings: bindings,
		spawner:  spawner,
		tuning:   tuning.Tank,
		bullet:   tuning.Bullet,
	}
}

// Update ticks cooldowns and spawns bullets for tanks holding fire
func (s *ShootingSystem) Update(world *ecs.World, dt float64) {
	live := s.liveBullets(world)

	for _, entity := range world.Query(components.Tank, components.Transform) {
		tankComp, _ := world.GetComponent(entity.ID, components.Tank)
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		tank := tankComp.(*components.TankComponent)
		transform := transformComp.(*components.TransformComponent)

		if tank.FireCooldown > 0 {
			tank.FireCooldown -= dt
		}

		keys, ok := s.bindings[tank.Player]
		if !ok || tank.Destroyed || !s.input.IsKeyPressed(keys.Fire) {
			continue
		}
		if tank.FireCooldown > 0 || live[entity.ID] >= s.tuning.MaxBullets {
			continue
		}

		// The shell starts flush with the hull face
		muzzle := transform.Translation.Add(transform.Forward().Mul(s.tuning.Width/2 + s.bullet.Size/2))
		if s.barrelBlocked(world, transform.Translation, muzzle) {
			GetDebugLog().Add(fmt.Sprintf("tank #%d barrel blocked by a wall", entity.ID))
			continue
		}
		bullet := s.spawner.SpawnBullet(entity.ID, muzzle, transform.RotationDegrees())

		tank.FireCooldown = s.tuning.FireCooldown
		live[entity.ID]++

		world.EmitEvent(ShotFiredEvent{TankID: entity.ID, BulletID: bullet.ID})
	}
}

// barrelBlocked reports whether a shell carried from the hull centre out to
// the muzzle would touch a wall. Such a shell would start inside or beyond
// the wall and never register a bounce.
func (s *ShootingSystem) barrelBlocked(world *ecs.World, centre, muzzle geom.Vec2) bool {
	half := s.bullet.Size / 2
	pad := geom.Vec2{half, half}

	for _, wall := range world.Query(components.Wall, components.Collider) {
		colliderComp, _ := world.GetComponent(wall.ID, components.Collider)
		box, ok := colliderComp.(*components.ColliderComponent).Shape.(*geom.AABB)
		if !ok {
			continue
		}
		if geom.SweepHitsAABB(centre, muzzle, pad, box) {
			return true
		}
	}
	return false
}

// liveBullets counts bullets in flight per owner
func (s *ShootingSystem) liveBullets(world *ecs.World) map[ecs.EntityID]int {
	counts := make(map[ecs.EntityID]int)
	for _, entity := range world.Query(components.Bullet) {
		bulletComp, _ := world.GetComponent(entity.ID, components.Bullet)
		counts[bulletComp.(*components.BulletComponent).Owner]++
	}
	return counts
}
