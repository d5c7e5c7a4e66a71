package systems

import (
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// Event type constants
const (
	EventBulletBounce    ecs.EventType = "bullet_bounce"
	EventBulletExpired   ecs.EventType = "bullet_expired"
	EventTankWallContact ecs.EventType = "tank_wall_contact"
	EventShotFired       ecs.EventType = "shot_fired"
	EventTankHit         ecs.EventType = "tank_hit"
	EventRoundOver       ecs.EventType = "round_over"
)

// BulletBounceEvent is emitted when a bullet reflects off a wall
type BulletBounceEvent struct {
	BulletID ecs.EntityID
	WallID   ecs.EntityID
	Position geom.Vec2 // Bullet position after the nudge
	Bounces  int       // Bounce count including this one
}

// Type returns the event type
func (e BulletBounceEvent) Type() ecs.EventType {
	return EventBulletBounce
}

// BulletExpiredEvent is emitted when a bullet runs out of bounces
type BulletExpiredEvent struct {
	BulletID ecs.EntityID
	OwnerID  ecs.EntityID
}

// Type returns the event type
func (e BulletExpiredEvent) Type() ecs.EventType {
	return EventBulletExpired
}

// TankWallContactEvent is emitted each time a tank is pushed out of a wall
type TankWallContactEvent struct {
	TankID ecs.EntityID
	WallID ecs.EntityID
	Push   geom.Vec2
}

// Type returns the event type
func (e TankWallContactEvent) Type() ecs.EventType {
	return EventTankWallContact
}

// ShotFiredEvent is emitted when a tank fires
type ShotFiredEvent struct {
	TankID   ecs.EntityID
	BulletID ecs.EntityID
}

// Type returns the event type
func (e ShotFiredEvent) Type() ecs.EventType {
	return EventShotFired
}

// TankHitEvent is emitted when a bullet destroys a tank
type TankHitEvent struct {
	TankID    ecs.EntityID
	BulletID  ecs.EntityID
	ShooterID ecs.EntityID
	Player    int // Player slot of the destroyed tank
}

// Type returns the event type
func (e TankHitEvent) Type() ecs.EventType {
	return EventTankHit
}

// RoundOverEvent is emitted once per round when at most one tank remains
type RoundOverEvent struct {
	Winner int // Player slot of the surviving tank, -1 for a draw
}

// Type returns the event type
func (e RoundOverEvent) Type() ecs.EventType {
	return EventRoundOver
}
