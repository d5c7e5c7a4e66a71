package components

import (
	"image/color"
	"math"

	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// BulletComponent stores the state of a bouncing shell
type BulletComponent struct {
	Angle       float64    // Heading in degrees, counter-clockwise from +X
	Speed       float64    // World units per second
	BounceCount int        // Walls hit so far
	LastHitWall *geom.Vec2 // Centre of the wall hit most recently, nil before the first bounce
	Owner       ecs.EntityID
}

// Velocity returns the bullet's velocity derived from its heading
func (b *BulletComponent) Velocity() geom.Vec2 {
	rad := b.Angle * math.Pi / 180
	return geom.Vec2{math.Cos(rad), math.Sin(rad)}.Mul(b.Speed)
}

// HitWall reports whether centre is the wall the bullet last bounced off
func (b *BulletComponent) HitWall(centre geom.Vec2) bool {
	return b.LastHitWall != nil && *b.LastHitWall == centre
}

// TankComponent stores per-tank gameplay state
type TankComponent struct {
	Player       int // Zero-based player slot
	TemplateID   string
	Colour       color.RGBA
	Speed        float64 // World units per second
	ReverseSpeed float64 // World units per second
	TurnRate     float64 // Radians per second
	FireCooldown float64 // Seconds until the tank may fire again
	Destroyed    bool
}

// WallType distinguishes which axis a wall segment runs along
type WallType int

const (
	// WallHorizontal runs along X; bullets bounce by flipping their Y velocity
	WallHorizontal WallType = iota
	// WallVertical runs along Y; bullets bounce by flipping their X velocity
	WallVertical
)

// String returns the wall type name
func (t WallType) String() string {
	if t == WallVertical {
		return "vertical"
	}
	return "horizontal"
}

// WallComponent marks an entity as a wall segment
type WallComponent struct {
	WallType WallType
}

// WallDirection names the side of the play space a wall closes off
type WallDirection int

const (
	DirUp WallDirection = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name
func (d WallDirection) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// PushVector returns the unit vector that moves a tank away from a wall on this side
func (d WallDirection) PushVector() geom.Vec2 {
	switch d {
	case DirUp:
		return geom.Vec2{0, -1}
	case DirDown:
		return geom.Vec2{0, 1}
	case DirLeft:
		return geom.Vec2{1, 0}
	default:
		return geom.Vec2{-1, 0}
	}
}

// DirectionComponent fixes the push direction of a wall
type DirectionComponent struct {
	Direction WallDirection
}

// EffectKind selects how an effect is drawn
type EffectKind int

const (
	EffectSpark EffectKind = iota
	EffectExplosion
)

// EffectComponent is a short-lived visual effect at the entity's transform
type EffectComponent struct {
	Kind      EffectKind
	Age       float64 // Seconds since spawn
	Lifetime  float64 // Seconds until the effect is removed
	MaxRadius float64
	Colour    color.RGBA
}

// Progress returns how far through its lifetime the effect is, 0..1
func (e *EffectComponent) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	return math.Min(e.Age/e.Lifetime, 1)
}
