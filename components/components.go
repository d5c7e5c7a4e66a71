package components

import (
	"image/color"
	"math"

	"ebiten-tanks/geom"
)

// TransformComponent stores an entity's placement in world space (y-up)
type TransformComponent struct {
	Translation geom.Vec2
	Rotation    float64 // Radians about Z, counter-clockwise
}

// NewTransformComponent creates a transform at (x, y) with no rotation
func NewTransformComponent(x, y float64) *TransformComponent {
	return &TransformComponent{Translation: geom.Vec2{x, y}}
}

// RotationDegrees returns the Z rotation normalised to [0, 360)
func (t *TransformComponent) RotationDegrees() float64 {
	deg := math.Mod(t.Rotation*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Forward returns the unit vector the entity is facing
func (t *TransformComponent) Forward() geom.Vec2 {
	return geom.Vec2{math.Cos(t.Rotation), math.Sin(t.Rotation)}
}

// VelocityComponent stores linear velocity in world units per second
type VelocityComponent struct {
	geom.Vec2
}

// ColliderComponent wraps the collision shape of an entity.
// The shape is a pointer so systems can refresh its bounds in place.
type ColliderComponent struct {
	Shape geom.Shape
}

// NewAABBCollider creates a collider with an axis-aligned box of the given size
func NewAABBCollider(center, size geom.Vec2) *ColliderComponent {
	return &ColliderComponent{Shape: geom.NewAABB(center, size)}
}

// NewOBBCollider creates a collider with an oriented box of the given size
func NewOBBCollider(center, size geom.Vec2, rotation float64) *ColliderComponent {
	return &ColliderComponent{Shape: geom.NewOBB(center, size, rotation)}
}

// CollidesWith tests this collider against another
func (c *ColliderComponent) CollidesWith(other *ColliderComponent) bool {
	return geom.CollidesWith(c.Shape, other.Shape)
}

// DynamicComponent marks entities whose collider tracks their transform
type DynamicComponent struct{}

// StaticComponent marks entities that never move
type StaticComponent struct{}

// RenderableComponent stores how an entity is drawn
type RenderableComponent struct {
	Colour color.RGBA
	Size   geom.Vec2 // Full width and height in world units
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}
