package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the vector type used for all 2D geometry in the game
type Vec2 = mgl64.Vec2

var (
	// UnitX and UnitY are the world axes
	UnitX = Vec2{1, 0}
	UnitY = Vec2{0, 1}
)

// Shape is a convex primitive that can take part in separating-axis tests
type Shape interface {
	// Centre returns the world-space centre of the shape
	Centre() Vec2
	// Axes returns the face normals to test against
	Axes() []Vec2
	// ProjectionRadius returns half the length of the shape's shadow on axis
	ProjectionRadius(axis Vec2) float64
}

// AABB is an axis-aligned bounding box
type AABB struct {
	Center      Vec2
	HalfExtents Vec2
}

// NewAABB creates a box centred on center with the given full size
func NewAABB(center, size Vec2) *AABB {
	return &AABB{Center: center, HalfExtents: size.Mul(0.5)}
}

// Centre implements Shape
func (a *AABB) Centre() Vec2 { return a.Center }

// Axes implements Shape
func (a *AABB) Axes() []Vec2 { return []Vec2{UnitX, UnitY} }

// ProjectionRadius implements Shape
func (a *AABB) ProjectionRadius(axis Vec2) float64 { return AABBProjectionRadius(a, axis) }

// Min returns the lower-left corner
func (a *AABB) Min() Vec2 { return a.Center.Sub(a.HalfExtents) }

// Max returns the upper-right corner
func (a *AABB) Max() Vec2 { return a.Center.Add(a.HalfExtents) }

// OBB is an oriented bounding box. Rotation is in degrees, counter-clockwise.
type OBB struct {
	Center      Vec2
	HalfExtents Vec2
	Rotation    float64
}

// NewOBB creates an oriented box with the given full size and rotation in degrees
func NewOBB(center, size Vec2, rotation float64) *OBB {
	return &OBB{Center: center, HalfExtents: size.Mul(0.5), Rotation: rotation}
}

// Centre implements Shape
func (o *OBB) Centre() Vec2 { return o.Center }

// Axes implements Shape
func (o *OBB) Axes() []Vec2 {
	u, v := o.LocalAxes()
	return []Vec2{u, v}
}

// ProjectionRadius implements Shape
func (o *OBB) ProjectionRadius(axis Vec2) float64 { return OBBProjectionRadius(o, axis) }

// LocalAxes returns the box's local X and Y axes in world space
func (o *OBB) LocalAxes() (Vec2, Vec2) {
	rad := mgl64.DegToRad(o.Rotation)
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec2{c, s}, Vec2{-s, c}
}

// Corners returns the four corners in counter-clockwise order
func (o *OBB) Corners() [4]Vec2 {
	u, v := o.LocalAxes()
	ex := u.Mul(o.HalfExtents.X())
	ey := v.Mul(o.HalfExtents.Y())
	return [4]Vec2{
		o.Center.Sub(ex).Sub(ey),
		o.Center.Add(ex).Sub(ey),
		o.Center.Add(ex).Add(ey),
		o.Center.Sub(ex).Add(ey),
	}
}

// Axes returns the separating axes a shape contributes
func Axes(s Shape) []Vec2 {
	return s.Axes()
}

// AABBProjectionRadius projects an AABB's half extents onto axis
func AABBProjectionRadius(a *AABB, axis Vec2) float64 {
	return a.HalfExtents.X()*math.Abs(axis.X()) + a.HalfExtents.Y()*math.Abs(axis.Y())
}

// OBBProjectionRadius projects an OBB's half extents onto axis
func OBBProjectionRadius(o *OBB, axis Vec2) float64 {
	u, v := o.LocalAxes()
	return o.HalfExtents.X()*math.Abs(axis.Dot(u)) + o.HalfExtents.Y()*math.Abs(axis.Dot(v))
}
