package geom

import "math"

// axisEpsilon filters out degenerate axes
const axisEpsilon = 1e-9

// CollidesWith reports whether two shapes overlap using the separating axis
// theorem. Shapes that only touch are considered colliding.
func CollidesWith(a, b Shape) bool {
	// Fast path for the common wall case
	if ab, ok := a.(*AABB); ok {
		if bb, ok := b.(*AABB); ok {
			return aabbOverlap(ab, bb)
		}
	}

	d := b.Centre().Sub(a.Centre())
	for _, axis := range candidateAxes(a, b) {
		if math.Abs(d.Dot(axis)) > a.ProjectionRadius(axis)+b.ProjectionRadius(axis) {
			return false
		}
	}
	return true
}

// Penetration returns the minimum translation vector that moves a out of b.
// The second return value is false when the shapes do not overlap.
func Penetration(a, b Shape) (Vec2, bool) {
	d := b.Centre().Sub(a.Centre())
	best := math.Inf(1)
	var mtv Vec2

	for _, axis := range candidateAxes(a, b) {
		dist := d.Dot(axis)
		overlap := a.ProjectionRadius(axis) + b.ProjectionRadius(axis) - math.Abs(dist)
		if overlap < 0 {
			return Vec2{}, false
		}
		if overlap < best {
			best = overlap
			// Push a away from b
			if dist > 0 {
				mtv = axis.Mul(-overlap)
			} else {
				mtv = axis.Mul(overlap)
			}
		}
	}

	return mtv, true
}

func aabbOverlap(a, b *AABB) bool {
	return math.Abs(b.Center.X()-a.Center.X()) <= a.HalfExtents.X()+b.HalfExtents.X() &&
		math.Abs(b.Center.Y()-a.Center.Y()) <= a.HalfExtents.Y()+b.HalfExtents.Y()
}

// candidateAxes merges the axes of both shapes, dropping zero-length and
// parallel duplicates.
func candidateAxes(a, b Shape) []Vec2 {
	raw := append(Axes(a), Axes(b)...)
	axes := make([]Vec2, 0, len(raw))

	for _, axis := range raw {
		l := axis.Len()
		if l < axisEpsilon {
			continue
		}
		axis = axis.Mul(1 / l)

		duplicate := false
		for _, seen := range axes {
			cross := seen.X()*axis.Y() - seen.Y()*axis.X()
			if math.Abs(cross) < axisEpsilon {
				duplicate = true
				break
			}
		}
		if !duplicate {
			axes = append(axes, axis)
		}
	}

	return axes
}

// SweepHitsAABB reports whether a box with half extents pad touches box at
// any point while its centre travels from from to to. A sweep that starts
// inside box counts as a hit.
func SweepHitsAABB(from, to, pad Vec2, box *AABB) bool {
	half := box.HalfExtents.Add(pad)
	lo, hi := box.Center.Sub(half), box.Center.Add(half)
	d := to.Sub(from)
	tMin, tMax := 0.0, 1.0

	for i := 0; i < 2; i++ {
		if math.Abs(d[i]) < axisEpsilon {
			if from[i] < lo[i] || from[i] > hi[i] {
				return false
			}
			continue
		}
		t1 := (lo[i] - from[i]) / d[i]
		t2 := (hi[i] - from[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
