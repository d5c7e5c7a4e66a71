package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBCollidesWith(t *testing.T) {
	tests := []struct {
		name string
		a    *AABB
		b    *AABB
		want bool
	}{
		{
			name: "Exact overlap",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			want: true,
		},
		{
			name: "Partial overlap",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{7, 3}, Vec2{10, 10}),
			want: true,
		},
		{
			name: "One inside the other",
			a:    NewAABB(Vec2{0, 0}, Vec2{100, 100}),
			b:    NewAABB(Vec2{10, -10}, Vec2{4, 4}),
			want: true,
		},
		{
			name: "Touching edges",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{10, 0}, Vec2{10, 10}),
			want: true,
		},
		{
			name: "Separated on X",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{20, 0}, Vec2{10, 10}),
			want: false,
		},
		{
			name: "Separated on Y",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{0, -11}, Vec2{10, 10}),
			want: false,
		},
		{
			name: "Diagonal separation",
			a:    NewAABB(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewAABB(Vec2{11, 11}, Vec2{10, 10}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollidesWith(tt.a, tt.b))
			assert.Equal(t, tt.want, CollidesWith(tt.b, tt.a), "symmetry")
		})
	}
}

func TestOBBCollidesWith(t *testing.T) {
	tests := []struct {
		name string
		a    Shape
		b    Shape
		want bool
	}{
		{
			name: "Unrotated OBB behaves like AABB",
			a:    NewOBB(Vec2{0, 0}, Vec2{10, 10}, 0),
			b:    NewAABB(Vec2{9, 0}, Vec2{10, 10}),
			want: true,
		},
		{
			// The rotated square reaches sqrt(50) ~ 7.07 along X
			name: "Rotated corner reaches AABB",
			a:    NewOBB(Vec2{0, 0}, Vec2{10, 10}, 45),
			b:    NewAABB(Vec2{11, 0}, Vec2{8, 8}),
			want: true,
		},
		{
			name: "Rotated corner falls short of AABB",
			a:    NewOBB(Vec2{0, 0}, Vec2{10, 10}, 45),
			b:    NewAABB(Vec2{12, 0}, Vec2{8, 8}),
			want: false,
		},
		{
			// Would overlap as AABBs, separated by the diagonal axis of the OBB
			name: "Separated only on OBB axis",
			a:    NewOBB(Vec2{0, 0}, Vec2{2, 20}, 45),
			b:    NewAABB(Vec2{6, 6}, Vec2{4, 4}),
			want: false,
		},
		{
			name: "Two rotated boxes crossing",
			a:    NewOBB(Vec2{0, 0}, Vec2{20, 2}, 30),
			b:    NewOBB(Vec2{0, 0}, Vec2{20, 2}, -30),
			want: true,
		},
		{
			name: "Parallel rotated boxes apart",
			a:    NewOBB(Vec2{0, 0}, Vec2{20, 2}, 30),
			b:    NewOBB(Vec2{-2, 5}, Vec2{20, 2}, 30),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollidesWith(tt.a, tt.b))
			assert.Equal(t, tt.want, CollidesWith(tt.b, tt.a), "symmetry")
		})
	}
}

func TestProjectionRadius(t *testing.T) {
	box := NewAABB(Vec2{0, 0}, Vec2{4, 2})
	assert.InDelta(t, 2.0, AABBProjectionRadius(box, UnitX), 1e-9)
	assert.InDelta(t, 1.0, AABBProjectionRadius(box, UnitY), 1e-9)

	diag := Vec2{1, 1}.Normalize()
	assert.InDelta(t, 3/math.Sqrt2, AABBProjectionRadius(box, diag), 1e-9)

	obb := NewOBB(Vec2{0, 0}, Vec2{4, 2}, 90)
	assert.InDelta(t, 1.0, OBBProjectionRadius(obb, UnitX), 1e-9)
	assert.InDelta(t, 2.0, OBBProjectionRadius(obb, UnitY), 1e-9)
	assert.InDelta(t, obb.ProjectionRadius(diag), OBBProjectionRadius(obb, diag), 1e-9)
}

func TestAxes(t *testing.T) {
	box := NewAABB(Vec2{3, 3}, Vec2{1, 1})
	require.Equal(t, []Vec2{UnitX, UnitY}, Axes(box))

	obb := NewOBB(Vec2{0, 0}, Vec2{1, 1}, 90)
	axes := Axes(obb)
	require.Len(t, axes, 2)
	assert.True(t, axes[0].ApproxEqualThreshold(Vec2{0, 1}, 1e-9))
	assert.True(t, axes[1].ApproxEqualThreshold(Vec2{-1, 0}, 1e-9))
}

func TestOBBCorners(t *testing.T) {
	obb := NewOBB(Vec2{10, 10}, Vec2{4, 2}, 0)
	corners := obb.Corners()
	assert.True(t, corners[0].ApproxEqualThreshold(Vec2{8, 9}, 1e-9))
	assert.True(t, corners[2].ApproxEqualThreshold(Vec2{12, 11}, 1e-9))
}

func TestPenetration(t *testing.T) {
	t.Run("Pushes out along shallowest axis", func(t *testing.T) {
		a := NewAABB(Vec2{0, 0}, Vec2{10, 10})
		b := NewAABB(Vec2{8, 2}, Vec2{10, 10})

		mtv, ok := Penetration(a, b)
		require.True(t, ok)
		assert.InDelta(t, -2.0, mtv.X(), 1e-9)
		assert.InDelta(t, 0.0, mtv.Y(), 1e-9)

		moved := NewAABB(a.Center.Add(mtv), Vec2{10, 10})
		assert.True(t, CollidesWith(moved, b), "resolved boxes should be touching")
		moved.Center = moved.Center.Add(Vec2{-0.01, 0})
		assert.False(t, CollidesWith(moved, b))
	})

	t.Run("No overlap", func(t *testing.T) {
		a := NewAABB(Vec2{0, 0}, Vec2{2, 2})
		b := NewOBB(Vec2{10, 0}, Vec2{2, 2}, 45)
		_, ok := Penetration(a, b)
		assert.False(t, ok)
	})
}

func TestSweepHitsAABB(t *testing.T) {
	wall := NewAABB(Vec2{121, 100}, Vec2{6, 80})
	pad := Vec2{3, 3}

	tests := []struct {
		name     string
		from, to Vec2
		want     bool
	}{
		{"Ends short of the wall", Vec2{100, 100}, Vec2{110, 100}, false},
		{"Ends touching the wall", Vec2{100, 100}, Vec2{115, 100}, true},
		{"Crosses the wall", Vec2{100, 100}, Vec2{140, 100}, true},
		{"Starts inside", Vec2{121, 100}, Vec2{121, 100}, true},
		{"Parallel and clear", Vec2{100, 0}, Vec2{100, 200}, false},
		{"Passes above the wall end", Vec2{100, 150}, Vec2{140, 150}, false},
		{"Diagonal through", Vec2{100, 80}, Vec2{140, 120}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SweepHitsAABB(tt.from, tt.to, pad, wall))
		})
	}
}
