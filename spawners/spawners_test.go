package spawners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/data"
	"ebiten-tanks/ecs"
	"ebiten-tanks/generation"
	"ebiten-tanks/geom"
)

func newSpawner() (*ecs.World, *EntitySpawner, *[]string) {
	var logged []string
	w := ecs.NewWorld()
	s := NewEntitySpawner(w, config.DefaultTuning(), func(m string) { logged = append(logged, m) })
	return w, s, &logged
}

func TestSpawnTank(t *testing.T) {
	w, s, logged := newSpawner()
	tmpl, _ := data.DefaultTemplates().GetTemplate("green")

	tank := s.SpawnTank(tmpl, geom.Vec2{100, 200}, 0)

	assert.True(t, w.HasComponent(tank.ID, components.Dynamic))
	assert.False(t, w.HasComponent(tank.ID, components.Static))

	col, ok := w.GetComponent(tank.ID, components.Collider)
	require.True(t, ok)
	obb, ok := col.(*components.ColliderComponent).Shape.(*geom.OBB)
	require.True(t, ok, "tanks use oriented boxes")
	assert.Equal(t, geom.Vec2{100, 200}, obb.Center)
	assert.Equal(t, geom.Vec2{18, 14}, obb.HalfExtents)

	tc, _ := w.GetComponent(tank.ID, components.Tank)
	assert.Equal(t, 0, tc.(*components.TankComponent).Player)
	assert.Len(t, w.GetEntitiesWithTag("tank"), 1)
	assert.Equal(t, []string{"Green tank created at 100,200"}, *logged)
}

func TestSpawnBullet(t *testing.T) {
	w, s, _ := newSpawner()
	b := s.SpawnBullet(9, geom.Vec2{5, 5}, 45)

	bc, ok := w.GetComponent(b.ID, components.Bullet)
	require.True(t, ok)
	bullet := bc.(*components.BulletComponent)
	assert.Equal(t, 45.0, bullet.Angle)
	assert.Equal(t, ecs.EntityID(9), bullet.Owner)
	assert.Nil(t, bullet.LastHitWall)

	col, _ := w.GetComponent(b.ID, components.Collider)
	_, isAABB := col.(*components.ColliderComponent).Shape.(*geom.AABB)
	assert.True(t, isAABB)
	assert.True(t, w.HasComponent(b.ID, components.Dynamic))
}

func TestSpawnArena(t *testing.T) {
	w, s, logged := newSpawner()
	g := generation.NewArenaGenerator()
	g.SetSeed(11)
	layout := g.Generate(5, 4, 80, 6, 0.5)

	n := s.SpawnArena(layout)
	assert.Equal(t, len(layout.Walls), n)

	walls := w.Query(components.Wall, components.Collider, components.Static)
	assert.Len(t, walls, n)
	assert.Len(t, w.Query(components.Wall, components.Direction), 4, "only border walls carry a direction")
	assert.Empty(t, w.Query(components.Wall, components.Dynamic))
	assert.Contains(t, (*logged)[0], "Arena 11 built")
}
