package spawners

import (
	"fmt"
	"image/color"
	"math"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/data"
	"ebiten-tanks/ecs"
	"ebiten-tanks/generation"
	"ebiten-tanks/geom"
)

var (
	wallColour   = color.RGBA{90, 90, 110, 255}
	bulletColour = color.RGBA{240, 240, 240, 255}
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	tuning     *config.Tuning
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, tuning *config.Tuning, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		tuning:     tuning,
		logMessage: logFunc,
	}
}

// SpawnTank creates a tank from a template at pos, facing rotation radians
func (s *EntitySpawner) SpawnTank(template *data.TankTemplate, pos geom.Vec2, rotation float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, "tank")

	colour := data.ParseHexColor(template.Color)
	size := geom.Vec2{s.tuning.Tank.Width, s.tuning.Tank.Height}

	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{
		Translation: pos,
		Rotation:    rotation,
	})
	s.world.AddComponent(entity.ID, components.Velocity, &components.VelocityComponent{})
	s.world.AddComponent(entity.ID, components.Collider,
		components.NewOBBCollider(pos, size, rotation*180/math.Pi))
	s.world.AddComponent(entity.ID, components.Dynamic, &components.DynamicComponent{})
	s.world.AddComponent(entity.ID, components.Tank, &components.TankComponent{
		Player:       template.Player,
		TemplateID:   template.ID,
		Colour:       colour,
		Speed:        s.tuning.Tank.Speed,
		ReverseSpeed: s.tuning.Tank.ReverseSpeed,
		TurnRate:     s.tuning.Tank.TurnRate * math.Pi / 180,
	})
	s.world.AddComponent(entity.ID, components.Renderable, &components.RenderableComponent{
		Colour: colour,
		Size:   size,
	})
	s.world.AddComponent(entity.ID, components.Name, &components.NameComponent{Name: template.Name})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("%s tank created at %.0f,%.0f", template.Name, pos.X(), pos.Y()))
	}

	return entity
}

// SpawnBullet creates a bullet at pos heading along angle degrees
func (s *EntitySpawner) SpawnBullet(owner ecs.EntityID, pos geom.Vec2, angle float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, "bullet")

	size := geom.Vec2{s.tuning.Bullet.Size, s.tuning.Bullet.Size}

	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{Translation: pos})
	s.world.AddComponent(entity.ID, components.Collider, components.NewAABBCollider(pos, size))
	s.world.AddComponent(entity.ID, components.Dynamic, &components.DynamicComponent{})
	s.world.AddComponent(entity.ID, components.Bullet, &components.BulletComponent{
		Angle: angle,
		Speed: s.tuning.Bullet.Speed,
		Owner: owner,
	})
	s.world.AddComponent(entity.ID, components.Renderable, &components.RenderableComponent{
		Colour: bulletColour,
		Size:   size,
	})

	return entity
}

// SpawnWall creates a static wall segment
func (s *EntitySpawner) SpawnWall(spec generation.WallSpec) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, "wall")

	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{Translation: spec.Center})
	s.world.AddComponent(entity.ID, components.Collider, components.NewAABBCollider(spec.Center, spec.Size))
	s.world.AddComponent(entity.ID, components.Static, &components.StaticComponent{})
	s.world.AddComponent(entity.ID, components.Wall, &components.WallComponent{WallType: spec.Type})
	if spec.Direction != nil {
		s.world.AddComponent(entity.ID, components.Direction, &components.DirectionComponent{Direction: *spec.Direction})
	}
	s.world.AddComponent(entity.ID, components.Renderable, &components.RenderableComponent{
		Colour: wallColour,
		Size:   spec.Size,
	})

	return entity
}

// SpawnArena creates every wall of a layout and returns how many were spawned
func (s *EntitySpawner) SpawnArena(layout *generation.ArenaLayout) int {
	for _, spec := range layout.Walls {
		s.SpawnWall(spec)
	}

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Arena %d built with %d walls", layout.Seed, len(layout.Walls)))
	}

	return len(layout.Walls)
}
