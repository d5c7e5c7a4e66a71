package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-tanks/components"
	"ebiten-tanks/data"
	"ebiten-tanks/ecs"
)

// InputSource abstracts the keyboard so systems can be driven in tests
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenInput reads the real keyboard
type EbitenInput struct{}

// IsKeyPressed implements InputSource
func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyBindings maps one player's controls to keys
type KeyBindings struct {
	Forward ebiten.Key
	Back    ebiten.Key
	Left    ebiten.Key
	Right   ebiten.Key
	Fire    ebiten.Key
}

// BindingsFromControls resolves template key names into ebiten keys
func BindingsFromControls(c data.Controls) (KeyBindings, error) {
	var b KeyBindings
	for _, k := range []struct {
		name string
		dst  *ebiten.Key
	}{
		{c.Forward, &b.Forward},
		{c.Back, &b.Back},
		{c.Left, &b.Left},
		{c.Right, &b.Right},
		{c.Fire, &b.Fire},
	} {
		if err := k.dst.UnmarshalText([]byte(k.name)); err != nil {
			return KeyBindings{}, fmt.Errorf("unknown key %q: %w", k.name, err)
		}
	}
	return b, nil
}

// TankControlSystem drives tanks from player input
type TankControlSystem struct {
	input    InputSource
	bindings map[int]KeyBindings // Player slot -> keys
}

// NewTankControlSystem creates a new tank control system
func NewTankControlSystem(input InputSource, bindings map[int]KeyBindings) *TankControlSystem {
	return &TankControlSystem{
		input:    input,
		bindings: bindings,
	}
}

// Update turns input into tank rotation and velocity
func (s *TankControlSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Query(components.Tank, components.Transform, components.Velocity) {
		tankComp, _ := world.GetComponent(entity.ID, components.Tank)
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		velocityComp, _ := world.GetComponent(entity.ID, components.Velocity)
		tank := tankComp.(*components.TankComponent)
		transform := transformComp.(*components.TransformComponent)
		velocity := velocityComp.(*components.VelocityComponent)

		velocity.Vec2 = velocity.Vec2.Mul(0)

		keys, ok := s.bindings[tank.Player]
		if !ok || tank.Destroyed {
			continue
		}

		// y-up world: turning left is counter-clockwise
		if s.input.IsKeyPressed(keys.Left) {
			transform.Rotation += tank.TurnRate * dt
		}
		if s.input.IsKeyPressed(keys.Right) {
			transform.Rotation -= tank.TurnRate * dt
		}

		forward := s.input.IsKeyPressed(keys.Forward)
		back := s.input.IsKeyPressed(keys.Back)
		switch {
		case forward && !back:
			velocity.Vec2 = transform.Forward().Mul(tank.Speed)
		case back && !forward:
			velocity.Vec2 = transform.Forward().Mul(-tank.ReverseSpeed)
		}
	}
}
