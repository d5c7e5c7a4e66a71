package systems

import (
	"image/color"

	"ebiten-tanks/components"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// Effect presets
var (
	sparkEffect = components.EffectComponent{
		Kind:      components.EffectSpark,
		Lifetime:  0.15,
		MaxRadius: 6,
		Colour:    color.RGBA{255, 220, 120, 255},
	}
	explosionEffect = components.EffectComponent{
		Kind:      components.EffectExplosion,
		Lifetime:  0.6,
		MaxRadius: 40,
		Colour:    color.RGBA{255, 140, 40, 255},
	}
)

// EffectsSystem spawns sparks and explosions from collision events and
// removes them when they burn out
type EffectsSystem struct {
	initialized bool
	pending     []pendingEffect
}

type pendingEffect struct {
	at     geom.Vec2
	effect components.EffectComponent
}

// NewEffectsSystem creates a new effects system
func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

// Initialize sets up event listeners for the effects system
func (s *EffectsSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	world.GetEventManager().Subscribe(EventBulletBounce, func(event ecs.Event) {
		s.queue(event.(BulletBounceEvent).Position, sparkEffect)
	})

	// The tank is despawned at the end of the frame, so read its position now
	world.GetEventManager().Subscribe(EventTankHit, func(event ecs.Event) {
		hit := event.(TankHitEvent)
		if transformComp, ok := world.GetComponent(hit.TankID, components.Transform); ok {
			s.queue(transformComp.(*components.TransformComponent).Translation, explosionEffect)
		}
	})

	s.initialized = true
}

func (s *EffectsSystem) queue(at geom.Vec2, effect components.EffectComponent) {
	s.pending = append(s.pending, pendingEffect{at: at, effect: effect})
}

// Update ages live effects, removes finished ones, then spawns queued ones
func (s *EffectsSystem) Update(world *ecs.World, dt float64) {
	if !s.initialized {
		s.Initialize(world)
	}

	for _, entity := range world.Query(components.Effect) {
		effectComp, _ := world.GetComponent(entity.ID, components.Effect)
		effect := effectComp.(*components.EffectComponent)
		effect.Age += dt
		if effect.Age >= effect.Lifetime {
			world.Despawn(entity.ID)
		}
	}

	for _, p := range s.pending {
		effect := p.effect
		entity := world.CreateEntity()
		world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{Translation: p.at})
		world.AddComponent(entity.ID, components.Effect, &effect)
	}
	s.pending = s.pending[:0]
}
