package systems

import (
	"fmt"
	"log"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
)

// RoundSystem handles tank hits and decides when a round is over
type RoundSystem struct {
	initialized bool
	over        bool
	winner      int
	seed        int64
	settings    *config.SettingsManager
}

// NewRoundSystem creates a new round system for the arena built from seed.
// settings may be nil, in which case results are not persisted.
func NewRoundSystem(seed int64, settings *config.SettingsManager) *RoundSystem {
	return &RoundSystem{
		winner:   -1,
		seed:     seed,
		settings: settings,
	}
}

// Initialize sets up event listeners
func (s *RoundSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	world.GetEventManager().Subscribe(EventTankHit, func(event ecs.Event) {
		s.handleHit(world, event.(TankHitEvent))
	})
	world.GetEventManager().Subscribe(EventBulletBounce, func(event ecs.Event) {
		s.handleBounce(world, event.(BulletBounceEvent))
	})

	s.initialized = true
}

// handleHit reports a destroyed tank
func (s *RoundSystem) handleHit(world *ecs.World, event TankHitEvent) {
	victim := getEntityName(world, event.TankID)
	shooter := getEntityName(world, event.ShooterID)

	if event.ShooterID == event.TankID {
		GetMessageLog().AddTyped(fmt.Sprintf("%s was hit by its own ricochet!", victim), MessageTypeHit)
		return
	}
	GetMessageLog().AddTyped(fmt.Sprintf("%s was destroyed by %s!", victim, shooter), MessageTypeHit)
}

// handleBounce reports a shell's first ricochet, the moment it becomes
// dangerous to its own tank
func (s *RoundSystem) handleBounce(world *ecs.World, event BulletBounceEvent) {
	if event.Bounces != 1 {
		return
	}
	bulletComp, ok := world.GetComponent(event.BulletID, components.Bullet)
	if !ok {
		return
	}
	owner := getEntityName(world, bulletComp.(*components.BulletComponent).Owner)
	GetMessageLog().AddTyped(fmt.Sprintf("%s's shell ricochets!", owner), MessageTypeBounce)
}

// Update registers handlers and ends the round once at most one tank survives
func (s *RoundSystem) Update(world *ecs.World, dt float64) {
	if !s.initialized {
		s.Initialize(world)
	}
	if s.over {
		return
	}

	var alive []*components.TankComponent
	for _, entity := range world.Query(components.Tank) {
		tankComp, _ := world.GetComponent(entity.ID, components.Tank)
		tank := tankComp.(*components.TankComponent)
		if !tank.Destroyed {
			alive = append(alive, tank)
		}
	}
	if len(alive) > 1 {
		return
	}

	s.over = true
	s.winner = -1
	if len(alive) == 1 {
		s.winner = alive[0].Player
		GetMessageLog().AddAlert(fmt.Sprintf("Player %d wins the round!", s.winner+1))
	} else {
		GetMessageLog().AddAlert("Draw! No tank survived.")
	}

	if s.settings != nil {
		s.settings.RecordRound(s.seed, s.winner)
		if err := s.settings.Save(); err != nil {
			log.Printf("[RoundSystem] failed to save round result: %v", err)
		}
	}

	world.EmitEvent(RoundOverEvent{Winner: s.winner})
}

// IsOver reports whether the round has finished
func (s *RoundSystem) IsOver() bool {
	return s.over
}

// Winner returns the winning player slot, or -1 for a draw or an unfinished round
func (s *RoundSystem) Winner() int {
	return s.winner
}

// getEntityName returns an entity's display name
func getEntityName(world *ecs.World, id ecs.EntityID) string {
	if nameComp, ok := world.GetComponent(id, components.Name); ok {
		return nameComp.(*components.NameComponent).Name
	}
	return fmt.Sprintf("Entity %d", id)
}
