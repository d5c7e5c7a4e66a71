package screens

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/generation"
	"ebiten-tanks/spawners"
	"ebiten-tanks/systems"
)

// roundOverDelay is how long the arena keeps running after the deciding hit
const roundOverDelay = 1.0

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	session      *Session
	generator    generation.LayoutGenerator
	rng          *rand.Rand
	seed         int64
	world        *ecs.World
	renderSystem *systems.RenderSystem
	roundSystem  *systems.RoundSystem
	overTimer    float64
	screenStack  *ScreenStack
}

// NewGameScreen creates a game screen and builds its first round from seed
func NewGameScreen(session *Session, seed int64) *GameScreen {
	s := &GameScreen{
		BaseScreen:  NewBaseScreen(),
		session:     session,
		generator:   generation.NewArenaGenerator(),
		rng:         rand.New(rand.NewSource(seed)),
		screenStack: NewScreenStack(),
	}
	s.startRound(seed)
	return s
}

// startRound replaces the world with a freshly generated arena
func (s *GameScreen) startRound(seed int64) {
	tuning := s.session.Tuning
	s.seed = seed
	s.overTimer = 0
	s.screenStack = NewScreenStack()

	s.generator.SetSeed(seed)
	layout := s.generator.Generate(config.ArenaCols, config.ArenaRows, config.CellSize,
		tuning.Arena.WallThickness, tuning.Arena.WallDensity)

	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, tuning, systems.GetDebugLog().Add)
	spawner.SpawnArena(layout)

	// Tanks start in far-apart cells facing the middle of the arena
	middle := layout.CellCenter(layout.Cols/2, layout.Rows/2)
	points := s.generator.FindSpawnPoints(layout, len(s.session.Templates))
	for i, tmpl := range s.session.Templates {
		if i >= len(points) {
			log.Printf("[GameScreen] no spawn point left for tank %q", tmpl.ID)
			break
		}
		toMiddle := middle.Sub(points[i])
		spawner.SpawnTank(tmpl, points[i], math.Atan2(toMiddle.Y(), toMiddle.X()))
	}

	roundSystem := systems.NewRoundSystem(seed, s.session.Settings)
	audioSystem := systems.NewAudioSystem(s.session.Audio, s.session.Settings)
	effectsSystem := systems.NewEffectsSystem()

	// Handlers must be live before the first frame can emit a hit
	roundSystem.Initialize(world)
	audioSystem.Initialize(world)
	effectsSystem.Initialize(world)

	world.AddSystem(systems.NewTankControlSystem(s.session.Input, s.session.Bindings))
	world.AddSystem(systems.NewShootingSystem(s.session.Input, s.session.Bindings, spawner, tuning))
	world.AddSystem(systems.NewMovementSystem())
	systems.RegisterCollisionSystems(world, tuning.Collision)
	world.AddSystem(systems.NewBulletTankCollisionSystem())
	world.AddSystem(roundSystem)
	world.AddSystem(audioSystem)
	world.AddSystem(effectsSystem)

	renderSystem := systems.NewRenderSystem(layout.Height())
	renderSystem.SetDebugOverlay(s.session.Settings.Settings().DebugOverlay)
	renderSystem.SetScoreSource(func() [2]int { return s.session.Settings.Settings().Wins })

	s.world = world
	s.roundSystem = roundSystem
	s.renderSystem = renderSystem

	systems.GetMessageLog().AddTyped(fmt.Sprintf("Round on arena %d. Fight!", seed), systems.MessageTypeSystem)
}

// Seed returns the seed of the current arena
func (s *GameScreen) Seed() int64 {
	return s.seed
}

// World returns the current round's world
func (s *GameScreen) World() *ecs.World {
	return s.world
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Toggle debug window with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && s.screenStack.Peek() == nil {
		s.screenStack.Push(NewDebugScreen(s.world))
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.toggleDebugOverlay()
	}

	// Update the screen stack first to handle modal input
	if s.screenStack.Peek() != nil {
		err := s.screenStack.Update()
		switch err {
		case ErrCloseScreen:
			s.screenStack.Pop()
		case ErrNextRound:
			s.startRound(s.rng.Int63())
		case ErrMainMenu, ErrQuit:
			return err
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.screenStack.Push(NewPauseScreen())
		return nil
	}

	s.step(1.0 / config.TPS)
	return nil
}

// step advances the round by dt and opens the result screen once it is decided
func (s *GameScreen) step(dt float64) {
	s.world.Update(dt)

	if !s.roundSystem.IsOver() {
		return
	}
	s.overTimer += dt
	if s.overTimer >= roundOverDelay && s.screenStack.Peek() == nil {
		s.screenStack.Push(NewGameOverScreen(s.roundSystem.Winner(), s.session.Settings.Settings().Wins))
	}
}

// toggleDebugOverlay flips collider outlines and remembers the choice
func (s *GameScreen) toggleDebugOverlay() {
	enabled := !s.renderSystem.DebugOverlay()
	s.renderSystem.SetDebugOverlay(enabled)
	s.session.Settings.SetDebugOverlay(enabled)
	if err := s.session.Settings.Save(); err != nil {
		log.Printf("[GameScreen] failed to save settings: %v", err)
	}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)

	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}
