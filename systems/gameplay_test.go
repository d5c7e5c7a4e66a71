package systems

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/data"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

type fakeInput map[ebiten.Key]bool

func (f fakeInput) IsKeyPressed(key ebiten.Key) bool {
	return f[key]
}

func testBindings(t *testing.T) map[int]KeyBindings {
	t.Helper()
	bindings := make(map[int]KeyBindings)
	for _, tmpl := range data.DefaultTemplates().ByPlayer() {
		b, err := BindingsFromControls(tmpl.Controls)
		require.NoError(t, err)
		bindings[tmpl.Player] = b
	}
	return bindings
}

func velocityOf(w *ecs.World, id ecs.EntityID) geom.Vec2 {
	c, _ := w.GetComponent(id, components.Velocity)
	return c.(*components.VelocityComponent).Vec2
}

func countBullets(w *ecs.World) int {
	return len(w.Query(components.Bullet))
}

func TestBindingsFromControls(t *testing.T) {
	b, err := BindingsFromControls(data.Controls{Forward: "W", Back: "S", Left: "A", Right: "D", Fire: "Space"})
	require.NoError(t, err)
	assert.Equal(t, KeyBindings{
		Forward: ebiten.KeyW,
		Back:    ebiten.KeyS,
		Left:    ebiten.KeyA,
		Right:   ebiten.KeyD,
		Fire:    ebiten.KeySpace,
	}, b)

	b, err = BindingsFromControls(data.Controls{Forward: "ArrowUp", Back: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight", Fire: "Enter"})
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyArrowUp, b.Forward)
	assert.Equal(t, ebiten.KeyEnter, b.Fire)

	_, err = BindingsFromControls(data.Controls{Forward: "NotAKey", Back: "S", Left: "A", Right: "D", Fire: "Space"})
	assert.Error(t, err)
}

func TestTankControl(t *testing.T) {
	tests := []struct {
		name         string
		keys         fakeInput
		wantVelocity geom.Vec2
		wantRotation float64
	}{
		{"Idle", fakeInput{}, geom.Vec2{0, 0}, 0},
		{"Forward", fakeInput{ebiten.KeyW: true}, geom.Vec2{120, 0}, 0},
		{"Reverse", fakeInput{ebiten.KeyS: true}, geom.Vec2{-80, 0}, 0},
		{"Both cancel", fakeInput{ebiten.KeyW: true, ebiten.KeyS: true}, geom.Vec2{0, 0}, 0},
		{"Turn left is counter-clockwise", fakeInput{ebiten.KeyA: true}, geom.Vec2{0, 0}, math.Pi / 2},
		{"Turn right is clockwise", fakeInput{ebiten.KeyD: true}, geom.Vec2{0, 0}, -math.Pi / 2},
		{"Other player's keys", fakeInput{ebiten.KeyArrowUp: true}, geom.Vec2{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, s, _ := newTestWorld(t)
			tank := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)

			NewTankControlSystem(tt.keys, testBindings(t)).Update(w, 0.5)

			v := velocityOf(w, tank)
			assert.InDelta(t, tt.wantVelocity.X(), v.X(), 1e-9)
			assert.InDelta(t, tt.wantVelocity.Y(), v.Y(), 1e-9)
			assert.InDelta(t, tt.wantRotation, transformOf(w, tank).Rotation, 1e-9)
		})
	}
}

func TestDestroyedTankIgnoresInput(t *testing.T) {
	w, s, _ := newTestWorld(t)
	tank := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	tankOf(w, tank).Destroyed = true

	NewTankControlSystem(fakeInput{ebiten.KeyW: true, ebiten.KeyA: true}, testBindings(t)).Update(w, 1)

	assert.Equal(t, geom.Vec2{0, 0}, velocityOf(w, tank))
	assert.Equal(t, 0.0, transformOf(w, tank).Rotation)
}

func TestMovementIntegrates(t *testing.T) {
	w, s, _ := newTestWorld(t)
	tank := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	c, _ := w.GetComponent(tank, components.Velocity)
	c.(*components.VelocityComponent).Vec2 = geom.Vec2{10, -5}
	bullet := s.SpawnBullet(tank, geom.Vec2{0, 0}, 90).ID

	NewMovementSystem().Update(w, 2)

	assert.Equal(t, geom.Vec2{120, 90}, transformOf(w, tank).Translation)
	pos := transformOf(w, bullet).Translation
	assert.InDelta(t, 0, pos.X(), 1e-9)
	assert.InDelta(t, 440, pos.Y(), 1e-9)
}

func TestShootingSpawnsAtMuzzle(t *testing.T) {
	w, s, tuning := newTestWorld(t)
	tank := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)

	var shots []ShotFiredEvent
	w.GetEventManager().Subscribe(EventShotFired, func(e ecs.Event) {
		shots = append(shots, e.(ShotFiredEvent))
	})

	NewShootingSystem(fakeInput{ebiten.KeySpace: true}, testBindings(t), s, tuning).Update(w, 1.0/60)

	require.Len(t, shots, 1)
	assert.Equal(t, tank, shots[0].TankID)

	b := bulletOf(w, shots[0].BulletID)
	assert.Equal(t, tank, b.Owner)
	assert.InDelta(t, 0, b.Angle, 1e-9)
	// Hull face at 118 plus half the shell
	assert.Equal(t, geom.Vec2{121, 100}, transformOf(w, shots[0].BulletID).Translation)
	assert.InDelta(t, tuning.Tank.FireCooldown, tankOf(w, tank).FireCooldown, 1e-9)
}

func TestShootingAgainstWallIsBlocked(t *testing.T) {
	tests := []struct {
		name  string
		wallX float64
	}{
		// Hull face is at x=118; the wall is 6 thick
		{"Flush with hull", 121},
		{"Small gap", 121.6},
		{"Gap just under a shell", 126.9},
		{"Hull sunk into wall", 117},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, s, tuning := newTestWorld(t)
			tank := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
			spawnWall(s, geom.Vec2{tt.wallX, 100}, geom.Vec2{6, 80}, components.WallVertical, nil)

			NewShootingSystem(fakeInput{ebiten.KeySpace: true}, testBindings(t), s, tuning).Update(w, 1.0/60)

			assert.Equal(t, 0, countBullets(w))
			assert.LessOrEqual(t, tankOf(w, tank).FireCooldown, 0.0, "a blocked shot costs no cooldown")
		})
	}
}

func TestShotNearWallStaysOnTankSide(t *testing.T) {
	w, s, tuning := newTestWorld(t)
	input := fakeInput{ebiten.KeySpace: true}
	w.AddSystem(NewShootingSystem(input, testBindings(t), s, tuning))
	w.AddSystem(NewMovementSystem())
	RegisterCollisionSystems(w, tuning.Collision)

	spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	// Wall spans x 128..134, leaving a 10 unit gap ahead of the hull
	spawnWall(s, geom.Vec2{131, 100}, geom.Vec2{6, 80}, components.WallVertical, nil)

	w.Update(1.0 / 60)
	bullets := w.Query(components.Bullet)
	require.Len(t, bullets, 1)
	bullet := bullets[0].ID
	delete(input, ebiten.KeySpace)

	for i := 0; i < 30; i++ {
		w.Update(1.0 / 60)
		require.True(t, w.IsAlive(bullet))
		assert.Less(t, transformOf(w, bullet).Translation.X(), 131.0, "frame %d", i)
	}
	assert.Equal(t, 1, bulletOf(w, bullet).BounceCount)
	assert.InDelta(t, 180, bulletOf(w, bullet).Angle, 1e-9)
}

func TestShootingCooldown(t *testing.T) {
	w, s, tuning := newTestWorld(t)
	spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	shooting := NewShootingSystem(fakeInput{ebiten.KeySpace: true}, testBindings(t), s, tuning)

	shooting.Update(w, 0.1)
	shooting.Update(w, 0.1)
	assert.Equal(t, 1, countBullets(w))

	// 0.35s cooldown has elapsed after four more ticks
	for i := 0; i < 4; i++ {
		shooting.Update(w, 0.1)
	}
	assert.Equal(t, 2, countBullets(w))
}

func TestShootingCapsLiveBullets(t *testing.T) {
	w, s, tuning := newTestWorld(t)
	tuning.Tank.FireCooldown = 0
	tuning.Tank.MaxBullets = 2
	spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	spawnTestTank(t, s, "red", geom.Vec2{300, 100}, 0)
	shooting := NewShootingSystem(fakeInput{ebiten.KeySpace: true, ebiten.KeyEnter: true}, testBindings(t), s, tuning)

	for i := 0; i < 5; i++ {
		shooting.Update(w, 0.1)
	}

	assert.Equal(t, 4, countBullets(w), "two per tank")
}

func TestBulletIgnoresOwnerUntilBounce(t *testing.T) {
	w, s, _ := newTestWorld(t)
	w.AddSystem(NewBulletTankCollisionSystem())
	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	bullet := s.SpawnBullet(green, geom.Vec2{100, 100}, 0).ID

	w.Update(0)
	assert.True(t, w.IsAlive(green))
	assert.True(t, w.IsAlive(bullet))

	bulletOf(w, bullet).BounceCount = 1
	w.Update(0)
	assert.False(t, w.IsAlive(green))
	assert.False(t, w.IsAlive(bullet))
}

func TestBulletDestroysTank(t *testing.T) {
	w, s, _ := newTestWorld(t)
	w.AddSystem(NewBulletTankCollisionSystem())
	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	red := spawnTestTank(t, s, "red", geom.Vec2{300, 100}, 0)
	bullet := s.SpawnBullet(green, geom.Vec2{290, 100}, 0).ID

	var hits []TankHitEvent
	w.GetEventManager().Subscribe(EventTankHit, func(e ecs.Event) {
		hits = append(hits, e.(TankHitEvent))
	})

	w.Update(0)

	require.Len(t, hits, 1)
	assert.Equal(t, TankHitEvent{TankID: red, BulletID: bullet, ShooterID: green, Player: 1}, hits[0])
	assert.False(t, w.IsAlive(red))
	assert.False(t, w.IsAlive(bullet))
	assert.True(t, w.IsAlive(green))
}

func TestRoundEndsWithOneSurvivor(t *testing.T) {
	w, s, _ := newTestWorld(t)
	settings := config.NewSettingsManager(nil)
	round := NewRoundSystem(42, settings)
	round.Initialize(w)
	w.AddSystem(NewBulletTankCollisionSystem())
	w.AddSystem(round)

	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	spawnTestTank(t, s, "red", geom.Vec2{300, 100}, 0)

	var results []RoundOverEvent
	w.GetEventManager().Subscribe(EventRoundOver, func(e ecs.Event) {
		results = append(results, e.(RoundOverEvent))
	})

	w.Update(0)
	assert.False(t, round.IsOver())

	GetMessageLog().Clear()
	s.SpawnBullet(green, geom.Vec2{290, 100}, 0)
	w.Update(0)
	w.Update(0)

	require.True(t, round.IsOver())
	assert.Equal(t, 0, round.Winner())
	require.Len(t, results, 1, "emitted once")
	assert.Equal(t, 0, results[0].Winner)
	assert.Equal(t, [2]int{1, 0}, settings.Settings().Wins)
	assert.Equal(t, int64(42), settings.Settings().LastSeed)

	var texts []string
	for _, m := range GetMessageLog().Messages {
		texts = append(texts, m.Text)
	}
	assert.Contains(t, texts, "Red was destroyed by Green!")
	assert.Contains(t, texts, "Player 1 wins the round!")
}

func TestRoundDraw(t *testing.T) {
	w, s, _ := newTestWorld(t)
	settings := config.NewSettingsManager(nil)
	round := NewRoundSystem(7, settings)
	w.AddSystem(round)

	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	red := spawnTestTank(t, s, "red", geom.Vec2{300, 100}, 0)
	tankOf(w, green).Destroyed = true
	tankOf(w, red).Destroyed = true

	w.Update(0)

	require.True(t, round.IsOver())
	assert.Equal(t, -1, round.Winner())
	assert.Equal(t, [2]int{0, 0}, settings.Settings().Wins)
}

func TestRoundLogsFirstRicochet(t *testing.T) {
	w, s, _ := newTestWorld(t)
	round := NewRoundSystem(1, nil)
	round.Initialize(w)

	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	bullet := s.SpawnBullet(green, geom.Vec2{0, 0}, 0).ID

	GetMessageLog().Clear()
	w.EmitEvent(BulletBounceEvent{BulletID: bullet, Bounces: 1})
	w.EmitEvent(BulletBounceEvent{BulletID: bullet, Bounces: 2})
	w.EmitEvent(BulletBounceEvent{BulletID: 999, Bounces: 1})

	require.Len(t, GetMessageLog().Messages, 1)
	msg := GetMessageLog().Messages[0]
	assert.Equal(t, "Green's shell ricochets!", msg.Text)
	assert.Equal(t, MessageTypeBounce, msg.Type)
}

func TestAudioFollowsEventsAndSettings(t *testing.T) {
	w := ecs.NewWorld()
	settings := config.NewSettingsManager(nil)
	audio := NewAudioSystem(nil, settings)
	w.AddSystem(audio)
	w.Update(0)

	w.EmitEvent(BulletBounceEvent{})
	w.EmitEvent(TankHitEvent{})
	w.EmitEvent(ShotFiredEvent{})
	assert.Equal(t, 1, audio.PlayCount(SoundBounce))
	assert.Equal(t, 1, audio.PlayCount(SoundHit))
	assert.Equal(t, 1, audio.PlayCount(SoundShot))

	settings.SetSoundEnabled(false)
	w.EmitEvent(BulletBounceEvent{})
	assert.Equal(t, 1, audio.PlayCount(SoundBounce))
}

func TestSynthesizeLength(t *testing.T) {
	pcm := synthesize(tones[SoundBounce], SampleRate)
	assert.Len(t, pcm, int(0.05*SampleRate)*4)
	assert.NotEqual(t, make([]byte, len(pcm)), pcm)
}

func TestRenderToScreenFlipsY(t *testing.T) {
	r := NewRenderSystem(560)
	x, y := r.ToScreen(geom.Vec2{10, 0})
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(560), y)

	_, y = r.ToScreen(geom.Vec2{0, 560})
	assert.Equal(t, float32(0), y)
}

func TestEffectsSpawnAndExpire(t *testing.T) {
	w, s, _ := newTestWorld(t)
	effects := NewEffectsSystem()
	effects.Initialize(w)
	w.AddSystem(NewBulletTankCollisionSystem())
	w.AddSystem(effects)

	green := spawnTestTank(t, s, "green", geom.Vec2{100, 100}, 0)
	spawnTestTank(t, s, "red", geom.Vec2{300, 100}, 0)
	s.SpawnBullet(green, geom.Vec2{290, 100}, 0)
	w.EmitEvent(BulletBounceEvent{Position: geom.Vec2{50, 50}})

	w.Update(0)

	live := w.Query(components.Effect)
	require.Len(t, live, 2)
	var kinds []components.EffectKind
	for _, e := range live {
		c, _ := w.GetComponent(e.ID, components.Effect)
		kinds = append(kinds, c.(*components.EffectComponent).Kind)
	}
	assert.ElementsMatch(t, []components.EffectKind{components.EffectSpark, components.EffectExplosion}, kinds)
	assert.Equal(t, geom.Vec2{300, 100}, transformOf(w, live[1].ID).Translation, "explosion at the destroyed tank")

	// Sparks burn out first
	w.Update(0.2)
	assert.Len(t, w.Query(components.Effect), 1)

	w.Update(0.5)
	assert.Empty(t, w.Query(components.Effect))
}
