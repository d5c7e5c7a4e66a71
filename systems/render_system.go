package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

var (
	backgroundColour = color.RGBA{24, 24, 28, 255}
	hudColour        = color.RGBA{12, 12, 16, 255}
	outlineColour    = color.RGBA{0, 255, 128, 255}
	mtvColour        = color.RGBA{255, 64, 64, 255}
	barrelColour     = color.RGBA{90, 90, 90, 255}
)

// RenderSystem handles drawing the arena, tanks, bullets and HUD
type RenderSystem struct {
	arenaHeight   float64
	showColliders bool
	tankImages    map[geom.Vec2]*ebiten.Image // Keyed by hull size
	scores        func() [2]int
}

// NewRenderSystem creates a new rendering system for an arena of the given height
func NewRenderSystem(arenaHeight float64) *RenderSystem {
	return &RenderSystem{
		arenaHeight: arenaHeight,
		tankImages:  make(map[geom.Vec2]*ebiten.Image),
	}
}

// SetDebugOverlay toggles collider outlines
func (s *RenderSystem) SetDebugOverlay(enabled bool) {
	s.showColliders = enabled
}

// DebugOverlay reports whether collider outlines are drawn
func (s *RenderSystem) DebugOverlay() bool {
	return s.showColliders
}

// SetScoreSource sets where the HUD reads the running score from
func (s *RenderSystem) SetScoreSource(scores func() [2]int) {
	s.scores = scores
}

// Update does nothing; drawing happens in Draw
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// ToScreen converts a y-up world position into screen pixels
func (s *RenderSystem) ToScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X()), float32(s.arenaHeight - p.Y())
}

// Draw renders all entities with transform and renderable components
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColour)

	s.drawWalls(world, screen)
	s.drawTanks(world, screen)
	s.drawBullets(world, screen)
	s.drawEffects(world, screen)
	if s.showColliders {
		s.drawColliders(world, screen)
	}

	s.drawMessagesPanel(screen)
}

func (s *RenderSystem) drawWalls(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Query(components.Wall, components.Transform, components.Renderable) {
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		renderComp, _ := world.GetComponent(entity.ID, components.Renderable)
		transform := transformComp.(*components.TransformComponent)
		renderable := renderComp.(*components.RenderableComponent)

		// Top-left corner in screen space
		corner := transform.Translation.Add(geom.Vec2{-renderable.Size.X() / 2, renderable.Size.Y() / 2})
		x, y := s.ToScreen(corner)
		vector.DrawFilledRect(screen, x, y, float32(renderable.Size.X()), float32(renderable.Size.Y()), renderable.Colour, false)
	}
}

func (s *RenderSystem) drawTanks(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Query(components.Tank, components.Transform, components.Renderable) {
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		renderComp, _ := world.GetComponent(entity.ID, components.Renderable)
		transform := transformComp.(*components.TransformComponent)
		renderable := renderComp.(*components.RenderableComponent)

		img := s.tankImage(renderable.Size)
		x, y := s.ToScreen(transform.Translation)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-renderable.Size.X()/2, -renderable.Size.Y()/2)
		// Screen y points down, so world counter-clockwise is a negative screen rotation
		op.GeoM.Rotate(-transform.Rotation)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(renderable.Colour)
		screen.DrawImage(img, op)
	}
}

// tankImage returns a white hull with a barrel along +X, tinted per tank when drawn
func (s *RenderSystem) tankImage(size geom.Vec2) *ebiten.Image {
	if img, ok := s.tankImages[size]; ok {
		return img
	}

	w, h := float32(size.X()), float32(size.Y())
	img := ebiten.NewImage(int(size.X()), int(size.Y()))
	img.Fill(color.White)
	vector.DrawFilledRect(img, w/2, h/2-h/8, w/2, h/4, barrelColour, false)
	vector.DrawFilledCircle(img, w/2, h/2, h/4, barrelColour, true)

	s.tankImages[size] = img
	return img
}

func (s *RenderSystem) drawBullets(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Query(components.Bullet, components.Transform, components.Renderable) {
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		renderComp, _ := world.GetComponent(entity.ID, components.Renderable)
		renderable := renderComp.(*components.RenderableComponent)

		x, y := s.ToScreen(transformComp.(*components.TransformComponent).Translation)
		vector.DrawFilledCircle(screen, x, y, float32(renderable.Size.X()/2), renderable.Colour, true)
	}
}

// drawEffects draws sparks and explosions as circles that grow and fade
func (s *RenderSystem) drawEffects(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Query(components.Effect, components.Transform) {
		effectComp, _ := world.GetComponent(entity.ID, components.Effect)
		transformComp, _ := world.GetComponent(entity.ID, components.Transform)
		effect := effectComp.(*components.EffectComponent)

		t := effect.Progress()
		clr := effect.Colour
		clr.A = uint8(float64(clr.A) * (1 - t))
		// Premultiplied alpha
		clr.R = uint8(float64(clr.R) * (1 - t))
		clr.G = uint8(float64(clr.G) * (1 - t))
		clr.B = uint8(float64(clr.B) * (1 - t))

		x, y := s.ToScreen(transformComp.(*components.TransformComponent).Translation)
		radius := float32(effect.MaxRadius * (0.3 + 0.7*t))
		if effect.Kind == components.EffectExplosion {
			vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		} else {
			vector.StrokeCircle(screen, x, y, radius, 2, clr, true)
		}
	}
}

// drawColliders outlines every collision shape as the SAT test sees it and
// marks how far each overlapping tank is sunk into a wall
func (s *RenderSystem) drawColliders(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.Query(components.Collider) {
		colliderComp, _ := world.GetComponent(entity.ID, components.Collider)

		var corners [4]geom.Vec2
		switch shape := colliderComp.(*components.ColliderComponent).Shape.(type) {
		case *geom.AABB:
			min, max := shape.Min(), shape.Max()
			corners = [4]geom.Vec2{min, {max.X(), min.Y()}, max, {min.X(), max.Y()}}
		case *geom.OBB:
			corners = shape.Corners()
		default:
			continue
		}

		for i := range corners {
			x0, y0 := s.ToScreen(corners[i])
			x1, y1 := s.ToScreen(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, outlineColour, false)
		}
	}

	for _, overlap := range TankWallOverlaps(world) {
		x0, y0 := s.ToScreen(overlap.Centre)
		x1, y1 := s.ToScreen(overlap.Centre.Add(overlap.MTV))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, mtvColour, false)
	}
}

// drawMessagesPanel draws the score line and message log below the arena
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	top := float32(s.arenaHeight)
	vector.DrawFilledRect(screen, 0, top, float32(config.ScreenWidth), float32(config.HUDHeight), hudColour, false)

	y := int(top) + 4
	if s.scores != nil {
		wins := s.scores()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P1 %d : %d P2", wins[0], wins[1]), 8, y)
		y += 16
	}

	// Draw messages from the log, newest first
	maxMessages := (config.HUDHeight - (y - int(top))) / 16
	for _, msg := range GetMessageLog().RecentMessages(maxMessages) {
		vector.DrawFilledRect(screen, 8, float32(y+5), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 20, y)
		y += 16
	}
}
