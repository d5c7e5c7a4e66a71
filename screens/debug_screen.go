package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tanks/components"
	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
	"ebiten-tanks/systems"
)

// DebugScreen shows the debug log, or a dump of live entities, in a modal window
type DebugScreen struct {
	*BaseScreen
	world        *ecs.World
	showEntities bool
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a new debug screen inspecting world
func NewDebugScreen(world *ecs.World) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		world:      world,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:  color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.showEntities = !s.showEntities
		s.scrollOffset = 0
	}

	// ESC or F1 closes the window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.lines())-1 {
		s.scrollOffset++
	}
}

// lines returns the text rows of the current view
func (s *DebugScreen) lines() []systems.ColoredMessage {
	if !s.showEntities {
		return systems.GetDebugLog().Messages
	}

	entities := s.world.GetAllEntities()
	rows := make([]systems.ColoredMessage, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, systems.ColoredMessage{
			Text: components.DescribeEntity(s.world, e.ID),
			Type: systems.MessageTypeSystem,
		})
	}
	return rows
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := config.GetScreenDimensions()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, color.White, false)

	title := "DEBUG LOG"
	if s.showEntities {
		title = "ENTITIES"
	}
	drawColoredText(screen, title, x+centeredX(title, s.width), y+8, s.textColor)

	messages := s.lines()
	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		drawColoredText(screen, msg.Text, x+10, y+startY+i*lineHeight, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		trackHeight := float32(s.height - startY - 24)
		barHeight := float32(maxLines) / float32(len(messages)) * trackHeight
		barY := float32(y+startY) + float32(startIdx)/float32(len(messages))*trackHeight
		vector.DrawFilledRect(screen, float32(x+s.width-10), barY, 5, barHeight, color.White, false)
	}

	drawColoredText(screen, "Up/Down: Scroll  Tab: Log/Entities  Esc: Close", x+10, y+s.height-20, s.textColor)
}
