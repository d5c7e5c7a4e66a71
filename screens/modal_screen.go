package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tanks/config"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	closeKeys  []ebiten.Key
	background color.Color
}

// NewModalScreen creates a new modal screen closed by any of closeKeys
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		closeKeys:  closeKeys,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
	}
}

// NewPauseScreen creates the pause modal
func NewPauseScreen() *ModalScreen {
	return NewModalScreen("PAUSED", "P or Esc: resume\nF3: collider outlines", 240, 90, ebiten.KeyP, ebiten.KeyEscape)
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := config.GetScreenDimensions()
	x := float32(screenWidth-s.width) / 2
	y := float32(screenHeight-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	ebitenutil.DebugPrintAt(screen, s.title, int(x)+centeredX(s.title, s.width), int(y)+10)
	ebitenutil.DebugPrintAt(screen, s.content, int(x)+10, int(y)+34)
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}
