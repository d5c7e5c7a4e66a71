package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tanks/config"
)

// GameOverScreen shows the result of a round over the frozen arena
type GameOverScreen struct {
	*BaseScreen
	winner int // -1 for a draw
	wins   [2]int
}

// NewGameOverScreen creates a round result screen
func NewGameOverScreen(winner int, wins [2]int) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		winner:     winner,
		wins:       wins,
	}
}

// Headline returns the round result text
func (s *GameOverScreen) Headline() string {
	if s.winner < 0 {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d wins the round!", s.winner+1)
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return ErrNextRound
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrMainMenu
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	w, h := config.GetScreenDimensions()
	vector.DrawFilledRect(screen, 0, float32(h/2-50), float32(w), 100, color.RGBA{0, 0, 0, 200}, false)

	headline := s.Headline()
	drawColoredText(screen, headline, centeredX(headline, w), h/2-36, color.RGBA{255, 255, 0, 255})

	score := fmt.Sprintf("P1 %d : %d P2", s.wins[0], s.wins[1])
	drawColoredText(screen, score, centeredX(score, w), h/2-12, color.White)

	prompt := "Enter: next round    Esc: main menu"
	drawColoredText(screen, prompt, centeredX(prompt, w), h/2+16, color.RGBA{200, 200, 200, 255})
}
