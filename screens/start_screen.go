package screens

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-tanks/config"
)

// Start menu entries
const (
	optionNewGame = iota
	optionSound
	optionVolume
	optionQuit
)

// volumeStep is how far one press of left, right or enter moves the volume
const volumeStep = 0.1

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	settings       *config.SettingsManager
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(settings *config.SettingsManager) *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen(),
		selectedOption: optionNewGame,
		settings:       settings,
		titleColor:     color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:    color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor:  color.RGBA{255, 255, 255, 255}, // White
	}
}

// options returns the menu labels; the sound entries show their current state
func (s *StartScreen) options() []string {
	sound := "Sound: Off"
	if s.settings.Settings().SoundEnabled {
		sound = "Sound: On"
	}
	volume := fmt.Sprintf("Volume: %d%%", int(math.Round(s.settings.Settings().SoundVolume*100)))
	return []string{"New Game", sound, volume, "Quit"}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.move(1)
	}
	if s.selectedOption == optionVolume {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			s.adjustVolume(-volumeStep)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			s.adjustVolume(volumeStep)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return s.activate()
	}
	return nil
}

// adjustVolume moves the volume by delta, snapped to whole steps
func (s *StartScreen) adjustVolume(delta float64) {
	volume := math.Round((s.settings.Settings().SoundVolume+delta)/volumeStep) * volumeStep
	s.settings.SetSoundVolume(volume)
	s.saveSettings()
}

func (s *StartScreen) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[StartScreen] failed to save settings: %v", err)
	}
}

// move shifts the selection, wrapping at either end
func (s *StartScreen) move(delta int) {
	n := len(s.options())
	s.selectedOption = (s.selectedOption + delta + n) % n
}

// activate runs the selected menu entry
func (s *StartScreen) activate() error {
	switch s.selectedOption {
	case optionNewGame:
		return ErrNewGame
	case optionSound:
		s.settings.SetSoundEnabled(!s.settings.Settings().SoundEnabled)
		s.saveSettings()
	case optionVolume:
		// Enter steps up and wraps back to silence past full volume
		if s.settings.Settings().SoundVolume >= 1-volumeStep/2 {
			s.settings.SetSoundVolume(0)
			s.saveSettings()
		} else {
			s.adjustVolume(volumeStep)
		}
	case optionQuit:
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	screenWidth, screenHeight := config.GetScreenDimensions()
	centerY := screenHeight / 2

	title := "TANKS"
	drawColoredText(screen, title, centeredX(title, screenWidth), centerY-120, s.titleColor)

	wins := s.settings.Settings().Wins
	score := fmt.Sprintf("Rounds won  P1 %d : %d P2", wins[0], wins[1])
	drawColoredText(screen, score, centeredX(score, screenWidth), centerY-90, s.optionColor)

	optionSpacing := 30
	options := s.options()
	startY := centerY - (len(options)*optionSpacing)/2

	for i, option := range options {
		textColor := s.optionColor
		label := option
		if i == s.selectedOption {
			textColor = s.selectedColor
			label = "> " + option + " <"
		}
		drawColoredText(screen, label, centeredX(label, screenWidth), startY+i*optionSpacing, textColor)
	}

	help := "Green: WASD + Space    Red: Arrows + Enter    Volume: Left/Right"
	drawColoredText(screen, help, centeredX(help, screenWidth), screenHeight-40, s.optionColor)
}
