package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-tanks/config"
	"ebiten-tanks/screens"
	"ebiten-tanks/systems"
)

// Game implements ebiten.Game by driving a stack of screens
type Game struct {
	session     *screens.Session
	screenStack *screens.ScreenStack
	seed        int64 // Fixed arena seed; 0 picks a fresh one per game
}

// NewGame creates a new game instance showing the start menu
func NewGame(session *screens.Session, seed int64) *Game {
	g := &Game{
		session:     session,
		screenStack: screens.NewScreenStack(),
		seed:        seed,
	}
	g.screenStack.Push(screens.NewStartScreen(session.Settings))
	return g
}

// Update updates the top screen and applies any transition it requests
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		seed := g.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		systems.GetMessageLog().Clear()
		g.screenStack.Push(screens.NewGameScreen(g.session, seed))
	case errors.Is(err, screens.ErrMainMenu), errors.Is(err, screens.ErrCloseScreen):
		if g.screenStack.Len() > 1 {
			g.screenStack.Pop()
		}
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

// Draw draws the screen stack
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
