package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-tanks/config"
	"ebiten-tanks/data"
	"ebiten-tanks/systems"
)

// Session holds everything that outlives a single round
type Session struct {
	Tuning    *config.Tuning
	Templates []*data.TankTemplate // Ordered by player slot
	Settings  *config.SettingsManager
	Audio     *audio.Context // nil runs silent
	Input     systems.InputSource
	Bindings  map[int]systems.KeyBindings
}

// NewSession validates the tank templates and resolves their key bindings
func NewSession(tuning *config.Tuning, templates *data.TankTemplateManager, settings *config.SettingsManager, audioContext *audio.Context) (*Session, error) {
	tanks := templates.ByPlayer()
	if len(tanks) < 2 {
		return nil, fmt.Errorf("need at least two tank templates, got %d", len(tanks))
	}

	bindings := make(map[int]systems.KeyBindings, len(tanks))
	for _, tmpl := range tanks {
		if _, dup := bindings[tmpl.Player]; dup {
			return nil, fmt.Errorf("tank %q: player slot %d is already taken", tmpl.ID, tmpl.Player)
		}
		b, err := systems.BindingsFromControls(tmpl.Controls)
		if err != nil {
			return nil, fmt.Errorf("tank %q: %w", tmpl.ID, err)
		}
		bindings[tmpl.Player] = b
	}

	return &Session{
		Tuning:    tuning,
		Templates: tanks,
		Settings:  settings,
		Audio:     audioContext,
		Input:     systems.EbitenInput{},
		Bindings:  bindings,
	}, nil
}
