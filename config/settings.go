package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; saves live under the user's data dir
const AppName = "ebiten_tanks"

// Settings are the user preferences and totals kept between runs
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	DebugOverlay bool    `yaml:"debugOverlay"`
	LastSeed     int64   `yaml:"lastSeed"`
	Wins         [2]int  `yaml:"wins"` // Rounds won per player slot
}

// DefaultSettings returns the settings used on first launch
func DefaultSettings() *Settings {
	return &Settings{
		SoundEnabled: true,
		SoundVolume:  0.6,
	}
}

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through gdata.
// A nil gdata manager keeps settings in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

// OpenSettingsStore opens the gdata store for this game
func OpenSettingsStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return m, nil
}

// NewSettingsManager creates a settings manager and loads any saved settings.
// A failed load is logged and leaves the defaults in place.
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load reads settings from the store, using defaults when nothing is saved
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	return nil
}

// Save writes the current settings to the store. Without a store this is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Settings returns the live settings
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// SetSoundEnabled toggles sound effects. Call Save to persist.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume sets the effect volume, clamped to 0..1. Call Save to persist.
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetDebugOverlay toggles collider outlines. Call Save to persist.
func (sm *SettingsManager) SetDebugOverlay(enabled bool) {
	sm.settings.DebugOverlay = enabled
}

// RecordRound stores the seed of the round just played and credits the winner.
// A negative winner records a draw.
func (sm *SettingsManager) RecordRound(seed int64, winner int) {
	sm.settings.LastSeed = seed
	if winner >= 0 && winner < len(sm.settings.Wins) {
		sm.settings.Wins[winner]++
	}
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
