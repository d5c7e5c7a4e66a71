package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTuningPath is where the game looks for tuning overrides
const DefaultTuningPath = "data/tuning.yaml"

// Tuning holds gameplay and collision constants.
//
// Config file location: data/tuning.yaml
type Tuning struct {
	Collision CollisionTuning `yaml:"collision"`
	Tank      TankTuning      `yaml:"tank"`
	Bullet    BulletTuning    `yaml:"bullet"`
	Arena     ArenaTuning     `yaml:"arena"`
}

// CollisionTuning controls collision response
type CollisionTuning struct {
	// BulletNudge is how far a bullet is moved off a wall after bouncing
	BulletNudge float64 `yaml:"bulletNudge"`
	// MaxBounces is the number of bounces a bullet survives; one more despawns it
	MaxBounces int `yaml:"maxBounces"`
	// TankPush is how far a tank is pushed out of a wall per overlapping wall per frame
	TankPush float64 `yaml:"tankPush"`
}

// TankTuning controls tank handling
type TankTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`        // World units per second
	ReverseSpeed float64 `yaml:"reverseSpeed"` // World units per second
	TurnRate     float64 `yaml:"turnRate"`     // Degrees per second
	FireCooldown float64 `yaml:"fireCooldown"` // Seconds between shots
	MaxBullets   int     `yaml:"maxBullets"`   // Live bullets per tank
}

// BulletTuning controls projectiles
type BulletTuning struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// ArenaTuning controls wall generation
type ArenaTuning struct {
	WallThickness float64 `yaml:"wallThickness"`
	// WallDensity is the chance an interior cell edge gets a wall, 0..1
	WallDensity float64 `yaml:"wallDensity"`
}

// DefaultTuning returns the built-in tuning values
func DefaultTuning() *Tuning {
	return &Tuning{
		Collision: CollisionTuning{
			BulletNudge: 0.1,
			MaxBounces:  5,
			TankPush:    5.0,
		},
		Tank: TankTuning{
			Width:        36,
			Height:       28,
			Speed:        120,
			ReverseSpeed: 80,
			TurnRate:     180,
			FireCooldown: 0.35,
			MaxBullets:   5,
		},
		Bullet: BulletTuning{
			Size:  6,
			Speed: 220,
		},
		Arena: ArenaTuning{
			WallThickness: 6,
			WallDensity:   0.35,
		},
	}
}

// LoadTuning reads tuning from a YAML file. Fields missing from the file keep
// their default values.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}

	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return tuning, nil
}

// LoadTuningOrDefault loads path, falling back to defaults only when the file is absent
func LoadTuningOrDefault(path string) (*Tuning, error) {
	tuning, err := LoadTuning(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultTuning(), nil
	}
	return tuning, err
}

// Validate checks that the tuning values are usable
func (t *Tuning) Validate() error {
	if t.Collision.BulletNudge < 0 {
		return fmt.Errorf("collision.bulletNudge must not be negative, got %v", t.Collision.BulletNudge)
	}
	if t.Collision.MaxBounces < 0 {
		return fmt.Errorf("collision.maxBounces must not be negative, got %d", t.Collision.MaxBounces)
	}
	if t.Collision.TankPush <= 0 {
		return fmt.Errorf("collision.tankPush must be positive, got %v", t.Collision.TankPush)
	}
	if t.Tank.Width <= 0 || t.Tank.Height <= 0 {
		return fmt.Errorf("tank size must be positive, got %vx%v", t.Tank.Width, t.Tank.Height)
	}
	if t.Tank.MaxBullets < 1 {
		return fmt.Errorf("tank.maxBullets must be at least 1, got %d", t.Tank.MaxBullets)
	}
	if t.Tank.FireCooldown < 0 {
		return fmt.Errorf("tank.fireCooldown must not be negative, got %v", t.Tank.FireCooldown)
	}
	if t.Bullet.Size <= 0 {
		return fmt.Errorf("bullet.size must be positive, got %v", t.Bullet.Size)
	}
	if t.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be positive, got %v", t.Bullet.Speed)
	}
	if t.Arena.WallThickness <= 0 || t.Arena.WallThickness >= CellSize/2 {
		return fmt.Errorf("arena.wallThickness must be in (0, %d), got %v", CellSize/2, t.Arena.WallThickness)
	}
	if t.Arena.WallDensity < 0 || t.Arena.WallDensity > 1 {
		return fmt.Errorf("arena.wallDensity must be in [0, 1], got %v", t.Arena.WallDensity)
	}
	return nil
}
