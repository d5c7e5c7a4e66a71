package generation

import "ebiten-tanks/geom"

// LayoutGenerator defines the interface for arena layout generation.
// Screens depend on this rather than the concrete generator so tests can
// supply fixed layouts.
type LayoutGenerator interface {
	Generate(cols, rows int, cellSize, thickness, density float64) *ArenaLayout
	FindSpawnPoints(layout *ArenaLayout, n int) []geom.Vec2
	Seed() int64
	SetSeed(seed int64)
}
