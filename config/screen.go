package config

// Screen layout configuration
const (
	// Arena cell size in pixels (one world unit is one pixel)
	CellSize = 80

	// Arena dimensions in cells
	ArenaCols = 10
	ArenaRows = 7

	// HUD strip below the arena
	HUDHeight = 96

	// Window dimensions in pixels (derived from arena dimensions)
	ScreenWidth  = ArenaCols * CellSize
	ScreenHeight = ArenaRows*CellSize + HUDHeight

	// TPS is the fixed simulation rate; systems step by 1/TPS
	TPS = 60
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
