package components

import (
	"ebiten-tanks/ecs"
)

// Define component IDs for our game
const (
	Transform ecs.ComponentID = iota
	Velocity
	Collider
	Dynamic // Marker: collider bounds follow the transform
	Static  // Marker: never moves, bounds set once at spawn
	Renderable
	Name
	Bullet
	Tank
	Wall
	Direction // Side of the play space a wall closes off
	Effect    // Short-lived visual effect
)
