package ecs

// EntityID is a unique identifier for an entity. Zero is never issued.
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "tank", "wall")
	Tags map[string]bool
}

// newEntity creates an entity with the given ID
func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}
