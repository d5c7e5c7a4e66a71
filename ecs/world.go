package ecs

import "sort"

// ComponentID identifies a component type
type ComponentID uint

// Component is any per-entity data; systems type-assert to the concrete pointer
type Component interface{}

// ComponentMap holds one entity's components keyed by type
type ComponentMap map[ComponentID]Component

// World manages all entities and components
type World struct {
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Systems run in registration order every frame
	systems []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
	// Entities queued for removal at the end of the frame
	pendingDespawn map[EntityID]bool
	nextID         EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:       make(map[EntityID]*Entity),
		components:     make(map[EntityID]ComponentMap),
		systems:        make([]System, 0),
		entityTags:     make(map[string]map[EntityID]bool),
		eventManager:   NewEventManager(),
		pendingDespawn: make(map[EntityID]bool),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world immediately
func (w *World) RemoveEntity(entityID EntityID) {
	if entity, exists := w.entities[entityID]; exists {
		// Remove entity from tag lookups
		for tag := range entity.Tags {
			delete(w.entityTags[tag], entityID)
			if len(w.entityTags[tag]) == 0 {
				delete(w.entityTags, tag)
			}
		}

		delete(w.components, entityID)
		delete(w.entities, entityID)
	}
	delete(w.pendingDespawn, entityID)
}

// Despawn queues an entity for removal once the current frame's systems have run.
// Queued entities are hidden from queries straight away.
func (w *World) Despawn(entityID EntityID) {
	if _, exists := w.entities[entityID]; exists {
		w.pendingDespawn[entityID] = true
	}
}

// IsAlive reports whether the entity exists and is not queued for removal
func (w *World) IsAlive(entityID EntityID) bool {
	_, exists := w.entities[entityID]
	return exists && !w.pendingDespawn[entityID]
}

// FlushDespawned removes every entity queued by Despawn
func (w *World) FlushDespawned() {
	for _, id := range sortedIDs(w.pendingDespawn) {
		w.RemoveEntity(id)
	}
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	if _, exists := w.components[entityID]; !exists {
		w.components[entityID] = make(ComponentMap)
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// AddSystem appends a system to the end of the frame's chain
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system in order, then removes despawned entities
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	w.FlushDespawned()
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns live entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	return w.collect(sortedIDs(w.entityTags[tag]))
}

// GetAllEntities returns every live entity ordered by ID
func (w *World) GetAllEntities() []*Entity {
	ids := make([]EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return w.collect(ids)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// Query returns live entities owning every listed component, ordered by ID
func (w *World) Query(componentIDs ...ComponentID) []*Entity {
	ids := make([]EntityID, 0)
	for id, componentMap := range w.components {
		hasAll := true
		for _, cid := range componentIDs {
			if _, ok := componentMap[cid]; !ok {
				hasAll = false
				break
			}
		}
		if hasAll {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return w.collect(ids)
}

// QueryWithout is Query with an exclusion list
func (w *World) QueryWithout(with []ComponentID, without ...ComponentID) []*Entity {
	matched := w.Query(with...)
	result := matched[:0]
	for _, entity := range matched {
		excluded := false
		for _, cid := range without {
			if w.HasComponent(entity.ID, cid) {
				excluded = true
				break
			}
		}
		if !excluded {
			result = append(result, entity)
		}
	}
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities) - len(w.pendingDespawn)
}

func (w *World) collect(ids []EntityID) []*Entity {
	entities := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if !w.IsAlive(id) {
			continue
		}
		entities = append(entities, w.entities[id])
	}
	return entities
}

func sortedIDs(set map[EntityID]bool) []EntityID {
	ids := make([]EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
