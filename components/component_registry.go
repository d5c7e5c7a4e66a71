package components

import (
	"fmt"
	"sort"
	"strings"

	"ebiten-tanks/ecs"
	"ebiten-tanks/geom"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Transform":  Transform,
	"Velocity":   Velocity,
	"Collider":   Collider,
	"Dynamic":    Dynamic,
	"Static":     Static,
	"Renderable": Renderable,
	"Name":       Name,
	"Bullet":     Bullet,
	"Tank":       Tank,
	"Wall":       Wall,
	"Direction":  Direction,
	"Effect":     Effect,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	name = strings.ToLower(name)
	for compName, id := range componentNameMap {
		if strings.ToLower(compName) == name {
			return id, true
		}
	}

	return 0, false
}

// ComponentNames lists the names of the components an entity owns, sorted
func ComponentNames(world *ecs.World, entityID ecs.EntityID) []string {
	names := make([]string, 0, len(componentNameMap))
	for name, id := range componentNameMap {
		if world.HasComponent(entityID, id) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DescribeEntity renders a one-line summary used by the debug log screen
func DescribeEntity(world *ecs.World, entityID ecs.EntityID) string {
	label := fmt.Sprintf("#%d", entityID)
	if comp, ok := world.GetComponent(entityID, Name); ok {
		label = fmt.Sprintf("%s %s", label, comp.(*NameComponent).Name)
	}

	if comp, ok := world.GetComponent(entityID, Collider); ok {
		switch shape := comp.(*ColliderComponent).Shape.(type) {
		case *geom.AABB:
			label += fmt.Sprintf(" aabb(%.1f,%.1f)", shape.Center.X(), shape.Center.Y())
		case *geom.OBB:
			label += fmt.Sprintf(" obb(%.1f,%.1f @%.0f)", shape.Center.X(), shape.Center.Y(), shape.Rotation)
		}
	}

	return label + " [" + strings.Join(ComponentNames(world, entityID), ",") + "]"
}
