// Package scene provides the scene state machine, the scene document format
// and the World base shared by every playable scene.
package scene

import (
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
)

// Payload carries entry parameters into Scene.Enter. Spawn wins over
// Position; with neither the scene uses its default spawn.
type Payload struct {
	Spawn    string
	Position *geom.Point
}

// AtSpawn builds a payload entering at a named spawn.
func AtSpawn(name string) Payload {
	return Payload{Spawn: name}
}

// AtPosition builds a payload entering at an exact world position.
func AtPosition(p geom.Point) Payload {
	return Payload{Position: &p}
}

// Scene is one independently loaded world slice.
type Scene interface {
	// Load parses static content. It runs once per instance.
	Load() error

	// Enter places the player according to the payload.
	Enter(p Payload) error

	// Update advances the scene by dtMillis using this frame's actions.
	Update(dtMillis float64, actions *input.Actions) error

	// Draw renders the scene onto screen.
	Draw(screen render.Image)

	// Unload flushes scene-owned mutable state before the scene is dropped.
	Unload()
}

// Positioned is implemented by scenes that have a player avatar.
type Positioned interface {
	PlayerPosition() geom.Point
}

// Factory creates a fresh scene instance.
type Factory func() Scene
