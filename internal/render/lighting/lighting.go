// Package lighting computes the day/night ambient tint from the clock and
// draws it, together with any glowing light sources, over a scene.
package lighting

import (
	"image/color"

	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/render"
)

// Phase is a coarse time-of-day bucket.
type Phase int

const (
	Day Phase = iota
	Evening
	Night
)

func (p Phase) String() string {
	switch p {
	case Evening:
		return "evening"
	case Night:
		return "night"
	default:
		return "day"
	}
}

// PhaseAt returns the phase for a minute of the day.
func PhaseAt(minutes float64) Phase {
	switch {
	case clock.IsNight(minutes):
		return Night
	case clock.IsEvening(minutes):
		return Evening
	default:
		return Day
	}
}

// Overlay colors per phase.
var (
	eveningTint = color.NRGBA{255, 140, 40, 60}
	nightTint   = color.NRGBA{20, 30, 80, 120}
)

// LightSource represents a single light source in the game world
type LightSource struct {
	X         float64     // World X position (in pixels)
	Y         float64     // World Y position (in pixels)
	Radius    float64     // Light radius (in pixels)
	Intensity float64     // Light intensity (0.0 to 1.0)
	Color     color.NRGBA // Light color
}

// glowRings is how many nested squares approximate a radial glow.
const glowRings = 4

// Manager tracks the ambient phase and the light sources of one scene.
type Manager struct {
	phase         Phase
	lights        []LightSource
	playerLight   LightSource
	playerLightOn bool
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		playerLight: LightSource{Radius: 40, Intensity: 0.5, Color: color.NRGBA{255, 200, 100, 255}},
	}
}

// Update picks the phase for the current time. The player's lantern is lit
// only at night.
func (m *Manager) Update(minutes float64) {
	m.phase = PhaseAt(minutes)
	m.playerLightOn = m.phase == Night
}

// Phase returns the current phase.
func (m *Manager) Phase() Phase { return m.phase }

// Tint returns the overlay color for the current phase and whether any
// overlay is drawn.
func (m *Manager) Tint() (color.NRGBA, bool) {
	switch m.phase {
	case Evening:
		return eveningTint, true
	case Night:
		return nightTint, true
	default:
		return color.NRGBA{}, false
	}
}

// AddLight adds a fixed light source (a lamp, a hearth).
func (m *Manager) AddLight(l LightSource) {
	m.lights = append(m.lights, l)
}

// ClearLights removes all fixed lights.
func (m *Manager) ClearLights() {
	m.lights = nil
}

// UpdatePlayerLightPosition updates the player's light position (called each frame)
func (m *Manager) UpdatePlayerLightPosition(p geom.Point) {
	m.playerLight.X = p.X
	m.playerLight.Y = p.Y
}

// IsPlayerLightOn returns whether the player's light is currently on
func (m *Manager) IsPlayerLightOn() bool {
	return m.playerLightOn
}

// ActiveLights returns the lights that glow in the current phase. Fixed
// lights only show outside daytime.
func (m *Manager) ActiveLights() []LightSource {
	if m.phase == Day {
		return nil
	}
	lights := make([]LightSource, 0, len(m.lights)+1)
	if m.playerLightOn {
		lights = append(lights, m.playerLight)
	}
	lights = append(lights, m.lights...)
	return lights
}

// Draw tints the whole screen and then draws each active light as a soft
// glow. toScreen converts world rectangles to screen space.
func (m *Manager) Draw(r render.Renderer, screen render.Image, toScreen func(geom.Rect) geom.Rect) {
	tint, ok := m.Tint()
	if !ok {
		return
	}
	w, h := screen.Size()
	r.FillRect(screen, geom.NewRect(0, 0, float64(w), float64(h)), tint)

	for _, l := range m.ActiveLights() {
		for i := 1; i <= glowRings; i++ {
			size := 2 * l.Radius * float64(i) / glowRings
			c := l.Color
			c.A = uint8(l.Intensity * 255 / (glowRings + 1))
			rect := geom.RectAround(geom.Point{X: l.X, Y: l.Y}, size, size)
			r.FillRect(screen, toScreen(rect), c)
		}
	}
}
