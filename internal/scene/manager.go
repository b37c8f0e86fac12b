package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/agnivade/levenshtein"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
)

// ErrSceneNotRegistered is returned when a transition names an unknown scene.
var ErrSceneNotRegistered = errors.New("scene not registered")

type entry struct {
	name  string
	scene Scene
}

// Manager owns the scene registry and the live scene stack.
type Manager struct {
	registry map[string]Factory
	stack    []entry
	log      *slog.Logger

	// err holds a failed transition requested through the bus; Update
	// returns it so the game loop stops.
	err error
}

// NewManager creates an empty manager.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		registry: make(map[string]Factory),
		log:      log,
	}
}

// Register adds a scene factory under name, replacing any previous one.
func (m *Manager) Register(name string, f Factory) {
	m.registry[name] = f
}

// Names returns the registered scene names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.registry))
	for name := range m.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a scene name is registered.
func (m *Manager) Has(name string) bool {
	_, ok := m.registry[name]
	return ok
}

// Subscribe routes SceneChange events to Replace. Subscribe after any
// handler that must observe the scene before it is unloaded.
func (m *Manager) Subscribe(bus *events.Bus) {
	bus.OnSceneChange(func(e events.SceneChange) {
		if err := m.Replace(e.Target, AtSpawn(e.Spawn)); err != nil {
			m.log.Error("scene transition failed", "target", e.Target, "spawn", e.Spawn, "error", err)
			m.err = err
		}
	})
}

// Push loads and enters a scene on top of the stack.
func (m *Manager) Push(name string, p Payload) error {
	f, err := m.lookup(name)
	if err != nil {
		return err
	}
	return m.start(name, f, p)
}

// Replace unloads the current scene and starts name in its place.
func (m *Manager) Replace(name string, p Payload) error {
	f, err := m.lookup(name)
	if err != nil {
		return err
	}
	if len(m.stack) > 0 {
		m.popTop()
	}
	return m.start(name, f, p)
}

// Pop unloads the current scene. The scene beneath, if any, becomes current
// again without being re-entered.
func (m *Manager) Pop() {
	if len(m.stack) > 0 {
		m.popTop()
	}
}

// Shutdown unloads every live scene, top first.
func (m *Manager) Shutdown() {
	for len(m.stack) > 0 {
		m.popTop()
	}
}

func (m *Manager) popTop() {
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	top.scene.Unload()
	m.log.Debug("scene unloaded", "scene", top.name)
}

func (m *Manager) start(name string, f Factory, p Payload) error {
	s := f()
	if err := s.Load(); err != nil {
		return fmt.Errorf("failed to load scene %q: %w", name, err)
	}
	if err := s.Enter(p); err != nil {
		return fmt.Errorf("failed to enter scene %q: %w", name, err)
	}
	m.stack = append(m.stack, entry{name: name, scene: s})
	m.log.Info("scene entered", "scene", name, "spawn", p.Spawn, "depth", len(m.stack))
	return nil
}

func (m *Manager) lookup(name string) (Factory, error) {
	if f, ok := m.registry[name]; ok {
		return f, nil
	}
	if s := m.suggest(name); s != "" {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrSceneNotRegistered, name, s)
	}
	return nil, fmt.Errorf("%w: %q", ErrSceneNotRegistered, name)
}

// suggest returns the registered name closest to name, if it is close enough
// to be a plausible typo.
func (m *Manager) suggest(name string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, candidate := range m.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Current returns the live scene, or nil.
func (m *Manager) Current() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].scene
}

// CurrentName returns the live scene's registered name, or "".
func (m *Manager) CurrentName() string {
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1].name
}

// Depth returns the stack depth.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// PlayerPosition returns the live scene's player center.
func (m *Manager) PlayerPosition() (geom.Point, bool) {
	if p, ok := m.Current().(Positioned); ok {
		return p.PlayerPosition(), true
	}
	return geom.Point{}, false
}

// Err returns the last failed bus-driven transition.
func (m *Manager) Err() error {
	return m.err
}

// Update delegates to the live scene. It returns a pending transition error
// first.
func (m *Manager) Update(dtMillis float64, actions *input.Actions) error {
	if m.err != nil {
		return m.err
	}
	s := m.Current()
	if s == nil {
		return nil
	}
	if err := s.Update(dtMillis, actions); err != nil {
		return err
	}
	return m.err
}

// Draw delegates to the live scene.
func (m *Manager) Draw(screen render.Image) {
	if s := m.Current(); s != nil {
		s.Draw(screen)
	}
}
