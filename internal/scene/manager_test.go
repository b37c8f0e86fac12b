package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/render"
)

type fakeScene struct {
	name    string
	log     *[]string
	payload Payload
	loadErr error
	pos     geom.Point
}

func (f *fakeScene) Load() error {
	*f.log = append(*f.log, f.name+".load")
	return f.loadErr
}

func (f *fakeScene) Enter(p Payload) error {
	*f.log = append(*f.log, f.name+".enter")
	f.payload = p
	return nil
}

func (f *fakeScene) Update(float64, *input.Actions) error {
	*f.log = append(*f.log, f.name+".update")
	return nil
}

func (f *fakeScene) Draw(render.Image) {}

func (f *fakeScene) Unload() {
	*f.log = append(*f.log, f.name+".unload")
}

func (f *fakeScene) PlayerPosition() geom.Point { return f.pos }

func newTestManager(log *[]string) *Manager {
	m := NewManager(nil)
	for _, name := range []string{"town", "home_interior", "farmland"} {
		m.Register(name, func() Scene { return &fakeScene{name: name, log: log} })
	}
	return m
}

func TestReplaceLifecycleOrder(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	require.NoError(t, m.Replace("town", AtSpawn("start")))
	require.NoError(t, m.Replace("home_interior", AtSpawn("door_in")))

	assert.Equal(t, []string{
		"town.load", "town.enter",
		"town.unload", "home_interior.load", "home_interior.enter",
	}, log)
	assert.Equal(t, "home_interior", m.CurrentName())
	assert.Equal(t, 1, m.Depth())
	assert.Equal(t, "door_in", m.Current().(*fakeScene).payload.Spawn)
}

func TestPushPop(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	require.NoError(t, m.Push("town", Payload{}))
	require.NoError(t, m.Push("farmland", Payload{}))
	assert.Equal(t, 2, m.Depth())

	m.Pop()
	assert.Equal(t, "town", m.CurrentName())
	assert.Equal(t, "farmland.unload", log[len(log)-1])

	m.Shutdown()
	assert.Nil(t, m.Current())
	m.Pop() // no-op on empty stack
}

func TestUnregisteredScene(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	require.NoError(t, m.Replace("town", Payload{}))

	err := m.Replace("farmlnd", Payload{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSceneNotRegistered))
	assert.Contains(t, err.Error(), `did you mean "farmland"`)
	assert.Equal(t, "town", m.CurrentName(), "failed lookup leaves the current scene alone")

	err = m.Replace("xyz_totally_different", Payload{})
	require.ErrorIs(t, err, ErrSceneNotRegistered)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestLoadErrorPropagates(t *testing.T) {
	var log []string
	m := NewManager(nil)
	boom := errors.New("boom")
	m.Register("broken", func() Scene { return &fakeScene{name: "broken", log: &log, loadErr: boom} })

	err := m.Replace("broken", Payload{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, m.Current())
}

func TestSubscribeAppliesSceneChange(t *testing.T) {
	var log []string
	bus := events.NewBus()
	m := newTestManager(&log)
	m.Subscribe(bus)
	require.NoError(t, m.Replace("town", Payload{}))

	bus.Publish(events.SceneChange{Target: "farmland", Spawn: "south_entry"})
	assert.Equal(t, "farmland", m.CurrentName())
	assert.Equal(t, "south_entry", m.Current().(*fakeScene).payload.Spawn)

	bus.Publish(events.SceneChange{Target: "nowhere"})
	err := m.Update(16, &input.Actions{})
	assert.ErrorIs(t, err, ErrSceneNotRegistered)
}

func TestSubscriberOrderSeesPreTransitionScene(t *testing.T) {
	var log []string
	bus := events.NewBus()
	m := newTestManager(&log)

	var observed string
	bus.OnSceneChange(func(events.SceneChange) { observed = m.CurrentName() })
	m.Subscribe(bus)

	require.NoError(t, m.Replace("town", Payload{}))
	bus.Publish(events.SceneChange{Target: "home_interior", Spawn: "door_in"})

	assert.Equal(t, "town", observed)
	assert.Equal(t, "home_interior", m.CurrentName())
}

func TestUpdateDelegatesAndPlayerPosition(t *testing.T) {
	var log []string
	m := newTestManager(&log)

	_, ok := m.PlayerPosition()
	assert.False(t, ok)
	assert.NoError(t, m.Update(16, &input.Actions{}), "empty manager updates nothing")

	require.NoError(t, m.Replace("town", Payload{}))
	m.Current().(*fakeScene).pos = geom.Point{X: 5, Y: 6}
	require.NoError(t, m.Update(16, &input.Actions{}))
	assert.Equal(t, "town.update", log[len(log)-1])

	pos, ok := m.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 5, Y: 6}, pos)
}

func TestNames(t *testing.T) {
	var log []string
	m := newTestManager(&log)
	assert.Equal(t, []string{"farmland", "home_interior", "town"}, m.Names())
	assert.True(t, m.Has("town"))
	assert.False(t, m.Has("castle"))
}
