package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/dialogue"
	"chosenoffset.com/homestead/internal/input"
)

func newTestWorld(t *testing.T, bus *events.Bus) *World {
	t.Helper()
	doc, err := ParseDocument([]byte(townDoc))
	require.NoError(t, err)
	return NewWorld(doc, DefaultTuning(), gamestate.New(), bus)
}

func held(acts ...input.Action) *input.Actions {
	var a input.Actions
	for _, act := range acts {
		a.Hold(act)
	}
	return &a
}

func TestSpawnResolution(t *testing.T) {
	w := newTestWorld(t, nil)

	w.Spawn(AtSpawn("from_home"), "start")
	assert.Equal(t, geom.Point{X: 128, Y: 170}, w.PlayerPosition())
	assert.Equal(t, geom.NewRect(120, 162, 16, 16), w.Player)

	w.Spawn(AtPosition(geom.Point{X: 50, Y: 60}), "start")
	assert.Equal(t, geom.Point{X: 50, Y: 60}, w.PlayerPosition())

	w.Spawn(Payload{Spawn: "nope"}, "from_home")
	assert.Equal(t, geom.Point{X: 128, Y: 170}, w.PlayerPosition(), "unknown spawn uses the default")

	w.Spawn(Payload{}, "also_missing")
	assert.Equal(t, geom.Point{X: 400, Y: 300}, w.PlayerPosition(), "falls back to the first spawn")
}

func TestSpeed(t *testing.T) {
	w := newTestWorld(t, nil)
	assert.InDelta(t, 140.0, w.Speed(false), 1e-9)
	assert.InDelta(t, 140.0, w.Speed(true), 1e-9, "running needs boots")

	w.State.SetUpgrade(gamestate.UpgradeBoots, true)
	assert.InDelta(t, 210.0, w.Speed(true), 1e-9)

	w.State.Stats.SPD = 2
	assert.InDelta(t, 70.0, w.Speed(false), 1e-9, "speed scale floors at one half")
}

func TestMoveNormalizesDiagonal(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Spawn(AtPosition(geom.Point{X: 400, Y: 400}), "")

	w.Move(1000, held(input.MoveRight, input.MoveDown))
	p := w.PlayerPosition()
	assert.InDelta(t, 400+140/1.41421356, p.X, 0.01)
	assert.InDelta(t, 400+140/1.41421356, p.Y, 0.01)
}

func TestMoveCollidesPerAxis(t *testing.T) {
	w := newTestWorld(t, nil)
	// Collider spans x 100..150, y 100..150. Start left of it.
	w.Spawn(AtPosition(geom.Point{X: 80, Y: 125}), "")

	w.Move(500, held(input.MoveRight))
	assert.InDelta(t, 100.0, w.Player.Right(), 1e-9)

	// Moving diagonally into the wall keeps sliding vertically.
	w.Move(100, held(input.MoveRight, input.MoveUp))
	assert.InDelta(t, 100.0, w.Player.Right(), 1e-9)
	assert.Less(t, w.PlayerPosition().Y, 125.0)
}

func TestMoveClampsToBounds(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Spawn(AtPosition(geom.Point{X: 10, Y: 10}), "")

	w.Move(1000, held(input.MoveLeft, input.MoveUp))
	assert.Equal(t, 0.0, w.Player.X)
	assert.Equal(t, 0.0, w.Player.Y)
}

func TestTriggerPublishesSceneChange(t *testing.T) {
	bus := events.NewBus()
	var got []events.SceneChange
	bus.OnSceneChange(func(e events.SceneChange) { got = append(got, e) })

	w := newTestWorld(t, bus)
	w.Spawn(AtPosition(geom.Point{X: 400, Y: 580}), "")

	_, done := w.Step(200, held(input.MoveDown))
	assert.True(t, done)
	require.Len(t, got, 1)
	assert.Equal(t, "farmland", got[0].Target)
	assert.Equal(t, "north_entry", got[0].Spawn)
}

func TestStepPromptAndDialogueGate(t *testing.T) {
	w := newTestWorld(t, events.NewBus())
	w.Spawn(AtPosition(geom.Point{X: 308, Y: 300}), "")

	res, done := w.Step(16, &input.Actions{})
	assert.False(t, done)
	assert.True(t, res.Found)
	assert.Equal(t, "Read sign", w.Prompt)

	w.Dialogue.Say("Welcome to town!")
	before := w.Player
	_, done = w.Step(1000, held(input.MoveRight))
	assert.True(t, done, "dialogue consumes the frame")
	assert.Equal(t, before, w.Player, "no movement during dialogue")
	assert.Empty(t, w.Prompt)

	w.Leave()
	assert.Equal(t, dialogue.Idle, w.Dialogue.State())
}

func TestCameraFollowAndCenter(t *testing.T) {
	c := NewCamera(200, 100, geom.NewRect(0, 0, 1000, 1000))
	c.Follow(geom.RectAround(geom.Point{X: 500, Y: 500}, 16, 16))
	assert.Equal(t, geom.NewRect(400, 450, 200, 100), c.View)

	c.Follow(geom.RectAround(geom.Point{X: 10, Y: 990}, 16, 16))
	assert.Equal(t, 0.0, c.View.X)
	assert.Equal(t, 900.0, c.View.Y)

	small := NewCamera(1280, 720, geom.NewRect(0, 0, 320, 240))
	small.Follow(geom.RectAround(geom.Point{X: 10, Y: 10}, 16, 16))
	assert.Equal(t, 160.0-640.0, small.View.X)
	assert.Equal(t, 120.0-360.0, small.View.Y)

	assert.Equal(t, geom.NewRect(800, 480, 10, 10), small.Apply(geom.NewRect(320, 240, 10, 10)))
}
