package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/homestead/internal/render"
)

type fakeKeys struct {
	held    map[render.Key]bool
	pressed map[render.Key]bool
}

func (f *fakeKeys) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeKeys) IsKeyJustPressed(k render.Key) bool { return f.pressed[k] }

func TestPollResolvesBindings(t *testing.T) {
	keys := &fakeKeys{
		held:    map[render.Key]bool{render.KeyUp: true, render.KeyShift: true, render.KeySpace: true},
		pressed: map[render.Key]bool{render.KeySpace: true, render.KeyT: true},
	}

	a := NewPoller(keys, nil).Poll()

	assert.True(t, a.Held(MoveUp))
	assert.False(t, a.Pressed(MoveUp))
	assert.True(t, a.Held(Run))
	assert.True(t, a.Pressed(Interact))
	assert.True(t, a.Pressed(Till))
	assert.True(t, a.Held(Till))
	assert.False(t, a.Pressed(Cancel))
}

func TestConsumeClearsPressesOnly(t *testing.T) {
	var a Actions
	a.Press(Interact)
	a.Hold(MoveLeft)

	a.Consume()

	assert.False(t, a.Pressed(Interact))
	assert.True(t, a.Held(Interact))
	assert.True(t, a.Held(MoveLeft))
}

func TestAxis(t *testing.T) {
	var a Actions
	a.Hold(MoveRight)
	a.Hold(MoveUp)
	x, y := a.Axis()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.0, y)

	a.Hold(MoveLeft)
	x, _ = a.Axis()
	assert.Equal(t, 0.0, x)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "CONFIRM_ALT", ConfirmAlt.String())
	assert.Equal(t, "UNKNOWN", Action(99).String())
}
