package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/input"
)

type recorder struct {
	got []Continuation
}

func (r *recorder) Dispatch(c Continuation) { r.got = append(r.got, c) }

func press(acts ...input.Action) *input.Actions {
	var a input.Actions
	for _, act := range acts {
		a.Press(act)
	}
	return &a
}

func TestIdleDoesNotConsume(t *testing.T) {
	e := NewEngine(nil)
	a := press(input.Interact)

	assert.False(t, e.Update(a))
	assert.True(t, a.Pressed(input.Interact), "idle engine leaves presses for the scene")
}

func TestDialogueAdvanceAndComplete(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)
	e.StartDialogue([]string{"A", "B"}, Reward(5, 0), None)

	assert.Equal(t, "A", e.Line())
	assert.True(t, e.Update(press(input.Interact)))
	assert.Equal(t, "B", e.Line())
	assert.Empty(t, rec.got)

	assert.True(t, e.Update(press(input.Interact)))
	assert.Equal(t, Idle, e.State())
	require.Len(t, rec.got, 1)
	assert.Equal(t, Reward(5, 0), rec.got[0])
}

func TestDialogueCancelSkipsCallback(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)
	e.StartDialogue([]string{"A", "B"}, Reward(5, 0), None)

	assert.True(t, e.Update(press(input.Cancel)))
	assert.Equal(t, Idle, e.State())
	assert.Empty(t, rec.got)
}

func TestDialogueAlt(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)

	e.StartDialogue([]string{"Sell?"}, SellCropOne(), None)
	assert.False(t, e.HasAlt())
	e.Update(press(input.ConfirmAlt))
	assert.Equal(t, Dialogue, e.State(), "alt is ignored without an alt continuation")

	e.StartDialogue([]string{"Sell?", "unused"}, SellCropOne(), SellCropAll())
	assert.True(t, e.HasAlt())
	e.Update(press(input.ConfirmAlt))
	assert.Equal(t, Idle, e.State())
	assert.Equal(t, []Continuation{SellCropAll()}, rec.got)
}

func TestEmptyDialogueCompletesOnInteract(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)
	e.StartDialogue(nil, Sleep(), None)

	assert.True(t, e.Active())
	e.Update(press(input.Interact))
	assert.Equal(t, []Continuation{Sleep()}, rec.got)
}

func TestChoiceOptions(t *testing.T) {
	tests := []struct {
		name   string
		action input.Action
		want   []Continuation
	}{
		{"interact picks first", input.Interact, []Continuation{Sleep()}},
		{"alt picks second", input.ConfirmAlt, []Continuation{Notify("Maybe later")}},
		{"cancel picks nothing", input.Cancel, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			e := NewEngine(rec)
			e.StartChoice("Sleep until morning?",
				Option{Label: "Yes", Then: Sleep()},
				Option{Label: "No", Then: Notify("Maybe later")},
			)

			assert.True(t, e.Update(press(tt.action)))
			assert.Equal(t, Idle, e.State())
			assert.Equal(t, tt.want, rec.got)
		})
	}
}

func TestChoiceAltWithSingleOptionStaysOpen(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)
	e.StartChoice("Continue?", Option{Label: "OK", Then: Notify("ok")})

	assert.True(t, e.Update(press(input.ConfirmAlt)))
	assert.Equal(t, Choice, e.State())
	assert.Empty(t, rec.got)
}

func TestChoiceKeepsTwoOptions(t *testing.T) {
	e := NewEngine(nil)
	e.StartChoice("Pick", Option{Label: "a"}, Option{Label: "b"}, Option{Label: "c"})
	assert.Len(t, e.Options(), 2)
	assert.Equal(t, "Pick", e.Prompt())
}

func TestStartingSessionReplacesWithoutCallbacks(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)

	e.StartDialogue([]string{"A"}, Reward(1, 1), None)
	e.StartChoice("Q?", Option{Label: "Yes", Then: Sleep()})
	assert.Equal(t, Choice, e.State())
	assert.Empty(t, e.Line())

	e.StartDialogue([]string{"B"}, None, None)
	assert.Equal(t, Dialogue, e.State())
	assert.Nil(t, e.Options())
	assert.Empty(t, rec.got)
}

func TestContinuationMayOpenNewSession(t *testing.T) {
	var e *Engine
	e = NewEngine(DispatcherFunc(func(c Continuation) {
		if c.Op == OpSellCropOne {
			e.StartDialogue([]string{"Sold one. Again?"}, SellCropOne(), SellCropAll())
		}
	}))

	e.StartDialogue([]string{"Sell?"}, SellCropOne(), SellCropAll())
	e.Update(press(input.Interact))

	assert.Equal(t, Dialogue, e.State())
	assert.Equal(t, "Sold one. Again?", e.Line())
}

func TestUpdateConsumesPresses(t *testing.T) {
	e := NewEngine(nil)
	e.Say("hello", "world")
	a := press(input.Interact, input.Till)

	assert.True(t, e.Update(a))
	assert.False(t, a.Pressed(input.Till))
	assert.False(t, a.Pressed(input.Interact))
}

func TestResetFlushes(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(rec)
	e.StartDialogue([]string{"A"}, Reward(1, 0), None)
	e.Reset()

	assert.False(t, e.Active())
	assert.False(t, e.Update(press(input.Interact)))
	assert.Empty(t, rec.got)
}

func TestContinuationString(t *testing.T) {
	assert.Equal(t, "reward(coins=5, xp=10)", Reward(5, 10).String())
	assert.Equal(t, "buy_seeds(qty=1, price=5)", BuySeeds(1, 5).String())
	assert.Equal(t, `notify("hi")`, Notify("hi").String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "Op(99)", Op(99).String())
}
