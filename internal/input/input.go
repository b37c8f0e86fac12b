// Package input resolves raw key state into the game's action vocabulary.
// Scenes never look at keys; they read one Actions snapshot per frame.
package input

import "chosenoffset.com/homestead/internal/render"

// Action is a device-independent game action.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Interact
	ConfirmAlt
	Cancel
	Run
	Till
	Plant
	TimeSkip
	DebugToggle
	QuickSave
	InventoryToggle

	actionCount
)

var actionNames = [actionCount]string{
	MoveUp:          "MOVE_UP",
	MoveDown:        "MOVE_DOWN",
	MoveLeft:        "MOVE_LEFT",
	MoveRight:       "MOVE_RIGHT",
	Interact:        "INTERACT",
	ConfirmAlt:      "CONFIRM_ALT",
	Cancel:          "CANCEL",
	Run:             "RUN",
	Till:            "TILL",
	Plant:           "PLANT",
	TimeSkip:        "TIME_SKIP",
	DebugToggle:     "DEBUG_TOGGLE",
	QuickSave:       "QUICK_SAVE",
	InventoryToggle: "INVENTORY_TOGGLE",
}

// String returns the action's vocabulary name.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "UNKNOWN"
	}
	return actionNames[a]
}

// Actions is the resolved input for one frame. Held actions reflect the key
// being down; pressed actions are edge-triggered and true for one frame only.
type Actions struct {
	held    [actionCount]bool
	pressed [actionCount]bool
}

// Held reports whether the action is currently held.
func (a *Actions) Held(act Action) bool {
	return a.held[act]
}

// Pressed reports whether the action was newly pressed this frame.
func (a *Actions) Pressed(act Action) bool {
	return a.pressed[act]
}

// Hold marks an action as held.
func (a *Actions) Hold(act Action) {
	a.held[act] = true
}

// Press marks an action as newly pressed (and held).
func (a *Actions) Press(act Action) {
	a.held[act] = true
	a.pressed[act] = true
}

// Consume clears every edge-triggered flag so later readers in the same frame
// see no presses.
func (a *Actions) Consume() {
	a.pressed = [actionCount]bool{}
}

// Axis returns the raw movement direction from the held move actions, each
// component in {-1, 0, 1}.
func (a *Actions) Axis() (x, y float64) {
	if a.held[MoveRight] {
		x++
	}
	if a.held[MoveLeft] {
		x--
	}
	if a.held[MoveDown] {
		y++
	}
	if a.held[MoveUp] {
		y--
	}
	return x, y
}

// Binding maps keys to an action.
type Binding struct {
	Action Action
	Keys   []render.Key
}

// DefaultBindings returns the keyboard layout.
func DefaultBindings() []Binding {
	return []Binding{
		{MoveUp, []render.Key{render.KeyW, render.KeyUp}},
		{MoveDown, []render.Key{render.KeyS, render.KeyDown}},
		{MoveLeft, []render.Key{render.KeyA, render.KeyLeft}},
		{MoveRight, []render.Key{render.KeyD, render.KeyRight}},
		{Interact, []render.Key{render.KeySpace, render.KeyEnter}},
		{ConfirmAlt, []render.Key{render.KeyQ}},
		{Cancel, []render.Key{render.KeyEscape}},
		{Run, []render.Key{render.KeyShift}},
		{Till, []render.Key{render.KeyT}},
		{Plant, []render.Key{render.KeyP}},
		{TimeSkip, []render.Key{render.KeyF2}},
		{DebugToggle, []render.Key{render.KeyF1}},
		{QuickSave, []render.Key{render.KeyF5}},
		{InventoryToggle, []render.Key{render.KeyI}},
	}
}

// Poller samples an InputManager once per frame.
type Poller struct {
	input    render.InputManager
	bindings []Binding
}

// NewPoller creates a poller with the given bindings. Nil bindings use
// DefaultBindings.
func NewPoller(im render.InputManager, bindings []Binding) *Poller {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Poller{input: im, bindings: bindings}
}

// Poll resolves the current key state into an Actions snapshot.
func (p *Poller) Poll() Actions {
	var a Actions
	for _, b := range p.bindings {
		for _, k := range b.Keys {
			if p.input.IsKeyPressed(k) {
				a.held[b.Action] = true
			}
			if p.input.IsKeyJustPressed(k) {
				a.held[b.Action] = true
				a.pressed[b.Action] = true
			}
		}
	}
	return a
}
