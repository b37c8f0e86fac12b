// Package dialogue implements the modal dialogue and two-way choice session
// shared by every scene. At most one session is active; starting a new one
// silently replaces the old one.
package dialogue

import "chosenoffset.com/homestead/internal/input"

// State is the session mode.
type State int

const (
	Idle State = iota
	Dialogue
	Choice
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dialogue:
		return "dialogue"
	case Choice:
		return "choice"
	default:
		return "unknown"
	}
}

// MaxOptions is the number of choice options that can be selected.
const MaxOptions = 2

// Option is one selectable answer of a choice.
type Option struct {
	Label string
	Then  Continuation
}

// Engine runs the dialogue/choice session.
type Engine struct {
	state State

	lines      []string
	onComplete Continuation
	onAlt      Continuation

	prompt  string
	options []Option

	dispatcher Dispatcher
}

// NewEngine creates an idle engine. d may be nil, in which case continuations
// are dropped until SetDispatcher is called.
func NewEngine(d Dispatcher) *Engine {
	return &Engine{dispatcher: d}
}

// SetDispatcher replaces the continuation handler.
func (e *Engine) SetDispatcher(d Dispatcher) {
	e.dispatcher = d
}

// StartDialogue opens a line-by-line dialogue. onAlt is offered on
// CONFIRM_ALT only when it is not None.
func (e *Engine) StartDialogue(lines []string, onComplete, onAlt Continuation) {
	e.Reset()
	e.state = Dialogue
	e.lines = append([]string(nil), lines...)
	e.onComplete = onComplete
	e.onAlt = onAlt
}

// Say opens a dialogue with no continuations.
func (e *Engine) Say(lines ...string) {
	e.StartDialogue(lines, None, None)
}

// StartChoice opens a choice. Options past MaxOptions are ignored.
func (e *Engine) StartChoice(prompt string, options ...Option) {
	e.Reset()
	if len(options) > MaxOptions {
		options = options[:MaxOptions]
	}
	e.state = Choice
	e.prompt = prompt
	e.options = append([]Option(nil), options...)
}

// Reset returns to Idle without running any continuation.
func (e *Engine) Reset() {
	e.state = Idle
	e.lines = nil
	e.onComplete = None
	e.onAlt = None
	e.prompt = ""
	e.options = nil
}

// State returns the current mode.
func (e *Engine) State() State { return e.state }

// Active reports whether a dialogue or choice is open.
func (e *Engine) Active() bool { return e.state != Idle }

// Line returns the line currently shown, or "" when none.
func (e *Engine) Line() string {
	if e.state != Dialogue || len(e.lines) == 0 {
		return ""
	}
	return e.lines[0]
}

// Remaining returns the number of lines left, including the current one.
func (e *Engine) Remaining() int {
	if e.state != Dialogue {
		return 0
	}
	return len(e.lines)
}

// HasAlt reports whether the open dialogue accepts CONFIRM_ALT.
func (e *Engine) HasAlt() bool {
	return e.state == Dialogue && !e.onAlt.IsNone()
}

// Prompt returns the open choice's prompt.
func (e *Engine) Prompt() string {
	if e.state != Choice {
		return ""
	}
	return e.prompt
}

// Options returns the open choice's options.
func (e *Engine) Options() []Option {
	if e.state != Choice {
		return nil
	}
	return e.options
}

// Update applies this frame's actions to the session. It returns true when a
// session was open, in which case the frame's presses are consumed and the
// caller should skip movement and interaction. The session is cleared before
// any continuation runs, so a continuation may open a new session.
func (e *Engine) Update(actions *input.Actions) bool {
	switch e.state {
	case Choice:
		e.updateChoice(actions)
	case Dialogue:
		e.updateDialogue(actions)
	default:
		return false
	}
	actions.Consume()
	return true
}

func (e *Engine) updateChoice(actions *input.Actions) {
	switch {
	case actions.Pressed(input.Cancel):
		e.Reset()
	case actions.Pressed(input.Interact):
		var next Continuation
		if len(e.options) > 0 {
			next = e.options[0].Then
		}
		e.Reset()
		e.run(next)
	case actions.Pressed(input.ConfirmAlt):
		if len(e.options) > 1 {
			next := e.options[1].Then
			e.Reset()
			e.run(next)
		}
	}
}

func (e *Engine) updateDialogue(actions *input.Actions) {
	switch {
	case actions.Pressed(input.Cancel):
		e.Reset()
	case actions.Pressed(input.ConfirmAlt) && !e.onAlt.IsNone():
		next := e.onAlt
		e.Reset()
		e.run(next)
	case actions.Pressed(input.Interact):
		if len(e.lines) > 0 {
			e.lines = e.lines[1:]
		}
		if len(e.lines) == 0 {
			next := e.onComplete
			e.Reset()
			e.run(next)
		}
	}
}

func (e *Engine) run(c Continuation) {
	if c.IsNone() || e.dispatcher == nil {
		return
	}
	e.dispatcher.Dispatch(c)
}
