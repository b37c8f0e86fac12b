// Package events provides a synchronous publish/subscribe relay with a closed
// set of typed event kinds. Handlers run in subscription order on the
// publisher's call stack, so every effect is visible within the same frame.
package events

// Kind identifies an event type.
type Kind int

const (
	KindSceneChange Kind = iota
	KindNotify
	KindPanelToggle
)

// String returns the topic name for a kind.
func (k Kind) String() string {
	switch k {
	case KindSceneChange:
		return "scene.change"
	case KindNotify:
		return "ui.notify"
	case KindPanelToggle:
		return "ui.panel.toggle"
	default:
		return "unknown"
	}
}

// Event is implemented by every payload type the bus carries.
type Event interface {
	Kind() Kind
}

// SceneChange requests that the scene manager replace the current scene.
type SceneChange struct {
	Target string
	Spawn  string
}

// Kind implements Event.
func (SceneChange) Kind() Kind { return KindSceneChange }

// Notify asks the UI to show a short toast message.
type Notify struct {
	Text string
}

// Kind implements Event.
func (Notify) Kind() Kind { return KindNotify }

// Panel names a toggleable UI panel.
type Panel string

const (
	PanelDebug     Panel = "debug"
	PanelInventory Panel = "inventory"
)

// PanelToggle flips the visibility of a UI panel.
type PanelToggle struct {
	Panel Panel
}

// Kind implements Event.
func (PanelToggle) Kind() Kind { return KindPanelToggle }

// Handler receives published events of the kind it subscribed to.
type Handler func(Event)

// Bus is the event relay. The zero value is ready to use.
type Bus struct {
	subs map[Kind][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]Handler)}
}

// Subscribe registers a handler for a kind. Multiple handlers per kind are
// allowed and are invoked in the order they were registered.
func (b *Bus) Subscribe(kind Kind, h Handler) {
	if b.subs == nil {
		b.subs = make(map[Kind][]Handler)
	}
	b.subs[kind] = append(b.subs[kind], h)
}

// Publish delivers e to every handler subscribed to its kind. A panicking
// handler propagates to the caller.
func (b *Bus) Publish(e Event) {
	for _, h := range b.subs[e.Kind()] {
		h(e)
	}
}

// HandlerCount returns the number of handlers registered for a kind.
func (b *Bus) HandlerCount(kind Kind) int {
	return len(b.subs[kind])
}

// OnSceneChange subscribes a typed scene-change handler.
func (b *Bus) OnSceneChange(fn func(SceneChange)) {
	b.Subscribe(KindSceneChange, func(e Event) {
		fn(e.(SceneChange))
	})
}

// OnNotify subscribes a typed notification handler.
func (b *Bus) OnNotify(fn func(Notify)) {
	b.Subscribe(KindNotify, func(e Event) {
		fn(e.(Notify))
	})
}

// OnPanelToggle subscribes a typed panel toggle handler.
func (b *Bus) OnPanelToggle(fn func(PanelToggle)) {
	b.Subscribe(KindPanelToggle, func(e Event) {
		fn(e.(PanelToggle))
	})
}
