// Package interaction resolves which world object the player is standing next
// to and what happens when they press interact. Interactables are declared in
// scene documents; their tag is parsed into a closed Kind.
package interaction

import (
	"fmt"
	"strings"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
)

// DefaultRadius is the interaction reach in pixels.
const DefaultRadius = 48.0

// Kind identifies what an interactable is.
type Kind string

const (
	KindDoorHome      Kind = "door.home"
	KindDoorExit      Kind = "door.exit"
	KindDoorShop      Kind = "door.shop"
	KindDoorFarm      Kind = "door.farm"
	KindNPCShopkeeper Kind = "npc.shopkeeper"
	KindNPCElder      Kind = "npc.elder"
	KindBedSleep      Kind = "bed.sleep"
)

const signPrefix = "sign."

// ParseKind converts a document tag to a Kind. Any "sign.<name>" tag is
// accepted; every other tag must be one of the known kinds.
func ParseKind(tag string) (Kind, error) {
	switch k := Kind(tag); k {
	case KindDoorHome, KindDoorExit, KindDoorShop, KindDoorFarm,
		KindNPCShopkeeper, KindNPCElder, KindBedSleep:
		return k, nil
	}
	if strings.HasPrefix(tag, signPrefix) && len(tag) > len(signPrefix) {
		return Kind(tag), nil
	}
	return "", fmt.Errorf("unknown interactable tag %q", tag)
}

// Family returns the part of the kind before the dot ("door", "npc", ...).
func (k Kind) Family() string {
	family, _, _ := strings.Cut(string(k), ".")
	return family
}

// IsDoor reports whether the kind is any door.
func (k Kind) IsDoor() bool { return k.Family() == "door" }

// IsSign reports whether the kind is any sign.
func (k Kind) IsSign() bool { return k.Family() == "sign" }

// ActionType defines what an interactable or trigger does.
type ActionType string

const (
	ActionSceneChange ActionType = "scene_change"
)

// Action is the optional effect attached to an interactable or trigger.
type Action struct {
	Type   ActionType `json:"type"`
	Target string     `json:"target"`
	Spawn  string     `json:"spawn,omitempty"`
}

// Validate checks if an action is properly configured
func (a *Action) Validate() error {
	switch a.Type {
	case ActionSceneChange:
		if a.Target == "" {
			return fmt.Errorf("scene_change action must have a target")
		}
	case "":
		return fmt.Errorf("action must have a type")
	default:
		return fmt.Errorf("unknown action type: %s", a.Type)
	}
	return nil
}

// Event converts the action into the bus event it publishes.
func (a *Action) Event() (events.Event, bool) {
	if a == nil || a.Type != ActionSceneChange {
		return nil, false
	}
	return events.SceneChange{Target: a.Target, Spawn: a.Spawn}, true
}

// Entity is one interactable placed in a scene.
type Entity struct {
	Rect   geom.Rect
	Kind   Kind
	Prompt string
	Lines  []string // spoken or read on activation (signs, NPC flavor)
	Action *Action
}

// Bounds implements Locatable.
func (e Entity) Bounds() geom.Rect { return e.Rect }

// Locatable is anything with a world-space rectangle.
type Locatable interface {
	Bounds() geom.Rect
}

// Closest returns the candidate whose center is nearest the player's center.
// Candidates at or beyond maxDist+1 are ignored; on equal distance the
// earliest candidate wins.
func Closest[T Locatable](player geom.Rect, candidates []T, maxDist float64) (T, bool) {
	var best T
	found := false
	limit := (maxDist + 1) * (maxDist + 1)
	bestDist := limit
	for _, c := range candidates {
		d := geom.DistSq(player, c.Bounds())
		if d < bestDist {
			best = c
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Result is what Resolve found this frame.
type Result struct {
	Target    Entity
	Found     bool
	Prompt    string
	Activated bool // interact was pressed this frame with a target in reach
}

// Resolver finds the interactable in reach and fires door actions.
type Resolver struct {
	Radius float64
	bus    *events.Bus
}

// NewResolver creates a resolver publishing to bus. A non-positive radius
// uses DefaultRadius.
func NewResolver(bus *events.Bus, radius float64) *Resolver {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Resolver{Radius: radius, bus: bus}
}

// Resolve picks the closest candidate and returns its prompt. When interact
// was pressed this frame and the candidate carries a scene change, the
// change is published before Resolve returns. Other kinds are left to the
// caller via Result.Activated.
func (r *Resolver) Resolve(player geom.Rect, candidates []Entity, actions *input.Actions) Result {
	target, ok := Closest(player, candidates, r.Radius)
	if !ok {
		return Result{}
	}
	res := Result{Target: target, Found: true, Prompt: target.Prompt}
	if actions == nil || !actions.Pressed(input.Interact) {
		return res
	}
	res.Activated = true
	if ev, ok := target.Action.Event(); ok && r.bus != nil {
		r.bus.Publish(ev)
	}
	return res
}
