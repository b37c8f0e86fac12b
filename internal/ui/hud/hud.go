// Package hud draws the on-screen overlay: the clock and coin labels, the
// notification queue, the interaction prompt, the dialogue panel and the
// toggleable debug and inventory panels.
package hud

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/dialogue"
	"chosenoffset.com/homestead/internal/render"
)

// Notification timing.
const (
	NotifyDurationMillis = 2500.0
	MaxNotifications     = 4
)

const (
	lineHeight   = 16
	padding      = 10
	dialogHeight = 100
	dialogBottom = 40
	dialogHint   = "(Space=Next/Confirm, Esc=Cancel)"
)

// View is what the HUD reads from the active scene.
type View interface {
	PromptText() string
	Session() *dialogue.Engine
}

// DebugInfo is refreshed by the game loop each frame.
type DebugInfo struct {
	FPS       float64
	Scene     string
	Player    geom.Point
	HasPlayer bool
}

type notification struct {
	text      string
	remaining float64
}

// HUD manages the heads-up display
type HUD struct {
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	clock *clock.Clock
	state *gamestate.GameState

	notifications []notification
	debug         DebugInfo

	// The debug panel is only available when debugEnabled was set at
	// construction.
	debugEnabled  bool
	showDebug     bool
	showInventory bool

	panelColor  color.RGBA
	borderColor color.RGBA
	textColor   color.RGBA
	coinsColor  color.RGBA
}

// New creates a HUD reading from clk and gs.
func New(r render.Renderer, clk *clock.Clock, gs *gamestate.GameState, screenWidth, screenHeight int, debugEnabled bool) *HUD {
	return &HUD{
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		clock:        clk,
		state:        gs,
		debugEnabled: debugEnabled,
		panelColor:   color.RGBA{20, 20, 30, 200},
		borderColor:  color.RGBA{60, 60, 80, 255},
		textColor:    color.RGBA{230, 230, 230, 255},
		coinsColor:   color.RGBA{255, 220, 100, 255},
	}
}

// Subscribe listens for notifications and panel toggles.
func (h *HUD) Subscribe(bus *events.Bus) {
	bus.OnNotify(func(e events.Notify) {
		h.Notify(e.Text)
	})
	bus.OnPanelToggle(func(e events.PanelToggle) {
		h.Toggle(e.Panel)
	})
}

// Notify queues a message. The oldest message is dropped when the queue is
// full.
func (h *HUD) Notify(text string) {
	if text == "" {
		return
	}
	h.notifications = append(h.notifications, notification{text: text, remaining: NotifyDurationMillis})
	if len(h.notifications) > MaxNotifications {
		h.notifications = h.notifications[len(h.notifications)-MaxNotifications:]
	}
}

// Notifications returns the queued messages, oldest first.
func (h *HUD) Notifications() []string {
	out := make([]string, len(h.notifications))
	for i, n := range h.notifications {
		out[i] = n.text
	}
	return out
}

// Toggle flips a panel's visibility.
func (h *HUD) Toggle(p events.Panel) {
	switch p {
	case events.PanelDebug:
		if h.debugEnabled {
			h.showDebug = !h.showDebug
		}
	case events.PanelInventory:
		h.showInventory = !h.showInventory
	}
}

// DebugVisible reports whether the debug panel is shown.
func (h *HUD) DebugVisible() bool { return h.showDebug }

// InventoryVisible reports whether the inventory panel is shown.
func (h *HUD) InventoryVisible() bool { return h.showInventory }

// SetDebugInfo replaces the debug panel's data.
func (h *HUD) SetDebugInfo(info DebugInfo) { h.debug = info }

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Update expires notifications.
func (h *HUD) Update(dtMillis float64) {
	kept := h.notifications[:0]
	for _, n := range h.notifications {
		n.remaining -= dtMillis
		if n.remaining > 0 {
			kept = append(kept, n)
		}
	}
	h.notifications = kept
}

// Draw renders the HUD. view may be nil when no scene is active.
func (h *HUD) Draw(screen render.Image, view View) {
	h.drawStatus(screen)
	h.drawNotifications(screen)

	var session *dialogue.Engine
	prompt := ""
	if view != nil {
		session = view.Session()
		prompt = view.PromptText()
	}
	if session != nil && session.Active() {
		h.drawDialog(screen, session)
	} else if prompt != "" {
		h.drawPrompt(screen, prompt)
	}

	if h.showInventory {
		h.drawInventory(screen)
	}
	if h.showDebug {
		h.drawDebug(screen)
	}
}

func (h *HUD) drawStatus(screen render.Image) {
	if h.clock != nil {
		h.text(screen, h.clock.Text(), padding, padding, h.textColor)
	}
	if h.state != nil {
		label := fmt.Sprintf("Coins: %d", h.state.Coins)
		w, _ := h.renderer.MeasureText(label)
		h.text(screen, label, h.screenWidth-w-padding, padding, h.coinsColor)
	}
}

func (h *HUD) drawNotifications(screen render.Image) {
	y := padding + lineHeight*2
	for _, n := range h.notifications {
		h.text(screen, n.text, padding, y, h.coinsColor)
		y += lineHeight
	}
}

func (h *HUD) drawPrompt(screen render.Image, prompt string) {
	w, th := h.renderer.MeasureText(prompt)
	box := geom.NewRect(
		float64(h.screenWidth-w)/2-padding,
		float64(h.screenHeight-th)-dialogBottom-padding,
		float64(w+padding*2),
		float64(th+padding),
	)
	h.panel(screen, box)
	h.text(screen, prompt, int(box.X)+padding, int(box.Y)+padding/2, h.textColor)
}

// DialogLines returns the wrapped text of the open session as drawn in the
// dialog panel, hint line excluded.
func (h *HUD) DialogLines(session *dialogue.Engine) []string {
	width := h.dialogRect().W - padding*2
	charW, _ := h.renderer.MeasureText("M")
	limit := 40
	if charW > 0 {
		limit = max(limit, int(width)/charW)
	}

	var lines []string
	switch session.State() {
	case dialogue.Dialogue:
		lines = wrap(session.Line(), limit)
		if session.HasAlt() {
			lines = append(lines, "[Q] for all")
		}
	case dialogue.Choice:
		lines = wrap(session.Prompt(), limit)
		keys := []string{"Space", "Q"}
		var opts []string
		for i, o := range session.Options() {
			opts = append(opts, fmt.Sprintf("[%s] %s", keys[i], o.Label))
		}
		if len(opts) > 0 {
			lines = append(lines, strings.Join(opts, "   "))
		}
	}
	return lines
}

func (h *HUD) dialogRect() geom.Rect {
	w := float64(h.screenWidth) * 0.8
	return geom.NewRect(
		(float64(h.screenWidth)-w)/2,
		float64(h.screenHeight-dialogHeight-dialogBottom),
		w,
		dialogHeight,
	)
}

func (h *HUD) drawDialog(screen render.Image, session *dialogue.Engine) {
	box := h.dialogRect()
	h.panel(screen, box)
	y := int(box.Y) + padding
	for _, line := range h.DialogLines(session) {
		h.text(screen, line, int(box.X)+padding, y, h.textColor)
		y += lineHeight
	}
	h.text(screen, dialogHint, int(box.X)+padding, int(box.Bottom())-padding-lineHeight, h.textColor)
}

// InventoryLines returns the inventory panel's text.
func (h *HUD) InventoryLines() []string {
	if h.state == nil {
		return nil
	}
	lines := []string{"Inventory"}
	items := h.state.Items()
	if len(items) == 0 {
		lines = append(lines, "  (empty)")
	}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("  %s x%d", h.state.DisplayName(it.ID), it.Count))
	}
	lines = append(lines, "Equipment")
	for _, slot := range gamestate.Slots {
		name := "-"
		if id := h.state.Equipped(slot); id != "" {
			name = h.state.DisplayName(id)
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", slot, name))
	}
	s := h.state.Stats
	lines = append(lines,
		fmt.Sprintf("Lv %d  XP %d/%d", h.state.Level, h.state.XP, gamestate.XPRequired(h.state.Level)),
		fmt.Sprintf("HP %d/%d  ATK %d  DEF %d  SPD %d", h.state.HPCurrent, s.HP, s.ATK, s.DEF, s.SPD),
	)
	return lines
}

func (h *HUD) drawInventory(screen render.Image) {
	lines := h.InventoryLines()
	box := geom.NewRect(float64(h.screenWidth)-260-padding, padding+lineHeight*2, 260, float64(len(lines)*lineHeight+padding*2))
	h.panel(screen, box)
	y := int(box.Y) + padding
	for _, line := range lines {
		h.text(screen, line, int(box.X)+padding, y, h.textColor)
		y += lineHeight
	}
}

// DebugLines returns the debug panel's text.
func (h *HUD) DebugLines() []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f", h.debug.FPS),
		"Scene: " + h.debug.Scene,
	}
	if h.debug.HasPlayer {
		lines = append(lines, fmt.Sprintf("Player: %.0f, %.0f", h.debug.Player.X, h.debug.Player.Y))
	}
	if h.state != nil {
		lines = append(lines,
			fmt.Sprintf("Coins: %d", h.state.Coins),
			fmt.Sprintf("Quest started: %t", h.state.Flag(gamestate.FlagQuestStarted)),
			fmt.Sprintf("Quest completed: %t", h.state.Flag(gamestate.FlagQuestCompleted)),
			fmt.Sprintf("Boots: %t", h.state.Upgrade(gamestate.UpgradeBoots)),
		)
	}
	return lines
}

func (h *HUD) drawDebug(screen render.Image) {
	lines := h.DebugLines()
	box := geom.NewRect(padding, float64(h.screenHeight)/2-80, 220, float64(len(lines)*lineHeight+padding*2))
	h.panel(screen, box)
	y := int(box.Y) + padding
	for _, line := range lines {
		h.text(screen, line, int(box.X)+padding, y, h.textColor)
		y += lineHeight
	}
}

func (h *HUD) panel(screen render.Image, r geom.Rect) {
	h.renderer.FillRect(screen, r, h.panelColor)
	h.renderer.StrokeRect(screen, r, 1, h.borderColor)
}

func (h *HUD) text(screen render.Image, s string, x, y int, clr color.Color) {
	h.renderer.DrawText(screen, s, x, y, clr)
}

func wrap(s string, limit int) []string {
	if s == "" {
		return nil
	}
	return strings.Split(wordwrap.String(s, limit), "\n")
}
