package scenes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/dialogue"
	"chosenoffset.com/homestead/internal/farming"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/logging"
	"chosenoffset.com/homestead/internal/render/rendertest"
	"chosenoffset.com/homestead/internal/scene"
)

type harness struct {
	ctx      *Context
	renderer *rendertest.Renderer
	notes    []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{renderer: rendertest.NewRenderer()}
	h.ctx = &Context{
		Clock:      clock.New(clock.DefaultMinutesPerSecond),
		State:      gamestate.New(),
		Bus:        events.NewBus(),
		Tuning:     config.DefaultTuning(),
		Log:        logging.Discard(),
		Renderer:   h.renderer,
		SceneDir:   filepath.Join("..", "..", "data", "scenes"),
		ViewWidth:  1280,
		ViewHeight: 720,
	}
	h.ctx.Bus.OnNotify(func(e events.Notify) { h.notes = append(h.notes, e.Text) })
	return h
}

func enter(t *testing.T, s scene.Scene) {
	t.Helper()
	require.NoError(t, s.Load())
	require.NoError(t, s.Enter(scene.Payload{}))
}

func pressed(acts ...input.Action) *input.Actions {
	var a input.Actions
	for _, act := range acts {
		a.Press(act)
	}
	return &a
}

func place(w *scene.World, x, y float64) {
	w.Player = geom.RectAround(geom.Point{X: x, Y: y}, scene.PlayerSize, scene.PlayerSize)
}

func frame(t *testing.T, s scene.Scene, acts ...input.Action) {
	t.Helper()
	require.NoError(t, s.Update(16, pressed(acts...)))
}

func TestEveryDocumentLoads(t *testing.T) {
	h := newHarness(t)
	mgr := scene.NewManager(logging.Discard())
	Register(mgr, h.ctx)

	assert.Equal(t, []string{Farmland, HomeInterior, ShopInterior, Town}, mgr.Names())
	for _, name := range mgr.Names() {
		require.NoError(t, mgr.Replace(name, scene.Payload{}), name)
		assert.Equal(t, name, mgr.CurrentName())
		_, ok := mgr.PlayerPosition()
		assert.True(t, ok)
	}
}

func TestDefaultSpawns(t *testing.T) {
	h := newHarness(t)

	farm := NewFarmland(h.ctx)
	enter(t, farm)
	assert.Equal(t, geom.Point{X: 600, Y: 850}, farm.PlayerPosition())

	town := NewTown(h.ctx)
	require.NoError(t, town.Load())
	require.NoError(t, town.Enter(scene.AtSpawn("from_shop")))
	assert.Equal(t, geom.Point{X: 1210, Y: 500}, town.PlayerPosition())
}

func TestDoorPublishesSceneChange(t *testing.T) {
	h := newHarness(t)
	var got []events.SceneChange
	h.ctx.Bus.OnSceneChange(func(e events.SceneChange) { got = append(got, e) })

	town := NewTown(h.ctx)
	enter(t, town)
	place(town.World, 400, 500)
	frame(t, town, input.Interact)

	require.Len(t, got, 1)
	assert.Equal(t, events.SceneChange{Target: HomeInterior, Spawn: "door_in"}, got[0])
}

func TestElderQuest(t *testing.T) {
	h := newHarness(t)
	gs := h.ctx.State
	town := NewTown(h.ctx)
	enter(t, town)
	place(town.World, 700, 735)

	frame(t, town, input.Interact)
	require.Equal(t, dialogue.Dialogue, town.Dialogue.State())
	assert.Equal(t, 3, town.Dialogue.Remaining())
	frame(t, town, input.Interact)
	frame(t, town, input.Interact)
	assert.False(t, gs.Flag(gamestate.FlagQuestStarted), "quest starts after the last line")
	frame(t, town, input.Interact)
	assert.True(t, gs.Flag(gamestate.FlagQuestStarted))
	assert.False(t, town.Dialogue.Active())

	frame(t, town, input.Interact)
	assert.Contains(t, town.Dialogue.Line(), "Till the soil")
	frame(t, town, input.Cancel)
	assert.False(t, gs.Flag(gamestate.FlagQuestCompleted))

	gs.SetFlag(gamestate.FlagCropSold, true)
	frame(t, town, input.Interact)
	frame(t, town, input.Interact)
	frame(t, town, input.Interact)

	assert.True(t, gs.Flag(gamestate.FlagQuestCompleted))
	assert.Equal(t, gamestate.DefaultCoins+15, gs.Coins)
	assert.Equal(t, 2, gs.Level)
	assert.Equal(t, 10, gs.XP)
	assert.Contains(t, h.notes, "Quest completed!")
	assert.Contains(t, h.notes, "+15 Coins")
	assert.Contains(t, h.notes, "Level up! Now level 2")

	frame(t, town, input.Interact)
	assert.Equal(t, "Elder: The valley is lucky to have you.", town.Dialogue.Line())
}

func TestShopBuySeedsAndBoots(t *testing.T) {
	h := newHarness(t)
	gs := h.ctx.State
	shop := NewShopInterior(h.ctx)
	enter(t, shop)
	place(shop.World, 320, 178)

	frame(t, shop, input.Interact)
	require.Equal(t, dialogue.Choice, shop.Dialogue.State())
	require.Len(t, shop.Dialogue.Options(), 2)

	frame(t, shop, input.Interact)
	assert.Equal(t, 5, gs.Coins)
	assert.Equal(t, 1, gs.ItemCount(gamestate.ItemSeeds))
	assert.Equal(t, lineSeedsBought, shop.Dialogue.Line())
	assert.Equal(t, []string{"-5 Coins", "+1 Seeds"}, h.notes)
	frame(t, shop, input.Cancel)

	frame(t, shop, input.Interact)
	frame(t, shop, input.ConfirmAlt)
	assert.Equal(t, lineNoCoins, shop.Dialogue.Line())
	assert.False(t, gs.Upgrade(gamestate.UpgradeBoots))
	frame(t, shop, input.Cancel)

	gs.AddCoins(30)
	frame(t, shop, input.Interact)
	frame(t, shop, input.ConfirmAlt)
	assert.True(t, gs.Upgrade(gamestate.UpgradeBoots))
	assert.Equal(t, 15, gs.Coins)
	frame(t, shop, input.Cancel)

	frame(t, shop, input.Interact)
	assert.Equal(t, dialogue.Dialogue, shop.Dialogue.State(), "boots owned: plain seed offer")
	assert.Equal(t, "Shopkeeper: Seeds cost 5 coins. Press Space to confirm.", shop.Dialogue.Line())
}

func TestShopClosedAtNight(t *testing.T) {
	h := newHarness(t)
	h.ctx.Clock.SetMinutes(21 * 60)
	shop := NewShopInterior(h.ctx)
	enter(t, shop)
	place(shop.World, 320, 178)

	frame(t, shop, input.Interact)
	assert.Equal(t, lineShopClosed, shop.Dialogue.Line())
	frame(t, shop, input.Interact)
	assert.False(t, shop.Dialogue.Active())
	assert.Equal(t, gamestate.DefaultCoins, h.ctx.State.Coins)
}

func TestShopSellLoop(t *testing.T) {
	h := newHarness(t)
	gs := h.ctx.State
	gs.AddItem(gamestate.ItemCarrot, 3)
	shop := NewShopInterior(h.ctx)
	enter(t, shop)
	place(shop.World, 320, 178)

	frame(t, shop, input.Interact)
	require.True(t, shop.Dialogue.HasAlt())

	frame(t, shop, input.Interact)
	assert.Equal(t, 2, gs.ItemCount(gamestate.ItemCarrot))
	assert.Equal(t, 13, gs.Coins)
	assert.True(t, shop.Dialogue.HasAlt(), "sell prompt reopens while crops remain")
	assert.True(t, gs.Flag(gamestate.FlagCropSold))

	frame(t, shop, input.ConfirmAlt)
	assert.Equal(t, 0, gs.ItemCount(gamestate.ItemCarrot))
	assert.Equal(t, 19, gs.Coins)
	assert.Equal(t, lineThanksCrops, shop.Dialogue.Line())
	assert.Equal(t, []string{"-1 Carrot", "+3 Coins", "-2 Carrot(s)", "+6 Coins"}, h.notes)
}

func TestBedSleepsUntilMorning(t *testing.T) {
	h := newHarness(t)
	h.ctx.Clock.SetMinutes(22 * 60)
	h.ctx.State.HPCurrent = 5
	home := NewHomeInterior(h.ctx)
	enter(t, home)
	place(home.World, 505, 105)

	frame(t, home, input.Interact)
	require.Equal(t, dialogue.Choice, home.Dialogue.State())
	assert.Equal(t, "Sleep until morning?", home.Dialogue.Prompt())

	frame(t, home, input.ConfirmAlt)
	assert.InDelta(t, 22*60.0, h.ctx.Clock.Minutes(), 1e-9, "declining keeps the time")

	frame(t, home, input.Interact)
	frame(t, home, input.Interact)
	assert.InDelta(t, float64(clock.Morning), h.ctx.Clock.Minutes(), 1e-9)
	assert.Equal(t, h.ctx.State.Stats.HP, h.ctx.State.HPCurrent)
}

func TestSignReadsItsText(t *testing.T) {
	h := newHarness(t)
	town := NewTown(h.ctx)
	enter(t, town)
	place(town.World, 868, 550)

	frame(t, town, input.Interact)
	assert.Equal(t, "Welcome to Homestead Valley!", town.Dialogue.Line())
	assert.Equal(t, 2, town.Dialogue.Remaining())
}

func TestFarmlandLifecycle(t *testing.T) {
	h := newHarness(t)
	gs := h.ctx.State
	farm := NewFarmland(h.ctx)
	enter(t, farm)
	plot, ok := farm.Farm().Plot("plot_r0_c0")
	require.True(t, ok)
	place(farm.World, 416, 316)

	frame(t, farm)
	assert.Equal(t, "T: till soil", farm.Prompt)

	frame(t, farm, input.Till)
	assert.Equal(t, farming.Tilled, plot.State)

	frame(t, farm, input.Plant)
	assert.Equal(t, farming.Tilled, plot.State)
	assert.Contains(t, h.notes, "You need seeds")

	gs.AddItem(gamestate.ItemSeeds, 1)
	frame(t, farm, input.Plant)
	assert.Equal(t, farming.Planted, plot.State)
	assert.Equal(t, 0, gs.ItemCount(gamestate.ItemSeeds))
	assert.Equal(t, "Growing...", farm.Prompt)

	h.ctx.Clock.AddMinutes(720)
	frame(t, farm)
	assert.Equal(t, farming.Ready, plot.State)
	assert.Equal(t, "Space: harvest", farm.Prompt)

	frame(t, farm, input.Interact)
	assert.Equal(t, farming.Tilled, plot.State)
	assert.Equal(t, 1, gs.ItemCount(gamestate.ItemCarrot))
	assert.Contains(t, h.notes, "+1 Carrot")

	farm.Unload()
	rec, ok := gs.Plot("plot_r0_c0")
	require.True(t, ok)
	assert.Equal(t, "tilled", rec.State)

	again := NewFarmland(h.ctx)
	enter(t, again)
	restored, _ := again.Farm().Plot("plot_r0_c0")
	assert.Equal(t, farming.Tilled, restored.State)
}

func TestFarmlandCatchesUpOnEnter(t *testing.T) {
	h := newHarness(t)
	planted := 100.0
	h.ctx.State.SetPlot("plot_r1_c2", gamestate.PlotRecord{State: "planted", PlantedMinutes: &planted})
	h.ctx.Clock.SetMinutes(900)

	farm := NewFarmland(h.ctx)
	enter(t, farm)
	p, _ := farm.Farm().Plot("plot_r1_c2")
	assert.Equal(t, farming.Ready, p.State)
}

func TestTownDrawsHomeLabel(t *testing.T) {
	h := newHarness(t)
	town := NewTown(h.ctx)
	enter(t, town)

	town.Draw(rendertest.NewImage(1280, 720))
	assert.Contains(t, h.renderer.Strings(), "Home")
	dayRects := len(h.renderer.Rects)

	h.renderer.Reset()
	h.ctx.Clock.SetMinutes(23 * 60)
	town.Draw(rendertest.NewImage(1280, 720))
	assert.Greater(t, len(h.renderer.Rects), dayRects, "night adds the tint and lamp glows")
}
