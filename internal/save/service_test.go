package save

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
	"chosenoffset.com/homestead/internal/logging"
	"chosenoffset.com/homestead/internal/render"
	"chosenoffset.com/homestead/internal/scene"
)

type stubScene struct {
	payload scene.Payload
	pos     geom.Point
}

func (s *stubScene) Load() error { return nil }
func (s *stubScene) Enter(p scene.Payload) error {
	s.payload = p
	if p.Position != nil {
		s.pos = *p.Position
	}
	return nil
}
func (s *stubScene) Update(float64, *input.Actions) error { return nil }
func (s *stubScene) Draw(render.Image)                    {}
func (s *stubScene) Unload()                              {}
func (s *stubScene) PlayerPosition() geom.Point           { return s.pos }

type harness struct {
	bus   *events.Bus
	clock *clock.Clock
	state *gamestate.GameState
	mgr   *scene.Manager
	store *FileStore
	svc   *Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logging.Discard()
	h := &harness{
		bus:   events.NewBus(),
		clock: clock.New(0),
		state: gamestate.New(),
		mgr:   scene.NewManager(log),
		store: NewFileStore(t.TempDir(), log),
	}
	for _, name := range []string{"town", "home_interior", "farmland"} {
		h.mgr.Register(name, func() scene.Scene { return &stubScene{} })
	}
	h.svc = NewService(h.store, h.clock, h.state, h.mgr, log)
	h.svc.Subscribe(h.bus)
	h.mgr.Subscribe(h.bus)
	return h
}

func (h *harness) current() *stubScene {
	return h.mgr.Current().(*stubScene)
}

func TestSceneChangeAutosavesTargetAndSpawn(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.NewGame())
	h.state.AddCoins(7)
	h.clock.SetMinutes(700)

	h.bus.Publish(events.SceneChange{Target: "home_interior", Spawn: "door_in"})

	snap, err := h.store.LoadAutosave(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "home_interior", snap.Scene)
	assert.Equal(t, "door_in", snap.SpawnName())
	_, hasPos := snap.Position()
	assert.False(t, hasPos)
	require.NotNil(t, snap.TimeMinutes)
	assert.InDelta(t, 700.0, *snap.TimeMinutes, 1e-9)
	require.NotNil(t, snap.GameState.Coins)
	assert.Equal(t, 17, *snap.GameState.Coins)

	assert.Equal(t, "home_interior", h.mgr.CurrentName())
}

func TestExitAutosaveUsesExactPosition(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.NewGame())
	h.current().pos = geom.Point{X: 321, Y: 123}

	require.NoError(t, h.svc.Autosave(context.Background()))

	snap, err := h.store.LoadAutosave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "town", snap.Scene)
	assert.Nil(t, snap.Spawn)
	pos, ok := snap.Position()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 321, Y: 123}, pos)
}

func TestContinueRestoresAutosave(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.svc.NewGame())
	h.state.AddItem("carrot", 3)
	h.state.SetFlag(gamestate.FlagQuestStarted, true)
	h.clock.SetMinutes(1000)
	h.current().pos = geom.Point{X: 50, Y: 60}
	require.NoError(t, h.svc.Autosave(context.Background()))

	// Mutate everything, then continue.
	h.state.Reset()
	h.clock.SetMorning()
	require.NoError(t, h.mgr.Replace("farmland", scene.Payload{}))

	restored, err := h.svc.Continue(context.Background())
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, "town", h.mgr.CurrentName())
	assert.Equal(t, 3, h.state.ItemCount("carrot"))
	assert.True(t, h.state.Flag(gamestate.FlagQuestStarted))
	assert.InDelta(t, 1000.0, h.clock.Minutes(), 1e-9)
	require.NotNil(t, h.current().payload.Position)
	assert.Equal(t, geom.Point{X: 50, Y: 60}, *h.current().payload.Position)
}

func TestContinueWithoutSaveStartsNewGame(t *testing.T) {
	h := newHarness(t)
	h.clock.SetMinutes(100)

	restored, err := h.svc.Continue(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, "town", h.mgr.CurrentName())
	assert.Equal(t, "start", h.current().payload.Spawn)
	assert.InDelta(t, float64(clock.Morning), h.clock.Minutes(), 1e-9)
}

func TestRestoreUnknownSceneFallsBack(t *testing.T) {
	h := newHarness(t)
	snap := &Snapshot{Scene: "castle"}
	snap.SetSpawn("gate")

	require.NoError(t, h.svc.Restore(snap))
	assert.Equal(t, "town", h.mgr.CurrentName())
	assert.Equal(t, "start", h.current().payload.Spawn)
	assert.Equal(t, gamestate.DefaultCoins, h.state.Coins)
}

func TestSaveNamedAndLoad(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.svc.NewGame())
	h.state.AddCoins(40)

	slot, err := h.svc.SaveNamed(ctx, "Before harvest")
	require.NoError(t, err)

	h.state.Reset()
	require.NoError(t, h.svc.LoadAndRestore(ctx, slot.Ref))
	assert.Equal(t, 50, h.state.Coins)
}

func TestCaptureWithoutSceneFails(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Capture()
	assert.Error(t, err)
}
