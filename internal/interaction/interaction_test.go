package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/homestead/internal/core/events"
	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/input"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag     string
		want    Kind
		wantErr bool
	}{
		{"door.home", KindDoorHome, false},
		{"npc.elder", KindNPCElder, false},
		{"bed.sleep", KindBedSleep, false},
		{"sign.welcome", Kind("sign.welcome"), false},
		{"sign.", "", true},
		{"door.cellar", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseKind(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindFamily(t *testing.T) {
	assert.True(t, KindDoorShop.IsDoor())
	assert.False(t, KindNPCShopkeeper.IsDoor())
	assert.True(t, Kind("sign.farm").IsSign())
	assert.Equal(t, "npc", KindNPCElder.Family())
}

func TestActionValidate(t *testing.T) {
	assert.NoError(t, (&Action{Type: ActionSceneChange, Target: "town"}).Validate())
	assert.Error(t, (&Action{Type: ActionSceneChange}).Validate())
	assert.Error(t, (&Action{}).Validate())
	assert.Error(t, (&Action{Type: "teleport", Target: "x"}).Validate())
}

func TestClosestPicksNearest(t *testing.T) {
	player := geom.RectAround(geom.Point{X: 100, Y: 100}, 16, 16)
	far := Entity{Rect: geom.RectAround(geom.Point{X: 140, Y: 100}, 16, 16), Prompt: "far"}
	near := Entity{Rect: geom.RectAround(geom.Point{X: 110, Y: 100}, 16, 16), Prompt: "near"}

	got, ok := Closest(player, []Entity{far, near}, DefaultRadius)
	require.True(t, ok)
	assert.Equal(t, "near", got.Prompt)
}

func TestClosestTieKeepsFirst(t *testing.T) {
	player := geom.RectAround(geom.Point{X: 100, Y: 100}, 16, 16)
	left := Entity{Rect: geom.RectAround(geom.Point{X: 80, Y: 100}, 16, 16), Prompt: "left"}
	right := Entity{Rect: geom.RectAround(geom.Point{X: 120, Y: 100}, 16, 16), Prompt: "right"}

	got, ok := Closest(player, []Entity{left, right}, DefaultRadius)
	require.True(t, ok)
	assert.Equal(t, "left", got.Prompt)

	got, ok = Closest(player, []Entity{right, left}, DefaultRadius)
	require.True(t, ok)
	assert.Equal(t, "right", got.Prompt)
}

func TestClosestRadiusBoundary(t *testing.T) {
	player := geom.RectAround(geom.Point{X: 0, Y: 0}, 16, 16)
	at := func(x float64) []Entity {
		return []Entity{{Rect: geom.RectAround(geom.Point{X: x, Y: 0}, 16, 16)}}
	}

	_, ok := Closest(player, at(48), DefaultRadius)
	assert.True(t, ok, "exactly at radius is in reach")
	_, ok = Closest(player, at(48.9), DefaultRadius)
	assert.True(t, ok)
	_, ok = Closest(player, at(49), DefaultRadius)
	assert.False(t, ok, "radius+1 is excluded")
	_, ok = Closest(player, []Entity{}, DefaultRadius)
	assert.False(t, ok)
}

func TestResolvePublishesSceneChange(t *testing.T) {
	bus := events.NewBus()
	var got []events.SceneChange
	bus.OnSceneChange(func(e events.SceneChange) { got = append(got, e) })

	r := NewResolver(bus, 0)
	player := geom.RectAround(geom.Point{X: 50, Y: 50}, 16, 16)
	door := Entity{
		Rect:   geom.RectAround(geom.Point{X: 60, Y: 50}, 16, 16),
		Kind:   KindDoorHome,
		Prompt: "Enter home",
		Action: &Action{Type: ActionSceneChange, Target: "home_interior", Spawn: "door_in"},
	}

	var idle input.Actions
	res := r.Resolve(player, []Entity{door}, &idle)
	assert.Equal(t, "Enter home", res.Prompt)
	assert.False(t, res.Activated)
	assert.Empty(t, got)

	var pressed input.Actions
	pressed.Press(input.Interact)
	res = r.Resolve(player, []Entity{door}, &pressed)
	assert.True(t, res.Activated)
	require.Len(t, got, 1)
	assert.Equal(t, events.SceneChange{Target: "home_interior", Spawn: "door_in"}, got[0])
}

func TestResolveNPCLeavesActivationToCaller(t *testing.T) {
	bus := events.NewBus()
	published := 0
	bus.OnSceneChange(func(events.SceneChange) { published++ })

	r := NewResolver(bus, DefaultRadius)
	player := geom.RectAround(geom.Point{X: 50, Y: 50}, 16, 16)
	npc := Entity{Rect: geom.RectAround(geom.Point{X: 60, Y: 50}, 16, 16), Kind: KindNPCElder, Prompt: "Talk"}

	var pressed input.Actions
	pressed.Press(input.Interact)
	res := r.Resolve(player, []Entity{npc}, &pressed)

	assert.True(t, res.Activated)
	assert.Equal(t, KindNPCElder, res.Target.Kind)
	assert.Zero(t, published)
}

func TestResolveNothingInReach(t *testing.T) {
	r := NewResolver(nil, DefaultRadius)
	player := geom.RectAround(geom.Point{X: 0, Y: 0}, 16, 16)
	res := r.Resolve(player, nil, nil)
	assert.False(t, res.Found)
	assert.Empty(t, res.Prompt)
}
