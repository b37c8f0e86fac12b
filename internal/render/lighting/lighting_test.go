package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/homestead/internal/core/geom"
)

func TestPhaseAt(t *testing.T) {
	tests := []struct {
		minutes float64
		want    Phase
	}{
		{8 * 60, Day},
		{17*60 + 59, Day},
		{18 * 60, Evening},
		{19*60 + 59, Evening},
		{20 * 60, Night},
		{2 * 60, Night},
		{6 * 60, Day},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseAt(tt.minutes), "minutes=%v", tt.minutes)
	}
}

func TestTintAndLights(t *testing.T) {
	m := NewManager()
	m.AddLight(LightSource{X: 10, Y: 10, Radius: 20, Intensity: 1})

	m.Update(9 * 60)
	_, ok := m.Tint()
	assert.False(t, ok)
	assert.Empty(t, m.ActiveLights())
	assert.False(t, m.IsPlayerLightOn())

	m.Update(18*60 + 30)
	tint, ok := m.Tint()
	assert.True(t, ok)
	assert.Equal(t, eveningTint, tint)
	assert.Len(t, m.ActiveLights(), 1, "lamps glow in the evening, lantern stays off")

	m.Update(23 * 60)
	m.UpdatePlayerLightPosition(geom.Point{X: 5, Y: 6})
	lights := m.ActiveLights()
	assert.Len(t, lights, 2)
	assert.Equal(t, 5.0, lights[0].X)
	assert.Equal(t, "night", m.Phase().String())

	m.ClearLights()
	assert.Len(t, m.ActiveLights(), 1)
}
