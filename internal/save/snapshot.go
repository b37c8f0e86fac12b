// Package save persists game sessions: a single autosave slot written on
// every scene change and on exit, plus any number of named saves.
package save

import (
	"encoding/json"
	"fmt"

	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/core/geom"
)

// TimeLayout is the created_at format (ISO-8601, second precision).
const TimeLayout = "2006-01-02T15:04:05"

// Snapshot is one save record. Spawn and PlayerPos are mutually exclusive
// entry points; a scene-change autosave carries the spawn, an exit save
// the exact position.
type Snapshot struct {
	Scene       string            `json:"scene"`
	Spawn       *string           `json:"spawn"`
	PlayerPos   []float64         `json:"player_pos"` // player rect center, not its top-left corner
	TimeMinutes *float64          `json:"time_minutes,omitempty"`
	GameState   *gamestate.Record `json:"game_state,omitempty"`
	Name        string            `json:"name,omitempty"`
	CreatedAt   string            `json:"created_at,omitempty"`
	ID          string            `json:"id,omitempty"`
}

// SpawnName returns the spawn or "".
func (s *Snapshot) SpawnName() string {
	if s.Spawn == nil {
		return ""
	}
	return *s.Spawn
}

// Position returns the saved player position, if any.
func (s *Snapshot) Position() (geom.Point, bool) {
	if len(s.PlayerPos) < 2 {
		return geom.Point{}, false
	}
	return geom.Point{X: s.PlayerPos[0], Y: s.PlayerPos[1]}, true
}

// SetSpawn records a named entry point and clears the position.
func (s *Snapshot) SetSpawn(name string) {
	s.Spawn = &name
	s.PlayerPos = nil
}

// SetPosition records an exact entry point and clears the spawn.
func (s *Snapshot) SetPosition(p geom.Point) {
	s.Spawn = nil
	s.PlayerPos = []float64{p.X, p.Y}
}

// Encode serializes the snapshot.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. A record without a scene is rejected.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	if s.Scene == "" {
		return nil, fmt.Errorf("failed to decode save: scene is required")
	}
	return &s, nil
}
