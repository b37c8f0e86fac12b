package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/homestead/internal/core/geom"
	"chosenoffset.com/homestead/internal/interaction"
)

// ErrInvalidDocument is returned when a scene document is missing a required
// field or contains an unknown tag.
var ErrInvalidDocument = errors.New("invalid scene document")

// Collider is a static blocking rectangle.
type Collider struct {
	Rect geom.Rect
	Tag  string
}

// Trigger fires its action when the player overlaps it.
type Trigger struct {
	Rect    geom.Rect
	OnEnter interaction.Action
}

// PlotDef places a farm plot.
type PlotDef struct {
	ID   string
	Rect geom.Rect
}

// Spawn is a named player entry point.
type Spawn struct {
	Name string
	Pos  geom.Point
}

// Document is a parsed, validated scene file.
type Document struct {
	Name          string
	Bounds        geom.Rect
	Colliders     []Collider
	Interactables []interaction.Entity
	Triggers      []Trigger
	Spawns        []Spawn // in document order
	Plots         []PlotDef
	Roads         []geom.Rect
}

// Spawn looks up a spawn point by name.
func (d *Document) Spawn(name string) (geom.Point, bool) {
	for _, s := range d.Spawns {
		if s.Name == name {
			return s.Pos, true
		}
	}
	return geom.Point{}, false
}

// ColliderRects returns the collider rectangles.
func (d *Document) ColliderRects() []geom.Rect {
	rects := make([]geom.Rect, len(d.Colliders))
	for i, c := range d.Colliders {
		rects[i] = c.Rect
	}
	return rects
}

type rawDocument struct {
	Name      string    `json:"name"`
	Bounds    []float64 `json:"bounds"`
	Colliders []struct {
		Rect []float64 `json:"rect"`
		Tag  string    `json:"tag"`
	} `json:"colliders"`
	Interactables []struct {
		Rect   []float64           `json:"rect"`
		Tag    string              `json:"tag"`
		Prompt string              `json:"prompt"`
		Text   []string            `json:"text"`
		Action *interaction.Action `json:"action"`
	} `json:"interactables"`
	Triggers []struct {
		Rect    []float64           `json:"rect"`
		OnEnter *interaction.Action `json:"on_enter"`
	} `json:"triggers"`
	Spawns orderedSpawns `json:"spawns"`
	Plots  []struct {
		ID   string    `json:"id"`
		Rect []float64 `json:"rect"`
	} `json:"plots"`
	Roads []struct {
		Rect []float64 `json:"rect"`
	} `json:"roads"`
}

// orderedSpawns decodes the spawns object keeping key order, since the first
// spawn is the fallback entry point.
type orderedSpawns []Spawn

func (o *orderedSpawns) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spawns must be an object")
	}
	var out orderedSpawns
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)
		var pos []float64
		if err := dec.Decode(&pos); err != nil {
			return fmt.Errorf("spawn %q: %w", name, err)
		}
		if len(pos) < 2 {
			return fmt.Errorf("spawn %q: expected [x, y], got %d values", name, len(pos))
		}
		out = append(out, Spawn{Name: name, Pos: geom.Point{X: pos[0], Y: pos[1]}})
	}
	*o = out
	return nil
}

// ParseDocument parses and validates a scene document.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if raw.Bounds == nil {
		return nil, fmt.Errorf("%w: bounds is required", ErrInvalidDocument)
	}
	bounds, err := geom.RectFromSlice(raw.Bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: bounds: %v", ErrInvalidDocument, err)
	}
	if bounds.W <= 0 || bounds.H <= 0 {
		return nil, fmt.Errorf("%w: invalid bounds dimensions: %vx%v", ErrInvalidDocument, bounds.W, bounds.H)
	}
	if len(raw.Spawns) == 0 {
		return nil, fmt.Errorf("%w: at least one spawn is required", ErrInvalidDocument)
	}

	doc := &Document{
		Name:   raw.Name,
		Bounds: bounds,
		Spawns: raw.Spawns,
	}

	for i, c := range raw.Colliders {
		r, err := geom.RectFromSlice(c.Rect)
		if err != nil {
			return nil, fmt.Errorf("%w: collider %d: %v", ErrInvalidDocument, i, err)
		}
		doc.Colliders = append(doc.Colliders, Collider{Rect: r, Tag: c.Tag})
	}

	for i, it := range raw.Interactables {
		r, err := geom.RectFromSlice(it.Rect)
		if err != nil {
			return nil, fmt.Errorf("%w: interactable %d: %v", ErrInvalidDocument, i, err)
		}
		kind, err := interaction.ParseKind(it.Tag)
		if err != nil {
			return nil, fmt.Errorf("%w: interactable %d: %v", ErrInvalidDocument, i, err)
		}
		if it.Action != nil {
			if err := it.Action.Validate(); err != nil {
				return nil, fmt.Errorf("%w: interactable %d: %v", ErrInvalidDocument, i, err)
			}
		}
		doc.Interactables = append(doc.Interactables, interaction.Entity{
			Rect:   r,
			Kind:   kind,
			Prompt: it.Prompt,
			Lines:  it.Text,
			Action: it.Action,
		})
	}

	for i, t := range raw.Triggers {
		r, err := geom.RectFromSlice(t.Rect)
		if err != nil {
			return nil, fmt.Errorf("%w: trigger %d: %v", ErrInvalidDocument, i, err)
		}
		if t.OnEnter == nil {
			return nil, fmt.Errorf("%w: trigger %d: on_enter is required", ErrInvalidDocument, i)
		}
		if err := t.OnEnter.Validate(); err != nil {
			return nil, fmt.Errorf("%w: trigger %d: %v", ErrInvalidDocument, i, err)
		}
		doc.Triggers = append(doc.Triggers, Trigger{Rect: r, OnEnter: *t.OnEnter})
	}

	seen := make(map[string]bool, len(raw.Plots))
	for i, p := range raw.Plots {
		r, err := geom.RectFromSlice(p.Rect)
		if err != nil {
			return nil, fmt.Errorf("%w: plot %d: %v", ErrInvalidDocument, i, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: plot %d: id is required", ErrInvalidDocument, i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate plot id %q", ErrInvalidDocument, p.ID)
		}
		seen[p.ID] = true
		doc.Plots = append(doc.Plots, PlotDef{ID: p.ID, Rect: r})
	}

	for i, road := range raw.Roads {
		r, err := geom.RectFromSlice(road.Rect)
		if err != nil {
			return nil, fmt.Errorf("%w: road %d: %v", ErrInvalidDocument, i, err)
		}
		doc.Roads = append(doc.Roads, r)
	}

	return doc, nil
}

// LoadDocument reads and parses a scene document from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return doc, nil
}

// DocumentPath returns the conventional path of a named scene under dir.
func DocumentPath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}
