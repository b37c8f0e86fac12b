package save

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a save does not exist or cannot be read.
var ErrNotFound = errors.New("save not found")

// Slot describes one listed save.
type Slot struct {
	// Ref identifies the save to Load: a file path for FileStore, a row id
	// for SQLiteStore.
	Ref        string
	Name       string
	CreatedAt  string
	ModTime    time.Time
	IsAutosave bool
}

// Store is the persistence backend.
type Store interface {
	// WriteAutosave replaces the single autosave slot.
	WriteAutosave(ctx context.Context, s *Snapshot) error

	// LoadAutosave returns the autosave, or nil if there is none. A corrupt
	// autosave is reported as absent.
	LoadAutosave(ctx context.Context) (*Snapshot, error)

	// DeleteAutosave removes the autosave. Named saves are untouched.
	DeleteAutosave(ctx context.Context) error

	// WriteNamed stores a new named save stamped with name, created_at and id.
	WriteNamed(ctx context.Context, name string, s *Snapshot) (Slot, error)

	// Load reads a save by Slot.Ref.
	Load(ctx context.Context, ref string) (*Snapshot, error)

	// List returns every save, autosave included, newest first.
	List(ctx context.Context) ([]Slot, error)

	// HasAny reports whether List would return anything.
	HasAny(ctx context.Context) (bool, error)

	Close() error
}

const slugAllowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// Slugify turns a display name into a filename-safe fragment. Disallowed
// characters become dashes, runs of dashes collapse, and an empty result
// becomes "save".
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if strings.ContainsRune(slugAllowed, r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "save"
	}
	return slug
}

// DisplayName returns name, or "Save" when blank.
func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Save"
	}
	return name
}
