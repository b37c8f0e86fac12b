package save

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// File names under the store root.
const (
	AutosaveFile = "save_game.json"
	NamedDir     = "saves"
	fileLayout   = "20060102-150405"
)

// FileStore keeps the autosave as root/save_game.json and named saves as
// root/saves/<timestamp>_<slug>.json.
type FileStore struct {
	root string
	log  *slog.Logger
	now  func() time.Time
}

// NewFileStore creates a store rooted at dir. Directories are created on
// first write.
func NewFileStore(dir string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{root: dir, log: log, now: time.Now}
}

// AutosavePath returns the autosave file path.
func (f *FileStore) AutosavePath() string {
	return filepath.Join(f.root, AutosaveFile)
}

// NamedPath returns the named-save directory.
func (f *FileStore) NamedPath() string {
	return filepath.Join(f.root, NamedDir)
}

// WriteAutosave implements Store.
func (f *FileStore) WriteAutosave(ctx context.Context, s *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(f.root, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	return writeFile(f.AutosavePath(), s)
}

// LoadAutosave implements Store.
func (f *FileStore) LoadAutosave(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := readFile(f.AutosavePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		f.log.Warn("ignoring unreadable autosave", "path", f.AutosavePath(), "error", err)
		return nil, nil
	}
	return s, nil
}

// DeleteAutosave implements Store.
func (f *FileStore) DeleteAutosave(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(f.AutosavePath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete autosave: %w", err)
	}
	return nil
}

// WriteNamed implements Store.
func (f *FileStore) WriteNamed(ctx context.Context, name string, s *Snapshot) (Slot, error) {
	if err := ctx.Err(); err != nil {
		return Slot{}, err
	}
	if err := os.MkdirAll(f.NamedPath(), 0o755); err != nil {
		return Slot{}, fmt.Errorf("failed to create saves dir: %w", err)
	}

	now := f.now()
	rec := *s
	rec.Name = DisplayName(name)
	rec.CreatedAt = now.Format(TimeLayout)
	rec.ID = uuid.NewString()

	base := now.Format(fileLayout) + "_" + Slugify(rec.Name)
	path := filepath.Join(f.NamedPath(), base+".json")
	for i := 2; fileExists(path); i++ {
		path = filepath.Join(f.NamedPath(), fmt.Sprintf("%s-%d.json", base, i))
	}

	if err := writeFile(path, &rec); err != nil {
		return Slot{}, err
	}
	f.log.Info("named save written", "path", path, "name", rec.Name)
	return Slot{Ref: path, Name: rec.Name, CreatedAt: rec.CreatedAt, ModTime: now}, nil
}

// Load implements Store. ref is a path as returned in Slot.Ref.
func (f *FileStore) Load(ctx context.Context, ref string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := readFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, ref, err)
	}
	return s, nil
}

// List implements Store.
func (f *FileStore) List(ctx context.Context) ([]Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var slots []Slot
	entries, err := os.ReadDir(f.NamedPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		path := filepath.Join(f.NamedPath(), e.Name())
		slot, ok := describe(path, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		if ok {
			slots = append(slots, slot)
		}
	}

	if slot, ok := describe(f.AutosavePath(), "Autosave"); ok {
		slot.IsAutosave = true
		slots = append(slots, slot)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].ModTime.After(slots[j].ModTime)
	})
	return slots, nil
}

// HasAny implements Store.
func (f *FileStore) HasAny(ctx context.Context) (bool, error) {
	slots, err := f.List(ctx)
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}

// Close implements Store.
func (f *FileStore) Close() error { return nil }

// describe builds a listing entry. Unparseable files are still listed under
// fallbackName so the player can see them.
func describe(path, fallbackName string) (Slot, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return Slot{}, false
	}
	slot := Slot{Ref: path, Name: fallbackName, ModTime: info.ModTime()}
	if s, err := readFile(path); err == nil {
		if s.Name != "" {
			slot.Name = s.Name
		}
		slot.CreatedAt = s.CreatedAt
	}
	return slot, true
}

func readFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// writeFile writes through a temp file so a crash never leaves a torn save.
func writeFile(path string, s *Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ Store = (*FileStore)(nil)
