package save

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// autosaveID is the fixed row id of the autosave slot.
const autosaveID = "autosave"

// SQLiteStore keeps saves as JSON rows in a SQLite database.
type SQLiteStore struct {
	sqlDB *sql.DB
	log   *slog.Logger
	now   func() time.Time
}

// OpenSQLite opens (and if needed creates) a SQLite store at path.
func OpenSQLite(path string, log *slog.Logger) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if log == nil {
		log = slog.Default()
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB, log: log, now: time.Now}, nil
}

// Close closes the underlying SQLite database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) put(ctx context.Context, id, name string, autosave bool, createdAt string, snap *Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	flag := 0
	if autosave {
		flag = 1
	}
	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO saves (id, name, is_autosave, created_at, updated_at, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			data = excluded.data`,
		id, name, flag, createdAt, s.now().UnixMilli(), string(data))
	if err != nil {
		return fmt.Errorf("put save %s: %w", id, err)
	}
	return nil
}

// WriteAutosave implements Store.
func (s *SQLiteStore) WriteAutosave(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.put(ctx, autosaveID, "Autosave", true, s.now().Format(TimeLayout), snap)
}

// LoadAutosave implements Store.
func (s *SQLiteStore) LoadAutosave(ctx context.Context) (*Snapshot, error) {
	snap, err := s.Load(ctx, autosaveID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return snap, err
}

// DeleteAutosave implements Store.
func (s *SQLiteStore) DeleteAutosave(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, autosaveID); err != nil {
		return fmt.Errorf("delete autosave: %w", err)
	}
	return nil
}

// WriteNamed implements Store.
func (s *SQLiteStore) WriteNamed(ctx context.Context, name string, snap *Snapshot) (Slot, error) {
	if err := ctx.Err(); err != nil {
		return Slot{}, err
	}
	now := s.now()
	rec := *snap
	rec.Name = DisplayName(name)
	rec.CreatedAt = now.Format(TimeLayout)
	rec.ID = uuid.NewString()

	if err := s.put(ctx, rec.ID, rec.Name, false, rec.CreatedAt, &rec); err != nil {
		return Slot{}, err
	}
	s.log.Info("named save written", "id", rec.ID, "name", rec.Name)
	return Slot{Ref: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, ModTime: time.UnixMilli(now.UnixMilli())}, nil
}

// Load implements Store. ref is a row id.
func (s *SQLiteStore) Load(ctx context.Context, ref string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM saves WHERE id = ?`, ref).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("load save %s: %w", ref, err)
	}
	snap, err := Decode([]byte(data))
	if err != nil {
		s.log.Warn("ignoring unreadable save", "id", ref, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, ref, err)
	}
	return snap, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at, is_autosave
		FROM saves
		ORDER BY updated_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var (
			slot      Slot
			updatedAt int64
		)
		if err := rows.Scan(&slot.Ref, &slot.Name, &slot.CreatedAt, &updatedAt, &slot.IsAutosave); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		slot.ModTime = time.UnixMilli(updatedAt)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saves: %w", err)
	}
	return slots, nil
}

// HasAny implements Store.
func (s *SQLiteStore) HasAny(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves`).Scan(&n); err != nil {
		return false, fmt.Errorf("count saves: %w", err)
	}
	return n > 0, nil
}

var _ Store = (*SQLiteStore)(nil)
