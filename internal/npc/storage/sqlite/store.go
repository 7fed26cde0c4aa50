// Package sqlite provides the SQLite-backed NPC store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/rpgassist/internal/npc"
	"github.com/louisbranch/rpgassist/internal/npc/storage"
	"github.com/louisbranch/rpgassist/internal/npc/storage/sqlite/migrations"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
	"github.com/louisbranch/rpgassist/internal/platform/storage/sqlitemigrate"
)

// Store provides SQLite-backed NPC persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens an NPC SQLite store and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put inserts or replaces one NPC.
func (s *Store) Put(ctx context.Context, record npc.NPC) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("npc id is required")
	}
	if record.CreatedAt.IsZero() {
		return fmt.Errorf("created at is required")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode npc: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO npcs (
	id,
	template,
	name,
	gender,
	payload,
	created_at
) VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	template = excluded.template,
	name = excluded.name,
	gender = excluded.gender,
	payload = excluded.payload,
	created_at = excluded.created_at
`,
		record.ID,
		record.Template,
		record.Name,
		record.Gender.String(),
		string(payload),
		record.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put npc: %w", err)
	}
	return nil
}

// Get returns one NPC by id.
func (s *Store) Get(ctx context.Context, id string) (npc.NPC, error) {
	if err := ctx.Err(); err != nil {
		return npc.NPC{}, err
	}
	if s == nil || s.sqlDB == nil {
		return npc.NPC{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return npc.NPC{}, fmt.Errorf("npc id is required")
	}

	var payload string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT payload FROM npcs WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return npc.NPC{}, apperrors.WithMetadata(apperrors.CodeNotFound, fmt.Sprintf("npc %q not found", id), map[string]string{"id": id})
	}
	if err != nil {
		return npc.NPC{}, fmt.Errorf("get npc: %w", err)
	}
	return decode(payload)
}

// List returns newest-first NPC records.
func (s *Store) List(ctx context.Context, limit int) ([]npc.NPC, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT payload
FROM npcs
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	defer rows.Close()

	records := make([]npc.NPC, 0, limit)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan npc: %w", err)
		}
		record, err := decode(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate npcs: %w", err)
	}
	return records, nil
}

func decode(payload string) (npc.NPC, error) {
	var record npc.NPC
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return npc.NPC{}, fmt.Errorf("decode npc: %w", err)
	}
	return record, nil
}

var _ storage.NPCStore = (*Store)(nil)
