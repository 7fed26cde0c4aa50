package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/rpgassist/internal/domain/gender"
	"github.com/louisbranch/rpgassist/internal/domain/stat"
	"github.com/louisbranch/rpgassist/internal/npc"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

func TestPutAndGet(t *testing.T) {
	store := openTempStore(t)
	now := time.Date(2026, 2, 21, 23, 30, 0, 0, time.UTC)
	record := npc.NPC{
		ID:        "npc-1",
		Template:  "guard",
		Name:      "guard",
		Gender:    gender.Female,
		Stats:     stat.Sheet{stat.New(stat.Con, 14)},
		CreatedAt: now,
	}

	if err := store.Put(context.Background(), record); err != nil {
		t.Fatalf("put npc: %v", err)
	}
	got, err := store.Get(context.Background(), "npc-1")
	if err != nil {
		t.Fatalf("get npc: %v", err)
	}
	if got.Name != "guard" || got.Gender != gender.Female {
		t.Fatalf("got = %+v", got)
	}
	if len(got.Stats) != 1 || !got.Stats[0].Equal(stat.New(stat.Con, 14)) {
		t.Fatalf("stats = %v, want [Con 14]", got.Stats)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, now)
	}

	record.Name = "captain"
	if err := store.Put(context.Background(), record); err != nil {
		t.Fatalf("replace npc: %v", err)
	}
	got, err = store.Get(context.Background(), "npc-1")
	if err != nil {
		t.Fatalf("get replaced npc: %v", err)
	}
	if got.Name != "captain" {
		t.Fatalf("name = %q, want captain", got.Name)
	}
}

func TestGetMissing(t *testing.T) {
	store := openTempStore(t)
	_, err := store.Get(context.Background(), "nope")
	if code := apperrors.GetCode(err); code != apperrors.CodeNotFound {
		t.Fatalf("code = %s, want %s", code, apperrors.CodeNotFound)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openTempStore(t)
	base := time.Date(2026, 2, 21, 23, 30, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		if err := store.Put(context.Background(), npc.NPC{
			ID:        name,
			Name:      name,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	records, err := store.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list npcs: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records len = %d, want 2", len(records))
	}
	if records[0].Name != "third" || records[1].Name != "second" {
		t.Fatalf("order = %q, %q; want third, second", records[0].Name, records[1].Name)
	}

	if _, err := store.List(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

func TestPutValidation(t *testing.T) {
	store := openTempStore(t)
	if err := store.Put(context.Background(), npc.NPC{}); err == nil {
		t.Fatal("expected validation error for empty npc")
	}
	if err := store.Put(context.Background(), npc.NPC{ID: "x"}); err == nil {
		t.Fatal("expected validation error for missing timestamp")
	}
}

func TestCanceledContext(t *testing.T) {
	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.List(ctx, 1); err == nil {
		t.Fatal("expected canceled context error")
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npcs.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Put(context.Background(), npc.NPC{ID: "keep", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("put npc: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.Get(context.Background(), "keep"); err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "npcs.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
