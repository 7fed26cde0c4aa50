// Package storage defines persistence for generated NPCs.
package storage

import (
	"context"

	"github.com/louisbranch/rpgassist/internal/npc"
)

// NPCStore persists generated NPC records.
type NPCStore interface {
	// Put inserts or replaces the record with the same id.
	Put(ctx context.Context, record npc.NPC) error
	// Get returns the record or a NOT_FOUND error.
	Get(ctx context.Context, id string) (npc.NPC, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]npc.NPC, error)
}
