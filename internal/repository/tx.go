package repository

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// CharacterTx groups the writes of a character creation so the character row,
// its skill links and its inventory commit or roll back together.
type CharacterTx interface {
	Tx
	InsertCharacter(ctx context.Context, character *domain.Character) error
	InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error
}
