package repository

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// Character defines persistence for characters, their skills and inventory
type Character interface {
	BeginTx(ctx context.Context) (CharacterTx, error)

	GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, character *domain.Character, replaceSkills bool) error
	DeleteCharacter(ctx context.Context, id int64) error

	// Read-side projections
	GetCharacterDetail(ctx context.Context, id int64) (*domain.CharacterDetail, error)
	ListCharacterDetails(ctx context.Context) ([]domain.CharacterDetail, error)
	ListCharacterDetailsByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error)
	SearchCharacterDetails(ctx context.Context, name string) ([]domain.CharacterDetail, error)
	PageCharacterDetails(ctx context.Context, name string, page domain.PageRequest) ([]domain.CharacterDetail, int64, error)

	AddInventoryItem(ctx context.Context, item *domain.InventoryItem) error
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
}
