package repository

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// RPGClass defines persistence for classes and their starting items.
// Loaded classes always carry their skills.
type RPGClass interface {
	CreateClass(ctx context.Context, class *domain.RPGClass) error
	GetClassByID(ctx context.Context, id int64) (*domain.RPGClass, error)
	GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error)
	ListClasses(ctx context.Context) ([]domain.RPGClass, error)
	UpdateClass(ctx context.Context, class *domain.RPGClass) error
	// UpdateClasses saves every class in one transaction; one failure
	// leaves all of them unchanged
	UpdateClasses(ctx context.Context, classes []*domain.RPGClass) error
	DeleteClass(ctx context.Context, id int64) error

	GetStartingItems(ctx context.Context, classID int64) ([]domain.StartingItem, error)
	AddStartingItem(ctx context.Context, item *domain.StartingItem) error
}
