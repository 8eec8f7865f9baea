package repository

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// Skill defines persistence for skills and character skill links
type Skill interface {
	CreateSkill(ctx context.Context, skill *domain.Skill) error
	GetSkillByID(ctx context.Context, id int64) (*domain.Skill, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	// AppendCharacterSkill adds a skill at the end of a character's skill list.
	// Duplicates are allowed.
	AppendCharacterSkill(ctx context.Context, characterID, skillID int64) error
}
