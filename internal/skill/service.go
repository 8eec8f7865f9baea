package skill

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// Service defines the interface for skill operations
type Service interface {
	CreateSkill(ctx context.Context, skill domain.Skill) (*domain.Skill, error)
	GetSkill(ctx context.Context, id int64) (*domain.Skill, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	// AddSkillToCharacter appends the skill to the character's skill list
	// without a duplicate or class check and returns the updated character
	AddSkillToCharacter(ctx context.Context, characterID, skillID int64) (*domain.Character, error)
}

type service struct {
	skills     repository.Skill
	classes    repository.RPGClass
	characters repository.Character
}

// NewService creates a new skill service
func NewService(skills repository.Skill, classes repository.RPGClass, characters repository.Character) Service {
	return &service{
		skills:     skills,
		classes:    classes,
		characters: characters,
	}
}

func (s *service) CreateSkill(ctx context.Context, skill domain.Skill) (*domain.Skill, error) {
	log := logger.FromContext(ctx)

	skill.Name = strings.TrimSpace(skill.Name)
	skill.Description = strings.TrimSpace(skill.Description)
	if skill.Name == "" {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgSkillNameRequired)
	}
	if skill.ClassID <= 0 {
		return nil, domain.Wrapf(domain.ErrInvalidArgument, ErrMsgClassRequired)
	}
	if _, err := s.classes.GetClassByID(ctx, skill.ClassID); err != nil {
		return nil, err
	}

	if err := s.skills.CreateSkill(ctx, &skill); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error(LogErrFailedToSave, "error", err, "name", skill.Name)
		}
		return nil, err
	}
	log.Info(LogMsgSkillCreated, "skill_id", skill.ID, "class_id", skill.ClassID)
	return &skill, nil
}

func (s *service) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	return s.skills.GetSkillByID(ctx, id)
}

func (s *service) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.ListSkills(ctx)
}

func (s *service) ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error) {
	return s.skills.ListSkillsByClass(ctx, classID)
}

func (s *service) DeleteSkill(ctx context.Context, id int64) error {
	if err := s.skills.DeleteSkill(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSkillDeleted, "skill_id", id)
	return nil
}

func (s *service) AddSkillToCharacter(ctx context.Context, characterID, skillID int64) (*domain.Character, error) {
	if _, err := s.characters.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}
	if _, err := s.skills.GetSkillByID(ctx, skillID); err != nil {
		return nil, err
	}
	if err := s.skills.AppendCharacterSkill(ctx, characterID, skillID); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgSkillAttached, "character_id", characterID, "skill_id", skillID)
	return s.characters.GetCharacterByID(ctx, characterID)
}
