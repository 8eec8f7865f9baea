package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// SkillRepository implements the skill repository for PostgreSQL
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

func insertSkill(ctx context.Context, q querier, skill *domain.Skill) error {
	err := q.QueryRow(ctx,
		`INSERT INTO skills (name, description, class_id) VALUES ($1, $2, $3) RETURNING skill_id`,
		skill.Name, skill.Description, skill.ClassID).Scan(&skill.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrClassNotFound, skill.ClassID)
		}
		return wrapErr(ErrMsgFailedToInsertSkill, err)
	}
	return nil
}

// listSkills runs a skills query with an optional WHERE clause, ordered by class then id
func listSkills(ctx context.Context, q querier, where string, args ...any) ([]domain.Skill, error) {
	rows, err := q.Query(ctx, `
		SELECT skill_id, name, description, class_id
		FROM skills `+where+`
		ORDER BY class_id, skill_id`, args...)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListSkills, err)
	}

	skills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Skill, error) {
		var s domain.Skill
		err := row.Scan(&s.ID, &s.Name, &s.Description, &s.ClassID)
		return s, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListSkills, err)
	}
	return skills, nil
}

// CreateSkill inserts a skill under its class
func (r *SkillRepository) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	return insertSkill(ctx, r.db, skill)
}

// GetSkillByID loads a single skill
func (r *SkillRepository) GetSkillByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(ctx,
		`SELECT skill_id, name, description, class_id FROM skills WHERE skill_id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.ClassID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetSkill, err)
	}
	return &s, nil
}

// ListSkills returns every skill
func (r *SkillRepository) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return listSkills(ctx, r.db, ``)
}

// ListSkillsByClass returns the skills offered by one class
func (r *SkillRepository) ListSkillsByClass(ctx context.Context, classID int64) ([]domain.Skill, error) {
	return listSkills(ctx, r.db, `WHERE class_id = $1`, classID)
}

// DeleteSkill removes a skill and unlinks it from every character that selected it
func (r *SkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM character_skills WHERE skill_id = $1`, id); err != nil {
		return wrapErr(ErrMsgFailedToDeleteSkill, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM skills WHERE skill_id = $1`, id)
	if err != nil {
		return wrapErr(ErrMsgFailedToDeleteSkill, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSkillNotFound
	}
	return commit(ctx, tx)
}

// AppendCharacterSkill links a skill at the next position of the character's
// list. Concurrent appends race for the same position; the loser retries.
func (r *SkillRepository) AppendCharacterSkill(ctx context.Context, characterID, skillID int64) error {
	var err error
	for range AppendSkillAttempts {
		if err = appendCharacterSkill(ctx, r.db, characterID, skillID); !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return err
}

func appendCharacterSkill(ctx context.Context, q querier, characterID, skillID int64) error {
	query := `
		INSERT INTO character_skills (character_id, position, skill_id)
		SELECT $1::bigint, COALESCE(MAX(position) + 1, 0), $2::bigint
		FROM character_skills
		WHERE character_id = $1
	`
	if _, err := q.Exec(ctx, query, characterID, skillID); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: character %d or skill %d", domain.ErrNotFound, characterID, skillID)
		}
		if _, ok := uniqueViolation(err); ok {
			return domain.Wrapf(domain.ErrConflict, ErrMsgSkillPositionTaken, characterID)
		}
		return wrapErr(ErrMsgFailedToLinkSkill, err)
	}
	return nil
}
