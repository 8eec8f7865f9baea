package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// characterTx binds character writes to one pgx transaction
type characterTx struct {
	tx pgx.Tx
}

// BeginTx starts a transaction for a multi-step character write
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &characterTx{tx: tx}, nil
}

func (t *characterTx) Commit(ctx context.Context) error {
	return commit(ctx, t.tx)
}

func (t *characterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// InsertCharacter writes the character row and its skill links in order
func (t *characterTx) InsertCharacter(ctx context.Context, c *domain.Character) error {
	query := `
		INSERT INTO characters (name, background, level,
			strength, dexterity, intelligence, constitution, wisdom, charisma,
			user_id, class_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING character_id
	`
	err := t.tx.QueryRow(ctx, query, c.Name, c.Background, c.Level,
		c.Strength, c.Dexterity, c.Intelligence, c.Constitution, c.Wisdom, c.Charisma,
		c.UserID, c.ClassID).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %d or class %d", domain.ErrNotFound, c.UserID, c.ClassID)
		}
		return wrapErr(ErrMsgFailedToInsertCharacter, err)
	}

	return insertSkillLinks(ctx, t.tx, c.ID, c.SkillIDs)
}

// InsertInventoryItem writes one owned item
func (t *characterTx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	return insertInventoryItem(ctx, t.tx, item)
}

func insertSkillLinks(ctx context.Context, q querier, characterID int64, skillIDs []int64) error {
	for pos, skillID := range skillIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO character_skills (character_id, position, skill_id) VALUES ($1, $2, $3)`,
			characterID, pos, skillID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: id %d", domain.ErrSkillNotFound, skillID)
			}
			return wrapErr(ErrMsgFailedToLinkSkill, err)
		}
	}
	return nil
}

func insertInventoryItem(ctx context.Context, q querier, item *domain.InventoryItem) error {
	err := q.QueryRow(ctx,
		`INSERT INTO inventory_items (name, description, character_id) VALUES ($1, $2, $3) RETURNING item_id`,
		item.Name, item.Description, item.CharacterID).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrCharacterNotFound, item.CharacterID)
		}
		return wrapErr(ErrMsgFailedToInsertItem, err)
	}
	return nil
}

// GetCharacterByID loads the character row and its ordered skill ids
func (r *CharacterRepository) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	query := `
		SELECT character_id, name, background, level,
			strength, dexterity, intelligence, constitution, wisdom, charisma,
			user_id, class_id,
			ARRAY(SELECT skill_id FROM character_skills cs WHERE cs.character_id = c.character_id ORDER BY position)
		FROM characters c
		WHERE character_id = $1
	`
	var c domain.Character
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Background, &c.Level,
		&c.Strength, &c.Dexterity, &c.Intelligence, &c.Constitution, &c.Wisdom, &c.Charisma,
		&c.UserID, &c.ClassID, &c.SkillIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetCharacter, err)
	}
	return &c, nil
}

// UpdateCharacter overwrites the character row. With replaceSkills the skill
// links are cleared and rewritten from character.SkillIDs.
func (r *CharacterRepository) UpdateCharacter(ctx context.Context, c *domain.Character, replaceSkills bool) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	query := `
		UPDATE characters
		SET name = $1, background = $2, level = $3,
			strength = $4, dexterity = $5, intelligence = $6,
			constitution = $7, wisdom = $8, charisma = $9,
			class_id = $10
		WHERE character_id = $11
	`
	tag, err := tx.Exec(ctx, query, c.Name, c.Background, c.Level,
		c.Strength, c.Dexterity, c.Intelligence, c.Constitution, c.Wisdom, c.Charisma,
		c.ClassID, c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrClassNotFound, c.ClassID)
		}
		return wrapErr(ErrMsgFailedToUpdateCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}

	if replaceSkills {
		if _, err := tx.Exec(ctx, `DELETE FROM character_skills WHERE character_id = $1`, c.ID); err != nil {
			return wrapErr(ErrMsgFailedToUpdateCharacter, err)
		}
		if err := insertSkillLinks(ctx, tx, c.ID, c.SkillIDs); err != nil {
			return err
		}
	}

	return commit(ctx, tx)
}

// DeleteCharacter removes inventory, skill links and the character in one transaction
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, id int64) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_items WHERE character_id = $1`, id); err != nil {
		return wrapErr(ErrMsgFailedToDeleteCharacter, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM character_skills WHERE character_id = $1`, id); err != nil {
		return wrapErr(ErrMsgFailedToDeleteCharacter, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, id)
	if err != nil {
		return wrapErr(ErrMsgFailedToDeleteCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}

	return commit(ctx, tx)
}

// detailSelect is the read-side projection joining class, owner, skills and inventory
const detailSelect = `
	SELECT c.character_id, c.name, c.background, c.level,
		c.strength, c.dexterity, c.intelligence, c.constitution, c.wisdom, c.charisma,
		c.user_id,
		COALESCE(u.username, '` + domain.UnknownUsername + `'),
		COALESCE(rc.name, ''), COALESCE(rc.role, ''), COALESCE(rc.armor_type, ''),
		COALESCE(rc.weapons, '{}'),
		ARRAY(
			SELECT s.name FROM character_skills cs
			JOIN skills s ON s.skill_id = cs.skill_id
			WHERE cs.character_id = c.character_id
			ORDER BY cs.position
		),
		ARRAY(
			SELECT i.name FROM inventory_items i
			WHERE i.character_id = c.character_id
			ORDER BY i.item_id
		)
	FROM characters c
	LEFT JOIN users u ON u.user_id = c.user_id
	LEFT JOIN rpg_classes rc ON rc.class_id = c.class_id
`

// nameFilter matches a case-insensitive substring of the character name
const nameFilter = `STRPOS(LOWER(c.name), LOWER($1)) > 0`

func scanDetail(row pgx.Row) (domain.CharacterDetail, error) {
	var (
		d     domain.CharacterDetail
		role  string
		armor string
	)
	err := row.Scan(&d.ID, &d.Name, &d.Background, &d.Level,
		&d.Strength, &d.Dexterity, &d.Intelligence, &d.Constitution, &d.Wisdom, &d.Charisma,
		&d.UserID, &d.Username, &d.ClassName, &role, &armor, &d.Weapons, &d.Skills, &d.Inventory)
	d.Role = domain.ClassRole(role)
	d.ArmorType = domain.ArmorType(armor)
	return d, err
}

func (r *CharacterRepository) queryDetails(ctx context.Context, tail string, args ...any) ([]domain.CharacterDetail, error) {
	rows, err := r.db.Query(ctx, detailSelect+tail, args...)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCharacters, err)
	}
	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CharacterDetail, error) {
		return scanDetail(row)
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListCharacters, err)
	}
	return details, nil
}

// GetCharacterDetail returns the projection of one character
func (r *CharacterRepository) GetCharacterDetail(ctx context.Context, id int64) (*domain.CharacterDetail, error) {
	details, err := r.queryDetails(ctx, `WHERE c.character_id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, domain.ErrCharacterNotFound
	}
	return &details[0], nil
}

// ListCharacterDetails returns every character, ordered by id
func (r *CharacterRepository) ListCharacterDetails(ctx context.Context) ([]domain.CharacterDetail, error) {
	return r.queryDetails(ctx, `ORDER BY c.character_id`)
}

// ListCharacterDetailsByUser returns the characters owned by one user
func (r *CharacterRepository) ListCharacterDetailsByUser(ctx context.Context, userID int64) ([]domain.CharacterDetail, error) {
	return r.queryDetails(ctx, `WHERE c.user_id = $1 ORDER BY c.character_id`, userID)
}

// SearchCharacterDetails returns characters whose name contains the term, ignoring case
func (r *CharacterRepository) SearchCharacterDetails(ctx context.Context, name string) ([]domain.CharacterDetail, error) {
	return r.queryDetails(ctx, `WHERE `+nameFilter+` ORDER BY c.character_id`, name)
}

// PageCharacterDetails returns one page of characters matching name (all when
// empty) and the total number of matches
func (r *CharacterRepository) PageCharacterDetails(ctx context.Context, name string, page domain.PageRequest) ([]domain.CharacterDetail, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM characters c WHERE `+nameFilter, name).Scan(&total); err != nil {
		return nil, 0, wrapErr(ErrMsgFailedToCountCharacters, err)
	}

	details, err := r.queryDetails(ctx,
		`WHERE `+nameFilter+` ORDER BY c.character_id LIMIT $2 OFFSET $3`,
		name, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// AddInventoryItem attaches an item to an existing character
func (r *CharacterRepository) AddInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	return insertInventoryItem(ctx, r.db, item)
}

// ListInventory returns a character's items in insertion order
func (r *CharacterRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, description, character_id
		FROM inventory_items
		WHERE character_id = $1
		ORDER BY item_id`, characterID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListInventory, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryItem, error) {
		var it domain.InventoryItem
		err := row.Scan(&it.ID, &it.Name, &it.Description, &it.CharacterID)
		return it, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListInventory, err)
	}
	return items, nil
}
