package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// ClassRepository implements the RPG class repository for PostgreSQL
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `
	class_id, name, description,
	strength, dexterity, intelligence, constitution, wisdom, charisma,
	role, armor_type, weapons, starting_weapon`

func scanClass(row pgx.Row) (*domain.RPGClass, error) {
	var (
		c     domain.RPGClass
		role  string
		armor string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description,
		&c.Strength, &c.Dexterity, &c.Intelligence, &c.Constitution, &c.Wisdom, &c.Charisma,
		&role, &armor, &c.Weapons, &c.StartingWeapon)
	if err != nil {
		return nil, err
	}
	c.Role = domain.ClassRole(role)
	c.ArmorType = domain.ArmorType(armor)
	if c.Weapons == nil {
		c.Weapons = []string{}
	}
	c.Skills = []domain.Skill{}
	return &c, nil
}

func translateClassErr(msg string, err error) error {
	if constraint, ok := uniqueViolation(err); ok && constraint == ConstraintClassNameLower {
		return domain.ErrClassNameTaken
	}
	return wrapErr(msg, err)
}

func weaponsOrEmpty(w []string) []string {
	if w == nil {
		return []string{}
	}
	return w
}

// CreateClass inserts the class together with any skills it carries
func (r *ClassRepository) CreateClass(ctx context.Context, class *domain.RPGClass) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO rpg_classes (name, description,
			strength, dexterity, intelligence, constitution, wisdom, charisma,
			role, armor_type, weapons, starting_weapon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING class_id
	`
	err = tx.QueryRow(ctx, query, class.Name, class.Description,
		class.Strength, class.Dexterity, class.Intelligence, class.Constitution, class.Wisdom, class.Charisma,
		string(class.Role), string(class.ArmorType), weaponsOrEmpty(class.Weapons), class.StartingWeapon).
		Scan(&class.ID)
	if err != nil {
		return translateClassErr(ErrMsgFailedToInsertClass, err)
	}

	for i := range class.Skills {
		class.Skills[i].ClassID = class.ID
		if err := insertSkill(ctx, tx, &class.Skills[i]); err != nil {
			return err
		}
	}

	return commit(ctx, tx)
}

func (r *ClassRepository) getClass(ctx context.Context, where string, arg any) (*domain.RPGClass, error) {
	class, err := scanClass(r.db.QueryRow(ctx, `SELECT `+classColumns+` FROM rpg_classes WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetClass, err)
	}

	skills, err := listSkills(ctx, r.db, `WHERE class_id = $1`, class.ID)
	if err != nil {
		return nil, err
	}
	class.Skills = skills
	return class, nil
}

// GetClassByID loads a class with its skills
func (r *ClassRepository) GetClassByID(ctx context.Context, id int64) (*domain.RPGClass, error) {
	return r.getClass(ctx, "class_id = $1", id)
}

// GetClassByName loads a class by name, ignoring case
func (r *ClassRepository) GetClassByName(ctx context.Context, name string) (*domain.RPGClass, error) {
	return r.getClass(ctx, "LOWER(name) = LOWER($1)", name)
}

// ListClasses returns every class with its skills, ordered by id
func (r *ClassRepository) ListClasses(ctx context.Context) ([]domain.RPGClass, error) {
	rows, err := r.db.Query(ctx, `SELECT `+classColumns+` FROM rpg_classes ORDER BY class_id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListClasses, err)
	}
	defer rows.Close()

	classes := []domain.RPGClass{}
	index := map[int64]int{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToListClasses, err)
		}
		index[c.ID] = len(classes)
		classes = append(classes, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListClasses, err)
	}

	skills, err := listSkills(ctx, r.db, ``)
	if err != nil {
		return nil, err
	}
	for _, s := range skills {
		if i, ok := index[s.ClassID]; ok {
			classes[i].Skills = append(classes[i].Skills, s)
		}
	}
	return classes, nil
}

// UpdateClass overwrites every scalar column of the class. Skills are not touched.
func (r *ClassRepository) UpdateClass(ctx context.Context, class *domain.RPGClass) error {
	return updateClass(ctx, r.db, class)
}

// UpdateClasses applies UpdateClass to each class inside one transaction
func (r *ClassRepository) UpdateClasses(ctx context.Context, classes []*domain.RPGClass) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	for _, class := range classes {
		if err := updateClass(ctx, tx, class); err != nil {
			return fmt.Errorf("class %d: %w", class.ID, err)
		}
	}
	return commit(ctx, tx)
}

func updateClass(ctx context.Context, q querier, class *domain.RPGClass) error {
	query := `
		UPDATE rpg_classes
		SET name = $1, description = $2,
			strength = $3, dexterity = $4, intelligence = $5,
			constitution = $6, wisdom = $7, charisma = $8,
			role = $9, armor_type = $10, weapons = $11, starting_weapon = $12
		WHERE class_id = $13
	`
	tag, err := q.Exec(ctx, query, class.Name, class.Description,
		class.Strength, class.Dexterity, class.Intelligence, class.Constitution, class.Wisdom, class.Charisma,
		string(class.Role), string(class.ArmorType), weaponsOrEmpty(class.Weapons), class.StartingWeapon,
		class.ID)
	if err != nil {
		return translateClassErr(ErrMsgFailedToUpdateClass, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

// DeleteClass removes a class with its skills and starting items. It fails
// with domain.ErrClassInUse while any character is built on the class.
func (r *ClassRepository) DeleteClass(ctx context.Context, id int64) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	var inUse bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM characters WHERE class_id = $1)`, id).Scan(&inUse); err != nil {
		return wrapErr(ErrMsgFailedToDeleteClass, err)
	}
	if inUse {
		return domain.ErrClassInUse
	}

	steps := []string{
		`DELETE FROM character_skills WHERE skill_id IN (SELECT skill_id FROM skills WHERE class_id = $1)`,
		`DELETE FROM skills WHERE class_id = $1`,
		`DELETE FROM starting_items WHERE class_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			return wrapErr(ErrMsgFailedToDeleteClass, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM rpg_classes WHERE class_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClassInUse
		}
		return wrapErr(ErrMsgFailedToDeleteClass, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClassNotFound
	}

	return commit(ctx, tx)
}

// GetStartingItems returns the item templates of a class in insertion order
func (r *ClassRepository) GetStartingItems(ctx context.Context, classID int64) ([]domain.StartingItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT starting_item_id, name, description, class_id
		FROM starting_items
		WHERE class_id = $1
		ORDER BY starting_item_id`, classID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetStartingItems, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StartingItem, error) {
		var it domain.StartingItem
		err := row.Scan(&it.ID, &it.Name, &it.Description, &it.ClassID)
		return it, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetStartingItems, err)
	}
	return items, nil
}

// AddStartingItem inserts an item template for a class
func (r *ClassRepository) AddStartingItem(ctx context.Context, item *domain.StartingItem) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO starting_items (name, description, class_id) VALUES ($1, $2, $3) RETURNING starting_item_id`,
		item.Name, item.Description, item.ClassID).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrClassNotFound, item.ClassID)
		}
		return wrapErr(ErrMsgFailedToInsertStartingItem, err)
	}
	return nil
}
