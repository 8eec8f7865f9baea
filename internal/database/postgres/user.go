package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	u.user_id, u.username, u.email, u.password_hash, u.enabled, u.created_at,
	ARRAY(
		SELECT r.name FROM user_roles ur
		JOIN roles r ON r.role_id = ur.role_id
		WHERE ur.user_id = u.user_id
		ORDER BY r.name
	)`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Enabled, &u.CreatedAt, &u.Roles); err != nil {
		return nil, err
	}
	return &u, nil
}

// translateUserErr maps constraint violations on users to domain errors
func translateUserErr(msg string, err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case ConstraintUsersUsername:
			return domain.ErrUsernameTaken
		case ConstraintUsersEmail:
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, constraint)
	}
	return wrapErr(msg, err)
}

// CreateUser inserts the user and links every role in user.Roles, creating
// roles that do not exist yet. ID and CreatedAt are filled in on success.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO users (username, email, password_hash, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	err = tx.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Enabled, user.CreatedAt).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return translateUserErr(ErrMsgFailedToInsertUser, err)
	}

	for _, role := range user.Roles {
		if err := assignRole(ctx, tx, user.ID, role); err != nil {
			return err
		}
	}

	return commit(ctx, tx)
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE ` + where
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// GetUserByID loads a user with roles
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getUser(ctx, "u.user_id = $1", id)
}

// GetUserByUsername loads a user by exact username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, "u.username = $1", username)
}

// GetUserByEmail loads a user by email, ignoring case
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "LOWER(u.email) = LOWER($1)", email)
}

// ExistsByUsername reports whether the username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username)
}

// ExistsByEmail reports whether the email is taken, ignoring case
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))", email)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, wrapErr(ErrMsgFailedToCheckExists, err)
	}
	return found, nil
}

// ListUsers returns every user ordered by id
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users u ORDER BY u.user_id`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListUsers, err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToListUsers, err)
		}
		users = append(users, *u)
	}
	return users, wrapErr(ErrMsgFailedToListUsers, rows.Err())
}

// UpdateUser overwrites username, email, password hash and enabled flag
func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, enabled = $4
		WHERE user_id = $5
	`
	tag, err := r.db.Exec(ctx, query, user.Username, user.Email, user.PasswordHash, user.Enabled, user.ID)
	if err != nil {
		return translateUserErr(ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the user together with every character it owns and
// their dependents in one transaction.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	steps := []string{
		`DELETE FROM inventory_items WHERE character_id IN (SELECT character_id FROM characters WHERE user_id = $1)`,
		`DELETE FROM character_skills WHERE character_id IN (SELECT character_id FROM characters WHERE user_id = $1)`,
		`DELETE FROM characters WHERE user_id = $1`,
		`DELETE FROM user_roles WHERE user_id = $1`,
		`DELETE FROM sessions WHERE user_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			return wrapErr(ErrMsgFailedToDeleteUser, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return wrapErr(ErrMsgFailedToDeleteUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return commit(ctx, tx)
}

// GetOrCreateRole returns the id of the named role, inserting it if missing
func (r *UserRepository) GetOrCreateRole(ctx context.Context, name string) (int64, error) {
	return getOrCreateRole(ctx, r.db, name)
}

// AssignRole grants a role to a user; granting twice is a no-op
func (r *UserRepository) AssignRole(ctx context.Context, userID int64, role string) error {
	return assignRole(ctx, r.db, userID, role)
}

func getOrCreateRole(ctx context.Context, q querier, name string) (int64, error) {
	query := `
		INSERT INTO roles (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING role_id
	`
	var id int64
	if err := q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, wrapErr(ErrMsgFailedToUpsertRole, err)
	}
	return id, nil
}

func assignRole(ctx context.Context, q querier, userID int64, role string) error {
	roleID, err := getOrCreateRole(ctx, q, role)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx,
		`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, roleID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return wrapErr(ErrMsgFailedToAssignRole, err)
	}
	return nil
}
