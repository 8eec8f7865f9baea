package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterCreator_Go/internal/database/postgres"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User      repository.User
	Class     repository.RPGClass
	Skill     repository.Skill
	Character repository.Character
	Session   repository.Session
}

// InitializeRepositories creates the Postgres repositories. Session is the
// Postgres store; NewSessionStore may replace it.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Class:     postgres.NewClassRepository(dbPool),
		Skill:     postgres.NewSkillRepository(dbPool),
		Character: postgres.NewCharacterRepository(dbPool),
		Session:   postgres.NewSessionRepository(dbPool),
	}
}
