package postgres

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func newTestUser(t *testing.T, pool *pgxpool.Pool, roles ...string) *domain.User {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	u := &domain.User{
		Username:     gofakeit.Username() + gofakeit.DigitN(4),
		Email:        gofakeit.Email(),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Roles:        roles,
		Enabled:      true,
	}
	require.NoError(t, NewUserRepository(pool).CreateUser(context.Background(), u))
	return u
}

func newTestClass(t *testing.T, pool *pgxpool.Pool, name string) *domain.RPGClass {
	t.Helper()
	c := &domain.RPGClass{
		Name:        name,
		Description: "A test class",
		Stats:       domain.Stats{Strength: 3, Dexterity: 2, Intelligence: 1, Constitution: 4, Wisdom: 1, Charisma: 2},
		Role:        domain.ClassRoleMelee,
		ArmorType:   domain.ArmorPlate,
		Weapons:     []string{"Sword", "Axe"},
		Skills: []domain.Skill{
			{Name: "Slash", Description: "A wide cut"},
			{Name: "Parry", Description: "Deflect a blow"},
			{Name: "Charge", Description: "Rush forward"},
			{Name: "Taunt", Description: "Draw attention"},
		},
	}
	require.NoError(t, NewClassRepository(pool).CreateClass(context.Background(), c))
	return c
}

func newTestCharacter(t *testing.T, pool *pgxpool.Pool, owner *domain.User, class *domain.RPGClass, name string) *domain.Character {
	t.Helper()
	ctx := context.Background()
	c := &domain.Character{
		Name:       name,
		Background: "Raised by wolves",
		Level:      domain.StartingLevel,
		Stats:      domain.Stats{Strength: 4, Dexterity: 3},
		UserID:     owner.ID,
		ClassID:    class.ID,
		SkillIDs:   []int64{class.Skills[0].ID, class.Skills[1].ID, class.Skills[2].ID},
	}

	tx, err := NewCharacterRepository(pool).BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacter(ctx, c))
	require.NoError(t, tx.InsertInventoryItem(ctx, &domain.InventoryItem{Name: "Rope", Description: "Fifty feet", CharacterID: c.ID}))
	require.NoError(t, tx.Commit(ctx))
	return c
}
