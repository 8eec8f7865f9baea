package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Capped(t *testing.T) {
	tests := []struct {
		name     string
		input    Stats
		expected Stats
	}{
		{"all above cap", Stats{99, 6, 7, 8, 9, 10}, Stats{5, 5, 5, 5, 5, 5}},
		{"within cap untouched", Stats{1, 2, 3, 4, 5, 0}, Stats{1, 2, 3, 4, 5, 0}},
		{"negative kept", Stats{-3, 5, 5, 5, 5, 5}, Stats{-3, 5, 5, 5, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Capped())
		})
	}
}

func TestParseClassRole(t *testing.T) {
	tests := []struct {
		input   string
		want    ClassRole
		wantErr bool
	}{
		{"Tank", ClassRoleTank, false},
		{"  HEALER ", ClassRoleHealer, false},
		{"ranged", ClassRoleRanged, false},
		{"", ClassRoleNone, false},
		{"bard", ClassRoleNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClassRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArmorType(t *testing.T) {
	assert.Equal(t, ArmorPlate, ParseArmorType(" Plate"))
	assert.Equal(t, ArmorType("chainmail"), ParseArmorType("ChainMail"))
	assert.Equal(t, ArmorNone, ParseArmorType(""))
}

func TestErrorCategories(t *testing.T) {
	assert.True(t, errors.Is(ErrCharacterNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrEmailTaken, ErrAlreadyExists))
	assert.True(t, errors.Is(ErrClassInUse, ErrConflict))
	assert.True(t, errors.Is(ErrSkillCount, ErrInvalidArgument))

	err := NewSkillNotInClassError(999, "warrior")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "999")
	assert.Contains(t, err.Error(), "warrior")

	err = Wrapf(ErrUserNotFound, "id %d", 7)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "id 7")
}

func TestPrincipal_CanActFor(t *testing.T) {
	owner := Principal{UserID: 1, Roles: []string{RoleUser}}
	admin := Principal{UserID: 2, Roles: []string{RoleUser, RoleAdmin}}

	assert.True(t, owner.CanActFor(1))
	assert.False(t, owner.CanActFor(3))
	assert.True(t, admin.CanActFor(3))
}

func TestNewPage(t *testing.T) {
	req := PageRequest{Page: 1, Size: 10}.Normalize()
	page := NewPage([]int{1, 2, 3}, req, 23)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(23), page.TotalElements)
	assert.Equal(t, 1, page.Page)

	empty := NewPage[int](nil, PageRequest{Size: 0}.Normalize(), 0)
	assert.NotNil(t, empty.Content)
	assert.Equal(t, DefaultPageSize, empty.Size)
	assert.Equal(t, 0, empty.TotalPages)

	assert.Equal(t, MaxPageSize, PageRequest{Size: 1000}.Normalize().Size)
	assert.Equal(t, 0, PageRequest{Page: -4}.Normalize().Page)
}

func TestCharacterPatch_Apply(t *testing.T) {
	str := 4
	c := Character{Name: "Aria", Background: "Orphan", Level: 1, Stats: Stats{Strength: 1, Wisdom: 3}}

	CharacterPatch{Strength: &str}.Apply(&c)

	assert.Equal(t, 4, c.Strength)
	assert.Equal(t, "Aria", c.Name)
	assert.Equal(t, "Orphan", c.Background)
	assert.Equal(t, 3, c.Wisdom)
}
