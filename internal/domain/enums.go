package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// ClassRole is the combat role of a class. It drives the default weapon a new
// character receives when the class has no starting weapon of its own.
type ClassRole string

const (
	ClassRoleNone   ClassRole = ""
	ClassRoleTank   ClassRole = "tank"
	ClassRoleHealer ClassRole = "healer"
	ClassRoleDamage ClassRole = "damage"
	ClassRoleMelee  ClassRole = "melee"
	ClassRoleRanged ClassRole = "ranged"
)

var knownClassRoles = map[ClassRole]bool{
	ClassRoleTank:   true,
	ClassRoleHealer: true,
	ClassRoleDamage: true,
	ClassRoleMelee:  true,
	ClassRoleRanged: true,
}

// ParseClassRole folds case and whitespace. An empty input yields ClassRoleNone.
func ParseClassRole(s string) (ClassRole, error) {
	folded := Fold(s)
	if folded == "" {
		return ClassRoleNone, nil
	}
	role := ClassRole(folded)
	if !knownClassRoles[role] {
		return ClassRoleNone, Wrapf(ErrUnknownClassRole, "%q", s)
	}
	return role, nil
}

// ArmorType is the armor category of a class, normalized to folded case.
type ArmorType string

const (
	ArmorNone    ArmorType = ""
	ArmorCloth   ArmorType = "cloth"
	ArmorLeather ArmorType = "leather"
	ArmorPlate   ArmorType = "plate"
)

// ParseArmorType normalizes free-text armor. Unrecognized values are kept and
// resolve to generic clothing at character creation.
func ParseArmorType(s string) ArmorType {
	return ArmorType(Fold(s))
}

// Fold trims and Unicode case-folds s for case-insensitive comparisons
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
