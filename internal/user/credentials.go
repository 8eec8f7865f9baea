package user

import (
	"net/mail"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// normalizeUsername trims whitespace and checks length and charset
func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if n := len([]rune(username)); n < MinUsernameLength || n > MaxUsernameLength {
		return "", domain.Wrapf(domain.ErrInvalidArgument, ErrMsgUsernameLength)
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return "", domain.Wrapf(domain.ErrInvalidArgument, ErrMsgUsernameChars)
		}
	}
	return username, nil
}

// normalizeEmail trims and lowercases the address and rejects display-name forms
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.Wrapf(domain.ErrInvalidArgument, ErrMsgEmailInvalid)
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return domain.Wrapf(domain.ErrInvalidArgument, ErrMsgPasswordLength)
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		return domain.Wrapf(domain.ErrInvalidArgument, ErrMsgPasswordStrength)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
