// Package validation holds the format rules for the two natural keys of the
// system: citizen identity numbers and bank account numbers. The checks are
// pure functions; New wires them into a go-playground validator instance so
// records can also be validated struct-wise with `identity_number` and
// `account_number` tags.
package validation

import (
	"github.com/go-playground/validator/v10"
)

const identityNumberLen = 10

// ValidIdentityNumber reports whether s has the fixed 10-character identity
// number shape: five letters, four digits, one letter.
func ValidIdentityNumber(s string) bool {
	if len(s) != identityNumberLen {
		return false
	}
	for i := 0; i < 5; i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	for i := 5; i < 9; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return isLetter(s[9])
}

// ValidAccountNumber reports whether s is a well-formed account number:
// alphanumeric and at least eight characters long.
func ValidAccountNumber(s string) bool {
	if len(s) < 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// New returns a validator with the custom key-format tags registered.
func New() *validator.Validate {
	v := validator.New()
	// RegisterValidation only errors on an empty tag name.
	_ = v.RegisterValidation("identity_number", func(fl validator.FieldLevel) bool {
		return ValidIdentityNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("account_number", func(fl validator.FieldLevel) bool {
		return ValidAccountNumber(fl.Field().String())
	})
	return v
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
