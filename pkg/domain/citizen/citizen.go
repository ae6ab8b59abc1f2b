// Package citizen holds the identity record every account refers to.
package citizen

import (
	"errors"
	"fmt"

	"panbank/pkg/validation"
)

// ErrInvalidIdentityNumber is returned when an identity number fails the
// fixed 10-character format check.
var ErrInvalidIdentityNumber = errors.New("invalid identity number format")

// Citizen is an identity record keyed by its identity number. The key never
// changes after creation; other fields change only via an explicit update.
type Citizen struct {
	IdentityNumber string
	Name           string
	DateOfBirth    string
	Address        string
}

// New builds a citizen, rejecting malformed identity numbers before any
// record exists.
func New(identityNumber, name, dateOfBirth, address string) (Citizen, error) {
	if !validation.ValidIdentityNumber(identityNumber) {
		return Citizen{}, fmt.Errorf("%w: %q", ErrInvalidIdentityNumber, identityNumber)
	}
	return Citizen{
		IdentityNumber: identityNumber,
		Name:           name,
		DateOfBirth:    dateOfBirth,
		Address:        address,
	}, nil
}

func (c Citizen) String() string {
	return fmt.Sprintf("[%s] %s (%s) - %s", c.IdentityNumber, c.Name, c.DateOfBirth, c.Address)
}
