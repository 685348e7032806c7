// Package sim is a self-contained stand-in for the hosted billing service,
// meant for local development. It speaks the same HTTP contract the real
// service does and keeps its state in a sqlite file, so the terminal client
// can be exercised end to end without network access.
package sim

import (
	"errors"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
)

// AdminAccount is an administrator row, including the credential hash the
// public Admin shape never exposes.
type AdminAccount struct {
	ID           string `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

// Admin strips the credential hash for wire responses.
func (a AdminAccount) Admin() models.Admin {
	return models.Admin{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
}

// UserAccount is a vehicle owner row.
type UserAccount struct {
	ID           string
	Profile      models.UserProfile
	PasswordHash string
}
