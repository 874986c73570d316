package entity

import "github.com/google/uuid"

// Role is the closed set of account roles. All role checks go through this
// type or the access gate; raw string comparison is not used elsewhere.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Identity is an authenticated caller as resolved by the auth layer.
// Engines receive only this, never raw credentials.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}
