// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. A user holds exactly one global role;
// finer-grained department/specialty grants live in Affiliation records.
type User struct {
	ID           uuid.UUID // The unique identifier for the user account.
	Email        string    // Login identifier; stored lower-cased and trimmed.
	FullName     string    // Display name.
	PasswordHash string    // bcrypt hash; never exposed outside persistence and auth flows.
	Role         Role      // The user's single global role.
	Status       Status    // Account lifecycle: PENDING until email verification, then ACTIVE.
	IsActive     bool      // Administrative enable/disable toggle, independent of Status.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Identity derives the caller view of this account. Scope IDs are filled in
// separately from the user's affiliations.
func (u *User) Identity() *Identity {
	return &Identity{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// Identity is the per-request view of an authenticated caller, derived once
// from a verified credential. It is read-only for the duration of a request
// and is never persisted.
type Identity struct {
	UserID       uuid.UUID
	Email        string
	FullName     string
	Role         Role
	DeptIDs      []uuid.UUID // Departments the caller is affiliated with, for scope checks.
	SpecialtyIDs []uuid.UUID // Specialties the caller is affiliated with, for scope checks.
}

// HasDept reports whether the identity is affiliated with the department.
func (id *Identity) HasDept(deptID uuid.UUID) bool {
	for _, d := range id.DeptIDs {
		if d == deptID {
			return true
		}
	}

	return false
}

// HasSpecialty reports whether the identity is affiliated with the specialty.
func (id *Identity) HasSpecialty(specialtyID uuid.UUID) bool {
	for _, s := range id.SpecialtyIDs {
		if s == specialtyID {
			return true
		}
	}

	return false
}
