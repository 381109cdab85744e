package entity

import (
	"time"

	"github.com/google/uuid"
)

// Affiliation is a scoped grant linking a user to a department and optionally
// a specialty, with a role valid inside that scope. It is distinct from the
// user's global role.
//
// Invariants: when a specialty is set, its parent department must match
// DepartmentID; the (UserID, DepartmentID, SpecialtyID, Role) tuple is unique.
// Affiliations are never updated in place; a change is a delete plus create.
type Affiliation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	DepartmentID uuid.UUID
	SpecialtyID  *uuid.UUID // nil for department-wide affiliations.
	Role         Role
	CreatedAt    time.Time

	// Denormalized names, populated on listing for display purposes.
	DepartmentName string
	SpecialtyName  string
}

// Department groups specialties and scopes affiliations. Names are unique
// and stored upper-cased.
type Department struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Specialty is a sub-division of a department. Names are unique across the
// whole installation.
type Specialty struct {
	ID           uuid.UUID
	Name         string
	DepartmentID uuid.UUID
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DepartmentName string // Populated on listing.
}
