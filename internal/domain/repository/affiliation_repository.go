// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for affiliation persistence.
var (
	// ErrAffiliationNotFound is returned when an affiliation does not exist.
	ErrAffiliationNotFound = errors.New("affiliation not found")
	// ErrDuplicateAffiliation is returned when the same user/department/specialty
	// combination already exists.
	ErrDuplicateAffiliation = errors.New("affiliation already exists")
)

// AffiliationRepository manages the links between users and the departments
// or specialties they are allowed to operate in.
type AffiliationRepository interface {
	// Create persists a new affiliation.
	Create(ctx context.Context, affiliation *entity.Affiliation) error

	// FindByID retrieves a single affiliation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliation, error)

	// FindByUser retrieves all affiliations of a user, with department and
	// specialty names resolved.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Affiliation, error)

	// Exists reports whether the user already has an affiliation with the given
	// department and specialty. A nil specialtyID matches department-only rows.
	Exists(ctx context.Context, userID, departmentID uuid.UUID, specialtyID *uuid.UUID) (bool, error)

	// Delete removes an affiliation.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every affiliation of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
