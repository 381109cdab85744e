// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAffiliationInput links a user to a department, optionally through a
// specialty. When SpecialtyID is set the department is deduced from it and
// DepartmentID may be omitted.
type CreateAffiliationInput struct {
	UserID       uuid.UUID
	DepartmentID *uuid.UUID
	SpecialtyID  *uuid.UUID
	Role         string
}

// AffiliationUsecase manages the scope assignments consulted by
// department and specialty authorization checks.
type AffiliationUsecase interface {
	// Create adds an affiliation. Duplicate assignments are rejected.
	Create(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *CreateAffiliationInput) (*entity.Affiliation, error)

	// ListByUser returns all affiliations of a user with names resolved.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Affiliation, error)

	// Delete removes an affiliation. Affiliations are immutable; reassignment
	// is delete plus create.
	Delete(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error
}
