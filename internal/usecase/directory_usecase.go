// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDepartmentInput defines the data required to create a department.
type CreateDepartmentInput struct {
	Name        string
	Description string
}

// CreateSpecialtyInput defines the data required to create a specialty.
type CreateSpecialtyInput struct {
	Name         string
	DepartmentID uuid.UUID
	Description  string
}

// UpdateSpecialtyInput carries a partial specialty update. Nil fields are
// left unchanged.
type UpdateSpecialtyInput struct {
	Name         *string
	DepartmentID *uuid.UUID
	Description  *string
}

// DirectoryUsecase manages the clinical directory of departments and
// specialties that affiliations reference.
type DirectoryUsecase interface {
	// CreateDepartment adds a department. Names are upper-cased and unique.
	CreateDepartment(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *CreateDepartmentInput) (*entity.Department, error)

	// ListDepartments returns all departments ordered by name.
	ListDepartments(ctx context.Context) ([]*entity.Department, error)

	// CreateSpecialty adds a specialty under an existing department.
	CreateSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *CreateSpecialtyInput) (*entity.Specialty, error)

	// ListSpecialties returns all specialties, or only those of one department
	// when departmentID is non-nil.
	ListSpecialties(ctx context.Context, departmentID *uuid.UUID) ([]*entity.Specialty, error)

	// UpdateSpecialty renames or moves a specialty.
	UpdateSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID, input *UpdateSpecialtyInput) (*entity.Specialty, error)

	// DeleteSpecialty removes a specialty.
	DeleteSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error
}
