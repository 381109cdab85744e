// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the clinical directory.
var (
	// ErrDepartmentNotFound is returned when a department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDuplicateDepartment is returned when a department name is already taken.
	ErrDuplicateDepartment = errors.New("department already exists")
	// ErrSpecialtyNotFound is returned when a specialty does not exist.
	ErrSpecialtyNotFound = errors.New("specialty not found")
	// ErrDuplicateSpecialty is returned when a specialty name is already taken
	// within its department.
	ErrDuplicateSpecialty = errors.New("specialty already exists")
)

// DepartmentRepository defines persistence for hospital departments.
type DepartmentRepository interface {
	// Create persists a new department.
	Create(ctx context.Context, department *entity.Department) error

	// FindByID retrieves a department by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error)

	// FindByName retrieves a department by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Department, error)

	// List returns all departments ordered by name.
	List(ctx context.Context) ([]*entity.Department, error)

	// Update modifies an existing department.
	Update(ctx context.Context, department *entity.Department) error

	// Delete removes a department.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpecialtyRepository defines persistence for medical specialties.
// Every specialty belongs to exactly one department.
type SpecialtyRepository interface {
	// Create persists a new specialty.
	Create(ctx context.Context, specialty *entity.Specialty) error

	// FindByID retrieves a specialty by its unique ID, with the department name resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error)

	// List returns all specialties, optionally restricted to one department.
	// A nil departmentID returns every specialty.
	List(ctx context.Context, departmentID *uuid.UUID) ([]*entity.Specialty, error)

	// Update modifies an existing specialty.
	Update(ctx context.Context, specialty *entity.Specialty) error

	// Delete removes a specialty.
	Delete(ctx context.Context, id uuid.UUID) error
}
