// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user does not exist in storage.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a unique email constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserFilter narrows down user listings. Zero values mean "no filter".
type UserFilter struct {
	Role   entity.Role
	Status entity.Status
	Search string // matches against email and full name
	Limit  int
	Offset int
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns users matching the filter plus the total count before paging.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// Count returns the total number of users in storage.
	Count(ctx context.Context) (int64, error)
}
