// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data an administrator supplies to create an account.
// Password is optional; when empty a temporary password is generated and the
// user must change it after activation.
type CreateUserInput struct {
	Email    string
	FullName string
	Role     string
	Password string
}

// ListUsersInput narrows down and pages the user listing.
type ListUsersInput struct {
	Role   string
	Status string
	Search string
	Page   int
	Limit  int
}

// ListUsersOutput is one page of users plus pagination metadata.
type ListUsersOutput struct {
	Users      []*entity.User
	Pagination *Pagination
}

// ImportRow is one pre-parsed CSV row of a bulk user import.
// Line is the 1-based source line, used in per-row error reports.
type ImportRow struct {
	Line     int
	Email    string
	FullName string
	Role     string
	Status   string
	Password string
}

// ImportRowError reports why a single row was rejected.
type ImportRowError struct {
	Line   int    `json:"line"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BulkImportOutput summarizes a bulk import run.
type BulkImportOutput struct {
	Created []*entity.User
	Errors  []ImportRowError
}

// UserUsecase defines the interface for administrator-driven account management.
type UserUsecase interface {
	// CreateByAdmin creates a PENDING account and emails its activation code.
	CreateByAdmin(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *CreateUserInput) (*entity.User, error)

	// List returns a page of users matching the filter.
	List(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// Get retrieves a single user by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Deactivate disables sign-in for an account without deleting it.
	Deactivate(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) (*entity.User, error)

	// Activate re-enables a deactivated account.
	Activate(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) (*entity.User, error)

	// Delete removes an account permanently, along with its affiliations.
	Delete(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error

	// BulkImport creates accounts from pre-parsed CSV rows, reporting per-row
	// failures without aborting the batch.
	BulkImport(ctx context.Context, actor *entity.Identity, meta audit.Meta, rows []ImportRow) (*BulkImportOutput, error)
}
