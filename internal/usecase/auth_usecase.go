// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register the bootstrap administrator.
type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// SignInInput defines the data required for a user to sign in.
// Code is empty on the first phase and carries the emailed second factor on
// the second phase.
type SignInInput struct {
	Email    string
	Password string
	Code     string
}

// VerifyEmailInput defines the data required to activate a pending account.
type VerifyEmailInput struct {
	Email string
	Code  string
}

// ChangePasswordInput defines the data required to change a user's password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// SignupOutput returns the newly created administrator's basic information.
type SignupOutput struct {
	User *entity.User
}

// SignInOutput returns either a pending-verification marker (phase one) or the
// signed access token (phase two).
type SignInOutput struct {
	RequiresVerification bool
	AccessToken          string
	User                 *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers the first administrator account. Once any user exists,
	// self-registration is disabled and accounts are created by administrators.
	Signup(ctx context.Context, meta audit.Meta, input *SignupInput) (*SignupOutput, error)

	// SignIn performs the two-phase login handshake.
	SignIn(ctx context.Context, meta audit.Meta, input *SignInInput) (*SignInOutput, error)

	// VerifyEmail consumes an activation code and moves the account from
	// PENDING to ACTIVE.
	VerifyEmail(ctx context.Context, meta audit.Meta, input *VerifyEmailInput) error

	// ResendVerification issues a fresh activation code, superseding any
	// outstanding one, and emails it.
	ResendVerification(ctx context.Context, email string) error

	// SignOut records the logout in the audit trail. Token invalidation is the
	// client's responsibility.
	SignOut(ctx context.Context, actor *entity.Identity, meta audit.Meta) error

	// ChangePassword updates a user's password after verifying the current one.
	// Allowed for the account owner or an administrator.
	ChangePassword(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *ChangePasswordInput) error
}
