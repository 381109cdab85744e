package service

import (
	"context"
	"errors"

	"clinica/internal/domain/entity"
)

// ErrCodeNotFound is returned when no code exists for a subject and purpose.
var ErrCodeNotFound = errors.New("verification code not found")

// CodeStore holds pending verification codes keyed by subject and purpose.
// Storing a second code for the same key replaces the first; codes are
// removed once consumed or expired.
type CodeStore interface {
	// Put stores a code, replacing any existing one for the same subject and purpose.
	Put(ctx context.Context, code *entity.VerificationCode) error

	// Get retrieves the pending code for a subject and purpose.
	// Returns ErrCodeNotFound when none exists.
	Get(ctx context.Context, subject string, purpose entity.CodePurpose) (*entity.VerificationCode, error)

	// Delete removes the pending code for a subject and purpose, if any.
	Delete(ctx context.Context, subject string, purpose entity.CodePurpose) error
}
