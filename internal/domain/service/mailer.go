package service

import (
	"context"
	"time"
)

// Mailer defines the interface for outbound transactional email.
// Implementations deliver over SMTP; tests substitute a mock.
type Mailer interface {
	// SendVerificationEmail delivers an account activation code to a new user.
	// The ttl is included in the message so the recipient knows how long the
	// code stays valid.
	SendVerificationEmail(ctx context.Context, to, fullName, code string, ttl time.Duration) error

	// SendLoginCodeEmail delivers a second-factor login code.
	SendLoginCodeEmail(ctx context.Context, to, fullName, code string, ttl time.Duration) error
}
