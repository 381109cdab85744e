package entity

import (
	"strings"
	"time"
)

// CodePurpose distinguishes what a verification code proves.
type CodePurpose string

const (
	// PurposeEmailActivation gates moving a user from PENDING to ACTIVE.
	PurposeEmailActivation CodePurpose = "EMAIL_ACTIVATION"
	// PurposeLogin2FA completes the second factor of a login handshake.
	// These codes are ephemeral and never change durable user state.
	PurposeLogin2FA CodePurpose = "LOGIN_2FA"
)

// VerificationCode is a short-lived, single-use six-digit credential bound to
// an email address and a purpose. Issuing a new code for the same
// (subject, purpose) pair supersedes any outstanding one; only the latest
// issued code is valid.
type VerificationCode struct {
	Subject   string // The email address the code was issued for, lower-cased.
	Code      string // Six ASCII digits; the range 100000-999999 excludes leading zeros.
	Purpose   CodePurpose
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the code is past its expiry at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// Matches compares a presented code against the stored one. Comparison is an
// exact string match after trimming surrounding whitespace; no other
// normalization is applied.
func (v *VerificationCode) Matches(presented string) bool {
	return v.Code == strings.TrimSpace(presented)
}
