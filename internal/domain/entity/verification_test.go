package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCodeExpired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	code := &VerificationCode{
		Subject:   "ana@example.com",
		Code:      "482913",
		Purpose:   PurposeEmailActivation,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(15 * time.Minute),
	}

	assert.False(t, code.Expired(issued))
	assert.False(t, code.Expired(issued.Add(15*time.Minute)))
	assert.True(t, code.Expired(issued.Add(15*time.Minute+time.Second)))
}

func TestVerificationCodeMatches(t *testing.T) {
	code := &VerificationCode{Code: "482913"}

	assert.True(t, code.Matches("482913"))
	assert.True(t, code.Matches("  482913 "))
	assert.False(t, code.Matches("482914"))
	assert.False(t, code.Matches(""))
	// No digit normalization beyond trimming.
	assert.False(t, code.Matches("48291"))
}
