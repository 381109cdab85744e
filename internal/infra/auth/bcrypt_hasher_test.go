package auth

import (
	"testing"

	"clinica/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	valid := []string{
		"StrongPass123",
		"Abcdefg1",
		"Contrasena9X",
	}
	for _, password := range valid {
		assert.NoError(t, hasher.ValidateStrength(password), "expected %q to pass", password)
	}

	invalid := []string{
		"123",         // too short
		"Short1",      // too short
		"password123", // no uppercase
		"PASSWORD123", // no lowercase
		"PasswordABC", // no numbers
	}
	for _, password := range invalid {
		assert.Error(t, hasher.ValidateStrength(password), "expected %q to fail", password)
	}
}

func TestBcryptHasher_ValidateStrength_ConfiguredPolicy(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        12,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidateStrength("StrongPass123"), "missing special character")
	assert.Error(t, hasher.ValidateStrength("Short1!aB"), "below configured minimum length")
	assert.NoError(t, hasher.ValidateStrength("StrongPass123!"))
}

func TestBcryptHasher_DifferentHashesForSamePassword(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	password := "StrongPass123"

	hash1, err := hasher.Hash(password)
	require.NoError(t, err)
	hash2, err := hasher.Hash(password)
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check(password, hash1))
	assert.True(t, hasher.Check(password, hash2))
}
