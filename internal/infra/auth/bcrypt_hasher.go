// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"clinica/config"
	"clinica/internal/domain/service"
)

// Default password policy, applied when no configuration is present.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72 // bcrypt truncates beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost: bcrypt.DefaultCost,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			MaxLength:        defaultMaxPasswordLength,
		},
	}

	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
		if hasher.policy.MinLength <= 0 {
			hasher.policy.MinLength = defaultMinPasswordLength
		}
		if hasher.policy.MaxLength <= 0 || hasher.policy.MaxLength > defaultMaxPasswordLength {
			hasher.policy.MaxLength = defaultMaxPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return fmt.Errorf("la contraseña debe tener al menos %d caracteres", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return fmt.Errorf("la contraseña no puede exceder %d caracteres", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if h.policy.RequireUppercase && !hasUpper {
		missing = append(missing, "una mayúscula")
	}
	if h.policy.RequireLowercase && !hasLower {
		missing = append(missing, "una minúscula")
	}
	if h.policy.RequireNumbers && !hasNumber {
		missing = append(missing, "un número")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		missing = append(missing, "un carácter especial")
	}

	if len(missing) > 0 {
		return fmt.Errorf("la contraseña debe incluir %s", strings.Join(missing, ", "))
	}

	return nil
}
