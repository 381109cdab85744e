package service

import (
	"time"

	"clinica/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// Department and specialty IDs are embedded so scope checks never need a
// database round trip.
type Claims struct {
	UserID       uuid.UUID   `json:"uid"`
	Email        string      `json:"email"`
	FullName     string      `json:"name"`
	Role         string      `json:"role"`
	DeptIDs      []uuid.UUID `json:"deptIds,omitempty"`
	SpecialtyIDs []uuid.UUID `json:"specialtyIds,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the claims back into the domain identity used by
// authorization checks.
func (c *Claims) Identity() *entity.Identity {
	return &entity.Identity{
		UserID:       c.UserID,
		Email:        c.Email,
		FullName:     c.FullName,
		Role:         entity.Role(c.Role),
		DeptIDs:      c.DeptIDs,
		SpecialtyIDs: c.SpecialtyIDs,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Sign creates a signed access token for the given identity.
	Sign(identity *entity.Identity) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
