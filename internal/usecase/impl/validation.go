// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all services. A validator.Validate instance caches
// struct metadata and is safe for concurrent use.
var validate = validator.New()

// normalizeEmail lower-cases and trims an email address so lookups and
// uniqueness checks are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail reports whether the address has a plausible email shape.
func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
