// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the single global role a user holds in the system.
type Role string

const (
	// RoleAdministrador manages the whole installation: users, departments,
	// specialties, affiliations and audit trails.
	RoleAdministrador Role = "ADMINISTRADOR"
	// RoleMedico is the physician role.
	RoleMedico Role = "MEDICO"
	// RoleEnfermero is the nursing role.
	RoleEnfermero Role = "ENFERMERO"
	// RolePaciente is the patient role.
	RolePaciente Role = "PACIENTE"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrador, RoleMedico, RoleEnfermero, RolePaciente:
		return true
	default:
		return false
	}
}

// AllRoles lists every valid role, in a stable order suitable for
// user-facing validation messages.
func AllRoles() []Role {
	return []Role{RoleAdministrador, RoleMedico, RoleEnfermero, RolePaciente}
}

// RoleNames returns the valid role names as strings.
func RoleNames() []string {
	roles := AllRoles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}

	return names
}

// ParseRole normalizes a raw role string (trimming and upper-casing) and
// reports whether it names a valid role. Role identifiers are a closed
// enumeration; anything outside it is rejected rather than passed through.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.IsValid() {
		return "", false
	}

	return role, true
}

// Status represents the account lifecycle state of a user.
type Status string

const (
	// StatusPending marks an account created but not yet email-verified.
	StatusPending Status = "PENDING"
	// StatusActive marks a verified, usable account.
	StatusActive Status = "ACTIVE"
	// StatusDeactivated marks an account retired by an administrator.
	StatusDeactivated Status = "DEACTIVATED"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusDeactivated:
		return true
	default:
		return false
	}
}

// NormalizeStatus maps a raw status string onto the closed enumeration,
// defaulting to PENDING for empty or unknown values.
func NormalizeStatus(raw string) Status {
	status := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return StatusPending
	}

	return status
}
