package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsFor_EveryRoleHasPermissions(t *testing.T) {
	for _, role := range AllRoles() {
		perms := PermissionsFor(role)
		require.NotEmpty(t, perms, "role %s has an empty permission set", role)

		seen := make(map[PermissionKey]struct{}, len(perms))
		for _, key := range perms {
			_, dup := seen[key]
			assert.False(t, dup, "role %s lists %s twice", role, key)
			seen[key] = struct{}{}
		}
	}
}

func TestPermissionsFor_UnknownRoleIsEmpty(t *testing.T) {
	assert.Empty(t, PermissionsFor(Role("SUPERUSER")))
	assert.Empty(t, PermissionsFor(Role("")))
	// The short form is not part of the enumeration.
	assert.Empty(t, PermissionsFor(Role("ADMIN")))
}

func TestRoleHasPermission(t *testing.T) {
	tests := []struct {
		name string
		role Role
		key  PermissionKey
		want bool
	}{
		{"admin creates users", RoleAdministrador, PermUserCreate, true},
		{"admin views audit", RoleAdministrador, PermAuditView, true},
		{"admin manages affiliations", RoleAdministrador, PermAffiliationCreate, true},
		{"medico views assigned patients", RoleMedico, PermPatientViewAssigned, true},
		{"medico updates diagnosis", RoleMedico, PermPatientUpdateDiagnosis, true},
		{"medico lists departments", RoleMedico, PermDepartmentList, true},
		{"medico cannot create users", RoleMedico, PermUserCreate, false},
		{"medico cannot administer medication", RoleMedico, PermMedicationAdminister, false},
		{"enfermero updates vitals", RoleEnfermero, PermPatientUpdateVitals, true},
		{"enfermero administers medication", RoleEnfermero, PermMedicationAdminister, true},
		{"enfermero cannot update diagnosis", RoleEnfermero, PermPatientUpdateDiagnosis, false},
		{"enfermero cannot view audit", RoleEnfermero, PermAuditView, false},
		{"paciente views own record", RolePaciente, PermPatientViewSelf, true},
		{"paciente requests appointments", RolePaciente, PermAppointmentRequest, true},
		{"paciente cannot view other patients", RolePaciente, PermPatientViewAssigned, false},
		{"paciente cannot list users", RolePaciente, PermUserList, false},
		{"unknown role denied everything", Role("GUEST"), PermDepartmentList, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleHasPermission(tt.role, tt.key))
		})
	}
}
