package entity

// PermissionKey names a specific allowed action on a resource, in
// resource:action[:qualifier] form (e.g. "patient:update:vitals").
// Qualifiers such as ":assigned" or ":self" express scope intent that the
// authorization middleware or the handler must still enforce operationally;
// the table alone does not verify them.
type PermissionKey string

// Permission keys, grouped by resource.
const (
	PermUserCreate     PermissionKey = "user:create"
	PermUserList       PermissionKey = "user:list"
	PermUserDeactivate PermissionKey = "user:deactivate"
	PermUserActivate   PermissionKey = "user:activate"
	PermUserDelete     PermissionKey = "user:delete"

	PermRoleAssign PermissionKey = "role:assign"
	PermAuditView  PermissionKey = "audit:view"

	PermDepartmentCreate PermissionKey = "department:create"
	PermDepartmentList   PermissionKey = "department:list"
	PermDepartmentUpdate PermissionKey = "department:update"
	PermDepartmentDelete PermissionKey = "department:delete"

	PermSpecialtyCreate PermissionKey = "specialty:create"
	PermSpecialtyList   PermissionKey = "specialty:list"
	PermSpecialtyUpdate PermissionKey = "specialty:update"
	PermSpecialtyDelete PermissionKey = "specialty:delete"

	PermAffiliationCreate PermissionKey = "affiliation:create"
	PermAffiliationList   PermissionKey = "affiliation:list"
	PermAffiliationDelete PermissionKey = "affiliation:delete"

	PermSettingsUpdate PermissionKey = "settings:update"

	PermPatientViewAssigned        PermissionKey = "patient:view:assigned"
	PermPatientViewSelf            PermissionKey = "patient:view:self"
	PermPatientUpdateDiagnosis     PermissionKey = "patient:update:diagnosis"
	PermPatientUpdatePrescription  PermissionKey = "patient:update:prescription"
	PermPatientUpdateNotes         PermissionKey = "patient:update:notes"
	PermPatientUpdateVitals        PermissionKey = "patient:update:vitals"
	PermPatientUpdateCareNotes     PermissionKey = "patient:update:care-notes"
	PermPatientCreateRecord        PermissionKey = "patient:create:record"
	PermAppointmentViewAssigned    PermissionKey = "appointment:view:assigned"
	PermAppointmentViewSelf        PermissionKey = "appointment:view:self"
	PermAppointmentUpdateStatus    PermissionKey = "appointment:update:status"
	PermAppointmentRequest         PermissionKey = "appointment:request"
	PermMedicationAdminister       PermissionKey = "medication:administer"
	PermProfileUpdateSelf          PermissionKey = "profile:update:self"
	PermPasswordChange             PermissionKey = "password:change"
)

// rolePermissions is the static role → permission-key table. It is defined
// once at process start and never mutated at runtime; any change requires a
// redeploy. Concurrent reads are safe without synchronization.
var rolePermissions = map[Role][]PermissionKey{
	RoleAdministrador: {
		PermUserCreate,
		PermUserList,
		PermUserDeactivate,
		PermUserActivate,
		PermUserDelete,
		PermRoleAssign,
		PermAuditView,
		PermDepartmentCreate,
		PermDepartmentList,
		PermDepartmentUpdate,
		PermDepartmentDelete,
		PermSettingsUpdate,
		PermSpecialtyCreate,
		PermSpecialtyList,
		PermSpecialtyUpdate,
		PermSpecialtyDelete,
		PermAffiliationCreate,
		PermAffiliationList,
		PermAffiliationDelete,
	},
	RoleMedico: {
		PermPatientViewAssigned,
		PermPatientUpdateDiagnosis,
		PermPatientUpdatePrescription,
		PermPatientUpdateNotes,
		PermPatientCreateRecord,
		PermAppointmentViewAssigned,
		PermAppointmentUpdateStatus,
		PermDepartmentList,
		PermSpecialtyList,
	},
	RoleEnfermero: {
		PermPatientViewAssigned,
		PermPatientUpdateVitals,
		PermPatientUpdateCareNotes,
		PermAppointmentViewAssigned,
		PermMedicationAdminister,
		PermDepartmentList,
		PermSpecialtyList,
	},
	RolePaciente: {
		PermPatientViewSelf,
		PermAppointmentViewSelf,
		PermAppointmentRequest,
		PermProfileUpdateSelf,
		PermPasswordChange,
	},
}

// PermissionsFor returns the permission keys granted to a role. It is total:
// unknown roles yield an empty set, never an error. The returned slice is
// shared and must be treated as read-only.
func PermissionsFor(role Role) []PermissionKey {
	return rolePermissions[role]
}

// RoleHasPermission reports whether the role's permission set contains key.
func RoleHasPermission(role Role, key PermissionKey) bool {
	for _, k := range rolePermissions[role] {
		if k == key {
			return true
		}
	}

	return false
}
