package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of privileged action an activity-log entry
// records. The well-known values below cover the standard lifecycle; call
// sites may also use custom action codes (e.g. "VIEW_LOGS") for domain events.
type AuditAction string

const (
	AuditCreate      AuditAction = "CREATE"
	AuditUpdate      AuditAction = "UPDATE"
	AuditDelete      AuditAction = "DELETE"
	AuditView        AuditAction = "VIEW"
	AuditLogin       AuditAction = "LOGIN"
	AuditLogout      AuditAction = "LOGOUT"
	AuditLoginFailed AuditAction = "LOGIN_FAILED"
)

// ActivityLog is an immutable, append-only record of a privileged action.
// Entries are never mutated or deleted by the application. Entity snapshots
// are sanitized before storage: sensitive fields (password hashes,
// verification codes) are replaced with a redaction marker.
type ActivityLog struct {
	ID         uuid.UUID
	Action     AuditAction
	EntityType string
	EntityID   string
	OldValues  map[string]any // Sanitized snapshot before the action, nil when not applicable.
	NewValues  map[string]any // Sanitized snapshot after the action, nil when not applicable.
	UserID     *uuid.UUID     // Acting user, nil for anonymous events such as failed logins.
	UserEmail  string
	UserName   string
	Details    string
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}
