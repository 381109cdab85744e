// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// Pagination is the metadata returned alongside every paged listing.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// QueryLogsInput filters and pages the audit trail. Zero values mean "no filter".
// To is extended to the end of its day so a date-only range is inclusive.
type QueryLogsInput struct {
	UserID     *uuid.UUID
	UserEmail  string
	Action     string
	EntityType string
	EntityID   string
	From       *time.Time
	To         *time.Time
	SortBy     string // createdAt, action, entityType or userEmail; default createdAt.
	SortOrder  string // asc or desc; default desc.
	Page       int
	Limit      int
}

// QueryLogsOutput is one page of audit entries plus pagination metadata.
type QueryLogsOutput struct {
	Logs       []*entity.ActivityLog
	Pagination *Pagination
}

// AuditUsecase exposes read access to the activity log. Every query is itself
// recorded, so access to the audit trail leaves a trace.
type AuditUsecase interface {
	// Query returns a page of entries matching the filter, newest first.
	Query(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *QueryLogsInput) (*QueryLogsOutput, error)

	// EntityTrail returns the full history of one record, newest first.
	EntityTrail(ctx context.Context, actor *entity.Identity, meta audit.Meta, entityType, entityID string) ([]*entity.ActivityLog, error)
}
