// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityLogFilter narrows down audit trail queries. Zero values mean "no filter".
type ActivityLogFilter struct {
	UserID     *uuid.UUID
	Action     entity.AuditAction
	EntityType string
	EntityID   string
	From       *time.Time
	To         *time.Time
	SortBy     string // Storage column to order by; empty means created_at.
	SortDesc   bool
	Limit      int
	Offset     int
}

// ActivityLogRepository persists the append-only audit trail.
// Entries are never updated or deleted through this interface.
type ActivityLogRepository interface {
	// Create appends a new entry to the audit trail.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List returns entries matching the filter, ordered per its sort fields
	// (newest first by default), plus the total count before paging.
	List(ctx context.Context, filter ActivityLogFilter) ([]*entity.ActivityLog, int64, error)

	// FindByEntity returns the full history of a single record, newest first.
	FindByEntity(ctx context.Context, entityType, entityID string) ([]*entity.ActivityLog, error)
}
