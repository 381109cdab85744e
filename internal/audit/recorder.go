package audit

import (
	"context"
	"log/slog"
	"time"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// writeTimeout bounds how long a single audit write may take. The parent
// request context may already be cancelled by the time the entry is written,
// so the recorder detaches from it.
const writeTimeout = 5 * time.Second

// Entry describes one action to be recorded. Old and New are raw values;
// the recorder snapshots and sanitizes them before storage.
type Entry struct {
	Action     entity.AuditAction
	EntityType string
	EntityID   string
	Old        any
	New        any
	Details    string
}

// Meta carries request provenance attached to every entry.
type Meta struct {
	IPAddress string
	UserAgent string
}

// Recorder appends entries to the activity log. All methods are best effort:
// persistence failures are logged, never returned, so auditing can never make
// a business operation fail.
type Recorder struct {
	repo   repository.ActivityLogRepository
	logger *slog.Logger
}

// RecorderParams holds dependencies for Recorder, injected by Fx.
type RecorderParams struct {
	fx.In

	Repo   repository.ActivityLogRepository
	Logger *slog.Logger
}

// NewRecorder is the constructor for Recorder.
func NewRecorder(params RecorderParams) *Recorder {
	return &Recorder{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

// Record writes one entry to the activity log. The actor may be nil for
// anonymous events such as failed logins.
func (r *Recorder) Record(ctx context.Context, actor *entity.Identity, meta Meta, e Entry) {
	log := &entity.ActivityLog{
		ID:         uuid.New(),
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		OldValues:  Snapshot(e.Old),
		NewValues:  Snapshot(e.New),
		Details:    e.Details,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}
	if actor != nil {
		id := actor.UserID
		log.UserID = &id
		log.UserEmail = actor.Email
		log.UserName = actor.FullName
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := r.repo.Create(writeCtx, log); err != nil {
		r.logger.Error("failed to write activity log entry",
			slog.String("action", string(e.Action)),
			slog.String("entity_type", e.EntityType),
			slog.String("entity_id", e.EntityID),
			slog.Any("error", err),
		)
	}
}

// RecordCreate records the creation of a record with its sanitized snapshot.
func (r *Recorder) RecordCreate(ctx context.Context, actor *entity.Identity, meta Meta, entityType, entityID string, created any) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditCreate,
		EntityType: entityType,
		EntityID:   entityID,
		New:        created,
	})
}

// RecordUpdate records a modification with before and after snapshots.
func (r *Recorder) RecordUpdate(ctx context.Context, actor *entity.Identity, meta Meta, entityType, entityID string, before, after any) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditUpdate,
		EntityType: entityType,
		EntityID:   entityID,
		Old:        before,
		New:        after,
	})
}

// RecordDelete records a deletion with the snapshot of the removed record.
func (r *Recorder) RecordDelete(ctx context.Context, actor *entity.Identity, meta Meta, entityType, entityID string, deleted any) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditDelete,
		EntityType: entityType,
		EntityID:   entityID,
		Old:        deleted,
	})
}

// RecordView records read access to sensitive data.
func (r *Recorder) RecordView(ctx context.Context, actor *entity.Identity, meta Meta, entityType, entityID, details string) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditView,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

// RecordLogin records a successful sign-in.
func (r *Recorder) RecordLogin(ctx context.Context, actor *entity.Identity, meta Meta) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditLogin,
		EntityType: "User",
		EntityID:   actor.UserID.String(),
	})
}

// RecordLogout records an explicit sign-out.
func (r *Recorder) RecordLogout(ctx context.Context, actor *entity.Identity, meta Meta) {
	r.Record(ctx, actor, meta, Entry{
		Action:     entity.AuditLogout,
		EntityType: "User",
		EntityID:   actor.UserID.String(),
	})
}

// RecordLoginFailed records a failed sign-in attempt. The actor is unknown,
// so only the attempted email and the reason are kept.
func (r *Recorder) RecordLoginFailed(ctx context.Context, meta Meta, email, reason string) {
	r.Record(ctx, nil, meta, Entry{
		Action:     entity.AuditLoginFailed,
		EntityType: "User",
		EntityID:   email,
		Details:    reason,
	})
}
