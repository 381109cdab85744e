package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clinica/internal/audit"
	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/errors"
	"clinica/internal/usecase"

	"go.uber.org/fx"
)

// Custom audit actions recorded when the trail itself is consulted.
const (
	actionViewLogs        entity.AuditAction = "VIEW_LOGS"
	actionViewEntityAudit entity.AuditAction = "VIEW_ENTITY_AUDIT"
)

// sortColumns maps the API's sort field names to their storage columns. Only
// these fields are sortable; anything else is rejected before it can reach
// the query.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"action":     "action",
	"entityType": "entity_type",
	"userEmail":  "user_email",
}

// auditService implements the AuditUsecase interface.
type auditService struct {
	logRepo  repository.ActivityLogRepository
	userRepo repository.UserRepository
	recorder *audit.Recorder
	logger   *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	LogRepo  repository.ActivityLogRepository
	UserRepo repository.UserRepository
	Recorder *audit.Recorder
	Logger   *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		logRepo:  params.LogRepo,
		userRepo: params.UserRepo,
		recorder: params.Recorder,
		logger:   params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Query returns a page of audit entries, newest first. The query itself is
// recorded so access to the trail leaves a trace.
func (srv *auditService) Query(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.QueryLogsInput) (*usecase.QueryLogsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	sortBy := sortColumns["createdAt"]
	if input.SortBy != "" {
		column, ok := sortColumns[input.SortBy]
		if !ok {
			return nil, domainerrors.ErrValidation.WithDetails(
				"sortBy inválido; valores aceptados: createdAt, action, entityType, userEmail")
		}
		sortBy = column
	}

	sortDesc := true
	switch strings.ToLower(input.SortOrder) {
	case "", "desc":
	case "asc":
		sortDesc = false
	default:
		return nil, domainerrors.ErrValidation.WithDetails("sortOrder debe ser asc o desc")
	}

	filter := repository.ActivityLogFilter{
		UserID:     input.UserID,
		Action:     entity.AuditAction(input.Action),
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		From:       input.From,
		SortBy:     sortBy,
		SortDesc:   sortDesc,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	// A date-only upper bound means "through that day", so the cut-off moves
	// to the end of the day in the date's own location.
	if input.To != nil {
		year, month, day := input.To.Date()
		endOfDay := time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), input.To.Location())
		filter.To = &endOfDay
	}

	// Filtering by email resolves to the user ID so renamed accounts still
	// match their historical entries.
	if input.UserEmail != "" && input.UserID == nil {
		user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.UserEmail))
		if errors.Is(err, repository.ErrUserNotFound) {
			// No such account means no matching entries; dropping the
			// constraint instead would return the whole trail.
			srv.recordQuery(ctx, actor, meta, page, limit)

			return &usecase.QueryLogsOutput{
				Logs:       []*entity.ActivityLog{},
				Pagination: newPagination(0, page, limit),
			}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve user email")
		}

		id := user.ID
		filter.UserID = &id
	}

	logs, total, err := srv.logRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query activity logs")
	}

	srv.recordQuery(ctx, actor, meta, page, limit)

	return &usecase.QueryLogsOutput{
		Logs:       logs,
		Pagination: newPagination(total, page, limit),
	}, nil
}

// recordQuery leaves the trace every trail consultation must produce.
func (srv *auditService) recordQuery(ctx context.Context, actor *entity.Identity, meta audit.Meta, page, limit int) {
	srv.recorder.Record(ctx, actor, meta, audit.Entry{
		Action:     actionViewLogs,
		EntityType: "ActivityLog",
		Details:    fmt.Sprintf("page=%d limit=%d", page, limit),
	})
}

// EntityTrail returns the full history of one record, newest first.
func (srv *auditService) EntityTrail(ctx context.Context, actor *entity.Identity, meta audit.Meta, entityType, entityID string) ([]*entity.ActivityLog, error) {
	logs, err := srv.logRepo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entity trail")
	}

	srv.recorder.Record(ctx, actor, meta, audit.Entry{
		Action:     actionViewEntityAudit,
		EntityType: entityType,
		EntityID:   entityID,
	})

	srv.log(ctx).Debug("entity trail consulted",
		slog.String("entity_type", entityType), slog.String("entity_id", entityID))

	return logs, nil
}
