package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinica/internal/audit"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	mockrepository "clinica/internal/mocks/repository"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type auditServiceMocks struct {
	logRepo  *mockrepository.MockActivityLogRepository
	userRepo *mockrepository.MockUserRepository
}

func newTestAuditService(t *testing.T) (usecase.AuditUsecase, *auditServiceMocks) {
	t.Helper()

	m := &auditServiceMocks{
		logRepo:  mockrepository.NewMockActivityLogRepository(t),
		userRepo: mockrepository.NewMockUserRepository(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewAuditService(AuditServiceParams{
		LogRepo:  m.logRepo,
		UserRepo: m.userRepo,
		Recorder: audit.NewRecorder(audit.RecorderParams{Repo: m.logRepo, Logger: logger}),
		Logger:   logger,
	})

	return srv, m
}

func TestQueryLogs_ReturnsPageAndRecordsTheQuery(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()
	actor := adminIdentity()
	logs := []*entity.ActivityLog{{ID: uuid.New(), Action: entity.AuditLogin}}

	m.logRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
		Return(logs, int64(1), nil)

	var selfEntry *entity.ActivityLog
	m.logRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(_ context.Context, entry *entity.ActivityLog) { selfEntry = entry }).
		Return(nil).
		Once()

	out, err := srv.Query(ctx, actor, audit.Meta{IPAddress: "10.0.0.7"}, &usecase.QueryLogsInput{})
	require.NoError(t, err)

	assert.Equal(t, logs, out.Logs)
	assert.Equal(t, int64(1), out.Pagination.Total)

	// Consulting the trail leaves its own trace.
	require.NotNil(t, selfEntry)
	assert.Equal(t, entity.AuditAction("VIEW_LOGS"), selfEntry.Action)
	assert.Equal(t, "ActivityLog", selfEntry.EntityType)
	require.NotNil(t, selfEntry.UserID)
	assert.Equal(t, actor.UserID, *selfEntry.UserID)
	assert.Equal(t, "page=1 limit=20", selfEntry.Details)
}

func TestQueryLogs_ExtendsUpperBoundToEndOfDay(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	m.logRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
		Run(func(_ context.Context, filter repository.ActivityLogFilter) {
			require.NotNil(t, filter.To)
			assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), *filter.To)
		}).
		Return([]*entity.ActivityLog{}, int64(0), nil)
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{To: &to})
	require.NoError(t, err)
}

func TestQueryLogs_KeepsEndOfDayInTheDateOwnZone(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()
	bogota := time.FixedZone("UTC-5", -5*3600)
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, bogota)

	m.logRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
		Run(func(_ context.Context, filter repository.ActivityLogFilter) {
			require.NotNil(t, filter.To)
			assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, bogota), *filter.To)
		}).
		Return([]*entity.ActivityLog{}, int64(0), nil)
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{To: &to})
	require.NoError(t, err)
}

func TestQueryLogs_Sorting(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantBy    string
		wantDesc  bool
	}{
		{name: "default is newest first", wantBy: "created_at", wantDesc: true},
		{name: "entity type ascending", sortBy: "entityType", sortOrder: "asc", wantBy: "entity_type", wantDesc: false},
		{name: "action descending", sortBy: "action", sortOrder: "desc", wantBy: "action", wantDesc: true},
		{name: "order defaults to desc", sortBy: "userEmail", wantBy: "user_email", wantDesc: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestAuditService(t)
			ctx := context.Background()

			m.logRepo.EXPECT().
				List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
				Run(func(_ context.Context, filter repository.ActivityLogFilter) {
					assert.Equal(t, tt.wantBy, filter.SortBy)
					assert.Equal(t, tt.wantDesc, filter.SortDesc)
				}).
				Return([]*entity.ActivityLog{}, int64(0), nil)
			m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

			_, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{
				SortBy:    tt.sortBy,
				SortOrder: tt.sortOrder,
			})
			require.NoError(t, err)
		})
	}
}

func TestQueryLogs_RejectsUnknownSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.QueryLogsInput
	}{
		{name: "column outside the allow list", input: &usecase.QueryLogsInput{SortBy: "ip_address"}},
		{name: "injection attempt", input: &usecase.QueryLogsInput{SortBy: "created_at; DROP TABLE activity_logs"}},
		{name: "bad order", input: &usecase.QueryLogsInput{SortOrder: "sideways"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestAuditService(t)

			_, err := srv.Query(context.Background(), adminIdentity(), audit.Meta{}, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestQueryLogs_ResolvesUserEmailToID(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()
	user := activeUser("medico@clinica.test", "$2a$hash")

	m.userRepo.EXPECT().FindByEmail(ctx, "medico@clinica.test").Return(user, nil)
	m.logRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
		Run(func(_ context.Context, filter repository.ActivityLogFilter) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, user.ID, *filter.UserID)
		}).
		Return([]*entity.ActivityLog{}, int64(0), nil)
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{
		UserEmail: " Medico@Clinica.test ",
	})
	require.NoError(t, err)
}

func TestQueryLogs_UnknownEmailReturnsEmptyPage(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()

	// No List expectation: an account that does not exist must never widen
	// the query into the unfiltered trail.
	m.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@clinica.test").
		Return(nil, repository.ErrUserNotFound)
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	out, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{
		UserEmail: "ghost@clinica.test",
	})
	require.NoError(t, err)

	assert.Empty(t, out.Logs)
	assert.Equal(t, int64(0), out.Pagination.Total)
	assert.Equal(t, 0, out.Pagination.Pages)
}

func TestQueryLogs_ClampsPagination(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()

	m.logRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ActivityLogFilter")).
		Run(func(_ context.Context, filter repository.ActivityLogFilter) {
			assert.Equal(t, 100, filter.Limit)
			assert.Equal(t, 100, filter.Offset)
		}).
		Return([]*entity.ActivityLog{}, int64(0), nil)
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := srv.Query(ctx, adminIdentity(), audit.Meta{}, &usecase.QueryLogsInput{
		Page:  2,
		Limit: 9999,
	})
	require.NoError(t, err)
}

func TestEntityTrail_ReturnsHistoryAndRecordsAccess(t *testing.T) {
	srv, m := newTestAuditService(t)
	ctx := context.Background()
	entityID := uuid.New().String()
	logs := []*entity.ActivityLog{
		{ID: uuid.New(), Action: entity.AuditUpdate, EntityType: "User", EntityID: entityID},
		{ID: uuid.New(), Action: entity.AuditCreate, EntityType: "User", EntityID: entityID},
	}

	m.logRepo.EXPECT().FindByEntity(ctx, "User", entityID).Return(logs, nil)

	var selfEntry *entity.ActivityLog
	m.logRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(_ context.Context, entry *entity.ActivityLog) { selfEntry = entry }).
		Return(nil).
		Once()

	got, err := srv.EntityTrail(ctx, adminIdentity(), audit.Meta{}, "User", entityID)
	require.NoError(t, err)

	assert.Equal(t, logs, got)
	require.NotNil(t, selfEntry)
	assert.Equal(t, entity.AuditAction("VIEW_ENTITY_AUDIT"), selfEntry.Action)
	assert.Equal(t, "User", selfEntry.EntityType)
	assert.Equal(t, entityID, selfEntry.EntityID)
}
