package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"clinica/internal/domain/entity"
	mockRepo "clinica/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(repo *mockRepo.MockActivityLogRepository) *Recorder {
	return NewRecorder(RecorderParams{
		Repo:   repo,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRecorder_RecordCreate_PersistsSanitizedEntry(t *testing.T) {
	repo := mockRepo.NewMockActivityLogRepository(t)
	recorder := newTestRecorder(repo)

	actor := &entity.Identity{
		UserID:   uuid.New(),
		Email:    "admin@example.com",
		FullName: "Admin",
		Role:     entity.RoleAdministrador,
	}
	created := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$12$abc",
	}

	var persisted *entity.ActivityLog
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, log *entity.ActivityLog) {
			persisted = log
		}).
		Return(nil)

	meta := Meta{IPAddress: "10.0.0.1", UserAgent: "curl/8"}
	recorder.RecordCreate(context.Background(), actor, meta, "User", created.ID.String(), created)

	require.NotNil(t, persisted)
	assert.Equal(t, entity.AuditCreate, persisted.Action)
	assert.Equal(t, "User", persisted.EntityType)
	assert.Equal(t, created.ID.String(), persisted.EntityID)
	assert.Equal(t, "10.0.0.1", persisted.IPAddress)
	assert.Equal(t, "curl/8", persisted.UserAgent)
	require.NotNil(t, persisted.UserID)
	assert.Equal(t, actor.UserID, *persisted.UserID)
	assert.Equal(t, actor.Email, persisted.UserEmail)

	require.NotNil(t, persisted.NewValues)
	assert.Equal(t, Redacted, persisted.NewValues["PasswordHash"])
	assert.Nil(t, persisted.OldValues)
}

func TestRecorder_RecordSwallowsPersistenceFailure(t *testing.T) {
	repo := mockRepo.NewMockActivityLogRepository(t)
	recorder := newTestRecorder(repo)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Return(assert.AnError)

	// Must not panic and must not surface the error in any way.
	recorder.Record(context.Background(), nil, Meta{}, Entry{Action: entity.AuditDelete})
}

func TestRecorder_RecordLoginFailed_AnonymousActor(t *testing.T) {
	repo := mockRepo.NewMockActivityLogRepository(t)
	recorder := newTestRecorder(repo)

	var persisted *entity.ActivityLog
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, log *entity.ActivityLog) {
			persisted = log
		}).
		Return(nil)

	recorder.RecordLoginFailed(context.Background(), Meta{}, "ana@example.com", "contraseña incorrecta")

	require.NotNil(t, persisted)
	assert.Equal(t, entity.AuditLoginFailed, persisted.Action)
	assert.Nil(t, persisted.UserID)
	assert.Equal(t, "ana@example.com", persisted.EntityID)
	assert.Equal(t, "contraseña incorrecta", persisted.Details)
}

func TestRecorder_WriteOutlivesCanceledRequest(t *testing.T) {
	repo := mockRepo.NewMockActivityLogRepository(t)
	recorder := newTestRecorder(repo)

	var called bool
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(ctx context.Context, log *entity.ActivityLog) {
			called = true
			// The store write runs on its own deadline, not the request's.
			assert.NoError(t, ctx.Err())
		}).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recorder.Record(ctx, nil, Meta{}, Entry{Action: entity.AuditView})

	require.True(t, called)
}
