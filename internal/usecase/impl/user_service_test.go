package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"clinica/config"
	"clinica/internal/audit"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	mockrepository "clinica/internal/mocks/repository"
	mockservice "clinica/internal/mocks/service"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager       *mockrepository.MockTransactionManager
	userRepo        *mockrepository.MockUserRepository
	affiliationRepo *mockrepository.MockAffiliationRepository
	hasher          *mockservice.MockPasswordHasher
	mailer          *mockservice.MockMailer
	codes           *mockservice.MockCodeStore
	logRepo         *mockrepository.MockActivityLogRepository
}

func newTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		txManager:       mockrepository.NewMockTransactionManager(t),
		userRepo:        mockrepository.NewMockUserRepository(t),
		affiliationRepo: mockrepository.NewMockAffiliationRepository(t),
		hasher:          mockservice.NewMockPasswordHasher(t),
		mailer:          mockservice.NewMockMailer(t),
		codes:           mockservice.NewMockCodeStore(t),
		logRepo:         mockrepository.NewMockActivityLogRepository(t),
	}
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewUserService(UserServiceParams{
		TxManager:       m.txManager,
		UserRepo:        m.userRepo,
		AffiliationRepo: m.affiliationRepo,
		Hasher:          m.hasher,
		Mailer:          m.mailer,
		CodeStore:       m.codes,
		Recorder:        audit.NewRecorder(audit.RecorderParams{Repo: m.logRepo, Logger: logger}),
		Config: &config.Config{
			Verification: &config.VerificationConfig{
				ActivationTTL: 15 * time.Minute,
				LoginCodeTTL:  10 * time.Minute,
			},
		},
		Logger: logger,
	})

	return srv, m
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{
		UserID:   uuid.New(),
		Email:    "admin@clinica.test",
		FullName: "Admin",
		Role:     entity.RoleAdministrador,
	}
}

func TestCreateByAdmin_CreatesPendingAccountWithActivationEmail(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().ValidateStrength("S3cure!Pass").Return(nil)
	m.hasher.EXPECT().Hash("S3cure!Pass").Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.codes.EXPECT().Put(ctx, mock.AnythingOfType("*entity.VerificationCode")).Return(nil)
	m.mailer.EXPECT().
		SendVerificationEmail(ctx, "enfermero@clinica.test", "Carlos Vega", mock.AnythingOfType("string"), 15*time.Minute).
		Return(nil)

	user, err := srv.CreateByAdmin(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateUserInput{
		Email:    "Enfermero@Clinica.test",
		FullName: "Carlos Vega",
		Role:     "enfermero",
		Password: "S3cure!Pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "enfermero@clinica.test", user.Email)
	assert.Equal(t, entity.RoleEnfermero, user.Role)
	assert.Equal(t, entity.StatusPending, user.Status)
	assert.True(t, user.IsActive)
}

func TestCreateByAdmin_GeneratesTemporaryPassword(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	// No ValidateStrength call: generated passwords are not user-chosen.
	var hashed string
	m.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Run(func(password string) { hashed = password }).
		Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.codes.EXPECT().Put(ctx, mock.Anything).Return(nil)
	m.mailer.EXPECT().
		SendVerificationEmail(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	_, err := srv.CreateByAdmin(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateUserInput{
		Email:    "paciente@clinica.test",
		FullName: "Luisa Mora",
		Role:     "PACIENTE",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
}

func TestCreateByAdmin_RejectsUnknownRole(t *testing.T) {
	srv, _ := newTestUserService(t)

	_, err := srv.CreateByAdmin(context.Background(), adminIdentity(), audit.Meta{}, &usecase.CreateUserInput{
		Email:    "alguien@clinica.test",
		FullName: "Alguien",
		Role:     "SUPERUSER",
		Password: "S3cure!Pass",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), strings.Join(entity.RoleNames(), ", "))
}

func TestCreateByAdmin_RollsBackWhenEmailFails(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().ValidateStrength("S3cure!Pass").Return(nil)
	m.hasher.EXPECT().Hash("S3cure!Pass").Return("$2a$hash", nil)

	var createdID uuid.UUID
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { createdID = user.ID }).
		Return(nil)
	m.codes.EXPECT().Put(ctx, mock.Anything).Return(nil)
	m.mailer.EXPECT().
		SendVerificationEmail(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)
	m.userRepo.EXPECT().
		Delete(ctx, mock.AnythingOfType("uuid.UUID")).
		Run(func(_ context.Context, id uuid.UUID) { assert.Equal(t, createdID, id) }).
		Return(nil)

	_, err := srv.CreateByAdmin(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateUserInput{
		Email:    "medico@clinica.test",
		FullName: "Elena Soto",
		Role:     "MEDICO",
		Password: "S3cure!Pass",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailDelivery.ErrorCode(), appErr.ErrorCode())
}

func TestCreateByAdmin_DuplicateEmail(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().ValidateStrength("S3cure!Pass").Return(nil)
	m.hasher.EXPECT().Hash("S3cure!Pass").Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := srv.CreateByAdmin(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateUserInput{
		Email:    "medico@clinica.test",
		FullName: "Elena Soto",
		Role:     "MEDICO",
		Password: "S3cure!Pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestList_NormalizesPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", page: 0, limit: 0, wantOffset: 0, wantLimit: 20},
		{name: "explicit page", page: 3, limit: 10, wantOffset: 20, wantLimit: 10},
		{name: "limit capped", page: 1, limit: 500, wantOffset: 0, wantLimit: 100},
		{name: "negative page", page: -2, limit: 10, wantOffset: 0, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestUserService(t)
			ctx := context.Background()

			m.userRepo.EXPECT().
				List(ctx, mock.AnythingOfType("repository.UserFilter")).
				Run(func(_ context.Context, filter repository.UserFilter) {
					assert.Equal(t, tt.wantOffset, filter.Offset)
					assert.Equal(t, tt.wantLimit, filter.Limit)
				}).
				Return([]*entity.User{}, int64(0), nil)

			_, err := srv.List(ctx, &usecase.ListUsersInput{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)
		})
	}
}

func TestList_ReportsPaginationMetadata(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{activeUser("a@clinica.test", "h"), activeUser("b@clinica.test", "h")}
	m.userRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.UserFilter")).
		Return(users, int64(42), nil)

	out, err := srv.List(ctx, &usecase.ListUsersInput{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, users, out.Users)
	assert.Equal(t, int64(42), out.Pagination.Total)
	assert.Equal(t, 5, out.Pagination.Pages)
	assert.Equal(t, 2, out.Pagination.CurrentPage)
	assert.Equal(t, 10, out.Pagination.PageSize)
}

func TestList_RejectsUnknownRoleFilter(t *testing.T) {
	srv, _ := newTestUserService(t)

	_, err := srv.List(context.Background(), &usecase.ListUsersInput{Role: "ADMIN"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestDeactivateActivate_TogglesAccount(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()
	user := activeUser("medico@clinica.test", "$2a$hash")

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) { assert.False(t, updated.IsActive) }).
		Return(nil)

	updated, err := srv.Deactivate(ctx, adminIdentity(), audit.Meta{}, user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDeactivate_NoopWhenAlreadyInactive(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()
	user := activeUser("medico@clinica.test", "$2a$hash")
	user.IsActive = false

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	updated, err := srv.Deactivate(ctx, adminIdentity(), audit.Meta{}, user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDelete_RemovesUserAndAffiliationsTransactionally(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()
	user := activeUser("medico@clinica.test", "$2a$hash")

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	txAffiliationRepo := mockrepository.NewMockAffiliationRepository(t)
	txUserRepo := mockrepository.NewMockUserRepository(t)
	txAffiliationRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	factory := mockrepository.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAffiliationRepository().Return(txAffiliationRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, srv.Delete(ctx, adminIdentity(), audit.Meta{}, user.ID))
}

func TestDelete_UnknownUser(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	err := srv.Delete(ctx, adminIdentity(), audit.Meta{}, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBulkImport_ReportsRowErrorsAndKeepsValidRows(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil).
		Once()
	m.codes.EXPECT().Put(ctx, mock.Anything).Return(nil)
	m.mailer.EXPECT().
		SendVerificationEmail(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	rows := []usecase.ImportRow{
		{Line: 2, Email: "valido@clinica.test", FullName: "Valido", Role: "MEDICO"},
		{Line: 3, Email: "", FullName: "Sin Correo", Role: "MEDICO"},
		{Line: 4, Email: "no-es-correo", FullName: "Malo", Role: "MEDICO"},
		{Line: 5, Email: "valido@clinica.test", FullName: "Repetido", Role: "MEDICO"},
		{Line: 6, Email: "otro@clinica.test", FullName: "Otro", Role: "GERENTE"},
	}

	out, err := srv.BulkImport(ctx, adminIdentity(), audit.Meta{}, rows)
	require.NoError(t, err)

	require.Len(t, out.Created, 1)
	assert.Equal(t, "valido@clinica.test", out.Created[0].Email)

	require.Len(t, out.Errors, 4)
	assert.Equal(t, 3, out.Errors[0].Line)
	assert.Equal(t, "faltan datos obligatorios", out.Errors[0].Reason)
	assert.Equal(t, "el correo electrónico no es válido", out.Errors[1].Reason)
	assert.Equal(t, "correo duplicado en el archivo", out.Errors[2].Reason)
	assert.Contains(t, out.Errors[3].Reason, "rol inválido")
}

func TestBulkImport_ExistingEmailRejectsRowOnly(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	out, err := srv.BulkImport(ctx, adminIdentity(), audit.Meta{}, []usecase.ImportRow{
		{Line: 2, Email: "existente@clinica.test", FullName: "Existente", Role: "MEDICO"},
	})
	require.NoError(t, err)

	assert.Empty(t, out.Created)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "el correo ya está registrado", out.Errors[0].Reason)
}

func TestBulkImport_KeepsUserWhenActivationEmailBounces(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.codes.EXPECT().Put(ctx, mock.Anything).Return(nil)
	m.mailer.EXPECT().
		SendVerificationEmail(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	out, err := srv.BulkImport(ctx, adminIdentity(), audit.Meta{}, []usecase.ImportRow{
		{Line: 2, Email: "rebote@clinica.test", FullName: "Rebote", Role: "MEDICO"},
	})
	require.NoError(t, err)

	require.Len(t, out.Created, 1)
	assert.Empty(t, out.Errors)
}

func TestBulkImport_ActiveStatusSkipsActivationEmail(t *testing.T) {
	srv, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$hash", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	out, err := srv.BulkImport(ctx, adminIdentity(), audit.Meta{}, []usecase.ImportRow{
		{Line: 2, Email: "activo@clinica.test", FullName: "Activo", Role: "MEDICO", Status: "ACTIVE"},
	})
	require.NoError(t, err)

	require.Len(t, out.Created, 1)
	assert.Equal(t, entity.StatusActive, out.Created[0].Status)
}
