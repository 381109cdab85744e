package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

type directoryServiceMocks struct {
	departmentRepo *mockrepository.MockDepartmentRepository
	specialtyRepo  *mockrepository.MockSpecialtyRepository
	logRepo        *mockrepository.MockActivityLogRepository
}

func newTestDirectoryService(t *testing.T) (usecase.DirectoryUsecase, *directoryServiceMocks) {
	t.Helper()

	m := &directoryServiceMocks{
		departmentRepo: mockrepository.NewMockDepartmentRepository(t),
		specialtyRepo:  mockrepository.NewMockSpecialtyRepository(t),
		logRepo:        mockrepository.NewMockActivityLogRepository(t),
	}
	m.logRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewDirectoryService(DirectoryServiceParams{
		DepartmentRepo: m.departmentRepo,
		SpecialtyRepo:  m.specialtyRepo,
		Recorder:       audit.NewRecorder(audit.RecorderParams{Repo: m.logRepo, Logger: logger}),
		Logger:         logger,
	})

	return srv, m
}

func TestCreateDepartment_UpperCasesName(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()

	m.departmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Department")).
		Run(func(_ context.Context, department *entity.Department) {
			assert.Equal(t, "CARDIOLOGÍA", department.Name)
			assert.Equal(t, "Atención cardiovascular", department.Description)
		}).
		Return(nil)

	department, err := srv.CreateDepartment(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateDepartmentInput{
		Name:        "  cardiología ",
		Description: " Atención cardiovascular ",
	})
	require.NoError(t, err)
	assert.Equal(t, "CARDIOLOGÍA", department.Name)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()

	m.departmentRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateDepartment)

	_, err := srv.CreateDepartment(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateDepartmentInput{
		Name: "CARDIOLOGÍA",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentExists)
}

func TestCreateDepartment_RequiresName(t *testing.T) {
	srv, _ := newTestDirectoryService(t)

	_, err := srv.CreateDepartment(context.Background(), adminIdentity(), audit.Meta{}, &usecase.CreateDepartmentInput{
		Name: "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestCreateSpecialty_RequiresExistingDepartment(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	deptID := uuid.New()

	m.departmentRepo.EXPECT().FindByID(ctx, deptID).Return(nil, repository.ErrDepartmentNotFound)

	_, err := srv.CreateSpecialty(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateSpecialtyInput{
		Name:         "Hemodinamia",
		DepartmentID: deptID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentNotFound)
}

func TestCreateSpecialty_DuplicateWithinDepartment(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	deptID := uuid.New()

	m.departmentRepo.EXPECT().FindByID(ctx, deptID).Return(&entity.Department{ID: deptID}, nil)
	m.specialtyRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateSpecialty)

	_, err := srv.CreateSpecialty(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateSpecialtyInput{
		Name:         "Hemodinamia",
		DepartmentID: deptID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSpecialtyExists)
}

func TestCreateSpecialty(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	deptID := uuid.New()

	m.departmentRepo.EXPECT().FindByID(ctx, deptID).Return(&entity.Department{ID: deptID}, nil)
	m.specialtyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Specialty")).Return(nil)

	specialty, err := srv.CreateSpecialty(ctx, adminIdentity(), audit.Meta{}, &usecase.CreateSpecialtyInput{
		Name:         " Hemodinamia ",
		DepartmentID: deptID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hemodinamia", specialty.Name)
	assert.Equal(t, deptID, specialty.DepartmentID)
}

func TestListSpecialties_ByDepartmentValidatesDepartment(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	deptID := uuid.New()

	m.departmentRepo.EXPECT().FindByID(ctx, deptID).Return(nil, repository.ErrDepartmentNotFound)

	_, err := srv.ListSpecialties(ctx, &deptID)
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentNotFound)
}

func TestListSpecialties_All(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	specialties := []*entity.Specialty{{ID: uuid.New(), Name: "Hemodinamia"}}

	m.specialtyRepo.EXPECT().List(ctx, (*uuid.UUID)(nil)).Return(specialties, nil)

	got, err := srv.ListSpecialties(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, specialties, got)
}

func TestUpdateSpecialty_PartialUpdate(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	deptID := uuid.New()
	specialty := &entity.Specialty{
		ID:           uuid.New(),
		Name:         "Hemodinamia",
		DepartmentID: deptID,
		Description:  "original",
	}

	m.specialtyRepo.EXPECT().FindByID(ctx, specialty.ID).Return(specialty, nil)
	m.specialtyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Specialty")).
		Run(func(_ context.Context, updated *entity.Specialty) {
			assert.Equal(t, "Electrofisiología", updated.Name)
			assert.Equal(t, deptID, updated.DepartmentID)
			assert.Equal(t, "original", updated.Description)
		}).
		Return(nil)

	name := " Electrofisiología "
	updated, err := srv.UpdateSpecialty(ctx, adminIdentity(), audit.Meta{}, specialty.ID, &usecase.UpdateSpecialtyInput{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrofisiología", updated.Name)
}

func TestUpdateSpecialty_MoveValidatesTargetDepartment(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	specialty := &entity.Specialty{ID: uuid.New(), Name: "Hemodinamia", DepartmentID: uuid.New()}
	targetDeptID := uuid.New()

	m.specialtyRepo.EXPECT().FindByID(ctx, specialty.ID).Return(specialty, nil)
	m.departmentRepo.EXPECT().FindByID(ctx, targetDeptID).Return(nil, repository.ErrDepartmentNotFound)

	_, err := srv.UpdateSpecialty(ctx, adminIdentity(), audit.Meta{}, specialty.ID, &usecase.UpdateSpecialtyInput{
		DepartmentID: &targetDeptID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentNotFound)
}

func TestUpdateSpecialty_BlankNameRejected(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	specialty := &entity.Specialty{ID: uuid.New(), Name: "Hemodinamia", DepartmentID: uuid.New()}

	m.specialtyRepo.EXPECT().FindByID(ctx, specialty.ID).Return(specialty, nil)

	blank := "  "
	_, err := srv.UpdateSpecialty(ctx, adminIdentity(), audit.Meta{}, specialty.ID, &usecase.UpdateSpecialtyInput{
		Name: &blank,
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestDeleteSpecialty(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	specialty := &entity.Specialty{ID: uuid.New(), Name: "Hemodinamia", DepartmentID: uuid.New()}

	m.specialtyRepo.EXPECT().FindByID(ctx, specialty.ID).Return(specialty, nil)
	m.specialtyRepo.EXPECT().Delete(ctx, specialty.ID).Return(nil)

	require.NoError(t, srv.DeleteSpecialty(ctx, adminIdentity(), audit.Meta{}, specialty.ID))
}

func TestDeleteSpecialty_NotFound(t *testing.T) {
	srv, m := newTestDirectoryService(t)
	ctx := context.Background()
	id := uuid.New()

	m.specialtyRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSpecialtyNotFound)

	err := srv.DeleteSpecialty(ctx, adminIdentity(), audit.Meta{}, id)
	assert.ErrorIs(t, err, domainerrors.ErrSpecialtyNotFound)
}
