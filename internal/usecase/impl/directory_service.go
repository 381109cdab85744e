package impl

import (
	"context"
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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	departmentRepo repository.DepartmentRepository
	specialtyRepo  repository.SpecialtyRepository
	recorder       *audit.Recorder
	logger         *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	DepartmentRepo repository.DepartmentRepository
	SpecialtyRepo  repository.SpecialtyRepository
	Recorder       *audit.Recorder
	Logger         *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		departmentRepo: params.DepartmentRepo,
		specialtyRepo:  params.SpecialtyRepo,
		recorder:       params.Recorder,
		logger:         params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDepartment adds a department. Names are stored upper-cased so
// uniqueness is case-insensitive.
func (srv *directoryService) CreateDepartment(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.CreateDepartmentInput) (*entity.Department, error) {
	name := strings.ToUpper(strings.TrimSpace(input.Name))
	if name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	now := time.Now().UTC()
	department := &entity.Department{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, repository.ErrDuplicateDepartment) {
			return nil, domainerrors.ErrDepartmentExists
		}

		return nil, errors.Wrap(err, "failed to create department")
	}

	srv.recorder.RecordCreate(ctx, actor, meta, "Department", department.ID.String(), department)
	srv.log(ctx).Info("department created", slog.String("name", name))

	return department, nil
}

// ListDepartments returns all departments ordered by name.
func (srv *directoryService) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	departments, err := srv.departmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// CreateSpecialty adds a specialty under an existing department.
func (srv *directoryService) CreateSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.CreateSpecialtyInput) (*entity.Specialty, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.DepartmentID == uuid.Nil {
		return nil, domainerrors.ErrMissingFields
	}

	if _, err := srv.departmentRepo.FindByID(ctx, input.DepartmentID); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, domainerrors.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department")
	}

	now := time.Now().UTC()
	specialty := &entity.Specialty{
		ID:           uuid.New(),
		Name:         name,
		DepartmentID: input.DepartmentID,
		Description:  strings.TrimSpace(input.Description),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.specialtyRepo.Create(ctx, specialty); err != nil {
		if errors.Is(err, repository.ErrDuplicateSpecialty) {
			return nil, domainerrors.ErrSpecialtyExists
		}

		return nil, errors.Wrap(err, "failed to create specialty")
	}

	srv.recorder.RecordCreate(ctx, actor, meta, "Specialty", specialty.ID.String(), specialty)

	return specialty, nil
}

// ListSpecialties returns all specialties, or those of one department.
func (srv *directoryService) ListSpecialties(ctx context.Context, departmentID *uuid.UUID) ([]*entity.Specialty, error) {
	if departmentID != nil {
		if _, err := srv.departmentRepo.FindByID(ctx, *departmentID); err != nil {
			if errors.Is(err, repository.ErrDepartmentNotFound) {
				return nil, domainerrors.ErrDepartmentNotFound
			}

			return nil, errors.Wrap(err, "failed to find department")
		}
	}

	specialties, err := srv.specialtyRepo.List(ctx, departmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list specialties")
	}

	return specialties, nil
}

// UpdateSpecialty renames or moves a specialty. Nil fields are left unchanged.
func (srv *directoryService) UpdateSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID, input *usecase.UpdateSpecialtyInput) (*entity.Specialty, error) {
	specialty, err := srv.specialtyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSpecialtyNotFound) {
		return nil, domainerrors.ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find specialty")
	}

	before := *specialty

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrMissingFields
		}
		specialty.Name = name
	}
	if input.DepartmentID != nil {
		if _, err := srv.departmentRepo.FindByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, repository.ErrDepartmentNotFound) {
				return nil, domainerrors.ErrDepartmentNotFound
			}

			return nil, errors.Wrap(err, "failed to find department")
		}
		specialty.DepartmentID = *input.DepartmentID
	}
	if input.Description != nil {
		specialty.Description = strings.TrimSpace(*input.Description)
	}

	specialty.UpdatedAt = time.Now().UTC()
	if err := srv.specialtyRepo.Update(ctx, specialty); err != nil {
		if errors.Is(err, repository.ErrDuplicateSpecialty) {
			return nil, domainerrors.ErrSpecialtyExists
		}

		return nil, errors.Wrap(err, "failed to update specialty")
	}

	srv.recorder.RecordUpdate(ctx, actor, meta, "Specialty", id.String(), before, specialty)

	return specialty, nil
}

// DeleteSpecialty removes a specialty.
func (srv *directoryService) DeleteSpecialty(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error {
	specialty, err := srv.specialtyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSpecialtyNotFound) {
		return domainerrors.ErrSpecialtyNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find specialty")
	}

	if err := srv.specialtyRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete specialty")
	}

	srv.recorder.RecordDelete(ctx, actor, meta, "Specialty", id.String(), specialty)

	return nil
}
