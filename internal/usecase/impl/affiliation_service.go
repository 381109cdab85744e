package impl

import (
	"context"
	"log/slog"
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

// affiliationService implements the AffiliationUsecase interface.
type affiliationService struct {
	affiliationRepo repository.AffiliationRepository
	userRepo        repository.UserRepository
	departmentRepo  repository.DepartmentRepository
	specialtyRepo   repository.SpecialtyRepository
	recorder        *audit.Recorder
	logger          *slog.Logger
}

// AffiliationServiceParams holds dependencies for AffiliationService, injected by Fx.
type AffiliationServiceParams struct {
	fx.In

	AffiliationRepo repository.AffiliationRepository
	UserRepo        repository.UserRepository
	DepartmentRepo  repository.DepartmentRepository
	SpecialtyRepo   repository.SpecialtyRepository
	Recorder        *audit.Recorder
	Logger          *slog.Logger
}

// NewAffiliationService is the constructor for affiliationService.
func NewAffiliationService(params AffiliationServiceParams) usecase.AffiliationUsecase {
	return &affiliationService{
		affiliationRepo: params.AffiliationRepo,
		userRepo:        params.UserRepo,
		departmentRepo:  params.DepartmentRepo,
		specialtyRepo:   params.SpecialtyRepo,
		recorder:        params.Recorder,
		logger:          params.Logger,
	}
}

func (srv *affiliationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create links a user to a department, optionally through a specialty. When a
// specialty is given its department wins; a conflicting explicit department is
// rejected.
func (srv *affiliationService) Create(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.CreateAffiliationInput) (*entity.Affiliation, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	role := user.Role
	if input.Role != "" {
		parsed, ok := entity.ParseRole(input.Role)
		if !ok {
			return nil, domainerrors.ErrValidation.WithDetails("rol inválido")
		}
		role = parsed
	}

	var departmentID uuid.UUID
	var specialtyID *uuid.UUID

	switch {
	case input.SpecialtyID != nil:
		specialty, err := srv.specialtyRepo.FindByID(ctx, *input.SpecialtyID)
		if errors.Is(err, repository.ErrSpecialtyNotFound) {
			return nil, domainerrors.ErrSpecialtyNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find specialty")
		}

		if input.DepartmentID != nil && *input.DepartmentID != specialty.DepartmentID {
			return nil, domainerrors.ErrSpecialtyDeptMismatch
		}

		departmentID = specialty.DepartmentID
		specialtyID = input.SpecialtyID

	case input.DepartmentID != nil:
		if _, err := srv.departmentRepo.FindByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, repository.ErrDepartmentNotFound) {
				return nil, domainerrors.ErrDepartmentNotFound
			}

			return nil, errors.Wrap(err, "failed to find department")
		}
		departmentID = *input.DepartmentID

	default:
		return nil, domainerrors.ErrAffiliationScope
	}

	exists, err := srv.affiliationRepo.Exists(ctx, input.UserID, departmentID, specialtyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check affiliation")
	}
	if exists {
		return nil, domainerrors.ErrAffiliationExists
	}

	affiliation := &entity.Affiliation{
		ID:           uuid.New(),
		UserID:       input.UserID,
		DepartmentID: departmentID,
		SpecialtyID:  specialtyID,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.affiliationRepo.Create(ctx, affiliation); err != nil {
		if errors.Is(err, repository.ErrDuplicateAffiliation) {
			return nil, domainerrors.ErrAffiliationExists
		}

		return nil, errors.Wrap(err, "failed to create affiliation")
	}

	srv.recorder.RecordCreate(ctx, actor, meta, "Affiliation", affiliation.ID.String(), affiliation)
	srv.log(ctx).Info("affiliation created",
		slog.String("user_id", input.UserID.String()),
		slog.String("department_id", departmentID.String()))

	return affiliation, nil
}

// ListByUser returns all affiliations of a user with names resolved.
func (srv *affiliationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Affiliation, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	affiliations, err := srv.affiliationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list affiliations")
	}

	return affiliations, nil
}

// Delete removes an affiliation. Reassignment is delete plus create.
func (srv *affiliationService) Delete(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error {
	affiliation, err := srv.affiliationRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAffiliationNotFound) {
		return domainerrors.ErrAffiliationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find affiliation")
	}

	if err := srv.affiliationRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete affiliation")
	}

	srv.recorder.RecordDelete(ctx, actor, meta, "Affiliation", id.String(), affiliation)

	return nil
}
