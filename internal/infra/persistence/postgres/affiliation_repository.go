package postgres

import (
	"context"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// affiliationRepository implements the domain.AffiliationRepository interface using GORM.
type affiliationRepository struct {
	db *gorm.DB
}

// NewAffiliationRepository is the constructor for affiliationRepository.
func NewAffiliationRepository(db *gorm.DB) repository.AffiliationRepository {
	return &affiliationRepository{db: db}
}

// Create persists a new affiliation.
func (repo *affiliationRepository) Create(ctx context.Context, affiliation *entity.Affiliation) error {
	affiliationM := fromAffiliationDomain(affiliation)

	if err := repo.db.WithContext(ctx).Create(affiliationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAffiliation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliation")
	}

	affiliation.CreatedAt = affiliationM.CreatedAt

	return nil
}

// FindByID retrieves a single affiliation with names resolved.
func (repo *affiliationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliation, error) {
	var affiliationM model.AffiliationModel
	err := repo.db.WithContext(ctx).
		Preload("Department").
		Preload("Specialty").
		First(&affiliationM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliationNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliation by id")
	}

	return toAffiliationDomain(&affiliationM), nil
}

// FindByUser retrieves all affiliations of a user with names resolved.
func (repo *affiliationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Affiliation, error) {
	var affiliationMs []model.AffiliationModel
	err := repo.db.WithContext(ctx).
		Preload("Department").
		Preload("Specialty").
		Order("created_at ASC").
		Find(&affiliationMs, "user_id = ?", userID).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find affiliations by user")
	}

	affiliations := make([]*entity.Affiliation, 0, len(affiliationMs))
	for i := range affiliationMs {
		affiliations = append(affiliations, toAffiliationDomain(&affiliationMs[i]))
	}

	return affiliations, nil
}

// Exists reports whether the user already holds the given assignment.
func (repo *affiliationRepository) Exists(ctx context.Context, userID, departmentID uuid.UUID, specialtyID *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.AffiliationModel{}).
		Where("user_id = ? AND department_id = ?", userID, departmentID)
	if specialtyID != nil {
		query = query.Where("specialty_id = ?", *specialtyID)
	} else {
		query = query.Where("specialty_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check affiliation existence")
	}

	return count > 0, nil
}

// Delete removes an affiliation.
func (repo *affiliationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AffiliationModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete affiliation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAffiliationNotFound
	}

	return nil
}

// DeleteByUser removes every affiliation of a user.
func (repo *affiliationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.AffiliationModel{}, "user_id = ?", userID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete affiliations by user")
	}

	return nil
}

// --- Mapper Functions ---

// toAffiliationDomain converts a GORM AffiliationModel to a domain Affiliation entity.
func toAffiliationDomain(data *model.AffiliationModel) *entity.Affiliation {
	if data == nil {
		return nil
	}

	affiliation := &entity.Affiliation{
		ID:           data.ID,
		UserID:       data.UserID,
		DepartmentID: data.DepartmentID,
		SpecialtyID:  data.SpecialtyID,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
	}

	if data.Department != nil {
		affiliation.DepartmentName = data.Department.Name
	}
	if data.Specialty != nil {
		affiliation.SpecialtyName = data.Specialty.Name
	}

	return affiliation
}

// fromAffiliationDomain converts a domain Affiliation entity to a GORM AffiliationModel.
func fromAffiliationDomain(data *entity.Affiliation) *model.AffiliationModel {
	if data == nil {
		return nil
	}

	return &model.AffiliationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DepartmentID: data.DepartmentID,
		SpecialtyID:  data.SpecialtyID,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
	}
}
