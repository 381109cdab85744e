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

// departmentRepository implements the domain.DepartmentRepository interface using GORM.
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create persists a new department.
func (repo *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	departmentM := fromDepartmentDomain(department)

	if err := repo.db.WithContext(ctx).Create(departmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDepartment
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create department")
	}

	return nil
}

// FindByID retrieves a department by its unique ID.
func (repo *departmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	var departmentM model.DepartmentModel
	err := repo.db.WithContext(ctx).First(&departmentM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department by id")
	}

	return toDepartmentDomain(&departmentM), nil
}

// FindByName retrieves a department by its exact name.
func (repo *departmentRepository) FindByName(ctx context.Context, name string) (*entity.Department, error) {
	var departmentM model.DepartmentModel
	err := repo.db.WithContext(ctx).First(&departmentM, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department by name")
	}

	return toDepartmentDomain(&departmentM), nil
}

// List returns all departments ordered by name.
func (repo *departmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	var departmentMs []model.DepartmentModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&departmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(departmentMs))
	for i := range departmentMs {
		departments = append(departments, toDepartmentDomain(&departmentMs[i]))
	}

	return departments, nil
}

// Update modifies an existing department.
func (repo *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	result := repo.db.WithContext(ctx).Model(&model.DepartmentModel{}).
		Where("id = ?", department.ID).
		Updates(map[string]any{
			"name":        department.Name,
			"description": department.Description,
			"updated_at":  department.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDepartment
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update department")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department.
func (repo *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete department")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// specialtyRepository implements the domain.SpecialtyRepository interface using GORM.
type specialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository is the constructor for specialtyRepository.
func NewSpecialtyRepository(db *gorm.DB) repository.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

// Create persists a new specialty.
func (repo *specialtyRepository) Create(ctx context.Context, specialty *entity.Specialty) error {
	specialtyM := fromSpecialtyDomain(specialty)

	if err := repo.db.WithContext(ctx).Create(specialtyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSpecialty
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDepartmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create specialty")
	}

	return nil
}

// FindByID retrieves a specialty with the department name resolved.
func (repo *specialtyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error) {
	var specialtyM model.SpecialtyModel
	err := repo.db.WithContext(ctx).
		Preload("Department").
		First(&specialtyM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecialtyNotFound
		}

		return nil, errors.Wrap(err, "failed to find specialty by id")
	}

	return toSpecialtyDomain(&specialtyM), nil
}

// List returns all specialties, optionally restricted to one department.
func (repo *specialtyRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]*entity.Specialty, error) {
	query := repo.db.WithContext(ctx).Preload("Department").Order("name ASC")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var specialtyMs []model.SpecialtyModel
	if err := query.Find(&specialtyMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list specialties")
	}

	specialties := make([]*entity.Specialty, 0, len(specialtyMs))
	for i := range specialtyMs {
		specialties = append(specialties, toSpecialtyDomain(&specialtyMs[i]))
	}

	return specialties, nil
}

// Update modifies an existing specialty.
func (repo *specialtyRepository) Update(ctx context.Context, specialty *entity.Specialty) error {
	result := repo.db.WithContext(ctx).Model(&model.SpecialtyModel{}).
		Where("id = ?", specialty.ID).
		Updates(map[string]any{
			"name":          specialty.Name,
			"department_id": specialty.DepartmentID,
			"description":   specialty.Description,
			"updated_at":    specialty.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSpecialty
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDepartmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update specialty")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSpecialtyNotFound
	}

	return nil
}

// Delete removes a specialty.
func (repo *specialtyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SpecialtyModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete specialty")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSpecialtyNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDepartmentDomain(data *model.DepartmentModel) *entity.Department {
	if data == nil {
		return nil
	}

	return &entity.Department{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromDepartmentDomain(data *entity.Department) *model.DepartmentModel {
	if data == nil {
		return nil
	}

	return &model.DepartmentModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toSpecialtyDomain(data *model.SpecialtyModel) *entity.Specialty {
	if data == nil {
		return nil
	}

	specialty := &entity.Specialty{
		ID:           data.ID,
		Name:         data.Name,
		DepartmentID: data.DepartmentID,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Department != nil {
		specialty.DepartmentName = data.Department.Name
	}

	return specialty
}

func fromSpecialtyDomain(data *entity.Specialty) *model.SpecialtyModel {
	if data == nil {
		return nil
	}

	return &model.SpecialtyModel{
		ID:           data.ID,
		Name:         data.Name,
		DepartmentID: data.DepartmentID,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
