package postgres

import (
	"context"
	"encoding/json"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityLogRepository implements the domain.ActivityLogRepository interface using GORM.
// The table is append-only: this type deliberately exposes no update or delete.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create appends a new entry to the audit trail.
func (repo *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM, err := fromActivityLogDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	return nil
}

// List returns entries matching the filter, ordered per its sort fields
// (newest first by default), plus the total count.
func (repo *activityLogRepository) List(ctx context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	// The caller validates SortBy against a column allow-list; unset means
	// the default newest-first ordering.
	order := "created_at DESC"
	if filter.SortBy != "" {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		order = filter.SortBy + " " + direction
	}

	var logMs []model.ActivityLogModel
	if err := query.Order(order).Find(&logMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs, err := toActivityLogDomainSlice(logMs)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// FindByEntity returns the full history of a single record, newest first.
func (repo *activityLogRepository) FindByEntity(ctx context.Context, entityType, entityID string) ([]*entity.ActivityLog, error) {
	var logMs []model.ActivityLogModel
	err := repo.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find activity logs by entity")
	}

	return toActivityLogDomainSlice(logMs)
}

// --- Mapper Functions ---

func toActivityLogDomainSlice(data []model.ActivityLogModel) ([]*entity.ActivityLog, error) {
	logs := make([]*entity.ActivityLog, 0, len(data))
	for i := range data {
		log, err := toActivityLogDomain(&data[i])
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, nil
}

func toActivityLogDomain(data *model.ActivityLogModel) (*entity.ActivityLog, error) {
	if data == nil {
		return nil, nil
	}

	log := &entity.ActivityLog{
		ID:         data.ID,
		Action:     entity.AuditAction(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		UserID:     data.UserID,
		UserEmail:  data.UserEmail,
		UserName:   data.UserName,
		Details:    data.Details,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		CreatedAt:  data.CreatedAt,
	}

	if len(data.OldValues) > 0 {
		if err := json.Unmarshal(data.OldValues, &log.OldValues); err != nil {
			return nil, errors.Wrap(err, "failed to decode old values")
		}
	}
	if len(data.NewValues) > 0 {
		if err := json.Unmarshal(data.NewValues, &log.NewValues); err != nil {
			return nil, errors.Wrap(err, "failed to decode new values")
		}
	}

	return log, nil
}

func fromActivityLogDomain(data *entity.ActivityLog) (*model.ActivityLogModel, error) {
	if data == nil {
		return nil, nil
	}

	logM := &model.ActivityLogModel{
		ID:         data.ID,
		Action:     string(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		UserID:     data.UserID,
		UserEmail:  data.UserEmail,
		UserName:   data.UserName,
		Details:    data.Details,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
		CreatedAt:  data.CreatedAt,
	}

	if data.OldValues != nil {
		raw, err := json.Marshal(data.OldValues)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode old values")
		}
		logM.OldValues = raw
	}
	if data.NewValues != nil {
		raw, err := json.Marshal(data.NewValues)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode new values")
		}
		logM.NewValues = raw
	}

	return logM, nil
}
