package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel mirrors the 'activity_logs' table. Rows are append-only;
// no update or delete path exists in the repository.
type ActivityLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	Action     string     `gorm:"type:varchar(40);not null;index"`
	EntityType string     `gorm:"type:varchar(60);not null;index:idx_activity_entity"`
	EntityID   string     `gorm:"type:varchar(120);index:idx_activity_entity"`
	OldValues  []byte     `gorm:"type:jsonb"`
	NewValues  []byte     `gorm:"type:jsonb"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	UserEmail  string     `gorm:"type:varchar(255)"`
	UserName   string     `gorm:"type:varchar(150)"`
	Details    string     `gorm:"type:text"`
	IPAddress  string     `gorm:"type:varchar(64)"`
	UserAgent  string     `gorm:"type:varchar(512)"`
	CreatedAt  time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
