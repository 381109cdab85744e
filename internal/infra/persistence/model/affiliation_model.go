package model

import (
	"time"

	"github.com/google/uuid"
)

// AffiliationModel mirrors the 'affiliations' table. The composite unique
// index makes duplicate assignments a constraint violation rather than a
// race-prone application check.
type AffiliationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_affiliation_tuple"`
	DepartmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_affiliation_tuple"`
	SpecialtyID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_affiliation_tuple"`
	Role         string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_affiliation_tuple"`
	CreatedAt    time.Time

	Department *DepartmentModel `gorm:"foreignKey:DepartmentID"`
	Specialty  *SpecialtyModel  `gorm:"foreignKey:SpecialtyID"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliationModel) TableName() string {
	return "affiliations"
}
