package model

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(120);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Specialties []SpecialtyModel `gorm:"foreignKey:DepartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}

// SpecialtyModel mirrors the 'specialties' table. Every specialty belongs to
// exactly one department.
type SpecialtyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(120);unique;not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department *DepartmentModel `gorm:"foreignKey:DepartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (SpecialtyModel) TableName() string {
	return "specialties"
}
