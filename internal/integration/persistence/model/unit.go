// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// UnitModel represents the units table in the database.
type UnitModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CondominiumID uuid.UUID `gorm:"type:uuid;not null;index"`
	Number        string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for the UnitModel.
func (UnitModel) TableName() string {
	return "units"
}

// ToEntity converts a UnitModel to a domain Unit entity.
func (m *UnitModel) ToEntity() *entity.Unit {
	return &entity.Unit{
		ID:            m.ID,
		CondominiumID: m.CondominiumID,
		Number:        m.Number,
	}
}
