// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/domain/entity"
)

// DelinquencyRecordModel represents the delinquency_records table in the database.
type DelinquencyRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CondominiumID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       time.Time       `gorm:"type:date;not null;index"`
	PaymentDate   *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the DelinquencyRecordModel.
func (DelinquencyRecordModel) TableName() string {
	return "delinquency_records"
}

// ToEntity converts a DelinquencyRecordModel to a domain DelinquencyRecord entity.
func (m *DelinquencyRecordModel) ToEntity() *entity.DelinquencyRecord {
	return &entity.DelinquencyRecord{
		ID:            m.ID,
		CondominiumID: m.CondominiumID,
		UnitID:        m.UnitID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		AmountPaid:    m.AmountPaid,
		DueDate:       m.DueDate,
		PaymentDate:   m.PaymentDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model with its preloaded category.
func (m *DelinquencyRecordModel) ToEntityWithCategory() *entity.DelinquencyRecordWithCategory {
	result := &entity.DelinquencyRecordWithCategory{
		Record: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// DelinquencyRecordFromEntity converts a domain DelinquencyRecord entity to a model.
func DelinquencyRecordFromEntity(record *entity.DelinquencyRecord) *DelinquencyRecordModel {
	return &DelinquencyRecordModel{
		ID:            record.ID,
		CondominiumID: record.CondominiumID,
		UnitID:        record.UnitID,
		CategoryID:    record.CategoryID,
		Amount:        record.Amount,
		AmountPaid:    record.AmountPaid,
		DueDate:       record.DueDate,
		PaymentDate:   record.PaymentDate,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
