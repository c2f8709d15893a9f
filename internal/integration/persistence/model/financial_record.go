// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/domain/entity"
)

// FinancialRecordModel represents the financial_records table in the database.
type FinancialRecordModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CondominiumID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID              *uuid.UUID      `gorm:"type:uuid;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaid          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate             time.Time       `gorm:"type:date;not null;index"`
	PaymentDate         *time.Time      `gorm:"type:date"`
	PaymentStatusID     int             `gorm:"type:integer;not null"`
	PaymentMethodID     int             `gorm:"type:integer;not null"`
	Notes               string          `gorm:"type:text"`
	IsRecurring         bool            `gorm:"default:false"`
	IsDeleted           bool            `gorm:"default:false;index"`
	DelinquencyRecordID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the FinancialRecordModel.
func (FinancialRecordModel) TableName() string {
	return "financial_records"
}

// ToEntity converts a FinancialRecordModel to a domain FinancialRecord entity.
func (m *FinancialRecordModel) ToEntity() *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:                  m.ID,
		CondominiumID:       m.CondominiumID,
		CategoryID:          m.CategoryID,
		UnitID:              m.UnitID,
		Amount:              m.Amount,
		AmountPaid:          m.AmountPaid,
		DueDate:             m.DueDate,
		PaymentDate:         m.PaymentDate,
		PaymentStatusID:     m.PaymentStatusID,
		PaymentMethodID:     m.PaymentMethodID,
		Notes:               m.Notes,
		IsRecurring:         m.IsRecurring,
		IsDeleted:           m.IsDeleted,
		DelinquencyRecordID: m.DelinquencyRecordID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model with its preloaded category.
func (m *FinancialRecordModel) ToEntityWithCategory() *entity.FinancialRecordWithCategory {
	result := &entity.FinancialRecordWithCategory{
		Record: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// FinancialRecordFromEntity converts a domain FinancialRecord entity to a FinancialRecordModel.
func FinancialRecordFromEntity(record *entity.FinancialRecord) *FinancialRecordModel {
	return &FinancialRecordModel{
		ID:                  record.ID,
		CondominiumID:       record.CondominiumID,
		CategoryID:          record.CategoryID,
		UnitID:              record.UnitID,
		Amount:              record.Amount,
		AmountPaid:          record.AmountPaid,
		DueDate:             record.DueDate,
		PaymentDate:         record.PaymentDate,
		PaymentStatusID:     record.PaymentStatusID,
		PaymentMethodID:     record.PaymentMethodID,
		Notes:               record.Notes,
		IsRecurring:         record.IsRecurring,
		IsDeleted:           record.IsDeleted,
		DelinquencyRecordID: record.DelinquencyRecordID,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}
}
