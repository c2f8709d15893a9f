// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/domain/entity"
)

// CondominiumFinanceModel represents the condominium_finances table, the
// per-month manual override row.
type CondominiumFinanceModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CondominiumID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_condo_finances_month,unique"`
	ReferenceMonth time.Time        `gorm:"type:date;not null;index:idx_condo_finances_month,unique"`
	Income         *decimal.Decimal `gorm:"type:decimal(15,2)"`
	IncomeTarget   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Expenses       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ExpensesTarget *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the CondominiumFinanceModel.
func (CondominiumFinanceModel) TableName() string {
	return "condominium_finances"
}

// ToEntity converts a CondominiumFinanceModel to a domain MonthlyFinanceOverride entity.
func (m *CondominiumFinanceModel) ToEntity() *entity.MonthlyFinanceOverride {
	return &entity.MonthlyFinanceOverride{
		ID:             m.ID,
		CondominiumID:  m.CondominiumID,
		ReferenceMonth: m.ReferenceMonth,
		Income:         m.Income,
		IncomeTarget:   m.IncomeTarget,
		Expenses:       m.Expenses,
		ExpensesTarget: m.ExpensesTarget,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CondominiumFinanceFromEntity converts a domain MonthlyFinanceOverride entity to a model.
func CondominiumFinanceFromEntity(override *entity.MonthlyFinanceOverride) *CondominiumFinanceModel {
	return &CondominiumFinanceModel{
		ID:             override.ID,
		CondominiumID:  override.CondominiumID,
		ReferenceMonth: override.ReferenceMonth,
		Income:         override.Income,
		IncomeTarget:   override.IncomeTarget,
		Expenses:       override.Expenses,
		ExpensesTarget: override.ExpensesTarget,
		CreatedAt:      override.CreatedAt,
		UpdatedAt:      override.UpdatedAt,
	}
}
