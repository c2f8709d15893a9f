// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(100);not null"`
	IncomeExpenseTypeID int       `gorm:"type:integer;not null;index"`
	RecordTypeID        int       `gorm:"type:integer;not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:                  m.ID,
		Name:                m.Name,
		IncomeExpenseTypeID: m.IncomeExpenseTypeID,
		RecordTypeID:        m.RecordTypeID,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:                  category.ID,
		Name:                category.Name,
		IncomeExpenseTypeID: category.IncomeExpenseTypeID,
		RecordTypeID:        category.RecordTypeID,
	}
}
