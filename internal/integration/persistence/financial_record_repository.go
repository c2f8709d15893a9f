// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/persistence/model"
)

// financialRecordRepository implements the adapter.FinancialRecordRepository interface.
type financialRecordRepository struct {
	db *gorm.DB
}

// NewFinancialRecordRepository creates a new financial record repository instance.
func NewFinancialRecordRepository(db *gorm.DB) adapter.FinancialRecordRepository {
	return &financialRecordRepository{
		db: db,
	}
}

// Create creates a new financial record in the database.
func (r *financialRecordRepository) Create(ctx context.Context, record *entity.FinancialRecord) error {
	recordModel := model.FinancialRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a financial record by its ID, soft-deleted rows excluded.
func (r *financialRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	var recordModel model.FinancialRecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinancialRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByFilter retrieves non-deleted records whose due date falls inside the
// filter period, joined with their categories, ordered by amount descending.
func (r *financialRecordRepository) FindByFilter(ctx context.Context, filter adapter.FinancialRecordFilter) ([]*entity.FinancialRecordWithCategory, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FinancialRecordModel{}).
		Preload("Category").
		Where("condominium_id = ?", filter.CondominiumID).
		Where("is_deleted = ?", false).
		Where("due_date >= ? AND due_date <= ?", filter.StartDate, filter.EndDate)

	if filter.IncomeExpenseTypeID != nil {
		query = query.
			Joins("JOIN categories ON categories.id = financial_records.category_id").
			Where("categories.income_expense_type_id = ?", *filter.IncomeExpenseTypeID)
	}
	if filter.OnlyRecurring {
		query = query.Where("is_recurring = ?", true)
	}

	var recordModels []model.FinancialRecordModel
	result := query.Order("amount DESC").Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.FinancialRecordWithCategory, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntityWithCategory()
	}
	return records, nil
}

// FindByDelinquencyID retrieves the non-deleted record paired with a
// delinquency record, or nil when no pairing exists.
func (r *financialRecordRepository) FindByDelinquencyID(ctx context.Context, delinquencyID uuid.UUID) (*entity.FinancialRecord, error) {
	var recordModel model.FinancialRecordModel
	result := r.db.WithContext(ctx).
		Where("delinquency_record_id = ? AND is_deleted = ?", delinquencyID, false).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// Update updates an existing financial record in the database.
func (r *financialRecordRepository) Update(ctx context.Context, record *entity.FinancialRecord) error {
	recordModel := model.FinancialRecordFromEntity(record)
	result := r.db.WithContext(ctx).
		Model(&model.FinancialRecordModel{}).
		Where("id = ?", record.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(recordModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFinancialRecordNotFound
	}
	return nil
}

// SoftDelete flags a record as deleted without removing the row.
func (r *financialRecordRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.FinancialRecordModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFinancialRecordNotFound
	}
	return nil
}

// HardDelete removes a record row entirely.
func (r *financialRecordRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FinancialRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
