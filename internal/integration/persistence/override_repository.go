// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/persistence/model"
)

// overrideRepository implements the adapter.MonthlyFinanceOverrideRepository interface.
type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new monthly finance override repository instance.
func NewOverrideRepository(db *gorm.DB) adapter.MonthlyFinanceOverrideRepository {
	return &overrideRepository{
		db: db,
	}
}

// FindByMonth retrieves the override row whose reference month equals the
// given first-of-month date, or nil when none exists.
func (r *overrideRepository) FindByMonth(ctx context.Context, condominiumID uuid.UUID, month time.Time) (*entity.MonthlyFinanceOverride, error) {
	var overrideModel model.CondominiumFinanceModel
	result := r.db.WithContext(ctx).
		Where("condominium_id = ? AND reference_month = ?", condominiumID, month).
		First(&overrideModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return overrideModel.ToEntity(), nil
}

// FindFirstInRange retrieves the earliest override row whose reference month
// falls inside [start, end], or nil when none exists.
func (r *overrideRepository) FindFirstInRange(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) (*entity.MonthlyFinanceOverride, error) {
	var overrideModel model.CondominiumFinanceModel
	result := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Where("reference_month >= ? AND reference_month <= ?", start, end).
		Order("reference_month ASC").
		First(&overrideModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return overrideModel.ToEntity(), nil
}

// Create inserts a new override row.
func (r *overrideRepository) Create(ctx context.Context, override *entity.MonthlyFinanceOverride) error {
	overrideModel := model.CondominiumFinanceFromEntity(override)
	result := r.db.WithContext(ctx).Create(overrideModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing override row. Every value column is written, so
// a nil field lands as NULL and "redefine to calculated" round-trips.
func (r *overrideRepository) Update(ctx context.Context, override *entity.MonthlyFinanceOverride) error {
	overrideModel := model.CondominiumFinanceFromEntity(override)
	result := r.db.WithContext(ctx).
		Model(&model.CondominiumFinanceModel{}).
		Where("id = ?", override.ID).
		Select("income", "income_target", "expenses", "expenses_target", "updated_at").
		Updates(overrideModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOverrideNotFound
	}
	return nil
}
