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

// delinquencyRepository implements the adapter.DelinquencyRepository interface.
type delinquencyRepository struct {
	db *gorm.DB
}

// NewDelinquencyRepository creates a new delinquency repository instance.
func NewDelinquencyRepository(db *gorm.DB) adapter.DelinquencyRepository {
	return &delinquencyRepository{
		db: db,
	}
}

// Create creates a new delinquency record in the database.
func (r *delinquencyRepository) Create(ctx context.Context, record *entity.DelinquencyRecord) error {
	recordModel := model.DelinquencyRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a delinquency record by its ID.
func (r *delinquencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DelinquencyRecord, error) {
	var recordModel model.DelinquencyRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDelinquencyNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByPeriod retrieves records whose due date falls inside [start, end],
// joined with their categories, ordered by due date descending.
func (r *delinquencyRepository) FindByPeriod(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.DelinquencyRecordWithCategory, error) {
	var recordModels []model.DelinquencyRecordModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("condominium_id = ?", condominiumID).
		Where("due_date >= ? AND due_date <= ?", start, end).
		Order("due_date DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.DelinquencyRecordWithCategory, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntityWithCategory()
	}
	return records, nil
}

// Update updates an existing delinquency record in the database.
func (r *delinquencyRepository) Update(ctx context.Context, record *entity.DelinquencyRecord) error {
	recordModel := model.DelinquencyRecordFromEntity(record)
	result := r.db.WithContext(ctx).
		Model(&model.DelinquencyRecordModel{}).
		Where("id = ?", record.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(recordModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDelinquencyNotFound
	}
	return nil
}

// Delete removes a delinquency record.
func (r *delinquencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DelinquencyRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDelinquencyNotFound
	}
	return nil
}

// unitRepository implements the adapter.UnitRepository interface.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository instance.
func NewUnitRepository(db *gorm.DB) adapter.UnitRepository {
	return &unitRepository{
		db: db,
	}
}

// FindByCondominium retrieves every unit of a condominium.
func (r *unitRepository) FindByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*entity.Unit, error) {
	var unitModels []model.UnitModel
	result := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("number ASC").
		Find(&unitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	units := make([]*entity.Unit, len(unitModels))
	for i, um := range unitModels {
		units[i] = um.ToEntity()
	}
	return units, nil
}

// CountByCondominium counts the units of a condominium.
func (r *unitRepository) CountByCondominium(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.UnitModel{}).
		Where("condominium_id = ?", condominiumID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
