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

// maintenanceRepository implements the adapter.MaintenanceRepository interface.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository instance.
func NewMaintenanceRepository(db *gorm.DB) adapter.MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}

// Create creates a new maintenance in the database.
func (r *maintenanceRepository) Create(ctx context.Context, maintenance *entity.Maintenance) error {
	maintenanceModel := model.MaintenanceFromEntity(maintenance)
	result := r.db.WithContext(ctx).Create(maintenanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a maintenance by its ID.
func (r *maintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Maintenance, error) {
	var maintenanceModel model.MaintenanceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&maintenanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMaintenanceNotFound
		}
		return nil, result.Error
	}
	return maintenanceModel.ToEntity(), nil
}

// FindByCondominium retrieves every maintenance of a condominium with its
// payment schedule preloaded.
func (r *maintenanceRepository) FindByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*entity.MaintenanceWithPayments, error) {
	var maintenanceModels []model.MaintenanceModel
	result := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("maintenance_payments.payment_date ASC")
		}).
		Where("condominium_id = ?", condominiumID).
		Order("created_at DESC").
		Find(&maintenanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	maintenances := make([]*entity.MaintenanceWithPayments, len(maintenanceModels))
	for i, mm := range maintenanceModels {
		maintenances[i] = mm.ToEntityWithPayments()
	}
	return maintenances, nil
}

// FindByPlannedStartRange retrieves maintenances whose planned start falls
// inside [start, end].
func (r *maintenanceRepository) FindByPlannedStartRange(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.Maintenance, error) {
	var maintenanceModels []model.MaintenanceModel
	result := r.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Where("planned_start >= ? AND planned_start <= ?", start, end).
		Order("planned_start ASC").
		Find(&maintenanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	maintenances := make([]*entity.Maintenance, len(maintenanceModels))
	for i, mm := range maintenanceModels {
		maintenances[i] = mm.ToEntity()
	}
	return maintenances, nil
}

// Update updates an existing maintenance in the database.
func (r *maintenanceRepository) Update(ctx context.Context, maintenance *entity.Maintenance) error {
	maintenanceModel := model.MaintenanceFromEntity(maintenance)
	result := r.db.WithContext(ctx).
		Model(&model.MaintenanceModel{}).
		Where("id = ?", maintenance.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(maintenanceModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMaintenanceNotFound
	}
	return nil
}

// ClearSuccessorReferences nulls the NextMaintenanceID of every row pointing
// at the given maintenance.
func (r *maintenanceRepository) ClearSuccessorReferences(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.MaintenanceModel{}).
		Where("next_maintenance_id = ?", id).
		Update("next_maintenance_id", nil)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a maintenance row.
func (r *maintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MaintenanceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMaintenanceNotFound
	}
	return nil
}

// maintenancePaymentRepository implements the adapter.MaintenancePaymentRepository interface.
type maintenancePaymentRepository struct {
	db *gorm.DB
}

// NewMaintenancePaymentRepository creates a new maintenance payment repository instance.
func NewMaintenancePaymentRepository(db *gorm.DB) adapter.MaintenancePaymentRepository {
	return &maintenancePaymentRepository{
		db: db,
	}
}

// CreateBatch inserts a full payment schedule in one call.
func (r *maintenancePaymentRepository) CreateBatch(ctx context.Context, payments []*entity.MaintenancePayment) error {
	if len(payments) == 0 {
		return nil
	}

	paymentModels := make([]model.MaintenancePaymentModel, len(payments))
	for i, p := range payments {
		paymentModels[i] = *model.MaintenancePaymentFromEntity(p)
	}
	result := r.db.WithContext(ctx).Create(&paymentModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByMaintenance retrieves the payment schedule of a maintenance, ordered
// by payment date ascending.
func (r *maintenancePaymentRepository) FindByMaintenance(ctx context.Context, maintenanceID uuid.UUID) ([]*entity.MaintenancePayment, error) {
	var paymentModels []model.MaintenancePaymentModel
	result := r.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).
		Order("payment_date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.MaintenancePayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindByPeriod retrieves payments of a condominium dated inside [start, end],
// each with its owning maintenance.
func (r *maintenancePaymentRepository) FindByPeriod(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*adapter.MaintenancePaymentWithParent, error) {
	var paymentModels []model.MaintenancePaymentModel
	result := r.db.WithContext(ctx).
		Preload("Maintenance").
		Joins("JOIN maintenances ON maintenances.id = maintenance_payments.maintenance_id").
		Where("maintenances.condominium_id = ?", condominiumID).
		Where("maintenance_payments.payment_date >= ? AND maintenance_payments.payment_date <= ?", start, end).
		Order("maintenance_payments.payment_date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*adapter.MaintenancePaymentWithParent, len(paymentModels))
	for i, pm := range paymentModels {
		pair := &adapter.MaintenancePaymentWithParent{Payment: pm.ToEntity()}
		if pm.Maintenance != nil {
			pair.Maintenance = pm.Maintenance.ToEntity()
		}
		payments[i] = pair
	}
	return payments, nil
}

// DeleteByMaintenance removes the full payment schedule of a maintenance.
func (r *maintenancePaymentRepository) DeleteByMaintenance(ctx context.Context, maintenanceID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).
		Delete(&model.MaintenancePaymentModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
