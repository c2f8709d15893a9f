// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/domain/entity"
)

// MaintenanceModel represents the maintenances table in the database.
type MaintenanceModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CondominiumID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TypeID               int             `gorm:"type:integer;not null"`
	MaintenanceTypeID    int             `gorm:"type:integer;not null"`
	Description          string          `gorm:"type:text"`
	Supplier             string          `gorm:"type:varchar(255)"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethodID      int             `gorm:"type:integer;not null"`
	PriorityID           int             `gorm:"type:integer;not null"`
	StatusID             int             `gorm:"type:integer;not null;index"`
	PaymentDate          *time.Time      `gorm:"type:date"`
	PlannedStart         *time.Time      `gorm:"type:date;index"`
	PlannedEnd           *time.Time      `gorm:"type:date"`
	ActualStart          *time.Time      `gorm:"type:date"`
	ActualEnd            *time.Time      `gorm:"type:date"`
	IsInstallment        bool            `gorm:"default:false"`
	NumberOfInstallments *int            `gorm:"type:integer"`
	NextMaintenanceID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedByID          uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Payments []MaintenancePaymentModel `gorm:"foreignKey:MaintenanceID;references:ID"`
}

// TableName returns the table name for the MaintenanceModel.
func (MaintenanceModel) TableName() string {
	return "maintenances"
}

// ToEntity converts a MaintenanceModel to a domain Maintenance entity.
func (m *MaintenanceModel) ToEntity() *entity.Maintenance {
	return &entity.Maintenance{
		ID:                   m.ID,
		CondominiumID:        m.CondominiumID,
		TypeID:               m.TypeID,
		MaintenanceTypeID:    m.MaintenanceTypeID,
		Description:          m.Description,
		Supplier:             m.Supplier,
		Amount:               m.Amount,
		PaymentMethodID:      m.PaymentMethodID,
		PriorityID:           m.PriorityID,
		StatusID:             m.StatusID,
		PaymentDate:          m.PaymentDate,
		PlannedStart:         m.PlannedStart,
		PlannedEnd:           m.PlannedEnd,
		ActualStart:          m.ActualStart,
		ActualEnd:            m.ActualEnd,
		IsInstallment:        m.IsInstallment,
		NumberOfInstallments: m.NumberOfInstallments,
		NextMaintenanceID:    m.NextMaintenanceID,
		CreatedByID:          m.CreatedByID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// ToEntityWithPayments converts the model with its preloaded schedule.
func (m *MaintenanceModel) ToEntityWithPayments() *entity.MaintenanceWithPayments {
	payments := make([]*entity.MaintenancePayment, len(m.Payments))
	for i := range m.Payments {
		payments[i] = m.Payments[i].ToEntity()
	}
	return &entity.MaintenanceWithPayments{
		Maintenance: m.ToEntity(),
		Payments:    payments,
	}
}

// MaintenanceFromEntity converts a domain Maintenance entity to a MaintenanceModel.
func MaintenanceFromEntity(maintenance *entity.Maintenance) *MaintenanceModel {
	return &MaintenanceModel{
		ID:                   maintenance.ID,
		CondominiumID:        maintenance.CondominiumID,
		TypeID:               maintenance.TypeID,
		MaintenanceTypeID:    maintenance.MaintenanceTypeID,
		Description:          maintenance.Description,
		Supplier:             maintenance.Supplier,
		Amount:               maintenance.Amount,
		PaymentMethodID:      maintenance.PaymentMethodID,
		PriorityID:           maintenance.PriorityID,
		StatusID:             maintenance.StatusID,
		PaymentDate:          maintenance.PaymentDate,
		PlannedStart:         maintenance.PlannedStart,
		PlannedEnd:           maintenance.PlannedEnd,
		ActualStart:          maintenance.ActualStart,
		ActualEnd:            maintenance.ActualEnd,
		IsInstallment:        maintenance.IsInstallment,
		NumberOfInstallments: maintenance.NumberOfInstallments,
		NextMaintenanceID:    maintenance.NextMaintenanceID,
		CreatedByID:          maintenance.CreatedByID,
		CreatedAt:            maintenance.CreatedAt,
		UpdatedAt:            maintenance.UpdatedAt,
	}
}

// MaintenancePaymentModel represents the maintenance_payments table in the database.
type MaintenancePaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MaintenanceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsInstallment bool            `gorm:"default:false"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Maintenance *MaintenanceModel `gorm:"foreignKey:MaintenanceID;references:ID"`
}

// TableName returns the table name for the MaintenancePaymentModel.
func (MaintenancePaymentModel) TableName() string {
	return "maintenance_payments"
}

// ToEntity converts a MaintenancePaymentModel to a domain MaintenancePayment entity.
func (m *MaintenancePaymentModel) ToEntity() *entity.MaintenancePayment {
	return &entity.MaintenancePayment{
		ID:            m.ID,
		MaintenanceID: m.MaintenanceID,
		PaymentDate:   m.PaymentDate,
		Amount:        m.Amount,
		IsInstallment: m.IsInstallment,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MaintenancePaymentFromEntity converts a domain MaintenancePayment entity to a model.
func MaintenancePaymentFromEntity(payment *entity.MaintenancePayment) *MaintenancePaymentModel {
	return &MaintenancePaymentModel{
		ID:            payment.ID,
		MaintenanceID: payment.MaintenanceID,
		PaymentDate:   payment.PaymentDate,
		Amount:        payment.Amount,
		IsInstallment: payment.IsInstallment,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
