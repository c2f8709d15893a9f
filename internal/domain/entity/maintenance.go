// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Intervention type identifiers.
const (
	InterventionTypeMaintenance = 1
	InterventionTypeImprovement = 2
)

// Maintenance nature identifiers (only meaningful for maintenance rows).
const (
	MaintenanceNaturePreventive = 1
	MaintenanceNatureCorrective = 2
)

// Maintenance status identifiers.
const (
	MaintenanceStatusPlanned    = 1
	MaintenanceStatusInProgress = 2
	MaintenanceStatusCanceled   = 3
	MaintenanceStatusCompleted  = 4
)

// Maintenance represents a maintenance or improvement intervention of a
// condominium, optionally paid in installments. NextMaintenanceID links a
// completed preventive maintenance to the occurrence it spawned; the chain is
// acyclic and every row has at most one successor.
type Maintenance struct {
	ID                   uuid.UUID
	CondominiumID        uuid.UUID
	TypeID               int // maintenance or improvement
	MaintenanceTypeID    int // preventive or corrective
	Description          string
	Supplier             string
	Amount               decimal.Decimal
	PaymentMethodID      int
	PriorityID           int
	StatusID             int
	PaymentDate          *time.Time
	PlannedStart         *time.Time
	PlannedEnd           *time.Time
	ActualStart          *time.Time
	ActualEnd            *time.Time
	IsInstallment        bool
	NumberOfInstallments *int
	NextMaintenanceID    *uuid.UUID
	CreatedByID          uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsCompleted reports whether the intervention reached the completed status.
func (m *Maintenance) IsCompleted() bool {
	return m.StatusID == MaintenanceStatusCompleted
}

// IsPreventiveMaintenance reports whether the row is a preventive maintenance,
// the only kind that spawns a successor occurrence on completion.
func (m *Maintenance) IsPreventiveMaintenance() bool {
	return m.TypeID == InterventionTypeMaintenance &&
		m.MaintenanceTypeID == MaintenanceNaturePreventive
}

// HasSuccessor reports whether the row already spawned its next occurrence.
func (m *Maintenance) HasSuccessor() bool {
	return m.NextMaintenanceID != nil
}

// MaintenancePayment is one dated payment row derived from a maintenance,
// either the single payment or one of N equal installments.
type MaintenancePayment struct {
	ID            uuid.UUID
	MaintenanceID uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	IsInstallment bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaintenanceWithPayments bundles a maintenance with its payment schedule.
type MaintenanceWithPayments struct {
	Maintenance *Maintenance
	Payments    []*MaintenancePayment
}
