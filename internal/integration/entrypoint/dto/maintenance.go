// Package dto defines request and response shapes for the API endpoints.
package dto

import (
	"github.com/condo-control/backend/internal/application/usecase/maintenance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// MaintenanceRequest represents the body for maintenance creation and updates.
// NextMaintenance is only meaningful when completing a preventive maintenance.
type MaintenanceRequest struct {
	TypeID               int     `json:"typeId" binding:"required"`
	MaintenanceTypeID    int     `json:"maintenanceTypeId" binding:"required"`
	Description          string  `json:"description"`
	Supplier             string  `json:"supplier"`
	Amount               string  `json:"amount" binding:"required"`
	PaymentMethodID      int     `json:"paymentMethodId"`
	PriorityID           int     `json:"priorityId"`
	StatusID             int     `json:"statusId"`
	PaymentDate          *string `json:"paymentDate"`
	PlannedStart         *string `json:"plannedStart"`
	PlannedEnd           *string `json:"plannedEnd"`
	ActualStart          *string `json:"actualStart"`
	ActualEnd            *string `json:"actualEnd"`
	IsInstallment        bool    `json:"isInstallment"`
	NumberOfInstallments *int    `json:"numberOfInstallments"`
	NextMaintenance      *string `json:"nextMaintenance"`
}

// MaintenancePaymentResponse is one dated payment row of a maintenance.
type MaintenancePaymentResponse struct {
	ID            string `json:"id"`
	PaymentDate   string `json:"paymentDate"`
	Amount        string `json:"amount"`
	IsInstallment bool   `json:"isInstallment"`
}

// MaintenanceResponse represents a maintenance with its payment schedule.
type MaintenanceResponse struct {
	ID                   string                       `json:"id"`
	CondominiumID        string                       `json:"condominiumId"`
	TypeID               int                          `json:"typeId"`
	MaintenanceTypeID    int                          `json:"maintenanceTypeId"`
	Description          string                       `json:"description"`
	Supplier             string                       `json:"supplier"`
	Amount               string                       `json:"amount"`
	PaymentMethodID      int                          `json:"paymentMethodId"`
	PriorityID           int                          `json:"priorityId"`
	StatusID             int                          `json:"statusId"`
	PaymentDate          *string                      `json:"paymentDate"`
	PlannedStart         *string                      `json:"plannedStart"`
	PlannedEnd           *string                      `json:"plannedEnd"`
	ActualStart          *string                      `json:"actualStart"`
	ActualEnd            *string                      `json:"actualEnd"`
	IsInstallment        bool                         `json:"isInstallment"`
	NumberOfInstallments *int                         `json:"numberOfInstallments"`
	NextMaintenanceID    *string                      `json:"nextMaintenanceId"`
	Payments             []MaintenancePaymentResponse `json:"payments"`
}

// ToMaintenanceResponse converts a maintenance and its schedule to the
// response shape.
func ToMaintenanceResponse(row *entity.Maintenance, payments []*entity.MaintenancePayment) MaintenanceResponse {
	var nextID *string
	if row.NextMaintenanceID != nil {
		id := row.NextMaintenanceID.String()
		nextID = &id
	}

	paymentRows := make([]MaintenancePaymentResponse, len(payments))
	for i, p := range payments {
		paymentRows[i] = MaintenancePaymentResponse{
			ID:            p.ID.String(),
			PaymentDate:   FormatDate(p.PaymentDate),
			Amount:        p.Amount.String(),
			IsInstallment: p.IsInstallment,
		}
	}

	return MaintenanceResponse{
		ID:                   row.ID.String(),
		CondominiumID:        row.CondominiumID.String(),
		TypeID:               row.TypeID,
		MaintenanceTypeID:    row.MaintenanceTypeID,
		Description:          row.Description,
		Supplier:             row.Supplier,
		Amount:               row.Amount.String(),
		PaymentMethodID:      row.PaymentMethodID,
		PriorityID:           row.PriorityID,
		StatusID:             row.StatusID,
		PaymentDate:          FormatOptionalDate(row.PaymentDate),
		PlannedStart:         FormatOptionalDate(row.PlannedStart),
		PlannedEnd:           FormatOptionalDate(row.PlannedEnd),
		ActualStart:          FormatOptionalDate(row.ActualStart),
		ActualEnd:            FormatOptionalDate(row.ActualEnd),
		IsInstallment:        row.IsInstallment,
		NumberOfInstallments: row.NumberOfInstallments,
		NextMaintenanceID:    nextID,
		Payments:             paymentRows,
	}
}

// ToMaintenanceListResponse converts maintenances with schedules to their
// response shape.
func ToMaintenanceListResponse(rows []*entity.MaintenanceWithPayments) []MaintenanceResponse {
	response := make([]MaintenanceResponse, len(rows))
	for i, row := range rows {
		response[i] = ToMaintenanceResponse(row.Maintenance, row.Payments)
	}
	return response
}

// MaintenanceCardsResponse is the funds-available summary.
type MaintenanceCardsResponse struct {
	NewMonthlyFixedCosts     string `json:"newMonthlyFixedCosts"`
	ApprovedImprovementsCost string `json:"approvedImprovementsCost"`
	Balance                  string `json:"balance"`
}

// ToMaintenanceCardsResponse converts the cards output to its response shape.
func ToMaintenanceCardsResponse(cards *maintenance.MaintenanceCards) MaintenanceCardsResponse {
	return MaintenanceCardsResponse{
		NewMonthlyFixedCosts:     cards.NewMonthlyFixedCosts.String(),
		ApprovedImprovementsCost: cards.ApprovedImprovementsCost.String(),
		Balance:                  cards.Balance.String(),
	}
}
