// Package dto defines request and response shapes for the API endpoints.
package dto

import (
	"github.com/condo-control/backend/internal/application/usecase/delinquency"
	"github.com/condo-control/backend/internal/domain/entity"
)

// DelinquencyRequest represents the body for delinquency creation and updates.
type DelinquencyRequest struct {
	UnitID      string  `json:"unitId" binding:"required"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	AmountPaid  string  `json:"amountPaid"`
	DueDate     string  `json:"dueDate" binding:"required"`
	PaymentDate *string `json:"paymentDate"`
}

// DelinquencyResponse represents a delinquency record in responses.
type DelinquencyResponse struct {
	ID            string  `json:"id"`
	CondominiumID string  `json:"condominiumId"`
	UnitID        string  `json:"unitId"`
	CategoryID    string  `json:"categoryId"`
	Amount        string  `json:"amount"`
	AmountPaid    string  `json:"amountPaid"`
	DueDate       string  `json:"dueDate"`
	PaymentDate   *string `json:"paymentDate"`
}

// ToDelinquencyResponse converts a delinquency entity to its response shape.
func ToDelinquencyResponse(record *entity.DelinquencyRecord) DelinquencyResponse {
	return DelinquencyResponse{
		ID:            record.ID.String(),
		CondominiumID: record.CondominiumID.String(),
		UnitID:        record.UnitID.String(),
		CategoryID:    record.CategoryID.String(),
		Amount:        record.Amount.String(),
		AmountPaid:    record.AmountPaid.String(),
		DueDate:       FormatDate(record.DueDate),
		PaymentDate:   FormatOptionalDate(record.PaymentDate),
	}
}

// RegisterRowResponse is one row of the delinquency register with its aging.
type RegisterRowResponse struct {
	DelinquencyResponse
	CategoryName string `json:"categoryName"`
	DaysLate     int    `json:"daysLate"`
}

// ToRegisterResponse converts register rows to their response shape.
func ToRegisterResponse(rows []delinquency.RegisterRow) []RegisterRowResponse {
	response := make([]RegisterRowResponse, len(rows))
	for i, row := range rows {
		response[i] = RegisterRowResponse{
			DelinquencyResponse: ToDelinquencyResponse(row.Record),
			CategoryName:        row.CategoryName,
			DaysLate:            row.DaysLate,
		}
	}
	return response
}

// ResumeResponse summarizes the delinquency position of a condominium.
type ResumeResponse struct {
	TotalInstallments     int    `json:"totalInstallments"`
	UnpaidCount           int    `json:"unpaidCount"`
	TotalAmountToReceive  string `json:"totalAmountToReceive"`
	AverageDaysOverdue    int    `json:"averageDaysOverdue"`
	DelinquentUnits       int    `json:"delinquentUnits"`
	TotalUnits            int64  `json:"totalUnits"`
	DelinquencyPercentage string `json:"delinquencyPercentage"`
}

// ToResumeResponse converts a resume output to its response shape.
func ToResumeResponse(output *delinquency.GetResumeOutput) ResumeResponse {
	return ResumeResponse{
		TotalInstallments:     output.TotalInstallments,
		UnpaidCount:           output.UnpaidCount,
		TotalAmountToReceive:  output.TotalAmountToReceive.String(),
		AverageDaysOverdue:    output.AverageDaysOverdue,
		DelinquentUnits:       output.DelinquentUnits,
		TotalUnits:            output.TotalUnits,
		DelinquencyPercentage: output.DelinquencyPercentage,
	}
}
