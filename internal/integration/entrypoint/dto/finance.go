// Package dto defines request and response shapes for the API endpoints.
package dto

import (
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// TotalsResponse represents the resolved totals of a period.
type TotalsResponse struct {
	TotalIncome        string  `json:"totalIncome"`
	IncomeTarget       *string `json:"incomeTarget"`
	TotalExpenses      string  `json:"totalExpenses"`
	ExpensesTarget     *string `json:"expensesTarget"`
	Balance            string  `json:"balance"`
	AccumulatedBalance string  `json:"accumulatedBalance"`
	IsSameMonth        bool    `json:"isSameMonth"`
}

// ToTotalsResponse converts a totals output to its response shape.
func ToTotalsResponse(output *finance.GetTotalsOutput) TotalsResponse {
	return TotalsResponse{
		TotalIncome:        output.TotalIncome.String(),
		IncomeTarget:       FormatOptionalAmount(output.IncomeTarget),
		TotalExpenses:      output.TotalExpenses.String(),
		ExpensesTarget:     FormatOptionalAmount(output.ExpensesTarget),
		Balance:            output.Balance.String(),
		AccumulatedBalance: output.AccumulatedBalance.String(),
		IsSameMonth:        output.IsSameMonth,
	}
}

// ProjectionResponse represents the forward-looking balance.
type ProjectionResponse struct {
	IncomesTotal       string `json:"incomesTotal"`
	ExpensesTotal      string `json:"expensesTotal"`
	Balance            string `json:"balance"`
	BalanceAccumulated string `json:"balanceAccumulated"`
}

// ToProjectionResponse converts a projection output to its response shape.
func ToProjectionResponse(output *finance.GetProjectionOutput) ProjectionResponse {
	return ProjectionResponse{
		IncomesTotal:       output.IncomesTotal.String(),
		ExpensesTotal:      output.ExpensesTotal.String(),
		Balance:            output.Balance.String(),
		BalanceAccumulated: output.BalanceAccumulated.String(),
	}
}

// CategoryTotalResponse is one per-category line of the projection breakdown.
type CategoryTotalResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Total        string `json:"total"`
	Type         string `json:"type"`
}

// ToCategoryTotalsResponse converts the projection breakdown to its response shape.
func ToCategoryTotalsResponse(totals []finance.CategoryTotal) []CategoryTotalResponse {
	response := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		response[i] = CategoryTotalResponse{
			CategoryID:   t.CategoryID.String(),
			CategoryName: t.CategoryName,
			Total:        t.Total.String(),
			Type:         t.Type,
		}
	}
	return response
}

// FinancialRecordRequest represents the body for record creation and updates.
type FinancialRecordRequest struct {
	CategoryID      string  `json:"categoryId" binding:"required"`
	UnitID          *string `json:"unitId"`
	Amount          string  `json:"amount" binding:"required"`
	AmountPaid      string  `json:"amountPaid"`
	DueDate         string  `json:"dueDate" binding:"required"`
	PaymentDate     *string `json:"paymentDate"`
	PaymentStatusID int     `json:"paymentStatusId"`
	PaymentMethodID int     `json:"paymentMethodId"`
	Notes           string  `json:"notes"`
	IsRecurring     bool    `json:"isRecurring"`
}

// FinancialRecordResponse represents a ledger entry in responses.
type FinancialRecordResponse struct {
	ID              string  `json:"id"`
	CondominiumID   string  `json:"condominiumId"`
	CategoryID      string  `json:"categoryId"`
	CategoryName    string  `json:"categoryName,omitempty"`
	UnitID          *string `json:"unitId"`
	Amount          string  `json:"amount"`
	AmountPaid      string  `json:"amountPaid"`
	DueDate         string  `json:"dueDate"`
	PaymentDate     *string `json:"paymentDate"`
	PaymentStatusID int     `json:"paymentStatusId"`
	PaymentMethodID int     `json:"paymentMethodId"`
	Notes           string  `json:"notes"`
	IsRecurring     bool    `json:"isRecurring"`
}

// ToFinancialRecordResponse converts a record entity to its response shape.
func ToFinancialRecordResponse(record *entity.FinancialRecord, categoryName string) FinancialRecordResponse {
	var unitID *string
	if record.UnitID != nil {
		id := record.UnitID.String()
		unitID = &id
	}

	return FinancialRecordResponse{
		ID:              record.ID.String(),
		CondominiumID:   record.CondominiumID.String(),
		CategoryID:      record.CategoryID.String(),
		CategoryName:    categoryName,
		UnitID:          unitID,
		Amount:          record.Amount.String(),
		AmountPaid:      record.AmountPaid.String(),
		DueDate:         FormatDate(record.DueDate),
		PaymentDate:     FormatOptionalDate(record.PaymentDate),
		PaymentStatusID: record.PaymentStatusID,
		PaymentMethodID: record.PaymentMethodID,
		Notes:           record.Notes,
		IsRecurring:     record.IsRecurring,
	}
}

// ToFinancialRecordListResponse converts joined records to their response shape.
func ToFinancialRecordListResponse(records []*entity.FinancialRecordWithCategory) []FinancialRecordResponse {
	response := make([]FinancialRecordResponse, len(records))
	for i, r := range records {
		name := ""
		if r.Category != nil {
			name = r.Category.Name
		}
		response[i] = ToFinancialRecordResponse(r.Record, name)
	}
	return response
}

// OverrideRequest represents the body for a monthly override. A null value
// redefines the metric back to calculated.
type OverrideRequest struct {
	Month  string  `json:"month" binding:"required"`
	Value  *string `json:"value"`
	Target *string `json:"target"`
}

// CategoryResponse represents a category option.
type CategoryResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	IncomeExpenseTypeID int    `json:"incomeExpenseTypeId"`
	RecordTypeID        int    `json:"recordTypeId"`
}

// ToCategoryListResponse converts category entities to their response shape.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:                  c.ID.String(),
			Name:                c.Name,
			IncomeExpenseTypeID: c.IncomeExpenseTypeID,
			RecordTypeID:        c.RecordTypeID,
		}
	}
	return response
}
