// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles the ledger, totals and projection endpoints.
type FinanceController struct {
	totalsUseCase              *finance.GetTotalsUseCase
	projectionUseCase          *finance.GetProjectionUseCase
	projectionRegistersUseCase *finance.GetProjectionRegistersUseCase
	createRecordUseCase        *finance.CreateRecordUseCase
	updateRecordUseCase        *finance.UpdateRecordUseCase
	deleteRecordUseCase        *finance.DeleteRecordUseCase
	listRecordsUseCase         *finance.ListRecordsUseCase
	listCategoriesUseCase      *finance.ListCategoriesUseCase
	overrideUseCase            *finance.OverrideMonthUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	totalsUseCase *finance.GetTotalsUseCase,
	projectionUseCase *finance.GetProjectionUseCase,
	projectionRegistersUseCase *finance.GetProjectionRegistersUseCase,
	createRecordUseCase *finance.CreateRecordUseCase,
	updateRecordUseCase *finance.UpdateRecordUseCase,
	deleteRecordUseCase *finance.DeleteRecordUseCase,
	listRecordsUseCase *finance.ListRecordsUseCase,
	listCategoriesUseCase *finance.ListCategoriesUseCase,
	overrideUseCase *finance.OverrideMonthUseCase,
) *FinanceController {
	return &FinanceController{
		totalsUseCase:              totalsUseCase,
		projectionUseCase:          projectionUseCase,
		projectionRegistersUseCase: projectionRegistersUseCase,
		createRecordUseCase:        createRecordUseCase,
		updateRecordUseCase:        updateRecordUseCase,
		deleteRecordUseCase:        deleteRecordUseCase,
		listRecordsUseCase:         listRecordsUseCase,
		listCategoriesUseCase:      listCategoriesUseCase,
		overrideUseCase:            overrideUseCase,
	}
}

// GetTotals handles GET /finance/totals requests.
func (c *FinanceController) GetTotals(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	startDate, err := dto.ParseDate(ctx.Query("startDate"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	endDate, err := dto.ParseDate(ctx.Query("endDate"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), finance.GetTotalsInput{
		CondominiumID: condominiumID,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(output))
}

// GetProjection handles GET /finance/projection/:date requests.
func (c *FinanceController) GetProjection(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	targetDate, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), finance.GetProjectionInput{
		CondominiumID: condominiumID,
		TargetDate:    targetDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(output))
}

// GetProjectionRegisters handles GET /finance/projection/:date/registers requests.
func (c *FinanceController) GetProjectionRegisters(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	targetDate, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	totals, err := c.projectionRegistersUseCase.Execute(ctx.Request.Context(), finance.GetProjectionRegistersInput{
		CondominiumID: condominiumID,
		TargetDate:    targetDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(totals))
}

// ListRecords handles GET /finance/records requests.
func (c *FinanceController) ListRecords(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	startDate, err := dto.ParseDate(ctx.Query("startDate"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	endDate, err := dto.ParseDate(ctx.Query("endDate"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	input := finance.ListRecordsInput{
		CondominiumID: condominiumID,
		StartDate:     startDate,
		EndDate:       endDate,
	}
	switch ctx.Query("type") {
	case "income":
		incomeType := entity.IncomeExpenseTypeIncome
		input.IncomeExpenseTypeID = &incomeType
	case "expense":
		expenseType := entity.IncomeExpenseTypeExpense
		input.IncomeExpenseTypeID = &expenseType
	}

	records, err := c.listRecordsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialRecordListResponse(records))
}

// CreateRecord handles POST /finance/records requests.
func (c *FinanceController) CreateRecord(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	input, err := c.bindRecordInput(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	input.CondominiumID = condominiumID

	output, err := c.createRecordUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFinancialRecordResponse(output.Record, ""))
}

// UpdateRecord handles PUT /finance/records/:recordId requests.
func (c *FinanceController) UpdateRecord(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	recordID, err := uuid.Parse(ctx.Param("recordId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid record ID"})
		return
	}

	createInput, err := c.bindRecordInput(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.updateRecordUseCase.Execute(ctx.Request.Context(), finance.UpdateRecordInput{
		RecordID:        recordID,
		CategoryID:      createInput.CategoryID,
		UnitID:          createInput.UnitID,
		Amount:          createInput.Amount,
		AmountPaid:      createInput.AmountPaid,
		DueDate:         createInput.DueDate,
		PaymentDate:     createInput.PaymentDate,
		PaymentStatusID: createInput.PaymentStatusID,
		PaymentMethodID: createInput.PaymentMethodID,
		Notes:           createInput.Notes,
		IsRecurring:     createInput.IsRecurring,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialRecordResponse(output.Record, ""))
}

// DeleteRecord handles DELETE /finance/records/:recordId requests.
func (c *FinanceController) DeleteRecord(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	recordID, err := uuid.Parse(ctx.Param("recordId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid record ID"})
		return
	}

	if err := c.deleteRecordUseCase.Execute(ctx.Request.Context(), recordID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListCategories handles GET /finance/categories requests.
func (c *FinanceController) ListCategories(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	categories, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// OverrideIncome handles PUT /finance/overrides/income requests.
func (c *FinanceController) OverrideIncome(ctx *gin.Context) {
	c.override(ctx, finance.OverrideFieldIncome)
}

// OverrideExpenses handles PUT /finance/overrides/expenses requests.
func (c *FinanceController) OverrideExpenses(ctx *gin.Context) {
	c.override(ctx, finance.OverrideFieldExpenses)
}

func (c *FinanceController) override(ctx *gin.Context, field finance.OverrideField) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	var req dto.OverrideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	month, err := dto.ParseDate(req.Month)
	if err != nil {
		respondError(ctx, err)
		return
	}
	value, err := dto.ParseOptionalAmount(req.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	target, err := dto.ParseOptionalAmount(req.Target)
	if err != nil {
		respondError(ctx, err)
		return
	}

	err = c.overrideUseCase.Execute(ctx.Request.Context(), finance.OverrideMonthInput{
		CondominiumID: condominiumID,
		Month:         month,
		Field:         field,
		Value:         value,
		Target:        target,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindRecordInput parses the shared record body of create and update calls.
func (c *FinanceController) bindRecordInput(ctx *gin.Context) (*finance.CreateRecordInput, error) {
	var req dto.FinancialRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingAmount,
			"invalid request body",
			err,
		)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"invalid category ID",
			err,
		)
	}

	var unitID *uuid.UUID
	if req.UnitID != nil && *req.UnitID != "" {
		id, err := uuid.Parse(*req.UnitID)
		if err != nil {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidPeriod,
				"invalid unit ID",
				err,
			)
		}
		unitID = &id
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	amountPaid := decimal.Zero
	if req.AmountPaid != "" {
		amountPaid, err = dto.ParseAmount(req.AmountPaid)
		if err != nil {
			return nil, err
		}
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	paymentDate, err := dto.ParseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	return &finance.CreateRecordInput{
		CategoryID:      categoryID,
		UnitID:          unitID,
		Amount:          amount,
		AmountPaid:      amountPaid,
		DueDate:         dueDate,
		PaymentDate:     paymentDate,
		PaymentStatusID: req.PaymentStatusID,
		PaymentMethodID: req.PaymentMethodID,
		Notes:           req.Notes,
		IsRecurring:     req.IsRecurring,
	}, nil
}
