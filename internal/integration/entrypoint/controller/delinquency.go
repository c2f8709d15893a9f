// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/usecase/delinquency"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
)

// DelinquencyController handles the delinquency register and CRUD endpoints.
type DelinquencyController struct {
	registerUseCase *delinquency.GetRegisterUseCase
	resumeUseCase   *delinquency.GetResumeUseCase
	createUseCase   *delinquency.CreateDelinquencyUseCase
	updateUseCase   *delinquency.UpdateDelinquencyUseCase
	deleteUseCase   *delinquency.DeleteDelinquencyUseCase
}

// NewDelinquencyController creates a new delinquency controller instance.
func NewDelinquencyController(
	registerUseCase *delinquency.GetRegisterUseCase,
	resumeUseCase *delinquency.GetResumeUseCase,
	createUseCase *delinquency.CreateDelinquencyUseCase,
	updateUseCase *delinquency.UpdateDelinquencyUseCase,
	deleteUseCase *delinquency.DeleteDelinquencyUseCase,
) *DelinquencyController {
	return &DelinquencyController{
		registerUseCase: registerUseCase,
		resumeUseCase:   resumeUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// GetRegister handles GET /delinquency/register/:date requests.
func (c *DelinquencyController) GetRegister(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	date, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	rows, err := c.registerUseCase.Execute(ctx.Request.Context(), delinquency.GetRegisterInput{
		CondominiumID: condominiumID,
		Date:          date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegisterResponse(rows))
}

// GetResume handles GET /delinquency/resume requests.
func (c *DelinquencyController) GetResume(ctx *gin.Context) {
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

	output, err := c.resumeUseCase.Execute(ctx.Request.Context(), delinquency.GetResumeInput{
		CondominiumID: condominiumID,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResumeResponse(output))
}

// Create handles POST /delinquency requests.
func (c *DelinquencyController) Create(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	body, err := c.bindDelinquencyBody(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), delinquency.CreateDelinquencyInput{
		CondominiumID: condominiumID,
		UnitID:        body.unitID,
		CategoryID:    body.categoryID,
		Amount:        body.amount,
		AmountPaid:    body.amountPaid,
		DueDate:       body.dueDate,
		PaymentDate:   body.paymentDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDelinquencyResponse(output.Record))
}

// Update handles PUT /delinquency/:delinquencyId requests.
func (c *DelinquencyController) Update(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	delinquencyID, err := uuid.Parse(ctx.Param("delinquencyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid delinquency ID"})
		return
	}

	body, err := c.bindDelinquencyBody(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	err = c.updateUseCase.Execute(ctx.Request.Context(), delinquency.UpdateDelinquencyInput{
		DelinquencyID: delinquencyID,
		UnitID:        body.unitID,
		CategoryID:    body.categoryID,
		Amount:        body.amount,
		AmountPaid:    body.amountPaid,
		DueDate:       body.dueDate,
		PaymentDate:   body.paymentDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /delinquency/:delinquencyId requests.
func (c *DelinquencyController) Delete(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	delinquencyID, err := uuid.Parse(ctx.Param("delinquencyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid delinquency ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), delinquencyID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type delinquencyBody struct {
	unitID      uuid.UUID
	categoryID  uuid.UUID
	amount      decimal.Decimal
	amountPaid  decimal.Decimal
	dueDate     time.Time
	paymentDate *time.Time
}

func (c *DelinquencyController) bindDelinquencyBody(ctx *gin.Context) (*delinquencyBody, error) {
	var req dto.DelinquencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, domainerror.NewDelinquencyError(
			domainerror.ErrCodeDelinquencyMissingDueDate,
			"invalid request body",
			err,
		)
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, domainerror.NewDelinquencyError(
			domainerror.ErrCodeDelinquencyMissingUnit,
			"invalid unit ID",
			err,
		)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domainerror.NewDelinquencyError(
			domainerror.ErrCodeDelinquencyMissingUnit,
			"invalid category ID",
			err,
		)
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

	return &delinquencyBody{
		unitID:      unitID,
		categoryID:  categoryID,
		amount:      amount,
		amountPaid:  amountPaid,
		dueDate:     dueDate,
		paymentDate: paymentDate,
	}, nil
}
