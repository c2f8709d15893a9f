// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/usecase/indicators"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
)

// IndicatorsController handles the dashboard chart and resume endpoints.
type IndicatorsController struct {
	chartsUseCase         *indicators.ChartsByCategoryUseCase
	fixedVariableUseCase  *indicators.FixedVariableUseCase
	monthlyBalanceUseCase *indicators.MonthlyBalanceUseCase
	resumeUseCase         *indicators.ResumeUseCase
}

// NewIndicatorsController creates a new indicators controller instance.
func NewIndicatorsController(
	chartsUseCase *indicators.ChartsByCategoryUseCase,
	fixedVariableUseCase *indicators.FixedVariableUseCase,
	monthlyBalanceUseCase *indicators.MonthlyBalanceUseCase,
	resumeUseCase *indicators.ResumeUseCase,
) *IndicatorsController {
	return &IndicatorsController{
		chartsUseCase:         chartsUseCase,
		fixedVariableUseCase:  fixedVariableUseCase,
		monthlyBalanceUseCase: monthlyBalanceUseCase,
		resumeUseCase:         resumeUseCase,
	}
}

// RevenueByCategory handles GET /indicators/charts/revenue-by-category requests.
func (c *IndicatorsController) RevenueByCategory(ctx *gin.Context) {
	c.byCategory(ctx, true)
}

// ExpenseByCategory handles GET /indicators/charts/expense-by-category requests.
func (c *IndicatorsController) ExpenseByCategory(ctx *gin.Context) {
	c.byCategory(ctx, false)
}

func (c *IndicatorsController) byCategory(ctx *gin.Context, revenue bool) {
	condominiumID, startDate, endDate, ok := c.chartScope(ctx)
	if !ok {
		return
	}

	var (
		slices []indicators.CategorySlice
		err    error
	)
	if revenue {
		slices, err = c.chartsUseCase.RevenueByCategory(ctx.Request.Context(), condominiumID, startDate, endDate)
	} else {
		slices, err = c.chartsUseCase.ExpenseByCategory(ctx.Request.Context(), condominiumID, startDate, endDate)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySlicesResponse(slices))
}

// RevenueFixedVariable handles GET /indicators/charts/revenue-fixed-variable requests.
func (c *IndicatorsController) RevenueFixedVariable(ctx *gin.Context) {
	c.fixedVariable(ctx, true)
}

// ExpenseFixedVariable handles GET /indicators/charts/expense-fixed-variable requests.
func (c *IndicatorsController) ExpenseFixedVariable(ctx *gin.Context) {
	c.fixedVariable(ctx, false)
}

func (c *IndicatorsController) fixedVariable(ctx *gin.Context, revenue bool) {
	condominiumID, startDate, endDate, ok := c.chartScope(ctx)
	if !ok {
		return
	}

	var (
		slices []indicators.SplitSlice
		err    error
	)
	if revenue {
		slices, err = c.fixedVariableUseCase.RevenueSplit(ctx.Request.Context(), condominiumID, startDate, endDate)
	} else {
		slices, err = c.fixedVariableUseCase.ExpenseSplit(ctx.Request.Context(), condominiumID, startDate, endDate)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSplitSlicesResponse(slices))
}

// MonthlyBalance handles GET /indicators/charts/monthly-balance/:year requests.
func (c *IndicatorsController) MonthlyBalance(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	points, err := c.monthlyBalanceUseCase.Execute(ctx.Request.Context(), condominiumID, year)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthBalanceSeriesResponse(points))
}

// Resume handles GET /indicators/resume/:date requests.
func (c *IndicatorsController) Resume(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	date, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resume, err := c.resumeUseCase.Execute(ctx.Request.Context(), condominiumID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInterventionsResumeResponse(resume))
}

func (c *IndicatorsController) chartScope(ctx *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	startDate, err := dto.ParseDate(ctx.Query("startDate"))
	if err != nil {
		respondError(ctx, err)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	endDate, err := dto.ParseDate(ctx.Query("endDate"))
	if err != nil {
		respondError(ctx, err)
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	return condominiumID, startDate, endDate, true
}
