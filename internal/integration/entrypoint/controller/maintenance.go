// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/usecase/maintenance"
	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
	"github.com/condo-control/backend/internal/integration/entrypoint/middleware"
)

// MaintenanceController handles the maintenance backlog endpoints.
type MaintenanceController struct {
	createUseCase *maintenance.CreateMaintenanceUseCase
	updateUseCase *maintenance.UpdateMaintenanceUseCase
	deleteUseCase *maintenance.DeleteMaintenanceUseCase
	listUseCase   *maintenance.ListMaintenancesUseCase
	getUseCase    *maintenance.GetMaintenanceUseCase
	cardsUseCase  *maintenance.GetCardsUseCase
}

// NewMaintenanceController creates a new maintenance controller instance.
func NewMaintenanceController(
	createUseCase *maintenance.CreateMaintenanceUseCase,
	updateUseCase *maintenance.UpdateMaintenanceUseCase,
	deleteUseCase *maintenance.DeleteMaintenanceUseCase,
	listUseCase *maintenance.ListMaintenancesUseCase,
	getUseCase *maintenance.GetMaintenanceUseCase,
	cardsUseCase *maintenance.GetCardsUseCase,
) *MaintenanceController {
	return &MaintenanceController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		cardsUseCase:  cardsUseCase,
	}
}

// List handles GET /maintenance/:date requests.
func (c *MaintenanceController) List(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	date, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	rows, err := c.listUseCase.Execute(ctx.Request.Context(), condominiumID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMaintenanceListResponse(rows))
}

// Get handles GET /maintenance/detail/:maintenanceId requests.
func (c *MaintenanceController) Get(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	maintenanceID, err := uuid.Parse(ctx.Param("maintenanceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid maintenance ID"})
		return
	}

	row, err := c.getUseCase.Execute(ctx.Request.Context(), maintenanceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMaintenanceResponse(row.Maintenance, row.Payments))
}

// GetCards handles GET /maintenance/cards/:date requests.
func (c *MaintenanceController) GetCards(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}

	date, err := dto.ParseDate(ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	cards, err := c.cardsUseCase.Execute(ctx.Request.Context(), condominiumID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMaintenanceCardsResponse(cards))
}

// Create handles POST /maintenance requests.
func (c *MaintenanceController) Create(ctx *gin.Context) {
	condominiumID, ok := condominiumScope(ctx)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(ctx)

	body, err := c.bindMaintenanceBody(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), maintenance.CreateMaintenanceInput{
		CondominiumID:        condominiumID,
		CreatedByID:          userID,
		TypeID:               body.typeID,
		MaintenanceTypeID:    body.maintenanceTypeID,
		Description:          body.description,
		Supplier:             body.supplier,
		Amount:               body.amount,
		PaymentMethodID:      body.paymentMethodID,
		PriorityID:           body.priorityID,
		StatusID:             body.statusID,
		PaymentDate:          body.paymentDate,
		PlannedStart:         body.plannedStart,
		PlannedEnd:           body.plannedEnd,
		ActualStart:          body.actualStart,
		ActualEnd:            body.actualEnd,
		IsInstallment:        body.isInstallment,
		NumberOfInstallments: body.numberOfInstallments,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": output.MaintenanceID.String()})
}

// Update handles PUT /maintenance/:maintenanceId requests.
func (c *MaintenanceController) Update(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	maintenanceID, err := uuid.Parse(ctx.Param("maintenanceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid maintenance ID"})
		return
	}

	body, err := c.bindMaintenanceBody(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), maintenance.UpdateMaintenanceInput{
		MaintenanceID:        maintenanceID,
		TypeID:               body.typeID,
		MaintenanceTypeID:    body.maintenanceTypeID,
		Description:          body.description,
		Supplier:             body.supplier,
		Amount:               body.amount,
		PaymentMethodID:      body.paymentMethodID,
		PriorityID:           body.priorityID,
		StatusID:             body.statusID,
		PaymentDate:          body.paymentDate,
		PlannedStart:         body.plannedStart,
		PlannedEnd:           body.plannedEnd,
		ActualStart:          body.actualStart,
		ActualEnd:            body.actualEnd,
		IsInstallment:        body.isInstallment,
		NumberOfInstallments: body.numberOfInstallments,
		NextMaintenanceDate:  body.nextMaintenance,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := gin.H{"id": output.MaintenanceID.String()}
	if output.SuccessorID != nil {
		response["nextMaintenanceId"] = output.SuccessorID.String()
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /maintenance/:maintenanceId requests.
func (c *MaintenanceController) Delete(ctx *gin.Context) {
	if _, ok := condominiumScope(ctx); !ok {
		return
	}

	maintenanceID, err := uuid.Parse(ctx.Param("maintenanceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid maintenance ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), maintenanceID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type maintenanceBody struct {
	typeID               int
	maintenanceTypeID    int
	description          string
	supplier             string
	amount               decimal.Decimal
	paymentMethodID      int
	priorityID           int
	statusID             int
	paymentDate          *time.Time
	plannedStart         *time.Time
	plannedEnd           *time.Time
	actualStart          *time.Time
	actualEnd            *time.Time
	isInstallment        bool
	numberOfInstallments *int
	nextMaintenance      *time.Time
}

func (c *MaintenanceController) bindMaintenanceBody(ctx *gin.Context) (*maintenanceBody, error) {
	var req dto.MaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, domainerror.NewMaintenanceError(
			domainerror.ErrCodeMaintenanceMissingAmount,
			"invalid request body",
			err,
		)
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	paymentDate, err := dto.ParseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}
	plannedStart, err := dto.ParseOptionalDate(req.PlannedStart)
	if err != nil {
		return nil, err
	}
	plannedEnd, err := dto.ParseOptionalDate(req.PlannedEnd)
	if err != nil {
		return nil, err
	}
	actualStart, err := dto.ParseOptionalDate(req.ActualStart)
	if err != nil {
		return nil, err
	}
	actualEnd, err := dto.ParseOptionalDate(req.ActualEnd)
	if err != nil {
		return nil, err
	}
	nextMaintenance, err := dto.ParseOptionalDate(req.NextMaintenance)
	if err != nil {
		return nil, err
	}

	return &maintenanceBody{
		typeID:               req.TypeID,
		maintenanceTypeID:    req.MaintenanceTypeID,
		description:          req.Description,
		supplier:             req.Supplier,
		amount:               amount,
		paymentMethodID:      req.PaymentMethodID,
		priorityID:           req.PriorityID,
		statusID:             req.StatusID,
		paymentDate:          paymentDate,
		plannedStart:         plannedStart,
		plannedEnd:           plannedEnd,
		actualStart:          actualStart,
		actualEnd:            actualEnd,
		isInstallment:        req.IsInstallment,
		numberOfInstallments: req.NumberOfInstallments,
		nextMaintenance:      nextMaintenance,
	}, nil
}
