// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
	"github.com/condo-control/backend/internal/integration/entrypoint/middleware"
)

// respondError maps a domain error to its HTTP status and writes the error
// response. Validation errors surface with their message; store failures stay
// opaque.
func respondError(c *gin.Context, err error) {
	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		c.JSON(statusForCode(string(financeErr.Code)), dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	var delinquencyErr *domainerror.DelinquencyError
	if errors.As(err, &delinquencyErr) {
		c.JSON(statusForCode(string(delinquencyErr.Code)), dto.ErrorResponse{
			Error: delinquencyErr.Message,
			Code:  string(delinquencyErr.Code),
		})
		return
	}

	var maintenanceErr *domainerror.MaintenanceError
	if errors.As(err, &maintenanceErr) {
		c.JSON(statusForCode(string(maintenanceErr.Code)), dto.ErrorResponse{
			Error: maintenanceErr.Message,
			Code:  string(maintenanceErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrFinancialRecordNotFound),
		errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrOverrideNotFound),
		errors.Is(err, domainerror.ErrDelinquencyNotFound),
		errors.Is(err, domainerror.ErrMaintenanceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}

// statusForCode maps the category segment of a domain error code to an HTTP
// status. Codes follow XXX-CCYYYY where CC is 01 validation, 02 not-found
// and 99 internal.
func statusForCode(code string) int {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return http.StatusInternalServerError
	}
	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// condominiumScope pulls the authenticated condominium out of the request,
// writing the 401 itself when the scope is missing.
func condominiumScope(c *gin.Context) (uuid.UUID, bool) {
	condominiumID, ok := middleware.GetCondominiumIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return condominiumID, true
}
