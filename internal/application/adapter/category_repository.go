// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category reference data.
type CategoryRepository interface {
	// FindAll retrieves the full category taxonomy.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIncomeExpenseType retrieves categories of the given type
	// (entity.IncomeExpenseTypeIncome or entity.IncomeExpenseTypeExpense).
	FindByIncomeExpenseType(ctx context.Context, incomeExpenseTypeID int) ([]*entity.Category, error)
}
