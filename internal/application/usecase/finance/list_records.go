// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// ListRecordsInput represents the input for the ledger listing.
type ListRecordsInput struct {
	CondominiumID       uuid.UUID
	StartDate           time.Time
	EndDate             time.Time
	IncomeExpenseTypeID *int // nil lists both types
}

// ListRecordsUseCase lists non-deleted ledger entries for a period, joined
// with their categories, ordered by amount descending.
type ListRecordsUseCase struct {
	recordRepo adapter.FinancialRecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.FinancialRecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute lists the records for the given period.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) ([]*entity.FinancialRecordWithCategory, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID:       input.CondominiumID,
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		IncomeExpenseTypeID: input.IncomeExpenseTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}

	return records, nil
}

// ListCategoriesUseCase lists the category taxonomy options.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists every category.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
