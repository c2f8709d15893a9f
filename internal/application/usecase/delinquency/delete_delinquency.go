// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// DeleteDelinquencyUseCase removes a delinquency record. The paired financial
// record is deleted first; reversing the order would leave its
// delinquencyRecordID dangling, so the ordering is a correctness requirement.
type DeleteDelinquencyUseCase struct {
	delinquencyRepo adapter.DelinquencyRepository
	recordRepo      adapter.FinancialRecordRepository
	aggregator      *finance.Aggregator
}

// NewDeleteDelinquencyUseCase creates a new DeleteDelinquencyUseCase instance.
func NewDeleteDelinquencyUseCase(
	delinquencyRepo adapter.DelinquencyRepository,
	recordRepo adapter.FinancialRecordRepository,
	aggregator *finance.Aggregator,
) *DeleteDelinquencyUseCase {
	return &DeleteDelinquencyUseCase{
		delinquencyRepo: delinquencyRepo,
		recordRepo:      recordRepo,
		aggregator:      aggregator,
	}
}

// Execute deletes the paired financial record (if any) and then the
// delinquency record itself.
func (uc *DeleteDelinquencyUseCase) Execute(ctx context.Context, delinquencyID uuid.UUID) error {
	record, err := uc.delinquencyRepo.FindByID(ctx, delinquencyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDelinquencyNotFound) {
			return domainerror.NewDelinquencyError(
				domainerror.ErrCodeDelinquencyNotFound,
				"delinquency record not found",
				domainerror.ErrDelinquencyNotFound,
			)
		}
		return fmt.Errorf("failed to load delinquency record: %w", err)
	}

	paired, err := uc.recordRepo.FindByDelinquencyID(ctx, delinquencyID)
	if err != nil {
		return fmt.Errorf("failed to look up paired financial record: %w", err)
	}

	if paired != nil {
		if err := uc.recordRepo.HardDelete(ctx, paired.ID); err != nil {
			return fmt.Errorf("failed to delete paired financial record: %w", err)
		}
		uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, paired.DueDate)
	}

	if err := uc.delinquencyRepo.Delete(ctx, delinquencyID); err != nil {
		return fmt.Errorf("failed to delete delinquency record: %w", err)
	}

	return nil
}
