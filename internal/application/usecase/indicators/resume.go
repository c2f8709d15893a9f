package indicators

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// InterventionsResume summarizes a year of improvements and maintenances.
// Percentage and average fields are two-decimal strings.
type InterventionsResume struct {
	ImprovementsImplemented      int
	ImprovementsCost             decimal.Decimal
	AverageImprovementCost       string
	AverageImprovementDays       string
	PercentageImpactImprovements string
	MaintenancesPerformed        int
	MaintenanceCost              decimal.Decimal
	AverageMaintenanceCost       string
	PercentageImpactMaintenances string
}

// ResumeUseCase builds the interventions resume: how much the year's
// improvements and maintenances cost and how they weigh against the year's
// total expenses.
type ResumeUseCase struct {
	recordRepo      adapter.FinancialRecordRepository
	overrideRepo    adapter.MonthlyFinanceOverrideRepository
	maintenanceRepo adapter.MaintenanceRepository
}

// NewResumeUseCase creates a new ResumeUseCase instance.
func NewResumeUseCase(
	recordRepo adapter.FinancialRecordRepository,
	overrideRepo adapter.MonthlyFinanceOverrideRepository,
	maintenanceRepo adapter.MaintenanceRepository,
) *ResumeUseCase {
	return &ResumeUseCase{
		recordRepo:      recordRepo,
		overrideRepo:    overrideRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// Execute computes the resume for the year of date. Interventions are
// attributed to the year by planned start; expense totals are override-aware
// per month.
func (uc *ResumeUseCase) Execute(ctx context.Context, condominiumID uuid.UUID, date time.Time) (*InterventionsResume, error) {
	year := date.Year()
	yearStart, yearEnd := finance.YearBounds(year)

	totalExpenses, err := uc.yearExpenses(ctx, condominiumID, year)
	if err != nil {
		return nil, err
	}

	interventions, err := uc.maintenanceRepo.FindByPlannedStartRange(ctx, condominiumID, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenances: %w", err)
	}

	improvementCount := 0
	improvementCost := decimal.Zero
	finishedImprovements := 0
	var totalExecution time.Duration
	maintenanceCount := 0
	maintenanceCost := decimal.Zero

	for _, item := range interventions {
		if item.TypeID == entity.InterventionTypeMaintenance {
			maintenanceCount++
			maintenanceCost = maintenanceCost.Add(item.Amount)
			continue
		}
		improvementCount++
		improvementCost = improvementCost.Add(item.Amount)
		if item.ActualStart != nil && item.ActualEnd != nil {
			totalExecution += item.ActualEnd.Sub(*item.ActualStart)
			finishedImprovements++
		}
	}

	return &InterventionsResume{
		ImprovementsImplemented:      improvementCount,
		ImprovementsCost:             improvementCost,
		AverageImprovementCost:       averageCost(improvementCost, improvementCount),
		AverageImprovementDays:       averageExecutionDays(totalExecution, finishedImprovements),
		PercentageImpactImprovements: percentageOf(improvementCost, totalExpenses),
		MaintenancesPerformed:        maintenanceCount,
		MaintenanceCost:              maintenanceCost,
		AverageMaintenanceCost:       averageCost(maintenanceCost, maintenanceCount),
		PercentageImpactMaintenances: percentageOf(maintenanceCost, totalExpenses),
	}, nil
}

// yearExpenses sums the year's expense total month by month, a manual
// override replacing the computed total for its month.
func (uc *ResumeUseCase) yearExpenses(ctx context.Context, condominiumID uuid.UUID, year int) (decimal.Decimal, error) {
	yearStart, yearEnd := finance.YearBounds(year)
	expenseType := entity.IncomeExpenseTypeExpense

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID:       condominiumID,
		StartDate:           yearStart,
		EndDate:             yearEnd,
		IncomeExpenseTypeID: &expenseType,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load financial records: %w", err)
	}

	byMonth := make([]decimal.Decimal, 12)
	for _, r := range records {
		idx := int(r.Record.DueDate.Month()) - 1
		byMonth[idx] = byMonth[idx].Add(r.Record.Amount)
	}

	total := decimal.Zero
	for i := 0; i < 12; i++ {
		month := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		override, err := uc.overrideRepo.FindByMonth(ctx, condominiumID, month)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to load month override: %w", err)
		}
		if override != nil && override.Expenses != nil {
			total = total.Add(*override.Expenses)
			continue
		}
		total = total.Add(byMonth[i])
	}
	return total, nil
}

func averageCost(total decimal.Decimal, count int) string {
	if count == 0 || !total.IsPositive() {
		return "0.00"
	}
	return total.Div(decimal.NewFromInt(int64(count))).StringFixed(2)
}

func averageExecutionDays(total time.Duration, finished int) string {
	if finished == 0 {
		return "0.00"
	}
	days := total.Hours() / 24 / float64(finished)
	return fmt.Sprintf("%.2f", days)
}
