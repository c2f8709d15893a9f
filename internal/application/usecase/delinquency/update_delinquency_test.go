// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

func newDelinquency(condominiumID uuid.UUID) *entity.DelinquencyRecord {
	return entity.NewDelinquencyRecord(
		condominiumID,
		uuid.New(),
		uuid.New(),
		dec("300.00"),
		dec("0.00"),
		date(2026, time.February, 10),
		nil,
	)
}

func TestUpdateDelinquencyUseCase_Pairing(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()

	setup := func() (*fakeDelinquencyRepo, *fakeRecordRepo, *UpdateDelinquencyUseCase, *entity.DelinquencyRecord) {
		delinquencyRepo := newFakeDelinquencyRepo()
		recordRepo := newFakeRecordRepo()
		aggregator := finance.NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)
		useCase := NewUpdateDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)
		record := newDelinquency(condominiumID)
		delinquencyRepo.add(record, nil)
		return delinquencyRepo, recordRepo, useCase, record
	}

	patch := func(record *entity.DelinquencyRecord, paymentDate *time.Time) UpdateDelinquencyInput {
		return UpdateDelinquencyInput{
			DelinquencyID: record.ID,
			UnitID:        record.UnitID,
			CategoryID:    record.CategoryID,
			Amount:        dec("300.00"),
			AmountPaid:    dec("300.00"),
			DueDate:       record.DueDate,
			PaymentDate:   paymentDate,
		}
	}

	t.Run("registering a payment inserts the paired ledger record", func(t *testing.T) {
		_, recordRepo, useCase, record := setup()

		if err := useCase.Execute(ctx, patch(record, datePtr(2026, time.March, 1))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(recordRepo.created) != 1 {
			t.Fatalf("expected 1 paired record, got %d", len(recordRepo.created))
		}
		paired := recordRepo.created[0]
		if paired.DelinquencyRecordID == nil || *paired.DelinquencyRecordID != record.ID {
			t.Error("expected the paired record to link back to the delinquency")
		}
		if paired.PaymentStatusID != entity.PaymentStatusPaid {
			t.Errorf("expected the paired record to be paid, got status %d", paired.PaymentStatusID)
		}
		if paired.UnitID == nil || *paired.UnitID != record.UnitID {
			t.Error("expected the paired record to carry the unit")
		}
		if !record.IsPaid() {
			t.Error("expected the delinquency to be marked paid")
		}
	})

	t.Run("clearing the payment deletes the paired record", func(t *testing.T) {
		_, recordRepo, useCase, record := setup()

		if err := useCase.Execute(ctx, patch(record, datePtr(2026, time.March, 1))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := useCase.Execute(ctx, patch(record, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(recordRepo.hardDeleted) != 1 {
			t.Fatalf("expected 1 hard delete, got %d", len(recordRepo.hardDeleted))
		}
		if paired, _ := recordRepo.FindByDelinquencyID(ctx, record.ID); paired != nil {
			t.Error("expected no paired record after clearing the payment")
		}
		if record.IsPaid() {
			t.Error("expected the delinquency back to unpaid")
		}
	})

	t.Run("updating a paid record patches the pair in place", func(t *testing.T) {
		_, recordRepo, useCase, record := setup()

		if err := useCase.Execute(ctx, patch(record, datePtr(2026, time.March, 1))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := patch(record, datePtr(2026, time.March, 15))
		input.Amount = dec("350.00")
		input.AmountPaid = dec("350.00")
		if err := useCase.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(recordRepo.created) != 1 {
			t.Fatalf("expected the original pair to be reused, got %d creations", len(recordRepo.created))
		}
		paired, _ := recordRepo.FindByDelinquencyID(ctx, record.ID)
		if paired == nil {
			t.Fatal("expected the pair to survive the update")
		}
		if !paired.Amount.Equal(dec("350.00")) {
			t.Errorf("expected paired amount 350.00, got %s", paired.Amount)
		}
		if paired.PaymentDate == nil || !paired.PaymentDate.Equal(date(2026, time.March, 15)) {
			t.Errorf("expected paired payment date moved, got %v", paired.PaymentDate)
		}
	})

	t.Run("update without payment leaves the ledger untouched", func(t *testing.T) {
		_, recordRepo, useCase, record := setup()

		if err := useCase.Execute(ctx, patch(record, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recordRepo.created) != 0 || len(recordRepo.hardDeleted) != 0 {
			t.Error("expected no ledger writes")
		}
	})

	t.Run("unknown delinquency fails with not found", func(t *testing.T) {
		_, _, useCase, _ := setup()

		input := UpdateDelinquencyInput{DelinquencyID: uuid.New(), DueDate: date(2026, time.February, 10)}
		err := useCase.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrDelinquencyNotFound) {
			t.Errorf("expected ErrDelinquencyNotFound, got %v", err)
		}
	})
}

func TestDeleteDelinquencyUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()

	t.Run("deletes the pair before the delinquency", func(t *testing.T) {
		delinquencyRepo := newFakeDelinquencyRepo()
		recordRepo := newFakeRecordRepo()
		aggregator := finance.NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

		record := newDelinquency(condominiumID)
		delinquencyRepo.add(record, nil)

		updateUseCase := NewUpdateDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)
		input := UpdateDelinquencyInput{
			DelinquencyID: record.ID,
			UnitID:        record.UnitID,
			CategoryID:    record.CategoryID,
			Amount:        dec("300.00"),
			AmountPaid:    dec("300.00"),
			DueDate:       record.DueDate,
			PaymentDate:   datePtr(2026, time.March, 1),
		}
		if err := updateUseCase.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		deleteUseCase := NewDeleteDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)
		if err := deleteUseCase.Execute(ctx, record.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(recordRepo.hardDeleted) != 1 {
			t.Errorf("expected the paired record deleted, got %d deletions", len(recordRepo.hardDeleted))
		}
		if len(delinquencyRepo.deletedIDs) != 1 {
			t.Errorf("expected the delinquency deleted, got %d deletions", len(delinquencyRepo.deletedIDs))
		}
	})

	t.Run("deletes an unpaired delinquency without touching the ledger", func(t *testing.T) {
		delinquencyRepo := newFakeDelinquencyRepo()
		recordRepo := newFakeRecordRepo()
		aggregator := finance.NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

		record := newDelinquency(condominiumID)
		delinquencyRepo.add(record, nil)

		useCase := NewDeleteDelinquencyUseCase(delinquencyRepo, recordRepo, aggregator)
		if err := useCase.Execute(ctx, record.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recordRepo.hardDeleted) != 0 {
			t.Error("expected no ledger deletions")
		}
	})
}
