package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

func longTermSnapshot() *entity.ContractSnapshot {
	return &entity.ContractSnapshot{
		TransactionID:        "txn-1",
		LeaseStart:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LeaseEnd:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		DurationClass:        entity.LongTerm12,
		RentAmount:           "100.00",
		RentAmountCents:      10000,
		RentDueDay:           15,
		SecurityDeposit:      "150.00",
		SecurityDepositCents: 15000,
		AdvancePayment:       "50.00",
		AdvancePaymentCents:  5000,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("Twelve month lease", func(t *testing.T) {
		entries := Generate(longTermSnapshot())

		require.Len(t, entries, 12)

		// Entry 0 combines deposit and advance, due on lease start
		first := entries[0]
		assert.Equal(t, "txn-1", first.TransactionID)
		assert.Equal(t, 0, first.SequenceIndex)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.DueDate)
		assert.Equal(t, "200.00", first.ExpectedAmount)
		assert.Equal(t, int64(20000), first.ExpectedAmountCents)
		assert.Equal(t, entity.EntryNextDue, first.Status)

		second := entries[1]
		assert.Equal(t, 1, second.SequenceIndex)
		assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), second.DueDate)
		assert.Equal(t, "100.00", second.ExpectedAmount)
		assert.Equal(t, entity.EntryUnpaid, second.Status)

		last := entries[11]
		assert.Equal(t, 11, last.SequenceIndex)
		assert.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), last.DueDate)
	})

	t.Run("Six month lease", func(t *testing.T) {
		snapshot := longTermSnapshot()
		snapshot.DurationClass = entity.ShortTerm6

		entries := Generate(snapshot)

		require.Len(t, entries, 6)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), entries[5].DueDate)
	})

	t.Run("Due day is clamped to short months", func(t *testing.T) {
		snapshot := longTermSnapshot()
		snapshot.LeaseStart = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		snapshot.RentDueDay = 30

		entries := Generate(snapshot)

		// 2024 is a leap year; February clamps to the 29th
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), entries[1].DueDate)
		assert.Equal(t, time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), entries[2].DueDate)
	})

	t.Run("Year rollover", func(t *testing.T) {
		snapshot := longTermSnapshot()
		snapshot.LeaseStart = time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)

		entries := Generate(snapshot)

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), entries[3].DueDate)
		assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), entries[11].DueDate)
	})

	t.Run("Generation is deterministic", func(t *testing.T) {
		snapshot := longTermSnapshot()

		first := Generate(snapshot)
		second := Generate(snapshot)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, *first[i], *second[i])
		}
	})
}

func TestValidateInstallmentCount(t *testing.T) {
	assert.NoError(t, ValidateInstallmentCount(entity.ShortTerm6, 6))
	assert.NoError(t, ValidateInstallmentCount(entity.LongTerm12, 12))
	assert.ErrorIs(t, ValidateInstallmentCount(entity.ShortTerm6, 12), errs.ErrDurationMismatch)
	assert.ErrorIs(t, ValidateInstallmentCount(entity.LongTerm12, 11), errs.ErrDurationMismatch)
}
