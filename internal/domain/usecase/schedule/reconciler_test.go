package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

func testEntries() []*entity.ScheduleEntry {
	return []*entity.ScheduleEntry{
		{
			TransactionID:       "txn-1",
			SequenceIndex:       0,
			DueDate:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ExpectedAmount:      "200.00",
			ExpectedAmountCents: 20000,
			Status:              entity.EntryNextDue,
		},
		{
			TransactionID:       "txn-1",
			SequenceIndex:       1,
			DueDate:             time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			ExpectedAmount:      "100.00",
			ExpectedAmountCents: 10000,
			Status:              entity.EntryUnpaid,
		},
		{
			TransactionID:       "txn-1",
			SequenceIndex:       2,
			DueDate:             time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ExpectedAmount:      "100.00",
			ExpectedAmountCents: 10000,
			Status:              entity.EntryUnpaid,
		},
	}
}

func paymentEvent(confirmationID, amount string, cents int64, occurredAt time.Time) *entity.PaymentEvent {
	return &entity.PaymentEvent{
		ConfirmationID: confirmationID,
		TransactionID:  "txn-1",
		Amount:         amount,
		AmountCents:    cents,
		OccurredAt:     occurredAt,
	}
}

func TestApplyPayment(t *testing.T) {
	t.Run("On-time payment settles and promotes the next entry", func(t *testing.T) {
		entries := testEntries()
		event := paymentEvent("conf-1", "200.00", 20000, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))

		result, err := ApplyPayment(entries, event)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Settled.SequenceIndex)
		assert.Equal(t, entity.EntryPaidOnTime, result.Classification)
		assert.Equal(t, "conf-1", result.Settled.ConfirmationID)

		require.NotNil(t, result.Promoted)
		assert.Equal(t, 1, result.Promoted.SequenceIndex)
		assert.Equal(t, entity.EntryNextDue, result.Promoted.Status)
		assert.Equal(t, entity.EntryUnpaid, entries[2].Status)
	})

	t.Run("Late payment is classified as paid_late", func(t *testing.T) {
		entries := testEntries()
		event := paymentEvent("conf-1", "200.00", 20000, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

		result, err := ApplyPayment(entries, event)

		require.NoError(t, err)
		assert.Equal(t, entity.EntryPaidLate, result.Classification)
	})

	t.Run("Settling the last entry promotes nothing", func(t *testing.T) {
		entries := testEntries()
		entries[0].Status = entity.EntryPaidOnTime
		entries[0].ConfirmationID = "conf-0"
		entries[1].Status = entity.EntryPaidOnTime
		entries[1].ConfirmationID = "conf-1"
		entries[2].Status = entity.EntryNextDue

		result, err := ApplyPayment(entries, paymentEvent("conf-2", "100.00", 10000, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))

		require.NoError(t, err)
		assert.Equal(t, 2, result.Settled.SequenceIndex)
		assert.Nil(t, result.Promoted)
		assert.True(t, entity.FullySettled(entries))
	})

	t.Run("Duplicate confirmation id is rejected without mutation", func(t *testing.T) {
		entries := testEntries()
		entries[0].Status = entity.EntryPaidOnTime
		entries[0].ConfirmationID = "conf-1"
		entries[1].Status = entity.EntryNextDue

		result, err := ApplyPayment(entries, paymentEvent("conf-1", "100.00", 10000, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAlreadySettled)
		assert.Equal(t, entity.EntryNextDue, entries[1].Status)
		assert.Equal(t, entity.EntryUnpaid, entries[2].Status)
	})

	t.Run("Amount mismatch is rejected without mutation", func(t *testing.T) {
		entries := testEntries()
		event := paymentEvent("conf-1", "100.00", 10000, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))

		result, err := ApplyPayment(entries, event)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAmountMismatch)

		var mismatch *errs.AmountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "200.00", mismatch.ExpectedAmount)
		assert.Equal(t, "100.00", mismatch.PaidAmount)

		assert.Equal(t, entity.EntryNextDue, entries[0].Status)
		assert.Empty(t, entries[0].ConfirmationID)
	})

	t.Run("Fully settled schedule rejects further payments", func(t *testing.T) {
		entries := testEntries()
		for i, e := range entries {
			e.Status = entity.EntryPaidOnTime
			e.ConfirmationID = "conf-" + string(rune('a'+i))
		}

		result, err := ApplyPayment(entries, paymentEvent("conf-x", "100.00", 10000, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNoMatchingInstallment)
	})

	t.Run("Entries are matched in sequence order regardless of input order", func(t *testing.T) {
		entries := testEntries()
		entries[0], entries[2] = entries[2], entries[0]

		result, err := ApplyPayment(entries, paymentEvent("conf-1", "200.00", 20000, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Settled.SequenceIndex)
	})
}
