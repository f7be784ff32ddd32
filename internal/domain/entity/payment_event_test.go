package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

func TestNewPaymentEvent(t *testing.T) {
	occurredAt := time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

	t.Run("Valid event", func(t *testing.T) {
		event, err := NewPaymentEvent("conf-1", "txn-1", "1200.5", occurredAt)

		require.NoError(t, err)
		assert.Equal(t, "conf-1", event.ConfirmationID)
		assert.Equal(t, "txn-1", event.TransactionID)
		assert.Equal(t, "1200.50", event.Amount)
		assert.Equal(t, int64(120050), event.AmountCents)
		assert.Equal(t, occurredAt, event.OccurredAt)
	})

	t.Run("Empty transaction ID", func(t *testing.T) {
		_, err := NewPaymentEvent("conf-1", "", "1200.00", occurredAt)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionID)
	})

	t.Run("Empty confirmation ID", func(t *testing.T) {
		_, err := NewPaymentEvent("", "txn-1", "1200.00", occurredAt)
		assert.ErrorIs(t, err, errs.ErrLedgerFailure)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		_, err := NewPaymentEvent("conf-1", "txn-1", "12,00", occurredAt)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
