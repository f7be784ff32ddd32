package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

// PaymentEvent is a confirmed funds-transfer event ingested from the wallet
// ledger. The engine only consumes confirmed events; it never computes or
// stores account balances itself.
type PaymentEvent struct {
	ConfirmationID string
	TransactionID  string
	Amount         string
	AmountCents    int64
	OccurredAt     time.Time
}

// NewPaymentEvent validates and builds a payment event from ledger output
func NewPaymentEvent(confirmationID, transactionID, amount string, occurredAt time.Time) (*PaymentEvent, error) {
	if transactionID == "" {
		return nil, errs.ErrInvalidTransactionID
	}
	if confirmationID == "" {
		return nil, errs.ErrLedgerFailure
	}

	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	return &PaymentEvent{
		ConfirmationID: confirmationID,
		TransactionID:  transactionID,
		Amount:         EnsureTwoDecimalPlaces(amount),
		AmountCents:    cents,
		OccurredAt:     occurredAt,
	}, nil
}
