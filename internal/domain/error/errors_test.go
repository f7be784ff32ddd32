package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"incomplete terms", ErrIncompleteTerms, CodeIncompleteTerms},
		{"amount mismatch", ErrAmountMismatch, CodeAmountMismatch},
		{"duration mismatch", ErrDurationMismatch, CodeDurationMismatch},
		{"invalid transition", ErrInvalidTransition, CodeInvalidTransition},
		{"signature mismatch", ErrSignatureMismatch, CodeSignatureMismatch},
		{"property occupied", ErrPropertyAlreadyOccupied, CodePropertyOccupied},
		{"no matching installment", ErrNoMatchingInstallment, CodeNoMatchingInstallment},
		{"already settled", ErrAlreadySettled, CodeAlreadySettled},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"snapshot not found", ErrSnapshotNotFound, CodeTransactionNotFound},
		{"party not found", ErrPartyNotFound, CodePartyNotFound},
		{"property not found", ErrPropertyNotFound, CodePropertyNotFound},
		{"transaction locked", ErrTransactionLocked, CodeTransactionLocked},
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"ledger failure", ErrLedgerFailure, CodeLedgerFailure},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: account 5", ErrLedgerFailure)
		assert.Equal(t, CodeLedgerFailure, ErrorCode(wrapped))
	})
}

func TestTypedErrors(t *testing.T) {
	t.Run("IncompleteTermsError", func(t *testing.T) {
		err := NewIncompleteTermsError("rentDueDay", "must be between 1 and 25")

		assert.ErrorIs(t, err, ErrIncompleteTerms)
		assert.Contains(t, err.Error(), "rentDueDay")

		var typed *IncompleteTermsError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, "rentDueDay", typed.Field)
		assert.Equal(t, CodeIncompleteTerms, typed.LogFields()["error_code"])
	})

	t.Run("InvalidTransitionError", func(t *testing.T) {
		err := NewInvalidTransitionError("txn-1", "active", "approve")

		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "txn-1")

		var typed *InvalidTransitionError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, "active", typed.CurrentStatus)
		assert.Equal(t, "approve", typed.Event)
	})

	t.Run("AmountMismatchError", func(t *testing.T) {
		err := NewAmountMismatchError("txn-1", 3, "1200.00", "1100.00")

		assert.ErrorIs(t, err, ErrAmountMismatch)

		var typed *AmountMismatchError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, 3, typed.SequenceIndex)
		assert.Equal(t, "1200.00", typed.ExpectedAmount)
		assert.Equal(t, "1100.00", typed.PaidAmount)
	})

	t.Run("SignatureMismatchError", func(t *testing.T) {
		err := NewSignatureMismatchError("txn-1", "A. Kowalski")

		assert.ErrorIs(t, err, ErrSignatureMismatch)
		assert.Contains(t, err.Error(), "A. Kowalski")

		// The submitted name stays out of log fields
		var typed *SignatureMismatchError
		require.ErrorAs(t, err, &typed)
		assert.NotContains(t, typed.LogFields(), "submitted_name")
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		assert.True(t, IsValidationError(NewIncompleteTermsError("leaseStart", "is required")))
		assert.True(t, IsValidationError(NewAmountMismatchError("txn-1", 0, "1200.00", "12.00")))
		assert.True(t, IsValidationError(ErrInvalidAmount))
		assert.False(t, IsValidationError(ErrTransactionLocked))
	})

	t.Run("conflict errors", func(t *testing.T) {
		assert.True(t, IsConflictError(NewInvalidTransitionError("txn-1", "rejected", "approve")))
		assert.True(t, IsConflictError(ErrPropertyAlreadyOccupied))
		assert.True(t, IsConflictError(ErrAlreadySettled))
		assert.True(t, IsConflictError(ErrTransactionLocked))
		assert.False(t, IsConflictError(ErrIncompleteTerms))
	})

	t.Run("not found errors", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrTransactionNotFound))
		assert.True(t, IsNotFoundError(ErrSnapshotNotFound))
		assert.True(t, IsNotFoundError(ErrScheduleNotFound))
		assert.True(t, IsNotFoundError(ErrPartyNotFound))
		assert.True(t, IsNotFoundError(ErrPropertyNotFound))
		assert.False(t, IsNotFoundError(ErrInvalidTransition))
	})

	t.Run("specific helpers", func(t *testing.T) {
		assert.True(t, IsInvalidTransitionError(NewInvalidTransitionError("txn-1", "active", "sign")))
		assert.True(t, IsSignatureMismatchError(NewSignatureMismatchError("txn-1", "x")))
		assert.True(t, IsAlreadySettledError(ErrAlreadySettled))
		assert.False(t, IsAlreadySettledError(ErrAmountMismatch))
	})
}
