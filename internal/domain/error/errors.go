package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest        = 4000
	CodeIncompleteTerms       = 4001
	CodeAmountMismatch        = 4002
	CodeDurationMismatch      = 4003
	CodeInvalidTransition     = 4004
	CodeSignatureMismatch     = 4005
	CodePropertyOccupied      = 4006
	CodeNoMatchingInstallment = 4007
	CodeAlreadySettled        = 4008
	CodeInvalidAmount         = 4009
	CodeTransactionNotFound   = 4040
	CodePartyNotFound         = 4041
	CodePropertyNotFound      = 4042
	CodeTransactionLocked     = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeLedgerFailure  = 5001
)

// Base error types
var (
	// ErrIncompleteTerms is returned when the negotiated terms are missing a required field
	ErrIncompleteTerms = errors.New("incomplete contract terms")

	// ErrInvalidTransition is returned when an event is not valid for the transaction's current status
	ErrInvalidTransition = errors.New("invalid lease transition")

	// ErrSignatureMismatch is returned when a submitted signature does not match the snapshot's recorded names
	ErrSignatureMismatch = errors.New("signature does not match contract party names")

	// ErrPropertyAlreadyOccupied is returned when activating a lease on a property that already has an active lease
	ErrPropertyAlreadyOccupied = errors.New("property already has an active lease")

	// ErrNoMatchingInstallment is returned when a payment does not target the next due installment
	ErrNoMatchingInstallment = errors.New("payment does not match the next due installment")

	// ErrAlreadySettled is returned when re-applying a payment to an installment that is already paid
	ErrAlreadySettled = errors.New("installment already settled")

	// ErrAmountMismatch is returned when a payment amount differs from the installment's expected amount
	ErrAmountMismatch = errors.New("payment amount does not match expected installment amount")

	// ErrDurationMismatch is returned when an installment count is inconsistent with the lease duration class
	ErrDurationMismatch = errors.New("installment count inconsistent with lease duration class")

	// ErrInvalidAmount is returned when a monetary amount string is malformed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTransactionID is returned when a transaction identifier is empty
	ErrInvalidTransactionID = errors.New("transaction ID cannot be empty")

	// ErrInvalidPartyID is returned when a tenant/owner identifier is not a positive integer
	ErrInvalidPartyID = errors.New("party ID must be positive")

	// ErrInvalidPropertyID is returned when a property identifier is not a positive integer
	ErrInvalidPropertyID = errors.New("property ID must be positive")

	// ErrTransactionNotFound is returned when the requested lease transaction doesn't exist
	ErrTransactionNotFound = errors.New("lease transaction not found")

	// ErrSnapshotNotFound is returned when a transaction has no contract snapshot yet
	ErrSnapshotNotFound = errors.New("contract snapshot not found")

	// ErrScheduleNotFound is returned when a transaction has no generated schedule yet
	ErrScheduleNotFound = errors.New("rent schedule not found")

	// ErrPartyNotFound is returned when the identity directory has no record for a party
	ErrPartyNotFound = errors.New("party not found")

	// ErrPropertyNotFound is returned when the requested property doesn't exist
	ErrPropertyNotFound = errors.New("property not found")

	// ErrTransactionLocked is returned when a lease transaction is locked by another operation
	ErrTransactionLocked = errors.New("lease transaction is locked by another operation")

	// ErrLedgerFailure is returned when the wallet ledger cannot confirm a debit or credit
	ErrLedgerFailure = errors.New("wallet ledger operation failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the document store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrIncompleteTerms):
		return CodeIncompleteTerms
	case errors.Is(err, ErrAmountMismatch):
		return CodeAmountMismatch
	case errors.Is(err, ErrDurationMismatch):
		return CodeDurationMismatch
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrSignatureMismatch):
		return CodeSignatureMismatch
	case errors.Is(err, ErrPropertyAlreadyOccupied):
		return CodePropertyOccupied
	case errors.Is(err, ErrNoMatchingInstallment):
		return CodeNoMatchingInstallment
	case errors.Is(err, ErrAlreadySettled):
		return CodeAlreadySettled
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrScheduleNotFound), errors.Is(err, ErrSnapshotNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrPartyNotFound):
		return CodePartyNotFound
	case errors.Is(err, ErrPropertyNotFound):
		return CodePropertyNotFound
	case errors.Is(err, ErrTransactionLocked):
		return CodeTransactionLocked
	case errors.Is(err, ErrLedgerFailure):
		return CodeLedgerFailure
	default:
		return CodeInternalServer
	}
}

// IncompleteTermsError names the first missing or invalid negotiated-terms field
type IncompleteTermsError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *IncompleteTermsError) Error() string {
	return fmt.Sprintf("incomplete contract terms: field %q %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrIncompleteTerms
func (e *IncompleteTermsError) Is(target error) bool {
	return target == ErrIncompleteTerms
}

// LogFields returns a map of fields for structured logging
func (e *IncompleteTermsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "incomplete_terms",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeIncompleteTerms,
	}
}

// NewIncompleteTermsError creates a new detailed incomplete terms error
func NewIncompleteTermsError(field, reason string) error {
	return &IncompleteTermsError{Field: field, Reason: reason}
}

// InvalidTransitionError reports the current status so a stale caller can refresh and decide
type InvalidTransitionError struct {
	TransactionID string
	CurrentStatus string
	Event         string
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for lease %s: event %q not allowed in status %q",
		e.TransactionID, e.Event, e.CurrentStatus)
}

// Is checks if the target error is an ErrInvalidTransition
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "invalid_transition",
		"transaction_id": e.TransactionID,
		"current_status": e.CurrentStatus,
		"event":          e.Event,
		"error_code":     CodeInvalidTransition,
	}
}

// NewInvalidTransitionError creates a detailed invalid transition error
func NewInvalidTransitionError(transactionID, currentStatus, event string) error {
	return &InvalidTransitionError{
		TransactionID: transactionID,
		CurrentStatus: currentStatus,
		Event:         event,
	}
}

// AmountMismatchError carries both sides of a rejected payment amount
type AmountMismatchError struct {
	TransactionID  string
	SequenceIndex  int
	ExpectedAmount string
	PaidAmount     string
}

// Error implements the error interface
func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch for lease %s installment %d: expected %s, got %s",
		e.TransactionID, e.SequenceIndex, e.ExpectedAmount, e.PaidAmount)
}

// Is checks if the target error is an ErrAmountMismatch
func (e *AmountMismatchError) Is(target error) bool {
	return target == ErrAmountMismatch
}

// LogFields returns a map of fields for structured logging
func (e *AmountMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "amount_mismatch",
		"transaction_id":  e.TransactionID,
		"sequence_index":  e.SequenceIndex,
		"expected_amount": e.ExpectedAmount,
		"paid_amount":     e.PaidAmount,
		"error_code":      CodeAmountMismatch,
	}
}

// NewAmountMismatchError creates a new detailed amount mismatch error
func NewAmountMismatchError(transactionID string, sequenceIndex int, expected, paid string) error {
	return &AmountMismatchError{
		TransactionID:  transactionID,
		SequenceIndex:  sequenceIndex,
		ExpectedAmount: expected,
		PaidAmount:     paid,
	}
}

// SignatureMismatchError reports which submitted name failed to match
type SignatureMismatchError struct {
	TransactionID string
	SubmittedName string
}

// Error implements the error interface
func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature mismatch for lease %s: %q does not match either contract party",
		e.TransactionID, e.SubmittedName)
}

// Is checks if the target error is an ErrSignatureMismatch
func (e *SignatureMismatchError) Is(target error) bool {
	return target == ErrSignatureMismatch
}

// LogFields returns a map of fields for structured logging
func (e *SignatureMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "signature_mismatch",
		"transaction_id": e.TransactionID,
		"error_code":     CodeSignatureMismatch,
	}
}

// NewSignatureMismatchError creates a new detailed signature mismatch error
func NewSignatureMismatchError(transactionID, submittedName string) error {
	return &SignatureMismatchError{TransactionID: transactionID, SubmittedName: submittedName}
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// IsSignatureMismatchError checks if the error is a signature mismatch error
func IsSignatureMismatchError(err error) bool {
	return errors.Is(err, ErrSignatureMismatch)
}

// IsAlreadySettledError checks if the error is an already settled error
func IsAlreadySettledError(err error) bool {
	return errors.Is(err, ErrAlreadySettled)
}

// IsValidationError checks if the error is a caller-mistake validation error (no retry)
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIncompleteTerms) ||
		errors.Is(err, ErrAmountMismatch) ||
		errors.Is(err, ErrDurationMismatch) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount)
}

// IsConflictError checks if the error indicates a stale or conflicting caller view
func IsConflictError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrPropertyAlreadyOccupied) ||
		errors.Is(err, ErrNoMatchingInstallment) ||
		errors.Is(err, ErrAlreadySettled) ||
		errors.Is(err, ErrTransactionLocked)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSnapshotNotFound) ||
		errors.Is(err, ErrScheduleNotFound) ||
		errors.Is(err, ErrPartyNotFound) ||
		errors.Is(err, ErrPropertyNotFound)
}
