package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/usecase/schedule"
)

// PaymentRequest carries a payment against the next due installment.
// When ConfirmationID is set the transfer was already confirmed by the
// ledger (an ingested event, or a retry after an ambiguous failure) and no
// debit is attempted; otherwise the engine debits the tenant's wallet and
// uses the returned confirmation. OccurredAt is the ledger's transfer
// timestamp for a pre-confirmed payment and drives the on-time versus late
// classification; left zero it falls back to the recording time.
type PaymentRequest struct {
	Amount         string
	ConfirmationID string
	OccurredAt     time.Time
}

// PaymentOutcome reports a successful reconciliation
type PaymentOutcome struct {
	Transaction    *entity.LeaseTransaction
	SettledEntry   *entity.ScheduleEntry
	Classification entity.EntryStatus
}

// RecordPayment applies one payment to the lease's schedule. The target is
// always the current NextDue entry and the amount must match it exactly;
// both checks run before any money moves, so a caller mistake never debits
// funds. The settlement, the NextDue promotion, and (for the deposit
// installment) the Active transition with its occupancy flip all commit in
// one atomic write. Retrying with the same confirmation id is a no-op error
// (AlreadySettled), never a double-credit.
func (s *Service) RecordPayment(ctx context.Context, transactionID string, req PaymentRequest) (*PaymentOutcome, error) {
	var outcome *PaymentOutcome
	var activated bool

	err := s.withLock(ctx, transactionID, func(ctx context.Context) error {
		return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
			txnRepo := s.uow.GetTransactionRepository(txCtx)
			schedRepo := s.uow.GetScheduleRepository(txCtx)

			transaction, err := txnRepo.GetByID(txCtx, transactionID)
			if err != nil {
				return err
			}
			if transaction.Status != entity.StatusAwaitingPayment && transaction.Status != entity.StatusActive {
				return errs.NewInvalidTransitionError(transaction.ID, string(transaction.Status), "record_payment")
			}

			entries, err := schedRepo.GetByTransactionID(txCtx, transactionID)
			if err != nil {
				return err
			}

			event, err := s.confirmPayment(txCtx, transaction, entries, req)
			if err != nil {
				return err
			}

			result, err := schedule.ApplyPayment(entries, event)
			if err != nil {
				return err
			}

			if err := schedRepo.UpdateEntry(txCtx, result.Settled); err != nil {
				return err
			}
			if result.Promoted != nil {
				if err := schedRepo.UpdateEntry(txCtx, result.Promoted); err != nil {
					return err
				}
			}

			// The deposit installment activates the lease. The per-property
			// invariant is re-checked inside the same transaction; a stale
			// caller loses here and stays in AwaitingPayment.
			if transaction.Status == entity.StatusAwaitingPayment && result.Settled.SequenceIndex == 0 {
				occupied, err := txnRepo.ActiveExistsForProperty(txCtx, transaction.PropertyID)
				if err != nil {
					return err
				}
				if occupied {
					return errs.ErrPropertyAlreadyOccupied
				}
				if err := transaction.ApplyEvent(entity.EventDepositConfirmed, s.timeProvider); err != nil {
					return err
				}
				if err := s.uow.GetPropertyRepository(txCtx).MarkOccupied(txCtx, transaction.PropertyID); err != nil {
					return err
				}
				if err := txnRepo.Update(txCtx, transaction); err != nil {
					return err
				}
				activated = true
			}

			outcome = &PaymentOutcome{
				Transaction:    transaction,
				SettledEntry:   result.Settled,
				Classification: result.Classification,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment reconciled", map[string]any{
		"transaction_id": transactionID,
		"sequence_index": outcome.SettledEntry.SequenceIndex,
		"classification": string(outcome.Classification),
		"activated":      activated,
	})

	if activated {
		s.notifyParties(outcome.Transaction, collaborator.KindLeaseActivated,
			"Lease activated",
			"Deposit and advance payment received; the lease is now active.")
	} else {
		s.notifyParties(outcome.Transaction, collaborator.KindPaymentReceived,
			"Rent payment received",
			fmt.Sprintf("Installment %d settled (%s).", outcome.SettledEntry.SequenceIndex, outcome.Classification))
	}

	return outcome, nil
}

// confirmPayment turns a request into a confirmed ledger event. Validation
// against the NextDue entry happens before the debit: a ledger failure
// aborts the whole operation, and no money moves on a mismatch.
func (s *Service) confirmPayment(ctx context.Context, transaction *entity.LeaseTransaction, entries []*entity.ScheduleEntry, req PaymentRequest) (*entity.PaymentEvent, error) {
	confirmationID := req.ConfirmationID
	occurredAt := req.OccurredAt
	if confirmationID == "" {
		target := entity.NextDueEntry(entries)
		if target == nil {
			return nil, errs.ErrNoMatchingInstallment
		}

		amountCents, err := entity.ValidateAndConvertAmount(req.Amount)
		if err != nil {
			return nil, err
		}
		if amountCents != target.ExpectedAmountCents {
			return nil, errs.NewAmountMismatchError(
				transaction.ID, target.SequenceIndex, target.ExpectedAmount, entity.EnsureTwoDecimalPlaces(req.Amount))
		}

		confirmationID, err = s.ledger.Debit(ctx, transaction.TenantID, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrLedgerFailure, err.Error())
		}

		// Forward the funds to the owner. Still inside the same operation:
		// a credit failure aborts before anything is committed.
		if _, err := s.ledger.Credit(ctx, transaction.OwnerID, req.Amount); err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrLedgerFailure, err.Error())
		}

		// The engine performed the transfer just now
		occurredAt = s.timeProvider.Now()
	}

	if occurredAt.IsZero() {
		occurredAt = s.timeProvider.Now()
	}

	return entity.NewPaymentEvent(confirmationID, transaction.ID, req.Amount, occurredAt)
}
