package lease

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
)

// RequestTermination lets either party end an active lease, subject to the
// frozen notice period. Termination takes effect not immediately but after
// terminationNoticeDays, recorded on the transaction; the status change and
// the occupancy release still commit atomically now so the property can be
// re-listed for the post-notice window.
func (s *Service) RequestTermination(ctx context.Context, transactionID string, requesterID uint64) (*entity.LeaseTransaction, error) {
	var result *entity.LeaseTransaction

	err := s.withLock(ctx, transactionID, func(ctx context.Context) error {
		return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
			txnRepo := s.uow.GetTransactionRepository(txCtx)

			transaction, err := txnRepo.GetByID(txCtx, transactionID)
			if err != nil {
				return err
			}
			if requesterID != transaction.TenantID && requesterID != transaction.OwnerID {
				return fmt.Errorf("%w: requester %d is not a party to lease %s",
					errs.ErrInvalidRequest, requesterID, transactionID)
			}

			snapshot, err := s.loadSnapshot(txCtx, transactionID)
			if err != nil {
				return err
			}

			if err := transaction.ApplyEvent(entity.EventTerminationRequested, s.timeProvider); err != nil {
				return err
			}
			transaction.ScheduleTermination(snapshot.TerminationNoticeDays, s.timeProvider)

			if err := txnRepo.Update(txCtx, transaction); err != nil {
				return err
			}
			if err := s.uow.GetPropertyRepository(txCtx).MarkVacant(txCtx, transaction.PropertyID); err != nil {
				return err
			}

			result = transaction
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lease termination scheduled", map[string]any{
		"transaction_id": result.ID,
		"requester_id":   requesterID,
		"effective_at":   result.TerminationEffectiveAt,
	})
	s.notifyParties(result, collaborator.KindTerminationScheduled,
		"Lease termination scheduled",
		fmt.Sprintf("The lease ends on %s per the agreed notice period.",
			result.TerminationEffectiveAt.Format("2006-01-02")))

	return result, nil
}

// CompleteLease raises the natural lease-end event. It is only valid for an
// active lease whose schedule is fully settled and whose lease end has been
// reached; anything else is an invalid transition so nothing completes with
// an outstanding balance.
func (s *Service) CompleteLease(ctx context.Context, transactionID string) (*entity.LeaseTransaction, error) {
	var result *entity.LeaseTransaction

	err := s.withLock(ctx, transactionID, func(ctx context.Context) error {
		return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
			txnRepo := s.uow.GetTransactionRepository(txCtx)

			transaction, err := txnRepo.GetByID(txCtx, transactionID)
			if err != nil {
				return err
			}

			snapshot, err := s.loadSnapshot(txCtx, transactionID)
			if err != nil {
				return err
			}
			entries, err := s.uow.GetScheduleRepository(txCtx).GetByTransactionID(txCtx, transactionID)
			if err != nil {
				return err
			}

			if !entity.FullySettled(entries) || s.timeProvider.Now().Before(snapshot.LeaseEnd) {
				return errs.NewInvalidTransitionError(transaction.ID, string(transaction.Status), string(entity.EventLeaseEnded))
			}

			if err := transaction.ApplyEvent(entity.EventLeaseEnded, s.timeProvider); err != nil {
				return err
			}
			if err := txnRepo.Update(txCtx, transaction); err != nil {
				return err
			}
			if err := s.uow.GetPropertyRepository(txCtx).MarkVacant(txCtx, transaction.PropertyID); err != nil {
				return err
			}

			result = transaction
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lease completed", map[string]any{
		"transaction_id": result.ID,
	})
	s.notifyParties(result, collaborator.KindLeaseCompleted,
		"Lease completed",
		"The lease term has ended with all installments settled.")

	return result, nil
}
