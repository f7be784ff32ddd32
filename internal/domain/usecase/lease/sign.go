package lease

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/usecase/schedule"
)

// Sign records one party's signature against the frozen contract names.
// The match is case-sensitive and whitespace-trimmed; a mismatch fails with
// SignatureMismatch and the transaction stays in AwaitingSignature. Once both
// parties have signed, the transaction advances to AwaitingPayment and the
// full rent schedule is generated from the snapshot in the same atomic write.
func (s *Service) Sign(ctx context.Context, transactionID, signerFullName string) (*entity.LeaseTransaction, error) {
	var result *entity.LeaseTransaction
	var bothSigned bool

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

			bothSigned, err = transaction.RecordSignature(snapshot, signerFullName, s.timeProvider)
			if err != nil {
				return err
			}

			if bothSigned {
				if err := transaction.ApplyEvent(entity.EventBothPartiesSigned, s.timeProvider); err != nil {
					return err
				}

				entries := schedule.Generate(snapshot)
				if err := s.uow.GetScheduleRepository(txCtx).CreateAll(txCtx, entries); err != nil {
					return fmt.Errorf("failed to persist rent schedule: %w", err)
				}
			}

			if err := txnRepo.Update(txCtx, transaction); err != nil {
				return err
			}

			result = transaction
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Contract signature recorded", map[string]any{
		"transaction_id": result.ID,
		"both_signed":    bothSigned,
		"status":         string(result.Status),
	})
	if bothSigned {
		s.notifyParties(result, collaborator.KindSignatureComplete,
			"Contract fully signed",
			"Both parties have signed; the deposit and advance payment are now due.")
	}

	return result, nil
}
