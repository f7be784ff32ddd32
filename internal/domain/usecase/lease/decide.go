package lease

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
)

// Decision is an owner's verdict on an application
type Decision string

// Decisions
const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Decide applies an owner decision to an InReview transaction. Approval
// freezes the negotiated terms into an immutable contract snapshot and
// advances the transaction to AwaitingSignature in the same atomic write;
// after this point no component re-reads mutable listing data, so a listing
// edit can never silently alter an already-negotiated contract. Rejection is
// terminal.
func (s *Service) Decide(ctx context.Context, transactionID string, decision Decision, terms entity.NegotiatedTerms) (*entity.LeaseTransaction, error) {
	var result *entity.LeaseTransaction

	err := s.withLock(ctx, transactionID, func(ctx context.Context) error {
		return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
			txnRepo := s.uow.GetTransactionRepository(txCtx)

			transaction, err := txnRepo.GetByID(txCtx, transactionID)
			if err != nil {
				return err
			}

			switch decision {
			case DecisionReject:
				if err := transaction.ApplyEvent(entity.EventReject, s.timeProvider); err != nil {
					return err
				}
				if err := txnRepo.Update(txCtx, transaction); err != nil {
					return err
				}

			case DecisionApprove:
				if err := transaction.ApplyEvent(entity.EventApprove, s.timeProvider); err != nil {
					return err
				}

				snapshot, err := s.buildSnapshot(txCtx, transaction, terms)
				if err != nil {
					return err
				}
				if err := s.uow.GetSnapshotRepository(txCtx).Create(txCtx, snapshot); err != nil {
					return fmt.Errorf("failed to persist contract snapshot: %w", err)
				}

				// Frozen terms in hand, the transaction moves straight on to
				// signature collection.
				if err := transaction.ApplyEvent(entity.EventTermsFrozen, s.timeProvider); err != nil {
					return err
				}
				if err := txnRepo.Update(txCtx, transaction); err != nil {
					return err
				}

			default:
				return fmt.Errorf("unknown decision %q", decision)
			}

			result = transaction
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Application decided", map[string]any{
		"transaction_id": result.ID,
		"decision":       string(decision),
		"status":         string(result.Status),
	})
	s.notifyParties(result, collaborator.KindApplicationDecided,
		"Application "+string(decision)+"d",
		fmt.Sprintf("The rental application for property %d was %sd.", result.PropertyID, decision))

	return result, nil
}

// buildSnapshot resolves both party identities through the directory and
// freezes them with the negotiated terms. Identity is read here and never
// again; the snapshot is the only record later components consult.
func (s *Service) buildSnapshot(ctx context.Context, transaction *entity.LeaseTransaction, terms entity.NegotiatedTerms) (*entity.ContractSnapshot, error) {
	tenant, err := s.identity.ResolveParty(ctx, transaction.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant identity: %w", err)
	}
	owner, err := s.identity.ResolveParty(ctx, transaction.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner identity: %w", err)
	}

	if terms.PropertyAddress == "" {
		property, err := s.uow.GetPropertyRepository(ctx).GetByID(ctx, transaction.PropertyID)
		if err != nil {
			return nil, err
		}
		terms.PropertyAddress = property.Address
	}

	return entity.NewContractSnapshot(transaction, *tenant, *owner, terms, s.timeProvider)
}
