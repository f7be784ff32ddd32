package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/collaborator"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/persistence"
)

// Service owns every lease lifecycle operation. All transitions funnel
// through here; callers (HTTP layer, scripts) only raise events and never
// compute next-state themselves.
type Service struct {
	uow          persistence.UnitOfWork
	lockRepo     persistence.LeaseLockRepository
	identity     collaborator.IdentityDirectory
	ledger       collaborator.WalletLedger
	notifier     collaborator.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTimeout  time.Duration
}

// NewService creates a lease lifecycle service
func NewService(
	uow persistence.UnitOfWork,
	lockRepo persistence.LeaseLockRepository,
	identity collaborator.IdentityDirectory,
	ledger collaborator.WalletLedger,
	notifier collaborator.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		lockRepo:     lockRepo,
		identity:     identity,
		ledger:       ledger,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		lockTimeout:  lockTimeout,
	}
}

// SubmitApplication creates a new lease transaction in InReview for a tenant
// application against a property. A tenant may hold applications across many
// properties; the single-Active-per-property invariant is enforced later, at
// activation time.
func (s *Service) SubmitApplication(ctx context.Context, tenantID, propertyID uint64) (*entity.LeaseTransaction, error) {
	property, err := s.uow.GetPropertyRepository(ctx).GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewLeaseTransaction(tenantID, property.OwnerID, propertyID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create lease transaction: %w", err)
	}

	s.logger.Info("Lease application submitted", map[string]any{
		"transaction_id": transaction.ID,
		"tenant_id":      tenantID,
		"property_id":    propertyID,
	})

	return transaction, nil
}

// GetTransaction returns the current state of a lease transaction so a
// caller holding a stale view can refresh after a conflict error.
func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*entity.LeaseTransaction, error) {
	return s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
}

// ListTenantLeases returns a tenant's transactions newest first. Terminal
// transactions are included; the record is the tenant's rental history.
func (s *Service) ListTenantLeases(ctx context.Context, tenantID uint64) ([]*entity.LeaseTransaction, error) {
	if tenantID == 0 {
		return nil, errs.ErrInvalidPartyID
	}
	return s.uow.GetTransactionRepository(ctx).ListByTenant(ctx, tenantID)
}

// ScheduleView is a read-only projection of the schedule with derived
// statuses resolved against the read-time clock.
type ScheduleView struct {
	Entries      []*entity.ScheduleEntry
	SettledCount int
	NextDueDate  *time.Time
	EvaluatedAt  time.Time
}

// GetSchedule returns the ordered schedule with Overdue recomputed at read
// time. It takes no lock and never blocks writers; the stored status is left
// untouched so overdue-ness is always correct relative to now.
func (s *Service) GetSchedule(ctx context.Context, transactionID string) (*ScheduleView, error) {
	stored, err := s.uow.GetScheduleRepository(ctx).GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	view := &ScheduleView{
		Entries:      make([]*entity.ScheduleEntry, 0, len(stored)),
		SettledCount: entity.SettledCount(stored),
		EvaluatedAt:  now,
	}

	for _, e := range stored {
		display := *e
		display.Status = e.DisplayStatus(now)
		if e.Status == entity.EntryNextDue {
			due := e.DueDate
			view.NextDueDate = &due
		}
		view.Entries = append(view.Entries, &display)
	}

	return view, nil
}

// withLock serializes a mutating operation on one lease transaction. The
// lock has an expiry so a crashed holder cannot wedge the record; release
// failures are logged and swallowed because expiry will clean up.
func (s *Service) withLock(ctx context.Context, transactionID string, fn func(ctx context.Context) error) error {
	if err := s.lockRepo.AcquireLock(ctx, transactionID, s.lockTimeout); err != nil {
		return err
	}
	defer func() {
		if err := s.lockRepo.ReleaseLock(ctx, transactionID); err != nil {
			s.logger.Warn("Failed to release lease lock", map[string]any{
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
		}
	}()

	return fn(ctx)
}

// inUnitOfWork runs fn inside a database transaction, rolling back on error
func (s *Service) inUnitOfWork(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{"error": rbErr.Error()})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}

// notifyParties dispatches fire-and-forget notifications to both sides of
// the contract after a committed transition. Dispatch never blocks and a
// failure never surfaces to the caller.
func (s *Service) notifyParties(transaction *entity.LeaseTransaction, kind collaborator.NotificationKind, title, body string) {
	for _, recipient := range []uint64{transaction.TenantID, transaction.OwnerID} {
		s.notifier.Notify(collaborator.Notification{
			RecipientID: recipient,
			Kind:        kind,
			Title:       title,
			Body:        body,
		})
	}
}

// loadSnapshot fetches the frozen terms, mapping absence to ErrSnapshotNotFound
func (s *Service) loadSnapshot(ctx context.Context, transactionID string) (*entity.ContractSnapshot, error) {
	snapshot, err := s.uow.GetSnapshotRepository(ctx).GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, errs.ErrSnapshotNotFound
	}
	return snapshot, nil
}
