package lease

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/persistence"
	mockcollaborator "github.com/amirhossein-jamali/lease-processor/mocks/port/collaborator"
	mockcore "github.com/amirhossein-jamali/lease-processor/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/lease-processor/mocks/port/persistence"
)

// serviceMocks bundles every collaborator the service is wired with so a
// test can override only the calls it cares about.
type serviceMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	lockRepo     *mockpersistence.MockLeaseLockRepository
	txnRepo      *mockpersistence.MockTransactionRepository
	snapRepo     *mockpersistence.MockSnapshotRepository
	schedRepo    *mockpersistence.MockScheduleRepository
	propRepo     *mockpersistence.MockPropertyRepository
	identity     *mockcollaborator.MockIdentityDirectory
	ledger       *mockcollaborator.MockWalletLedger
	notifier     *mockcollaborator.MockNotifier
	timeProvider *mockcore.MockTimeProvider
}

func newTestService(now time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:          new(mockpersistence.MockUnitOfWork),
		lockRepo:     new(mockpersistence.MockLeaseLockRepository),
		txnRepo:      new(mockpersistence.MockTransactionRepository),
		snapRepo:     new(mockpersistence.MockSnapshotRepository),
		schedRepo:    new(mockpersistence.MockScheduleRepository),
		propRepo:     new(mockpersistence.MockPropertyRepository),
		identity:     new(mockcollaborator.MockIdentityDirectory),
		ledger:       new(mockcollaborator.MockWalletLedger),
		notifier:     new(mockcollaborator.MockNotifier),
		timeProvider: new(mockcore.MockTimeProvider),
	}

	m.timeProvider.On("Now").Return(now).Maybe()

	m.uow.On("Begin", mock.Anything).Return(context.Background(), nil).Maybe()
	m.uow.On("Commit", mock.Anything).Return(nil).Maybe()
	m.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	m.uow.On("GetTransactionRepository", mock.Anything).Return(m.txnRepo).Maybe()
	m.uow.On("GetSnapshotRepository", mock.Anything).Return(m.snapRepo).Maybe()
	m.uow.On("GetScheduleRepository", mock.Anything).Return(m.schedRepo).Maybe()
	m.uow.On("GetPropertyRepository", mock.Anything).Return(m.propRepo).Maybe()

	m.lockRepo.On("AcquireLock", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.lockRepo.On("ReleaseLock", mock.Anything, mock.Anything).Return(nil).Maybe()

	m.notifier.On("Notify", mock.Anything).Return().Maybe()

	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	service := NewService(m.uow, m.lockRepo, m.identity, m.ledger, m.notifier, m.timeProvider, logger, time.Second)
	return service, m
}

func testTransaction(status entity.Status) *entity.LeaseTransaction {
	return &entity.LeaseTransaction{
		ID:         "txn-1",
		TenantID:   1,
		OwnerID:    2,
		PropertyID: 7,
		Status:     status,
		Version:    3,
	}
}

func testSnapshot() *entity.ContractSnapshot {
	return &entity.ContractSnapshot{
		TransactionID:        "txn-1",
		TenantID:             1,
		TenantFullName:       "Ada Kowalski",
		OwnerID:              2,
		OwnerFullName:        "Marcus Oyelaran",
		PropertyID:           7,
		PropertyAddress:      "12 Linden Street, Apt 4B",
		LeaseStart:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LeaseEnd:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		DurationClass:        entity.LongTerm12,
		RentAmount:           "1200.00",
		RentAmountCents:      120000,
		RentDueDay:           15,
		SecurityDeposit:      "1200.00",
		SecurityDepositCents: 120000,
		AdvancePayment:       "600.00",
		AdvancePaymentCents:  60000,
		TerminationNoticeDays: 30,
	}
}

func TestService_SubmitApplication(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a transaction in review", func(t *testing.T) {
		service, m := newTestService(now)

		m.propRepo.On("GetByID", mock.Anything, uint64(7)).
			Return(&persistence.PropertyRecord{ID: 7, OwnerID: 2, Address: "12 Linden Street, Apt 4B"}, nil)
		m.txnRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		transaction, err := service.SubmitApplication(context.Background(), 1, 7)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), transaction.TenantID)
		assert.Equal(t, uint64(2), transaction.OwnerID)
		assert.Equal(t, uint64(7), transaction.PropertyID)
		assert.Equal(t, entity.StatusInReview, transaction.Status)
		m.txnRepo.AssertExpectations(t)
	})

	t.Run("Unknown property", func(t *testing.T) {
		service, m := newTestService(now)

		m.propRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrPropertyNotFound)

		transaction, err := service.SubmitApplication(context.Background(), 1, 99)

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
		m.txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_GetTransaction(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(now)

	expected := testTransaction(entity.StatusActive)
	m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(expected, nil)

	transaction, err := service.GetTransaction(context.Background(), "txn-1")

	require.NoError(t, err)
	assert.Equal(t, expected, transaction)
}

func TestService_ListTenantLeases(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Returns history including terminal leases", func(t *testing.T) {
		service, m := newTestService(now)

		history := []*entity.LeaseTransaction{
			testTransaction(entity.StatusActive),
			testTransaction(entity.StatusCompleted),
		}
		m.txnRepo.On("ListByTenant", mock.Anything, uint64(1)).Return(history, nil)

		transactions, err := service.ListTenantLeases(context.Background(), 1)

		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("Zero tenant id is rejected", func(t *testing.T) {
		service, m := newTestService(now)

		transactions, err := service.ListTenantLeases(context.Background(), 0)

		assert.Nil(t, transactions)
		assert.ErrorIs(t, err, errs.ErrInvalidPartyID)
		m.txnRepo.AssertNotCalled(t, "ListByTenant", mock.Anything, mock.Anything)
	})
}

func TestService_GetSchedule(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Derives overdue at read time", func(t *testing.T) {
		service, m := newTestService(now)

		stored := []*entity.ScheduleEntry{
			{TransactionID: "txn-1", SequenceIndex: 0, Status: entity.EntryPaidOnTime,
				DueDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			{TransactionID: "txn-1", SequenceIndex: 1, Status: entity.EntryNextDue,
				DueDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
			{TransactionID: "txn-1", SequenceIndex: 2, Status: entity.EntryUnpaid,
				DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		}
		m.schedRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(stored, nil)

		view, err := service.GetSchedule(context.Background(), "txn-1")

		require.NoError(t, err)
		require.Len(t, view.Entries, 3)
		assert.Equal(t, entity.EntryPaidOnTime, view.Entries[0].Status)
		assert.Equal(t, entity.EntryOverdue, view.Entries[1].Status)
		assert.Equal(t, entity.EntryUnpaid, view.Entries[2].Status)

		// Derived view only; the stored status must not change
		assert.Equal(t, entity.EntryNextDue, stored[1].Status)

		assert.Equal(t, 1, view.SettledCount)
		require.NotNil(t, view.NextDueDate)
		assert.Equal(t, stored[1].DueDate, *view.NextDueDate)
		assert.Equal(t, now, view.EvaluatedAt)
	})

	t.Run("No schedule yet", func(t *testing.T) {
		service, m := newTestService(now)

		m.schedRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(nil, errs.ErrScheduleNotFound)

		view, err := service.GetSchedule(context.Background(), "txn-1")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrScheduleNotFound)
	})
}
