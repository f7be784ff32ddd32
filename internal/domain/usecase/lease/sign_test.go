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
)

func TestService_Sign(t *testing.T) {
	now := time.Date(2024, 1, 12, 12, 0, 0, 0, time.UTC)

	t.Run("First signature stays in awaiting signature", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusAwaitingSignature), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.txnRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		transaction, err := service.Sign(context.Background(), "txn-1", "Ada Kowalski")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusAwaitingSignature, transaction.Status)
		assert.NotNil(t, transaction.TenantSignedAt)
		assert.Nil(t, transaction.OwnerSignedAt)
		m.schedRepo.AssertNotCalled(t, "CreateAll", mock.Anything, mock.Anything)
	})

	t.Run("Second signature generates the schedule and advances", func(t *testing.T) {
		service, m := newTestService(now)

		signed := testTransaction(entity.StatusAwaitingSignature)
		tenantSignedAt := now.Add(-time.Hour)
		signed.TenantSignedAt = &tenantSignedAt

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(signed, nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)

		var generated []*entity.ScheduleEntry
		m.schedRepo.On("CreateAll", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				generated = args.Get(1).([]*entity.ScheduleEntry)
			}).Return(nil)
		m.txnRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		transaction, err := service.Sign(context.Background(), "txn-1", "Marcus Oyelaran")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusAwaitingPayment, transaction.Status)

		require.Len(t, generated, 12)
		assert.Equal(t, 0, generated[0].SequenceIndex)
		assert.Equal(t, entity.EntryNextDue, generated[0].Status)
		// Entry 0 owes deposit plus advance
		assert.Equal(t, int64(180000), generated[0].ExpectedAmountCents)
		assert.Equal(t, int64(120000), generated[1].ExpectedAmountCents)

		m.schedRepo.AssertExpectations(t)
		m.uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("Name mismatch keeps the transaction unchanged", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusAwaitingSignature), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)

		transaction, err := service.Sign(context.Background(), "txn-1", "A. Kowalski")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
		m.txnRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.uow.AssertCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Signing before approval fails", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusInReview), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(nil, errs.ErrSnapshotNotFound)

		transaction, err := service.Sign(context.Background(), "txn-1", "Ada Kowalski")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrSnapshotNotFound)
	})

	t.Run("Schedule persistence failure rolls everything back", func(t *testing.T) {
		service, m := newTestService(now)

		signed := testTransaction(entity.StatusAwaitingSignature)
		tenantSignedAt := now.Add(-time.Hour)
		signed.TenantSignedAt = &tenantSignedAt

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(signed, nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.schedRepo.On("CreateAll", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)

		transaction, err := service.Sign(context.Background(), "txn-1", "Marcus Oyelaran")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		m.uow.AssertCalled(t, "Rollback", mock.Anything)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
