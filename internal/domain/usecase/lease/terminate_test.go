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

func TestService_RequestTermination(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Tenant schedules termination with the frozen notice period", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.txnRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		m.propRepo.On("MarkVacant", mock.Anything, uint64(7)).Return(nil)

		transaction, err := service.RequestTermination(context.Background(), "txn-1", 1)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusTerminated, transaction.Status)
		require.NotNil(t, transaction.TerminationEffectiveAt)
		assert.Equal(t, now.AddDate(0, 0, 30), *transaction.TerminationEffectiveAt)
		m.propRepo.AssertCalled(t, "MarkVacant", mock.Anything, uint64(7))
	})

	t.Run("Owner may also terminate", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.txnRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		m.propRepo.On("MarkVacant", mock.Anything, uint64(7)).Return(nil)

		_, err := service.RequestTermination(context.Background(), "txn-1", 2)
		assert.NoError(t, err)
	})

	t.Run("A stranger to the lease cannot terminate it", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)

		transaction, err := service.RequestTermination(context.Background(), "txn-1", 42)

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		m.txnRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Only an active lease can be terminated", func(t *testing.T) {
		service, m := newTestService(now)

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusAwaitingPayment), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)

		transaction, err := service.RequestTermination(context.Background(), "txn-1", 1)

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.propRepo.AssertNotCalled(t, "MarkVacant", mock.Anything, mock.Anything)
	})
}

func TestService_CompleteLease(t *testing.T) {
	leaseEnd := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	settledSchedule := func() []*entity.ScheduleEntry {
		entries := make([]*entity.ScheduleEntry, 0, 12)
		for i := 0; i < 12; i++ {
			entries = append(entries, &entity.ScheduleEntry{
				TransactionID: "txn-1",
				SequenceIndex: i,
				Status:        entity.EntryPaidOnTime,
			})
		}
		return entries
	}

	t.Run("Completes after lease end with everything settled", func(t *testing.T) {
		service, m := newTestService(leaseEnd.AddDate(0, 0, 1))

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.schedRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(settledSchedule(), nil)
		m.txnRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		m.propRepo.On("MarkVacant", mock.Anything, uint64(7)).Return(nil)

		transaction, err := service.CompleteLease(context.Background(), "txn-1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, transaction.Status)
		assert.True(t, transaction.IsTerminal())
	})

	t.Run("Outstanding installments block completion", func(t *testing.T) {
		service, m := newTestService(leaseEnd.AddDate(0, 0, 1))

		entries := settledSchedule()
		entries[11].Status = entity.EntryNextDue

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.schedRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(entries, nil)

		transaction, err := service.CompleteLease(context.Background(), "txn-1")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.txnRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Completion before lease end is rejected", func(t *testing.T) {
		service, m := newTestService(leaseEnd.AddDate(0, -1, 0))

		m.txnRepo.On("GetByID", mock.Anything, "txn-1").Return(testTransaction(entity.StatusActive), nil)
		m.snapRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(testSnapshot(), nil)
		m.schedRepo.On("GetByTransactionID", mock.Anything, "txn-1").Return(settledSchedule(), nil)

		transaction, err := service.CompleteLease(context.Background(), "txn-1")

		assert.Nil(t, transaction)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		m.propRepo.AssertNotCalled(t, "MarkVacant", mock.Anything, mock.Anything)
	})
}
