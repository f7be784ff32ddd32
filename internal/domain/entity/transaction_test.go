package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/lease-processor/mocks/port/core"
)

func fixedClock(at time.Time) *coremocks.MockTimeProvider {
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(at).Maybe()
	return mockTime
}

func TestNewLeaseTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	mockTime := fixedClock(fixedTime)

	t.Run("Valid transaction creation", func(t *testing.T) {
		transaction, err := NewLeaseTransaction(1, 2, 7, mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, transaction.ID)
		assert.Equal(t, uint64(1), transaction.TenantID)
		assert.Equal(t, uint64(2), transaction.OwnerID)
		assert.Equal(t, uint64(7), transaction.PropertyID)
		assert.Equal(t, StatusInReview, transaction.Status)
		assert.Equal(t, uint64(1), transaction.Version)
		assert.Equal(t, fixedTime, transaction.CreatedAt)
		assert.Nil(t, transaction.TenantSignedAt)
		assert.Nil(t, transaction.OwnerSignedAt)
		assert.Nil(t, transaction.TerminationEffectiveAt)
	})

	t.Run("Zero tenant ID", func(t *testing.T) {
		transaction, err := NewLeaseTransaction(0, 2, 7, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidPartyID)
		assert.Nil(t, transaction)
	})

	t.Run("Zero owner ID", func(t *testing.T) {
		transaction, err := NewLeaseTransaction(1, 0, 7, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidPartyID)
		assert.Nil(t, transaction)
	})

	t.Run("Zero property ID", func(t *testing.T) {
		transaction, err := NewLeaseTransaction(1, 2, 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidPropertyID)
		assert.Nil(t, transaction)
	})
}

func TestLeaseTransaction_ApplyEvent(t *testing.T) {
	mockTime := fixedClock(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	t.Run("Allowed transitions", func(t *testing.T) {
		testCases := []struct {
			from     Status
			event    Event
			expected Status
		}{
			{StatusInReview, EventApprove, StatusApproved},
			{StatusInReview, EventReject, StatusRejected},
			{StatusApproved, EventTermsFrozen, StatusAwaitingSignature},
			{StatusAwaitingSignature, EventBothPartiesSigned, StatusAwaitingPayment},
			{StatusAwaitingPayment, EventDepositConfirmed, StatusActive},
			{StatusActive, EventTerminationRequested, StatusTerminated},
			{StatusActive, EventLeaseEnded, StatusCompleted},
		}

		for _, tc := range testCases {
			t.Run(string(tc.from)+"_"+string(tc.event), func(t *testing.T) {
				transaction := &LeaseTransaction{ID: "txn-1", Status: tc.from}

				assert.True(t, transaction.CanApply(tc.event))
				err := transaction.ApplyEvent(tc.event, mockTime)

				assert.NoError(t, err)
				assert.Equal(t, tc.expected, transaction.Status)
			})
		}
	})

	t.Run("Invalid transitions leave status unchanged", func(t *testing.T) {
		testCases := []struct {
			from  Status
			event Event
		}{
			{StatusInReview, EventDepositConfirmed},
			{StatusApproved, EventApprove},
			{StatusAwaitingSignature, EventTermsFrozen},
			{StatusAwaitingPayment, EventBothPartiesSigned},
			{StatusActive, EventApprove},
			{StatusRejected, EventApprove},
			{StatusTerminated, EventLeaseEnded},
			{StatusCompleted, EventTerminationRequested},
		}

		for _, tc := range testCases {
			t.Run(string(tc.from)+"_"+string(tc.event), func(t *testing.T) {
				transaction := &LeaseTransaction{ID: "txn-1", Status: tc.from}

				assert.False(t, transaction.CanApply(tc.event))
				err := transaction.ApplyEvent(tc.event, mockTime)

				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, tc.from, transaction.Status)
			})
		}
	})
}

func TestLeaseTransaction_IsTerminal(t *testing.T) {
	testCases := []struct {
		status   Status
		terminal bool
	}{
		{StatusInReview, false},
		{StatusApproved, false},
		{StatusAwaitingSignature, false},
		{StatusAwaitingPayment, false},
		{StatusActive, false},
		{StatusRejected, true},
		{StatusTerminated, true},
		{StatusCompleted, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			transaction := &LeaseTransaction{Status: tc.status}
			assert.Equal(t, tc.terminal, transaction.IsTerminal())
		})
	}
}

func TestLeaseTransaction_RecordSignature(t *testing.T) {
	fixedTime := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	mockTime := fixedClock(fixedTime)

	snapshot := &ContractSnapshot{
		TenantFullName: "Ada Kowalski",
		OwnerFullName:  "Marcus Oyelaran",
	}

	t.Run("Tenant signs first", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		bothSigned, err := transaction.RecordSignature(snapshot, "Ada Kowalski", mockTime)

		require.NoError(t, err)
		assert.False(t, bothSigned)
		require.NotNil(t, transaction.TenantSignedAt)
		assert.Equal(t, fixedTime, *transaction.TenantSignedAt)
		assert.Nil(t, transaction.OwnerSignedAt)
	})

	t.Run("Both parties signed", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		_, err := transaction.RecordSignature(snapshot, "Ada Kowalski", mockTime)
		require.NoError(t, err)

		bothSigned, err := transaction.RecordSignature(snapshot, "Marcus Oyelaran", mockTime)
		require.NoError(t, err)
		assert.True(t, bothSigned)
		assert.NotNil(t, transaction.TenantSignedAt)
		assert.NotNil(t, transaction.OwnerSignedAt)
	})

	t.Run("Whitespace around the name is tolerated", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		_, err := transaction.RecordSignature(snapshot, "  Ada Kowalski  ", mockTime)
		assert.NoError(t, err)
		assert.NotNil(t, transaction.TenantSignedAt)
	})

	t.Run("Case mismatch is rejected", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		_, err := transaction.RecordSignature(snapshot, "ada kowalski", mockTime)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
		assert.Nil(t, transaction.TenantSignedAt)
	})

	t.Run("Unknown name is rejected", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		_, err := transaction.RecordSignature(snapshot, "Somebody Else", mockTime)
		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
	})

	t.Run("Signing outside AwaitingSignature fails", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusActive}

		_, err := transaction.RecordSignature(snapshot, "Ada Kowalski", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Re-signing does not overwrite the original stamp", func(t *testing.T) {
		transaction := &LeaseTransaction{ID: "txn-1", Status: StatusAwaitingSignature}

		_, err := transaction.RecordSignature(snapshot, "Ada Kowalski", mockTime)
		require.NoError(t, err)
		first := *transaction.TenantSignedAt

		laterTime := fixedClock(fixedTime.Add(time.Hour))
		_, err = transaction.RecordSignature(snapshot, "Ada Kowalski", laterTime)
		require.NoError(t, err)
		assert.Equal(t, first, *transaction.TenantSignedAt)
	})
}

func TestLeaseTransaction_ScheduleTermination(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := fixedClock(fixedTime)

	transaction := &LeaseTransaction{ID: "txn-1", Status: StatusActive}
	transaction.ScheduleTermination(30, mockTime)

	require.NotNil(t, transaction.TerminationEffectiveAt)
	assert.Equal(t, fixedTime.AddDate(0, 0, 30), *transaction.TerminationEffectiveAt)
}
