package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
)

// Status represents the lifecycle status of a lease transaction
type Status string

// Lease transaction statuses
const (
	StatusInReview          Status = "in_review"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
	StatusAwaitingSignature Status = "awaiting_signature"
	StatusAwaitingPayment   Status = "awaiting_payment"
	StatusActive            Status = "active"
	StatusTerminated        Status = "terminated"
	StatusCompleted         Status = "completed"
)

// Event represents a lifecycle trigger raised by a caller
type Event string

// Lease transaction events
const (
	EventApprove              Event = "approve"
	EventReject               Event = "reject"
	EventTermsFrozen          Event = "terms_frozen"
	EventBothPartiesSigned    Event = "both_parties_signed"
	EventDepositConfirmed     Event = "deposit_confirmed"
	EventTerminationRequested Event = "termination_requested"
	EventLeaseEnded           Event = "lease_ended"
)

// allowedTransitions is the single authoritative transition table. UI and API
// layers only raise events; next-state is never computed anywhere else.
var allowedTransitions = map[Status]map[Event]Status{
	StatusInReview: {
		EventApprove: StatusApproved,
		EventReject:  StatusRejected,
	},
	StatusApproved: {
		EventTermsFrozen: StatusAwaitingSignature,
	},
	StatusAwaitingSignature: {
		EventBothPartiesSigned: StatusAwaitingPayment,
	},
	StatusAwaitingPayment: {
		EventDepositConfirmed: StatusActive,
	},
	StatusActive: {
		EventTerminationRequested: StatusTerminated,
		EventLeaseEnded:           StatusCompleted,
	},
}

// LeaseTransaction represents one tenant-property rental relationship and its
// lifecycle status. It is never physically deleted; terminal states are
// retained for history.
type LeaseTransaction struct {
	ID                     string
	TenantID               uint64
	OwnerID                uint64
	PropertyID             uint64
	Status                 Status
	TenantSignedAt         *time.Time
	OwnerSignedAt          *time.Time
	TerminationEffectiveAt *time.Time
	Version                uint64 // optimistic concurrency token
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewLeaseTransaction creates a transaction in InReview for a tenant application
func NewLeaseTransaction(tenantID, ownerID, propertyID uint64, timeProvider coreport.TimeProvider) (*LeaseTransaction, error) {
	if tenantID == 0 || ownerID == 0 {
		return nil, errs.ErrInvalidPartyID
	}
	if propertyID == 0 {
		return nil, errs.ErrInvalidPropertyID
	}

	now := timeProvider.Now()
	return &LeaseTransaction{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		OwnerID:    ownerID,
		PropertyID: propertyID,
		Status:     StatusInReview,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CanApply reports whether the event is valid for the current status
func (t *LeaseTransaction) CanApply(event Event) bool {
	next, ok := allowedTransitions[t.Status]
	if !ok {
		return false
	}
	_, ok = next[event]
	return ok
}

// ApplyEvent advances the status according to the transition table.
// On an invalid (status, event) pair the transaction is left unchanged and a
// detailed InvalidTransitionError is returned.
func (t *LeaseTransaction) ApplyEvent(event Event, timeProvider coreport.TimeProvider) error {
	next, ok := allowedTransitions[t.Status]
	if ok {
		if target, valid := next[event]; valid {
			t.Status = target
			t.UpdatedAt = timeProvider.Now()
			return nil
		}
	}
	return errs.NewInvalidTransitionError(t.ID, string(t.Status), string(event))
}

// IsTerminal reports whether the transaction accepts no further events
func (t *LeaseTransaction) IsTerminal() bool {
	_, ok := allowedTransitions[t.Status]
	return !ok
}

// RecordSignature matches the submitted full name against the snapshot's
// recorded party names (case-sensitive, whitespace-trimmed exact match) and
// stamps the matching party's signature. Returns true once both parties have
// signed.
func (t *LeaseTransaction) RecordSignature(snapshot *ContractSnapshot, signerFullName string, timeProvider coreport.TimeProvider) (bool, error) {
	if t.Status != StatusAwaitingSignature {
		return false, errs.NewInvalidTransitionError(t.ID, string(t.Status), "sign")
	}

	name := strings.TrimSpace(signerFullName)
	now := timeProvider.Now()

	switch name {
	case strings.TrimSpace(snapshot.TenantFullName):
		if t.TenantSignedAt == nil {
			t.TenantSignedAt = &now
			t.UpdatedAt = now
		}
	case strings.TrimSpace(snapshot.OwnerFullName):
		if t.OwnerSignedAt == nil {
			t.OwnerSignedAt = &now
			t.UpdatedAt = now
		}
	default:
		return false, errs.NewSignatureMismatchError(t.ID, signerFullName)
	}

	return t.TenantSignedAt != nil && t.OwnerSignedAt != nil, nil
}

// ScheduleTermination stamps the effective date derived from the frozen notice period
func (t *LeaseTransaction) ScheduleTermination(noticeDays int, timeProvider coreport.TimeProvider) {
	effective := timeProvider.Now().AddDate(0, 0, noticeDays)
	t.TerminationEffectiveAt = &effective
}
