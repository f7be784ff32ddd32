package entity

import (
	"time"
)

// EntryStatus represents the settlement status of one installment
type EntryStatus string

// Installment statuses. StatusOverdue is derived at read time for the current
// NextDue entry whose due date has passed; it is never persisted.
const (
	EntryPaidOnTime EntryStatus = "paid_on_time"
	EntryPaidLate   EntryStatus = "paid_late"
	EntryNextDue    EntryStatus = "next_due"
	EntryUnpaid     EntryStatus = "unpaid"
	EntryOverdue    EntryStatus = "overdue"
)

// ScheduleEntry is one expected or settled rent/deposit installment.
// Entry 0 is the combined deposit+advance installment due on lease start.
type ScheduleEntry struct {
	TransactionID       string
	SequenceIndex       int
	DueDate             time.Time
	ExpectedAmount      string
	ExpectedAmountCents int64
	Status              EntryStatus
	PaidAt              *time.Time
	PaidAmount          string
	ConfirmationID      string
}

// IsSettled reports whether the installment has been paid (on time or late)
func (e *ScheduleEntry) IsSettled() bool {
	return e.Status == EntryPaidOnTime || e.Status == EntryPaidLate
}

// DisplayStatus computes the read-time status. Only durable facts (DueDate,
// PaidAt) are stored; overdue-ness is always evaluated against the supplied
// clock so it is correct relative to the read time, not the write time.
func (e *ScheduleEntry) DisplayStatus(now time.Time) EntryStatus {
	if e.Status == EntryNextDue && now.After(e.DueDate) {
		return EntryOverdue
	}
	return e.Status
}

// Settle marks the entry paid, classifying on-time versus late by comparing
// the payment instant against the due date.
func (e *ScheduleEntry) Settle(event *PaymentEvent) EntryStatus {
	occurredAt := event.OccurredAt
	if occurredAt.After(e.DueDate) {
		e.Status = EntryPaidLate
	} else {
		e.Status = EntryPaidOnTime
	}
	e.PaidAt = &occurredAt
	e.PaidAmount = event.Amount
	e.ConfirmationID = event.ConfirmationID
	return e.Status
}

// SettledCount derives the number of paid installments from the schedule
// itself; the count is never stored independently, eliminating drift.
func SettledCount(entries []*ScheduleEntry) int {
	count := 0
	for _, e := range entries {
		if e.IsSettled() {
			count++
		}
	}
	return count
}

// NextDueEntry returns the single entry currently awaiting payment, or nil
// when every installment is settled.
func NextDueEntry(entries []*ScheduleEntry) *ScheduleEntry {
	for _, e := range entries {
		if e.Status == EntryNextDue {
			return e
		}
	}
	return nil
}

// FullySettled reports whether every installment in the schedule is paid
func FullySettled(entries []*ScheduleEntry) bool {
	for _, e := range entries {
		if !e.IsSettled() {
			return false
		}
	}
	return len(entries) > 0
}
