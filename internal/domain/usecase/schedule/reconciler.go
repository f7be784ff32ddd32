package schedule

import (
	"sort"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

// ApplyResult describes a successful reconciliation
type ApplyResult struct {
	// Settled is the entry the payment was applied to
	Settled *entity.ScheduleEntry
	// Classification is Paid_OnTime or Paid_Late
	Classification entity.EntryStatus
	// Promoted is the entry advanced to NextDue, nil when the schedule is
	// fully settled
	Promoted *entity.ScheduleEntry
}

// ApplyPayment matches a confirmed payment event against the schedule and
// settles the current NextDue entry. Payments are applied strictly in
// schedule order; anything else is rejected with NoMatchingInstallment.
// The schedule is mutated only on success.
//
// Re-applying an event whose confirmation id already settled an entry fails
// with AlreadySettled and performs no mutation, which makes the operation
// safe to retry after a network failure without double-crediting.
func ApplyPayment(entries []*entity.ScheduleEntry, event *entity.PaymentEvent) (*ApplyResult, error) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SequenceIndex < entries[j].SequenceIndex
	})

	for _, e := range entries {
		if e.IsSettled() && e.ConfirmationID != "" && e.ConfirmationID == event.ConfirmationID {
			return nil, errs.ErrAlreadySettled
		}
	}

	target := entity.NextDueEntry(entries)
	if target == nil {
		return nil, errs.ErrNoMatchingInstallment
	}

	if event.AmountCents != target.ExpectedAmountCents {
		return nil, errs.NewAmountMismatchError(
			target.TransactionID, target.SequenceIndex, target.ExpectedAmount, event.Amount)
	}

	classification := target.Settle(event)

	var promoted *entity.ScheduleEntry
	for _, e := range entries {
		if e.SequenceIndex > target.SequenceIndex && e.Status == entity.EntryUnpaid {
			e.Status = entity.EntryNextDue
			promoted = e
			break
		}
	}

	return &ApplyResult{
		Settled:        target,
		Classification: classification,
		Promoted:       promoted,
	}, nil
}
