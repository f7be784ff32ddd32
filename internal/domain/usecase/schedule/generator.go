package schedule

import (
	"time"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

// Generate derives the full ordered set of expected installments from a
// frozen contract snapshot. It is pure and deterministic: the same snapshot
// always yields the same schedule, so a regenerated schedule for display
// exactly reproduces the canonical persisted one.
//
// Entry 0 is due on the lease start date for the combined deposit+advance
// amount and starts as the NextDue entry. Every following entry falls on the
// snapshot's rent due day of the i-th month after the lease start month,
// clamped to the month's last day when shorter.
func Generate(snapshot *entity.ContractSnapshot) []*entity.ScheduleEntry {
	count := snapshot.DurationClass.InstallmentCount()
	entries := make([]*entity.ScheduleEntry, 0, count)

	entries = append(entries, &entity.ScheduleEntry{
		TransactionID:       snapshot.TransactionID,
		SequenceIndex:       0,
		DueDate:             snapshot.LeaseStart,
		ExpectedAmount:      snapshot.DepositTotal(),
		ExpectedAmountCents: snapshot.DepositTotalCents(),
		Status:              entity.EntryNextDue,
	})

	for i := 1; i < count; i++ {
		entries = append(entries, &entity.ScheduleEntry{
			TransactionID:       snapshot.TransactionID,
			SequenceIndex:       i,
			DueDate:             dueDateFor(snapshot.LeaseStart, i, snapshot.RentDueDay),
			ExpectedAmount:      snapshot.RentAmount,
			ExpectedAmountCents: snapshot.RentAmountCents,
			Status:              entity.EntryUnpaid,
		})
	}

	return entries
}

// ValidateInstallmentCount rejects an externally supplied installment count
// that is inconsistent with the duration class rather than silently
// truncating or overrunning the schedule.
func ValidateInstallmentCount(class entity.DurationClass, claimed int) error {
	if claimed != class.InstallmentCount() {
		return errs.ErrDurationMismatch
	}
	return nil
}

// dueDateFor computes the due date of installment i: the dueDay-th calendar
// day of the month i months after leaseStart's month, with the year rolling
// over naturally and the day clamped to the target month's length.
func dueDateFor(leaseStart time.Time, i, dueDay int) time.Time {
	firstOfTarget := time.Date(leaseStart.Year(), leaseStart.Month()+time.Month(i), 1,
		leaseStart.Hour(), leaseStart.Minute(), leaseStart.Second(), leaseStart.Nanosecond(),
		leaseStart.Location())

	lastDay := daysInMonth(firstOfTarget)
	day := dueDay
	if day > lastDay {
		day = lastDay
	}

	return firstOfTarget.AddDate(0, 0, day-1)
}

// daysInMonth returns the number of days in t's month
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
