package dto

import (
	"time"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// ScheduleEntryResponse represents one installment in API responses.
// Status carries the read-time value, so an overdue NextDue entry reports
// "overdue" here while the stored status stays untouched.
type ScheduleEntryResponse struct {
	SequenceIndex  int        `json:"sequenceIndex"`
	DueDate        time.Time  `json:"dueDate"`
	ExpectedAmount string     `json:"expectedAmount"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	PaidAmount     string     `json:"paidAmount,omitempty"`
	ConfirmationID string     `json:"confirmationId,omitempty"`
}

// NewScheduleEntryResponse maps a schedule entry to its API shape
func NewScheduleEntryResponse(entry *entity.ScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		SequenceIndex:  entry.SequenceIndex,
		DueDate:        entry.DueDate,
		ExpectedAmount: entry.ExpectedAmount,
		Status:         string(entry.Status),
		PaidAt:         entry.PaidAt,
		PaidAmount:     entry.PaidAmount,
		ConfirmationID: entry.ConfirmationID,
	}
}

// ScheduleResponse represents the full schedule projection
type ScheduleResponse struct {
	TransactionID string                  `json:"transactionId"`
	Entries       []ScheduleEntryResponse `json:"entries"`
	SettledCount  int                     `json:"settledCount"`
	NextDueDate   *time.Time              `json:"nextDueDate,omitempty"`
	EvaluatedAt   time.Time               `json:"evaluatedAt"`
}
