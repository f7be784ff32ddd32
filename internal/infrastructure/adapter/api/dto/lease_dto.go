package dto

import (
	"time"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// SubmitApplicationRequest represents the API request for a tenant application
type SubmitApplicationRequest struct {
	TenantID   uint64 `json:"tenantId" binding:"required"`
	PropertyID uint64 `json:"propertyId" binding:"required"`
}

// NegotiatedTermsRequest carries the terms an owner approves with
type NegotiatedTermsRequest struct {
	LeaseStart                time.Time `json:"leaseStart"`
	LeaseEnd                  time.Time `json:"leaseEnd"`
	DurationClass             string    `json:"durationClass" binding:"omitempty,oneof=short_term_6 long_term_12"`
	RentAmount                string    `json:"rentAmount"`
	RentDueDay                int       `json:"rentDueDay"`
	SecurityDeposit           string    `json:"securityDeposit"`
	SecurityDepositRefundDays int       `json:"securityDepositRefundDays"`
	AdvancePayment            string    `json:"advancePayment"`
	HouseRules                string    `json:"houseRules"`
	TerminationNoticeDays     int       `json:"terminationNoticeDays"`
	PropertyAddress           string    `json:"propertyAddress"`
}

// ToEntity maps the request terms to the domain representation
func (r NegotiatedTermsRequest) ToEntity() entity.NegotiatedTerms {
	return entity.NegotiatedTerms{
		LeaseStart:                r.LeaseStart,
		LeaseEnd:                  r.LeaseEnd,
		DurationClass:             entity.DurationClass(r.DurationClass),
		RentAmount:                r.RentAmount,
		RentDueDay:                r.RentDueDay,
		SecurityDeposit:           r.SecurityDeposit,
		SecurityDepositRefundDays: r.SecurityDepositRefundDays,
		AdvancePayment:            r.AdvancePayment,
		HouseRules:                r.HouseRules,
		TerminationNoticeDays:     r.TerminationNoticeDays,
		PropertyAddress:           r.PropertyAddress,
	}
}

// DecideRequest represents the API request for an owner decision
type DecideRequest struct {
	Decision string                 `json:"decision" binding:"required,oneof=approve reject"`
	Terms    NegotiatedTermsRequest `json:"terms"`
}

// SignRequest represents the API request for recording a signature
type SignRequest struct {
	SignerFullName string `json:"signerFullName" binding:"required"`
}

// PaymentRequest represents the API request for a rent or deposit payment.
// ConfirmationID and OccurredAt are set only for payments already confirmed
// by the ledger; OccurredAt is the ledger's transfer timestamp.
type PaymentRequest struct {
	Amount         string    `json:"amount" binding:"required"`
	ConfirmationID string    `json:"confirmationId"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// TerminationRequest represents the API request for ending an active lease
type TerminationRequest struct {
	RequesterID uint64 `json:"requesterId" binding:"required"`
}

// TransactionResponse represents a lease transaction in API responses
type TransactionResponse struct {
	ID                     string     `json:"id"`
	TenantID               uint64     `json:"tenantId"`
	OwnerID                uint64     `json:"ownerId"`
	PropertyID             uint64     `json:"propertyId"`
	Status                 string     `json:"status"`
	TenantSignedAt         *time.Time `json:"tenantSignedAt,omitempty"`
	OwnerSignedAt          *time.Time `json:"ownerSignedAt,omitempty"`
	TerminationEffectiveAt *time.Time `json:"terminationEffectiveAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// NewTransactionResponse maps a lease transaction entity to its API shape
func NewTransactionResponse(transaction *entity.LeaseTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                     transaction.ID,
		TenantID:               transaction.TenantID,
		OwnerID:                transaction.OwnerID,
		PropertyID:             transaction.PropertyID,
		Status:                 string(transaction.Status),
		TenantSignedAt:         transaction.TenantSignedAt,
		OwnerSignedAt:          transaction.OwnerSignedAt,
		TerminationEffectiveAt: transaction.TerminationEffectiveAt,
		CreatedAt:              transaction.CreatedAt,
		UpdatedAt:              transaction.UpdatedAt,
	}
}

// PaymentResponse represents the API response for a reconciled payment
type PaymentResponse struct {
	Transaction    TransactionResponse   `json:"transaction"`
	SettledEntry   ScheduleEntryResponse `json:"settledEntry"`
	Classification string                `json:"classification"`
}
