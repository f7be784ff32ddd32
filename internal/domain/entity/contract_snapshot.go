package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
)

// DurationClass classifies the lease term length
type DurationClass string

// Duration classes
const (
	ShortTerm6 DurationClass = "short_term_6"
	LongTerm12 DurationClass = "long_term_12"
)

// InstallmentCount returns the total number of schedule entries for the class,
// including the combined deposit+advance installment at index 0.
func (d DurationClass) InstallmentCount() int {
	if d == LongTerm12 {
		return 12
	}
	return 6
}

// IsValid reports whether the class is a known value
func (d DurationClass) IsValid() bool {
	return d == ShortTerm6 || d == LongTerm12
}

// Allowed rent due days and termination notice periods
const (
	MinRentDueDay = 1
	MaxRentDueDay = 25
)

// NegotiatedTerms carries the raw inputs to the snapshot builder. Amounts are
// decimal strings, the way they arrive from the API layer.
type NegotiatedTerms struct {
	LeaseStart                time.Time
	LeaseEnd                  time.Time
	DurationClass             DurationClass
	RentAmount                string
	RentDueDay                int
	SecurityDeposit           string
	SecurityDepositRefundDays int
	AdvancePayment            string
	HouseRules                string
	TerminationNoticeDays     int
	PropertyAddress           string
}

// Party identifies one side of the contract as resolved by the identity
// directory at build time. Contact fields are frozen into the snapshot and
// never re-read afterward.
type Party struct {
	ID       uint64
	FullName string
	Email    string
	Phone    string
}

// ContractSnapshot is the immutable record of negotiated lease terms, created
// exactly once per transaction at the approval step. A correction requires a
// new snapshot and a new transaction reference.
type ContractSnapshot struct {
	TransactionID             string
	TenantID                  uint64
	TenantFullName            string
	TenantEmail               string
	TenantPhone               string
	OwnerID                   uint64
	OwnerFullName             string
	OwnerEmail                string
	OwnerPhone                string
	PropertyID                uint64
	PropertyAddress           string
	LeaseStart                time.Time
	LeaseEnd                  time.Time
	DurationClass             DurationClass
	RentAmount                string
	RentAmountCents           int64
	RentDueDay                int
	SecurityDeposit           string
	SecurityDepositCents      int64
	SecurityDepositRefundDays int
	AdvancePayment            string
	AdvancePaymentCents       int64
	HouseRules                string
	TerminationNoticeDays     int
	CreatedAt                 time.Time
}

// NewContractSnapshot freezes the negotiated terms into an immutable snapshot.
// Every required field is validated; the first missing or invalid one fails
// with an IncompleteTermsError naming the field.
func NewContractSnapshot(
	transaction *LeaseTransaction,
	tenant, owner Party,
	terms NegotiatedTerms,
	timeProvider coreport.TimeProvider,
) (*ContractSnapshot, error) {
	if transaction == nil || transaction.ID == "" {
		return nil, errs.ErrInvalidTransactionID
	}
	if terms.LeaseStart.IsZero() {
		return nil, errs.NewIncompleteTermsError("leaseStart", "is required")
	}
	if terms.LeaseEnd.IsZero() {
		return nil, errs.NewIncompleteTermsError("leaseEnd", "is required")
	}
	if !terms.LeaseEnd.After(terms.LeaseStart) {
		return nil, errs.NewIncompleteTermsError("leaseEnd", "must be after leaseStart")
	}
	if !terms.DurationClass.IsValid() {
		return nil, errs.NewIncompleteTermsError("leaseDurationClass", "must be short_term_6 or long_term_12")
	}

	rentCents, err := ValidateAndConvertAmount(terms.RentAmount)
	if err != nil {
		return nil, errs.NewIncompleteTermsError("rentAmount", "must be a valid amount")
	}
	if rentCents <= 0 {
		return nil, errs.NewIncompleteTermsError("rentAmount", "must be greater than zero")
	}

	if terms.RentDueDay < MinRentDueDay || terms.RentDueDay > MaxRentDueDay {
		return nil, errs.NewIncompleteTermsError("rentDueDay", "must be between 1 and 25")
	}

	depositCents, err := ValidateAndConvertAmount(terms.SecurityDeposit)
	if err != nil {
		return nil, errs.NewIncompleteTermsError("securityDeposit", "must be a valid amount")
	}
	advanceCents, err := ValidateAndConvertAmount(terms.AdvancePayment)
	if err != nil {
		return nil, errs.NewIncompleteTermsError("advancePayment", "must be a valid amount")
	}

	if terms.TerminationNoticeDays != 30 && terms.TerminationNoticeDays != 60 {
		return nil, errs.NewIncompleteTermsError("terminationNoticeDays", "must be 30 or 60")
	}
	if strings.TrimSpace(terms.PropertyAddress) == "" {
		return nil, errs.NewIncompleteTermsError("propertyAddress", "is required")
	}
	if tenant.ID == 0 || strings.TrimSpace(tenant.FullName) == "" {
		return nil, errs.NewIncompleteTermsError("tenantFullName", "is required")
	}
	if owner.ID == 0 || strings.TrimSpace(owner.FullName) == "" {
		return nil, errs.NewIncompleteTermsError("ownerFullName", "is required")
	}

	return &ContractSnapshot{
		TransactionID:             transaction.ID,
		TenantID:                  tenant.ID,
		TenantFullName:            tenant.FullName,
		TenantEmail:               tenant.Email,
		TenantPhone:               tenant.Phone,
		OwnerID:                   owner.ID,
		OwnerFullName:             owner.FullName,
		OwnerEmail:                owner.Email,
		OwnerPhone:                owner.Phone,
		PropertyID:                transaction.PropertyID,
		PropertyAddress:           terms.PropertyAddress,
		LeaseStart:                terms.LeaseStart,
		LeaseEnd:                  terms.LeaseEnd,
		DurationClass:             terms.DurationClass,
		RentAmount:                EnsureTwoDecimalPlaces(terms.RentAmount),
		RentAmountCents:           rentCents,
		RentDueDay:                terms.RentDueDay,
		SecurityDeposit:           EnsureTwoDecimalPlaces(terms.SecurityDeposit),
		SecurityDepositCents:      depositCents,
		SecurityDepositRefundDays: terms.SecurityDepositRefundDays,
		AdvancePayment:            EnsureTwoDecimalPlaces(terms.AdvancePayment),
		AdvancePaymentCents:       advanceCents,
		HouseRules:                terms.HouseRules,
		TerminationNoticeDays:     terms.TerminationNoticeDays,
		CreatedAt:                 timeProvider.Now(),
	}, nil
}

// DepositTotalCents returns the combined deposit+advance amount owed at entry 0
func (s *ContractSnapshot) DepositTotalCents() int64 {
	return s.SecurityDepositCents + s.AdvancePaymentCents
}

// DepositTotal returns the combined deposit+advance amount as a decimal string
func (s *ContractSnapshot) DepositTotal() string {
	return AmountInCentsToString(s.DepositTotalCents())
}
