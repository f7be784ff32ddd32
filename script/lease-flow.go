package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// terms is the negotiated-terms payload sent with an approval
type terms struct {
	LeaseStart                time.Time `json:"leaseStart"`
	LeaseEnd                  time.Time `json:"leaseEnd"`
	DurationClass             string    `json:"durationClass"`
	RentAmount                string    `json:"rentAmount"`
	RentDueDay                int       `json:"rentDueDay"`
	SecurityDeposit           string    `json:"securityDeposit"`
	SecurityDepositRefundDays int       `json:"securityDepositRefundDays"`
	AdvancePayment            string    `json:"advancePayment"`
	HouseRules                string    `json:"houseRules"`
	TerminationNoticeDays     int       `json:"terminationNoticeDays"`
}

// transaction mirrors the API's lease transaction response
type transaction struct {
	ID         string `json:"id"`
	TenantID   uint64 `json:"tenantId"`
	OwnerID    uint64 `json:"ownerId"`
	PropertyID uint64 `json:"propertyId"`
	Status     string `json:"status"`
}

// scheduleEntry mirrors one installment in the schedule response
type scheduleEntry struct {
	SequenceIndex  int       `json:"sequenceIndex"`
	DueDate        time.Time `json:"dueDate"`
	ExpectedAmount string    `json:"expectedAmount"`
	Status         string    `json:"status"`
}

// scheduleResponse mirrors the API's schedule projection
type scheduleResponse struct {
	Entries      []scheduleEntry `json:"entries"`
	SettledCount int             `json:"settledCount"`
	NextDueDate  *time.Time      `json:"nextDueDate"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	tenantID := flag.Uint64("tenant", 1, "Tenant party ID")
	propertyID := flag.Uint64("property", 1, "Property ID")
	tenantName := flag.String("tenant-name", "Ada Kowalski", "Tenant full name as frozen in the contract")
	ownerName := flag.String("owner-name", "Marcus Oyelaran", "Owner full name as frozen in the contract")
	rent := flag.String("rent", "1200.00", "Monthly rent amount")
	installments := flag.Int("pay", 3, "Number of rent installments to pay after the deposit")
	flag.Parse()

	client := &http.Client{Timeout: 15 * time.Second}

	leaseStart := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)

	// 1. Tenant applies
	var txn transaction
	post(client, *baseURL+"/leases", map[string]any{
		"tenantId":   *tenantID,
		"propertyId": *propertyID,
	}, &txn)
	fmt.Printf("Application submitted: %s (%s)\n", txn.ID, txn.Status)

	// 2. Owner approves with negotiated terms
	post(client, fmt.Sprintf("%s/leases/%s/decision", *baseURL, txn.ID), map[string]any{
		"decision": "approve",
		"terms": terms{
			LeaseStart:                leaseStart,
			LeaseEnd:                  leaseStart.AddDate(1, 0, 0),
			DurationClass:             "long_term_12",
			RentAmount:                *rent,
			RentDueDay:                leaseStart.Day(),
			SecurityDeposit:           *rent,
			SecurityDepositRefundDays: 14,
			AdvancePayment:            *rent,
			HouseRules:                "No smoking. Quiet hours after 22:00.",
			TerminationNoticeDays:     30,
		},
	}, &txn)
	fmt.Printf("Application approved: %s\n", txn.Status)

	// 3. Both parties sign
	post(client, fmt.Sprintf("%s/leases/%s/signature", *baseURL, txn.ID), map[string]any{
		"signerFullName": *tenantName,
	}, &txn)
	post(client, fmt.Sprintf("%s/leases/%s/signature", *baseURL, txn.ID), map[string]any{
		"signerFullName": *ownerName,
	}, &txn)
	fmt.Printf("Both parties signed: %s\n", txn.Status)

	// 4. Pay the combined deposit+advance installment, then rent
	var schedule scheduleResponse
	get(client, fmt.Sprintf("%s/leases/%s/schedule", *baseURL, txn.ID), &schedule)

	for i := 0; i <= *installments && i < len(schedule.Entries); i++ {
		entry := schedule.Entries[i]
		var payment struct {
			Transaction    transaction `json:"transaction"`
			Classification string      `json:"classification"`
		}
		post(client, fmt.Sprintf("%s/leases/%s/payments", *baseURL, txn.ID), map[string]any{
			"amount": entry.ExpectedAmount,
		}, &payment)
		fmt.Printf("Installment %d paid (%s), lease status: %s\n",
			entry.SequenceIndex, payment.Classification, payment.Transaction.Status)
	}

	// 5. Final schedule state
	get(client, fmt.Sprintf("%s/leases/%s/schedule", *baseURL, txn.ID), &schedule)
	fmt.Printf("\nSchedule: %d/%d settled", schedule.SettledCount, len(schedule.Entries))
	if schedule.NextDueDate != nil {
		fmt.Printf(", next due %s", schedule.NextDueDate.Format("2006-01-02"))
	}
	fmt.Println()
	for _, entry := range schedule.Entries {
		fmt.Printf("  #%02d  %s  %10s  %s\n",
			entry.SequenceIndex, entry.DueDate.Format("2006-01-02"), entry.ExpectedAmount, entry.Status)
	}
}

func post(client *http.Client, url string, body any, out any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fail("marshal request", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fail("POST "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		fail("POST "+url, fmt.Errorf("status %d: [%d] %s", resp.StatusCode, apiErr.Code, apiErr.Message))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("decode response", err)
	}
}

func get(client *http.Client, url string, out any) {
	resp, err := client.Get(url)
	if err != nil {
		fail("GET "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		fail("GET "+url, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("decode response", err)
	}
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "lease-flow failed at %s: %v\n", step, err)
	os.Exit(1)
}
