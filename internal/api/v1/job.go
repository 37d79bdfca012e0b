package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format of every date field in the API.
const DateLayout = "2006-01-02"

// Payment methods accepted on a job.
const (
	PaymentCash  = "cash"
	PaymentCheck = "check"
	PaymentCard  = "card"
	PaymentOther = "other"
)

// MaxReceipts bounds the receipt URLs attached to a job or an expense.
const MaxReceipts = 4

// Job is one completed work order.
type Job struct {
	// ID is the store-assigned document id (UUID).
	ID string `json:"id"`

	// JobID is the human-facing work order identifier (e.g. "A0042").
	// It is assigned by the store on create; a client-supplied value is ignored.
	JobID string `json:"job_id"`

	// Date is the calendar day the job was done, "2006-01-02".
	Date string `json:"date"`

	NetProfit decimal.Decimal `json:"net_profit"`
	Expenses  decimal.Decimal `json:"expenses"`
	Mileage   decimal.Decimal `json:"mileage"`

	// Receipts are URLs of already-uploaded files.
	Receipts      []string `json:"receipts"`
	PaymentMethod string   `json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the client-editable fields of a job.
func (j *Job) Validate() error {
	if err := validateDate("date", j.Date); err != nil {
		return err
	}
	if j.Expenses.IsNegative() {
		return fmt.Errorf("expenses must not be negative")
	}
	if j.Mileage.IsNegative() {
		return fmt.Errorf("mileage must not be negative")
	}

	switch j.PaymentMethod {
	case PaymentCash, PaymentCheck, PaymentCard, PaymentOther:
	default:
		return fmt.Errorf("payment_method must be one of cash, check, card, other")
	}

	return validateReceipts(j.Receipts)
}

func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%s must be formatted as YYYY-MM-DD", field)
	}
	return nil
}

func validateReceipts(receipts []string) error {
	if len(receipts) > MaxReceipts {
		return fmt.Errorf("at most %d receipts are allowed", MaxReceipts)
	}
	for i, r := range receipts {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("receipts[%d] must not be empty", i)
		}
	}
	return nil
}
