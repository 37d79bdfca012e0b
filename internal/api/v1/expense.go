package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the wall-clock format of Expense.Time.
const TimeLayout = "15:04"

// ExpenseItem is one line of a purchase.
type ExpenseItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Expense is a business purchase with its receipts.
type Expense struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	ReceiptNumber string          `json:"receipt_number"`
	BusinessName  string          `json:"business_name"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Items         []ExpenseItem   `json:"items"`
	Receipts      []string        `json:"receipts"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Normalize recomputes TotalPrice from the items when there are any.
// Without items the client total is kept.
func (e *Expense) Normalize() {
	if len(e.Items) == 0 {
		return
	}
	total := decimal.Zero
	for _, it := range e.Items {
		total = total.Add(it.Price)
	}
	e.TotalPrice = total
}

// Validate checks the client-editable fields of an expense.
func (e *Expense) Validate() error {
	if err := validateDate("date", e.Date); err != nil {
		return err
	}
	if e.Time != "" {
		if _, err := time.Parse(TimeLayout, e.Time); err != nil {
			return fmt.Errorf("time must be formatted as HH:MM")
		}
	}
	if strings.TrimSpace(e.BusinessName) == "" {
		return fmt.Errorf("business_name is required")
	}
	if e.TotalPrice.IsNegative() {
		return fmt.Errorf("total_price must not be negative")
	}
	for i, it := range e.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("items[%d].name is required", i)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("items[%d].price must not be negative", i)
		}
	}
	return validateReceipts(e.Receipts)
}
