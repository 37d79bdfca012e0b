package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// unavailable marks err as a store failure while keeping the driver error in the chain.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", storage.ErrUnavailable, op, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// validID rejects ids that could never match a UUID primary key, so lookups
// with a malformed id read as not found instead of a driver error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// marshalList encodes a slice as a JSONB array. A nil slice is stored as [] not null.
func marshalList[T any](field string, values []T) ([]byte, error) {
	if values == nil {
		values = []T{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", field, err)
	}
	return b, nil
}

func unmarshalList[T any](field string, data []byte) ([]T, error) {
	out := []T{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", field, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanJobRow reads the columns of jobColumns. Compatible with sql.Row and sql.Rows.
func scanJobRow(row scanner) (*v1.Job, error) {
	var job v1.Job
	var receiptsJSON []byte

	err := row.Scan(
		&job.ID,
		&job.JobID,
		&job.Date,
		&job.NetProfit,
		&job.Expenses,
		&job.Mileage,
		&receiptsJSON,
		&job.PaymentMethod,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if job.Receipts, err = unmarshalList[string]("receipts", receiptsJSON); err != nil {
		return nil, err
	}
	return &job, nil
}

func scanExpenseRow(row scanner) (*v1.Expense, error) {
	var e v1.Expense
	var itemsJSON, receiptsJSON []byte

	err := row.Scan(
		&e.ID,
		&e.Date,
		&e.Time,
		&e.ReceiptNumber,
		&e.BusinessName,
		&e.TotalPrice,
		&itemsJSON,
		&receiptsJSON,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if e.Items, err = unmarshalList[v1.ExpenseItem]("items", itemsJSON); err != nil {
		return nil, err
	}
	if e.Receipts, err = unmarshalList[string]("receipts", receiptsJSON); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanQuoteRow(row scanner) (*v1.QuoteRequest, error) {
	var q v1.QuoteRequest
	err := row.Scan(
		&q.ID,
		&q.FirstName,
		&q.LastName,
		&q.Email,
		&q.PhoneNumber,
		&q.ServiceType,
		&q.Message,
		&q.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func scanEmployeeRow(row scanner) (*v1.Employee, error) {
	var e v1.Employee
	if err := row.Scan(&e.UID, &e.Email, &e.DisplayName, &e.ApprovedAt, &e.ApprovedBy); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanSignInAttemptRow(row scanner) (*v1.SignInAttempt, error) {
	var a v1.SignInAttempt
	err := row.Scan(
		&a.UID,
		&a.Email,
		&a.DisplayName,
		&a.ProviderID,
		&a.FirstSeenAt,
		&a.LastSignInAt,
		&a.Approved,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
