package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

func marshalExpenseJSON(e *v1.Expense) (itemsJSON, receiptsJSON []byte, err error) {
	if itemsJSON, err = marshalList("items", e.Items); err != nil {
		return nil, nil, err
	}
	if receiptsJSON, err = marshalList("receipts", e.Receipts); err != nil {
		return nil, nil, err
	}
	return itemsJSON, receiptsJSON, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *v1.Expense) error {
	itemsJSON, receiptsJSON, err := marshalExpenseJSON(e)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, queryInsertExpense,
		e.ID,
		e.Date,
		e.Time,
		e.ReceiptNumber,
		e.BusinessName,
		e.TotalPrice,
		itemsJSON,
		receiptsJSON,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("expense %s: %w", e.ID, storage.ErrDuplicate)
	}
	if err != nil {
		return unavailable("create expense", err)
	}
	return nil
}

func (s *Store) GetExpense(ctx context.Context, id string) (*v1.Expense, error) {
	if !validID(id) {
		return nil, fmt.Errorf("expense %q: %w", id, storage.ErrNotFound)
	}
	e, err := scanExpenseRow(s.db.QueryRowContext(ctx, queryGetExpense, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %q: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get expense", err)
	}
	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]*v1.Expense, error) {
	rows, err := s.db.QueryContext(ctx, queryListExpenses)
	if err != nil {
		return nil, unavailable("list expenses", err)
	}
	return collectExpenses(rows)
}

func (s *Store) ListExpensesBetween(ctx context.Context, startDate, endDate string) ([]*v1.Expense, error) {
	rows, err := s.db.QueryContext(ctx, queryListExpensesBetween, startDate, endDate)
	if err != nil {
		return nil, unavailable("list expenses between", err)
	}
	return collectExpenses(rows)
}

func collectExpenses(rows *sql.Rows) ([]*v1.Expense, error) {
	defer rows.Close()

	out := []*v1.Expense{}
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, unavailable("scan expense", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate expenses", err)
	}
	return out, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *v1.Expense) error {
	if !validID(e.ID) {
		return fmt.Errorf("expense %q: %w", e.ID, storage.ErrNotFound)
	}
	itemsJSON, receiptsJSON, err := marshalExpenseJSON(e)
	if err != nil {
		return err
	}

	err = s.db.QueryRowContext(ctx, queryUpdateExpense,
		e.ID,
		e.Date,
		e.Time,
		e.ReceiptNumber,
		e.BusinessName,
		e.TotalPrice,
		itemsJSON,
		receiptsJSON,
		e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("expense %q: %w", e.ID, storage.ErrNotFound)
	}
	if err != nil {
		return unavailable("update expense", err)
	}
	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("expense %q: %w", id, storage.ErrNotFound)
	}
	return execDelete(ctx, s.db, queryDeleteExpense, "expense", id)
}
