package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

// SaveQuoteRequest inserts a quote request. A resubmitted id returns
// storage.ErrDuplicate (ON CONFLICT DO NOTHING yields no row).
func (s *Store) SaveQuoteRequest(ctx context.Context, q *v1.QuoteRequest) error {
	var id string
	err := s.db.QueryRowContext(ctx, queryInsertQuoteRequest,
		q.ID,
		q.FirstName,
		q.LastName,
		q.Email,
		q.PhoneNumber,
		q.ServiceType,
		q.Message,
		q.SubmittedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("quote request %s: %w", q.ID, storage.ErrDuplicate)
	}
	if err != nil {
		return unavailable("save quote request", err)
	}
	return nil
}

func (s *Store) ListQuoteRequests(ctx context.Context) ([]*v1.QuoteRequest, error) {
	rows, err := s.db.QueryContext(ctx, queryListQuoteRequests)
	if err != nil {
		return nil, unavailable("list quote requests", err)
	}
	return collectQuotes(rows)
}

func (s *Store) ListQuoteRequestsBetween(ctx context.Context, start, end time.Time) ([]*v1.QuoteRequest, error) {
	rows, err := s.db.QueryContext(ctx, queryListQuoteRequestsBetween, start, end)
	if err != nil {
		return nil, unavailable("list quote requests between", err)
	}
	return collectQuotes(rows)
}

func collectQuotes(rows *sql.Rows) ([]*v1.QuoteRequest, error) {
	defer rows.Close()

	out := []*v1.QuoteRequest{}
	for rows.Next() {
		q, err := scanQuoteRow(rows)
		if err != nil {
			return nil, unavailable("scan quote request", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate quote requests", err)
	}
	return out, nil
}

func (s *Store) SaveReview(ctx context.Context, r *v1.Review) error {
	var id string
	err := s.db.QueryRowContext(ctx, queryInsertReview,
		r.ID,
		r.Rating,
		r.Name,
		r.Message,
		r.CreatedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("review %s: %w", r.ID, storage.ErrDuplicate)
	}
	if err != nil {
		return unavailable("save review", err)
	}
	return nil
}

func (s *Store) ListReviews(ctx context.Context) ([]*v1.Review, error) {
	rows, err := s.db.QueryContext(ctx, queryListReviews)
	if err != nil {
		return nil, unavailable("list reviews", err)
	}
	defer rows.Close()

	out := []*v1.Review{}
	for rows.Next() {
		var r v1.Review
		if err := rows.Scan(&r.ID, &r.Rating, &r.Name, &r.Message, &r.CreatedAt); err != nil {
			return nil, unavailable("scan review", err)
		}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate reviews", err)
	}
	return out, nil
}
