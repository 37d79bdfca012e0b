package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

func (s *Store) GetEmployee(ctx context.Context, uid string) (*v1.Employee, error) {
	e, err := scanEmployeeRow(s.db.QueryRowContext(ctx, queryGetEmployee, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %q: %w", uid, storage.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get employee", err)
	}
	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]*v1.Employee, error) {
	rows, err := s.db.QueryContext(ctx, queryListEmployees)
	if err != nil {
		return nil, unavailable("list employees", err)
	}
	defer rows.Close()

	out := []*v1.Employee{}
	for rows.Next() {
		e, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, unavailable("scan employee", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate employees", err)
	}
	return out, nil
}

func (s *Store) PutEmployee(ctx context.Context, e *v1.Employee) error {
	_, err := s.db.ExecContext(ctx, queryUpsertEmployee,
		e.UID,
		e.Email,
		e.DisplayName,
		e.ApprovedAt,
		e.ApprovedBy,
	)
	if err != nil {
		return unavailable("put employee", err)
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, uid string) error {
	return execDelete(ctx, s.db, queryDeleteEmployee, "employee", uid)
}

// RecordSignInAttempt upserts the attempt and reads back the preserved FirstSeenAt.
func (s *Store) RecordSignInAttempt(ctx context.Context, a *v1.SignInAttempt) error {
	err := s.db.QueryRowContext(ctx, queryUpsertSignInAttempt,
		a.UID,
		a.Email,
		a.DisplayName,
		a.ProviderID,
		a.LastSignInAt,
	).Scan(&a.FirstSeenAt)
	if err != nil {
		return unavailable("record sign-in attempt", err)
	}
	return nil
}

func (s *Store) GetSignInAttempt(ctx context.Context, uid string) (*v1.SignInAttempt, error) {
	a, err := scanSignInAttemptRow(s.db.QueryRowContext(ctx, queryGetSignInAttempt, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sign-in attempt %q: %w", uid, storage.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get sign-in attempt", err)
	}
	return a, nil
}

func (s *Store) ListSignInAttempts(ctx context.Context) ([]*v1.SignInAttempt, error) {
	rows, err := s.db.QueryContext(ctx, queryListSignInAttempts)
	if err != nil {
		return nil, unavailable("list sign-in attempts", err)
	}
	defer rows.Close()

	out := []*v1.SignInAttempt{}
	for rows.Next() {
		a, err := scanSignInAttemptRow(rows)
		if err != nil {
			return nil, unavailable("scan sign-in attempt", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate sign-in attempts", err)
	}
	return out, nil
}

func (s *Store) PruneSignInAttempts(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, queryPruneSignInAttempts, cutoff)
	if err != nil {
		return 0, unavailable("prune sign-in attempts", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, unavailable("prune sign-in attempts", err)
	}
	slog.Debug("[Postgres] Pruned sign-in attempts", "cutoff", cutoff, "removed", n)
	return n, nil
}
