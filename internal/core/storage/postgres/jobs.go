package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/jobid"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

// LatestJobID returns the last job_id the allocator handed out, so a preview
// matches what CreateJob assigns next. Before the first allocation, or when
// the sequence value is malformed, it falls back to the highest persisted
// job_id. It returns "" when neither exists.
func (s *Store) LatestJobID(ctx context.Context) (string, error) {
	var last, highest sql.NullString
	err := s.stmtLatestJobID.QueryRowContext(ctx, jobSequenceName).Scan(&last, &highest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", unavailable("latest job id", err)
	}
	if usableSequenceValue(last) {
		return last.String, nil
	}
	return highest.String, nil
}

// usableSequenceValue reports whether the allocator row holds an identifier
// that can be continued. A malformed value is logged and left for the caller
// to replace with the highest persisted job_id.
func usableSequenceValue(last sql.NullString) bool {
	if !last.Valid {
		return false
	}
	if _, err := jobid.Parse(last.String); err != nil {
		slog.Error("[Postgres] Job id sequence holds a malformed value, reseeding from jobs",
			"value", last.String, "error", err)
		return false
	}
	return true
}

// CreateJob allocates the next job_id and inserts the job in one transaction.
//
// The job_id_sequence row is locked first, so concurrent creates serialize on
// it and never compute the same successor. When the row has no value yet it is
// seeded from the highest job_id already in jobs, and the same happens when
// the stored value is malformed. The UNIQUE constraint on jobs.job_id still
// rejects a collision as storage.ErrDuplicate.
func (s *Store) CreateJob(ctx context.Context, job *v1.Job) error {
	receiptsJSON, err := marshalList("receipts", job.Receipts)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("create job: begin tx", err)
	}
	defer tx.Rollback() //nolint:errcheck

	latest, err := s.lockJobSequence(ctx, tx)
	if err != nil {
		return err
	}

	next, err := jobid.Next(latest)
	if err != nil {
		return fmt.Errorf("create job: allocate after %q: %w", latest, err)
	}
	job.JobID = next.String()

	_, err = tx.ExecContext(ctx, queryInsertJob,
		job.ID,
		job.JobID,
		job.Date,
		job.NetProfit,
		job.Expenses,
		job.Mileage,
		receiptsJSON,
		job.PaymentMethod,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if isUniqueViolation(err) {
		slog.Warn("[Postgres] Job insert collided", "id", job.ID, "job_id", job.JobID)
		return fmt.Errorf("create job %s: %w", job.JobID, storage.ErrDuplicate)
	}
	if err != nil {
		return unavailable("create job: insert", err)
	}

	if _, err := tx.ExecContext(ctx, queryAdvanceJobSequence, job.JobID, s.now(), jobSequenceName); err != nil {
		return unavailable("create job: advance sequence", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("create job: commit", err)
	}

	slog.Debug("[Postgres] Created job", "id", job.ID, "job_id", job.JobID, "date", job.Date)
	return nil
}

// lockJobSequence returns the last allocated job_id while holding the row lock.
func (s *Store) lockJobSequence(ctx context.Context, tx *sql.Tx) (string, error) {
	var last sql.NullString
	err := tx.QueryRowContext(ctx, querySelectJobSequenceForUpdate, jobSequenceName).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := tx.ExecContext(ctx, queryInitJobSequenceRow, jobSequenceName, s.now()); err != nil {
			return "", unavailable("create job: init sequence row", err)
		}
		err = tx.QueryRowContext(ctx, querySelectJobSequenceForUpdate, jobSequenceName).Scan(&last)
	}
	if err != nil {
		return "", unavailable("create job: lock sequence", err)
	}
	if usableSequenceValue(last) {
		return last.String, nil
	}

	var latest string
	err = tx.QueryRowContext(ctx, queryLatestJobID).Scan(&latest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", unavailable("create job: seed sequence", err)
	}
	slog.Info("[Postgres] Seeded job id sequence from existing jobs", "latest", latest)
	return latest, nil
}

func (s *Store) GetJob(ctx context.Context, id string) (*v1.Job, error) {
	if !validID(id) {
		return nil, fmt.Errorf("job %q: %w", id, storage.ErrNotFound)
	}
	job, err := scanJobRow(s.stmtGetJob.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %q: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get job", err)
	}
	return job, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]*v1.Job, error) {
	rows, err := s.stmtListJobs.QueryContext(ctx)
	if err != nil {
		return nil, unavailable("list jobs", err)
	}
	return collectJobs(rows)
}

func (s *Store) ListJobsBetween(ctx context.Context, startDate, endDate string) ([]*v1.Job, error) {
	rows, err := s.stmtListJobsBetween.QueryContext(ctx, startDate, endDate)
	if err != nil {
		return nil, unavailable("list jobs between", err)
	}
	return collectJobs(rows)
}

func collectJobs(rows *sql.Rows) ([]*v1.Job, error) {
	defer rows.Close()

	jobs := []*v1.Job{}
	for rows.Next() {
		job, err := scanJobRow(rows)
		if err != nil {
			return nil, unavailable("scan job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate jobs", err)
	}
	return jobs, nil
}

// UpdateJob replaces the editable fields and fills in job_id and created_at.
func (s *Store) UpdateJob(ctx context.Context, job *v1.Job) error {
	if !validID(job.ID) {
		return fmt.Errorf("job %q: %w", job.ID, storage.ErrNotFound)
	}
	receiptsJSON, err := marshalList("receipts", job.Receipts)
	if err != nil {
		return err
	}

	err = s.db.QueryRowContext(ctx, queryUpdateJob,
		job.ID,
		job.Date,
		job.NetProfit,
		job.Expenses,
		job.Mileage,
		receiptsJSON,
		job.PaymentMethod,
		job.UpdatedAt,
	).Scan(&job.JobID, &job.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("job %q: %w", job.ID, storage.ErrNotFound)
	}
	if err != nil {
		return unavailable("update job", err)
	}
	return nil
}

func (s *Store) DeleteJob(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("job %q: %w", id, storage.ErrNotFound)
	}
	return execDelete(ctx, s.db, queryDeleteJob, "job", id)
}

// execDelete runs a single-row delete and maps zero affected rows to ErrNotFound.
func execDelete(ctx context.Context, db *sql.DB, query, what, key string) error {
	res, err := db.ExecContext(ctx, query, key)
	if err != nil {
		return unavailable("delete "+what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("delete "+what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", what, key, storage.ErrNotFound)
	}
	return nil
}
