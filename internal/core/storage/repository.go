package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
)

var (
	// ErrNotFound is returned when the addressed document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint rejects a write,
	// e.g. two jobs racing for the same job_id.
	ErrDuplicate = errors.New("already exists")

	// ErrUnavailable wraps every failure to reach or read the backing store.
	// Callers must not treat it as an empty result.
	ErrUnavailable = errors.New("store unavailable")
)

// JobStore persists jobs and allocates their work order identifiers.
type JobStore interface {
	// LatestJobID returns the highest persisted job_id, or "" when there are no jobs.
	LatestJobID(ctx context.Context) (string, error)

	// CreateJob allocates the next job_id and inserts the job in one atomic step.
	// job.JobID is overwritten with the allocated value.
	CreateJob(ctx context.Context, job *v1.Job) error

	GetJob(ctx context.Context, id string) (*v1.Job, error)

	// ListJobs returns all jobs, newest date first.
	ListJobs(ctx context.Context) ([]*v1.Job, error)

	// ListJobsBetween returns jobs whose date lies in [startDate, endDate], both "2006-01-02".
	ListJobsBetween(ctx context.Context, startDate, endDate string) ([]*v1.Job, error)

	// UpdateJob replaces the editable fields. job_id is immutable.
	UpdateJob(ctx context.Context, job *v1.Job) error
	DeleteJob(ctx context.Context, id string) error
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *v1.Expense) error
	GetExpense(ctx context.Context, id string) (*v1.Expense, error)

	// ListExpenses returns all expenses ordered by date then time, newest first.
	ListExpenses(ctx context.Context) ([]*v1.Expense, error)

	// ListExpensesBetween returns expenses whose date lies in [startDate, endDate].
	ListExpensesBetween(ctx context.Context, startDate, endDate string) ([]*v1.Expense, error)

	UpdateExpense(ctx context.Context, expense *v1.Expense) error
	DeleteExpense(ctx context.Context, id string) error
}

// QuoteStore persists quote requests from the public site.
type QuoteStore interface {
	SaveQuoteRequest(ctx context.Context, quote *v1.QuoteRequest) error

	// ListQuoteRequests returns all requests, newest first.
	ListQuoteRequests(ctx context.Context) ([]*v1.QuoteRequest, error)

	// ListQuoteRequestsBetween returns requests submitted in [start, end).
	ListQuoteRequestsBetween(ctx context.Context, start, end time.Time) ([]*v1.QuoteRequest, error)
}

// ReviewStore persists star ratings.
type ReviewStore interface {
	SaveReview(ctx context.Context, review *v1.Review) error

	// ListReviews returns all reviews, newest first.
	ListReviews(ctx context.Context) ([]*v1.Review, error)
}

// AccessStore holds approved employees and recorded sign-in attempts.
type AccessStore interface {
	GetEmployee(ctx context.Context, uid string) (*v1.Employee, error)
	ListEmployees(ctx context.Context) ([]*v1.Employee, error)

	// PutEmployee inserts or replaces the employee with employee.UID.
	PutEmployee(ctx context.Context, employee *v1.Employee) error
	DeleteEmployee(ctx context.Context, uid string) error

	// RecordSignInAttempt upserts by uid. FirstSeenAt is kept from the first attempt.
	RecordSignInAttempt(ctx context.Context, attempt *v1.SignInAttempt) error
	GetSignInAttempt(ctx context.Context, uid string) (*v1.SignInAttempt, error)

	// ListSignInAttempts returns attempts, most recent sign-in first.
	ListSignInAttempts(ctx context.Context) ([]*v1.SignInAttempt, error)

	// PruneSignInAttempts deletes attempts whose last sign-in is before cutoff
	// and whose uid is not an employee. It returns the number removed.
	PruneSignInAttempts(ctx context.Context, cutoff time.Time) (int64, error)
}

// Store is the full persistence surface of the service.
type Store interface {
	JobStore
	ExpenseStore
	QuoteStore
	ReviewStore
	AccessStore

	Ping(ctx context.Context) error
	Close() error
}
