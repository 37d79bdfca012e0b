package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/jobid"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is an in-memory implementation of storage.Store.
// Useful for testing and local development. Every read returns copies.
type Store struct {
	mu sync.RWMutex

	jobs      map[string]*v1.Job
	lastJobID string // allocator state, mirrors the job_id_sequence row

	expenses  map[string]*v1.Expense
	quotes    map[string]*v1.QuoteRequest
	reviews   map[string]*v1.Review
	employees map[string]*v1.Employee
	attempts  map[string]*v1.SignInAttempt
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		jobs:      make(map[string]*v1.Job),
		expenses:  make(map[string]*v1.Expense),
		quotes:    make(map[string]*v1.QuoteRequest),
		reviews:   make(map[string]*v1.Review),
		employees: make(map[string]*v1.Employee),
		attempts:  make(map[string]*v1.SignInAttempt),
	}
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error               { return nil }

func copyJob(j *v1.Job) *v1.Job {
	out := *j
	out.Receipts = append([]string{}, j.Receipts...)
	return &out
}

func copyExpense(e *v1.Expense) *v1.Expense {
	out := *e
	out.Items = append([]v1.ExpenseItem{}, e.Items...)
	out.Receipts = append([]string{}, e.Receipts...)
	return &out
}

func (s *Store) latestJobIDLocked() string {
	latest := ""
	for _, j := range s.jobs {
		if j.JobID > latest {
			latest = j.JobID
		}
	}
	return latest
}

// LatestJobID returns the last allocated job_id, which survives deletes.
func (s *Store) LatestJobID(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastJobID != "" {
		return s.lastJobID, nil
	}
	return s.latestJobIDLocked(), nil
}

// CreateJob allocates under the write lock, so concurrent creates never share a job_id.
func (s *Store) CreateJob(_ context.Context, job *v1.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("job %s: %w", job.ID, storage.ErrDuplicate)
	}

	latest := s.lastJobID
	if latest == "" {
		latest = s.latestJobIDLocked()
	}
	next, err := jobid.Next(latest)
	if err != nil {
		return fmt.Errorf("create job: allocate after %q: %w", latest, err)
	}

	for _, j := range s.jobs {
		if j.JobID == next.String() {
			return fmt.Errorf("create job %s: %w", next, storage.ErrDuplicate)
		}
	}

	job.JobID = next.String()
	s.jobs[job.ID] = copyJob(job)
	s.lastJobID = job.JobID
	return nil
}

func (s *Store) GetJob(_ context.Context, id string) (*v1.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %q: %w", id, storage.ErrNotFound)
	}
	return copyJob(j), nil
}

func (s *Store) ListJobs(context.Context) ([]*v1.Job, error) {
	return s.filterJobs(func(*v1.Job) bool { return true }, true), nil
}

func (s *Store) ListJobsBetween(_ context.Context, startDate, endDate string) ([]*v1.Job, error) {
	return s.filterJobs(func(j *v1.Job) bool {
		return j.Date >= startDate && j.Date <= endDate
	}, false), nil
}

func (s *Store) filterJobs(keep func(*v1.Job) bool, newestFirst bool) []*v1.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*v1.Job{}
	for _, j := range s.jobs {
		if keep(j) {
			out = append(out, copyJob(j))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		x, y := out[a], out[b]
		if newestFirst {
			x, y = y, x
		}
		if x.Date != y.Date {
			return x.Date < y.Date
		}
		return x.JobID < y.JobID
	})
	return out
}

func (s *Store) UpdateJob(_ context.Context, job *v1.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.jobs[job.ID]
	if !ok {
		return fmt.Errorf("job %q: %w", job.ID, storage.ErrNotFound)
	}
	job.JobID = cur.JobID
	job.CreatedAt = cur.CreatedAt
	s.jobs[job.ID] = copyJob(job)
	return nil
}

func (s *Store) DeleteJob(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return fmt.Errorf("job %q: %w", id, storage.ErrNotFound)
	}
	delete(s.jobs, id)
	return nil
}

func (s *Store) CreateExpense(_ context.Context, e *v1.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.expenses[e.ID]; exists {
		return fmt.Errorf("expense %s: %w", e.ID, storage.ErrDuplicate)
	}
	s.expenses[e.ID] = copyExpense(e)
	return nil
}

func (s *Store) GetExpense(_ context.Context, id string) (*v1.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[id]
	if !ok {
		return nil, fmt.Errorf("expense %q: %w", id, storage.ErrNotFound)
	}
	return copyExpense(e), nil
}

func (s *Store) ListExpenses(context.Context) ([]*v1.Expense, error) {
	return s.filterExpenses(func(*v1.Expense) bool { return true }, true), nil
}

func (s *Store) ListExpensesBetween(_ context.Context, startDate, endDate string) ([]*v1.Expense, error) {
	return s.filterExpenses(func(e *v1.Expense) bool {
		return e.Date >= startDate && e.Date <= endDate
	}, false), nil
}

func (s *Store) filterExpenses(keep func(*v1.Expense) bool, newestFirst bool) []*v1.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*v1.Expense{}
	for _, e := range s.expenses {
		if keep(e) {
			out = append(out, copyExpense(e))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		x, y := out[a], out[b]
		if newestFirst {
			x, y = y, x
		}
		if x.Date != y.Date {
			return x.Date < y.Date
		}
		return x.Time < y.Time
	})
	return out
}

func (s *Store) UpdateExpense(_ context.Context, e *v1.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.expenses[e.ID]
	if !ok {
		return fmt.Errorf("expense %q: %w", e.ID, storage.ErrNotFound)
	}
	e.CreatedAt = cur.CreatedAt
	s.expenses[e.ID] = copyExpense(e)
	return nil
}

func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return fmt.Errorf("expense %q: %w", id, storage.ErrNotFound)
	}
	delete(s.expenses, id)
	return nil
}

func (s *Store) SaveQuoteRequest(_ context.Context, q *v1.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.quotes[q.ID]; exists {
		return fmt.Errorf("quote request %s: %w", q.ID, storage.ErrDuplicate)
	}
	copy := *q
	s.quotes[q.ID] = &copy
	return nil
}

func (s *Store) ListQuoteRequests(context.Context) ([]*v1.QuoteRequest, error) {
	out := s.filterQuotes(func(*v1.QuoteRequest) bool { return true })
	sort.Slice(out, func(a, b int) bool { return out[a].SubmittedAt.After(out[b].SubmittedAt) })
	return out, nil
}

func (s *Store) ListQuoteRequestsBetween(_ context.Context, start, end time.Time) ([]*v1.QuoteRequest, error) {
	out := s.filterQuotes(func(q *v1.QuoteRequest) bool {
		return !q.SubmittedAt.Before(start) && q.SubmittedAt.Before(end)
	})
	sort.Slice(out, func(a, b int) bool { return out[a].SubmittedAt.Before(out[b].SubmittedAt) })
	return out, nil
}

func (s *Store) filterQuotes(keep func(*v1.QuoteRequest) bool) []*v1.QuoteRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*v1.QuoteRequest{}
	for _, q := range s.quotes {
		if keep(q) {
			copy := *q
			out = append(out, &copy)
		}
	}
	return out
}

func (s *Store) SaveReview(_ context.Context, r *v1.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[r.ID]; exists {
		return fmt.Errorf("review %s: %w", r.ID, storage.ErrDuplicate)
	}
	copy := *r
	s.reviews[r.ID] = &copy
	return nil
}

func (s *Store) ListReviews(context.Context) ([]*v1.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*v1.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		copy := *r
		out = append(out, &copy)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (s *Store) GetEmployee(_ context.Context, uid string) (*v1.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[uid]
	if !ok {
		return nil, fmt.Errorf("employee %q: %w", uid, storage.ErrNotFound)
	}
	copy := *e
	return &copy, nil
}

func (s *Store) ListEmployees(context.Context) ([]*v1.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*v1.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		copy := *e
		out = append(out, &copy)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ApprovedAt.Before(out[b].ApprovedAt) })
	return out, nil
}

func (s *Store) PutEmployee(_ context.Context, e *v1.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *e
	s.employees[e.UID] = &copy
	return nil
}

func (s *Store) DeleteEmployee(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[uid]; !ok {
		return fmt.Errorf("employee %q: %w", uid, storage.ErrNotFound)
	}
	delete(s.employees, uid)
	return nil
}

func (s *Store) RecordSignInAttempt(_ context.Context, a *v1.SignInAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.attempts[a.UID]; ok {
		a.FirstSeenAt = prev.FirstSeenAt
	} else {
		a.FirstSeenAt = a.LastSignInAt
	}
	copy := *a
	copy.Approved = false
	s.attempts[a.UID] = &copy
	return nil
}

func (s *Store) GetSignInAttempt(_ context.Context, uid string) (*v1.SignInAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attempts[uid]
	if !ok {
		return nil, fmt.Errorf("sign-in attempt %q: %w", uid, storage.ErrNotFound)
	}
	copy := *a
	_, copy.Approved = s.employees[uid]
	return &copy, nil
}

func (s *Store) ListSignInAttempts(context.Context) ([]*v1.SignInAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*v1.SignInAttempt, 0, len(s.attempts))
	for uid, a := range s.attempts {
		copy := *a
		_, copy.Approved = s.employees[uid]
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSignInAt.After(out[j].LastSignInAt) })
	return out, nil
}

func (s *Store) PruneSignInAttempts(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for uid, a := range s.attempts {
		if _, isEmployee := s.employees[uid]; isEmployee {
			continue
		}
		if a.LastSignInAt.Before(cutoff) {
			delete(s.attempts, uid)
			removed++
		}
	}
	return removed, nil
}
