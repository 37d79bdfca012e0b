//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/charts"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/jobs"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, dst), string(body))
}

func TestIntegration_Health(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := h.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "healthy")
}

func TestIntegration_SignInApproval(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	const newcomer = "uid-newcomer"
	signIn := v1.SignInRequest{Email: "sam@example.com", DisplayName: "Sam", ProviderID: "google.com"}

	status, body := h.do(t, http.MethodPost, "/v1/auth/sign-in", newcomer, signIn)
	require.Equal(t, http.StatusForbidden, status)
	var pending httperr.ErrorResponse
	decode(t, body, &pending)
	require.Equal(t, httperr.HttpPendingApprovalError, pending.ErrorType)

	status, _ = h.do(t, http.MethodGet, "/v1/jobs", newcomer, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, body = h.do(t, http.MethodGet, "/v1/sign-in-attempts", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	var attempts struct {
		Attempts []v1.SignInAttempt `json:"attempts"`
	}
	decode(t, body, &attempts)
	require.Len(t, attempts.Attempts, 1)
	require.Equal(t, newcomer, attempts.Attempts[0].UID)
	require.False(t, attempts.Attempts[0].Approved)

	status, body = h.do(t, http.MethodPost, "/v1/sign-in-attempts/"+newcomer+"/approval", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	var approval v1.ApprovalResult
	decode(t, body, &approval)
	require.True(t, approval.Approved)

	status, body = h.do(t, http.MethodPost, "/v1/auth/sign-in", newcomer, signIn)
	require.Equal(t, http.StatusOK, status)
	var result v1.SignInResult
	decode(t, body, &result)
	require.Equal(t, v1.SignInApproved, result.Status)
	require.Equal(t, ownerUID, result.Employee.ApprovedBy)

	status, _ = h.do(t, http.MethodPost, "/v1/auth/sign-in", ownerUID, v1.SignInRequest{Email: "owner@example.com"})
	require.Equal(t, http.StatusOK, status)
	status, body = h.do(t, http.MethodPost, "/v1/sign-in-attempts/"+ownerUID+"/approval", ownerUID, nil)
	require.Equal(t, http.StatusForbidden, status)
	var selfDisable httperr.ErrorResponse
	decode(t, body, &selfDisable)
	require.Equal(t, httperr.HttpSelfDisableForbidError, selfDisable.ErrorType)

	// A second toggle disables the approved user again.
	status, body = h.do(t, http.MethodPost, "/v1/sign-in-attempts/"+newcomer+"/approval", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, body, &approval)
	require.False(t, approval.Approved)

	status, _ = h.do(t, http.MethodGet, "/v1/jobs", newcomer, nil)
	require.Equal(t, http.StatusForbidden, status)
}

func TestIntegration_JobLifecycle(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := h.do(t, http.MethodGet, "/v1/jobs/next-id", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	var next jobs.NextIDResponse
	decode(t, body, &next)
	require.Equal(t, "A0001", next.JobID)

	payload := map[string]interface{}{
		"job_id":         "Q7777",
		"date":           "2024-03-10",
		"net_profit":     "180.00",
		"expenses":       "20.50",
		"mileage":        "12.4",
		"payment_method": v1.PaymentCard,
		"receipts":       []string{"https://cdn.example/r1.jpg"},
	}
	status, body = h.do(t, http.MethodPost, "/v1/jobs", ownerUID, payload)
	require.Equal(t, http.StatusCreated, status, string(body))
	var first v1.Job
	decode(t, body, &first)
	require.Equal(t, "A0001", first.JobID)

	status, body = h.do(t, http.MethodPost, "/v1/jobs", ownerUID, payload)
	require.Equal(t, http.StatusCreated, status)
	var second v1.Job
	decode(t, body, &second)
	require.Equal(t, "A0002", second.JobID)

	payload["payment_method"] = v1.PaymentCash
	status, body = h.do(t, http.MethodPut, "/v1/jobs/"+first.ID, ownerUID, payload)
	require.Equal(t, http.StatusOK, status, string(body))
	var updated v1.Job
	decode(t, body, &updated)
	require.Equal(t, "A0001", updated.JobID)
	require.Equal(t, v1.PaymentCash, updated.PaymentMethod)

	status, _ = h.do(t, http.MethodDelete, "/v1/jobs/"+second.ID, ownerUID, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = h.do(t, http.MethodGet, "/v1/jobs/"+second.ID, ownerUID, nil)
	require.Equal(t, http.StatusNotFound, status)

	// Identifiers are never reused after a delete.
	status, body = h.do(t, http.MethodGet, "/v1/jobs/next-id", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, body, &next)
	require.Equal(t, "A0003", next.JobID)

	payload["payment_method"] = "barter"
	status, _ = h.do(t, http.MethodPost, "/v1/jobs", ownerUID, payload)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestIntegration_ConcurrentJobCreatesGetUniqueIDs(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	const n = 16
	payload := map[string]interface{}{"date": "2024-04-01", "payment_method": v1.PaymentCash}

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body := h.do(t, http.MethodPost, "/v1/jobs", ownerUID, payload)
			if status != http.StatusCreated {
				t.Errorf("create returned %d: %s", status, body)
				return
			}
			var job v1.Job
			if err := json.Unmarshal(body, &job); err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[job.JobID] {
				t.Errorf("job id %s assigned twice", job.JobID)
			}
			seen[job.JobID] = true
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
	require.True(t, seen["A0016"])
}

func TestIntegration_ExpensesAndExport(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	payload := map[string]interface{}{
		"date":          "2024-03-11",
		"time":          "09:15",
		"business_name": "Supply Depot",
		"items": []map[string]string{
			{"name": "squeegee", "price": "14.00"},
			{"name": "soap", "price": "6.50"},
		},
	}
	status, body := h.do(t, http.MethodPost, "/v1/expenses", ownerUID, payload)
	require.Equal(t, http.StatusCreated, status, string(body))
	var created v1.Expense
	decode(t, body, &created)
	require.Equal(t, "20.5", created.TotalPrice.String())

	status, body = h.do(t, http.MethodGet, "/v1/expenses", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Expenses []v1.Expense `json:"expenses"`
	}
	decode(t, body, &list)
	require.Len(t, list.Expenses, 1)
	require.Len(t, list.Expenses[0].Items, 2)

	req, err := http.NewRequest(http.MethodGet, h.baseURL+"/v1/expenses/export", nil)
	require.NoError(t, err)
	req.Header.Set("X-Authenticated-Uid", ownerUID)
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}

func TestIntegration_PublicIntake(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := h.do(t, http.MethodPost, "/v1/quotes", "", map[string]string{
		"first_name":   "Ada",
		"last_name":    "Byron",
		"email":        "ada@example.com",
		"service_type": "residential",
		"message":      "Two story house",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, _ = h.do(t, http.MethodPost, "/v1/quotes", "", map[string]string{"first_name": "Ada"})
	require.Equal(t, http.StatusBadRequest, status)

	status, body = h.do(t, http.MethodPost, "/v1/reviews", "", map[string]interface{}{"rating": 5, "message": "dropped"})
	require.Equal(t, http.StatusCreated, status)
	var high v1.ReviewSubmission
	decode(t, body, &high)
	require.NotEmpty(t, high.RedirectURL)
	require.Empty(t, high.Review.Message)

	status, body = h.do(t, http.MethodPost, "/v1/reviews", "", map[string]interface{}{"rating": 2, "message": "missed a window"})
	require.Equal(t, http.StatusCreated, status)
	var low v1.ReviewSubmission
	decode(t, body, &low)
	require.Empty(t, low.RedirectURL)
	require.Equal(t, "Anonymous", low.Review.Name)

	status, body = h.do(t, http.MethodGet, "/v1/reviews/summary", "", nil)
	require.Equal(t, http.StatusOK, status)
	var summary v1.ReviewSummary
	decode(t, body, &summary)
	require.Equal(t, 2, summary.Count)
	require.InDelta(t, 3.5, summary.Average, 0.001)

	status, _ = h.do(t, http.MethodGet, "/v1/quotes", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, body = h.do(t, http.MethodGet, "/v1/quotes", ownerUID, nil)
	require.Equal(t, http.StatusOK, status)
	var quotes struct {
		Quotes []v1.QuoteRequest `json:"quotes"`
	}
	decode(t, body, &quotes)
	require.Len(t, quotes.Quotes, 1)
}

func TestIntegration_Dashboard(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	today := time.Now().UTC().Format(v1.DateLayout)
	status, body := h.do(t, http.MethodPost, "/v1/jobs", ownerUID, map[string]interface{}{
		"date":           today,
		"net_profit":     "100",
		"payment_method": v1.PaymentCash,
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = h.do(t, http.MethodGet, "/v1/dashboard?days=7", ownerUID, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var dash charts.Dashboard
	decode(t, body, &dash)
	require.Equal(t, 7, dash.Days)
	require.NotEmpty(t, dash.Series)
	for _, s := range dash.Series {
		require.Len(t, s.Buckets, 7, s.Chart)
	}

	status, _ = h.do(t, http.MethodGet, "/v1/dashboard?days=365", ownerUID, nil)
	require.Equal(t, http.StatusBadRequest, status)
	status, _ = h.do(t, http.MethodGet, "/v1/charts/nope", ownerUID, nil)
	require.Equal(t, http.StatusNotFound, status)
}
