package charts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage/memory"
	storagemocks "github.com/crystal-vistas/vistas-ops/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	for _, j := range []struct{ date, net, exp string }{
		{"2024-03-10", "100", "20"},
		{"2024-03-10", "50", "0"},
		{"2024-03-04", "10", "0"},
		{"2024-03-03", "999", "0"},
	} {
		require.NoError(t, s.CreateJob(ctx, &v1.Job{
			ID: uuid.NewString(), Date: j.date, NetProfit: dec(j.net), Expenses: dec(j.exp), PaymentMethod: v1.PaymentCash,
		}))
	}

	for _, at := range []time.Time{
		time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, s.SaveQuoteRequest(ctx, &v1.QuoteRequest{ID: uuid.NewString(), SubmittedAt: at}))
	}

	require.NoError(t, s.CreateExpense(ctx, &v1.Expense{ID: uuid.NewString(), Date: "2024-03-08", BusinessName: "Depot", TotalPrice: dec("12.34")}))
	return s
}

func newTestService(t *testing.T, sources Sources) *Service {
	t.Helper()
	repo, err := coreagg.NewFileSystemChartRepository("")
	require.NoError(t, err)

	svc := NewService(repo, sources, Options{DefaultDays: 7, MaxDays: 90})
	svc.nowFn = func() time.Time { return fixedNow }
	return svc
}

func memorySources(s *memory.Store) Sources {
	return Sources{Jobs: s, Expenses: s, Quotes: s}
}

func bucket(t *testing.T, series *coreagg.Series, date string) coreagg.DailyBucket {
	t.Helper()
	for _, b := range series.Buckets {
		if b.Date == date {
			return b
		}
	}
	t.Fatalf("no bucket for %s", date)
	return coreagg.DailyBucket{}
}

func TestService_IncomeSeries(t *testing.T) {
	svc := newTestService(t, memorySources(seededStore(t)))

	series, err := svc.Series(context.Background(), "income", 0)
	require.NoError(t, err)
	require.Equal(t, 7, series.Days)
	require.Len(t, series.Buckets, 7)
	require.Equal(t, "2024-03-04", series.Buckets[0].Date)
	require.Equal(t, "03/10", series.Buckets[6].Label)

	today := bucket(t, series, "2024-03-10")
	require.True(t, dec("150").Equal(today.Values["net_income"]))
	require.True(t, dec("20").Equal(today.Values["expenses"]))
	require.True(t, dec("130").Equal(today.Values["gross_income"]))
	require.True(t, dec("160").Equal(series.Totals["net_income"]))
	require.Zero(t, series.Skipped)
}

func TestService_QuoteAndExpenseSeries(t *testing.T) {
	svc := newTestService(t, memorySources(seededStore(t)))

	quotes, err := svc.Series(context.Background(), "quote_requests", 3)
	require.NoError(t, err)
	require.True(t, dec("2").Equal(bucket(t, quotes, "2024-03-09").Values["count"]))
	require.True(t, dec("0").Equal(bucket(t, quotes, "2024-03-10").Values["count"]))

	expenses, err := svc.Series(context.Background(), "expenses", 7)
	require.NoError(t, err)
	b := bucket(t, expenses, "2024-03-08")
	require.True(t, dec("12.34").Equal(b.Values["total"]))
	require.True(t, dec("1").Equal(b.Values["receipts"]))
}

func TestService_TimezoneShiftsQuoteDays(t *testing.T) {
	repo, err := coreagg.NewFileSystemChartRepository("")
	require.NoError(t, err)
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	svc := NewService(repo, memorySources(seededStore(t)), Options{Location: loc, DefaultDays: 7, MaxDays: 30})
	svc.nowFn = func() time.Time { return fixedNow }

	series, err := svc.Series(context.Background(), "quote_requests", 7)
	require.NoError(t, err)
	require.Equal(t, "America/Chicago", series.Timezone)
	// 23:59 UTC on the 9th is still the evening of the 9th in Chicago; 00:00 UTC on the 11th is the 10th.
	require.True(t, dec("2").Equal(bucket(t, series, "2024-03-09").Values["count"]))
	require.True(t, dec("1").Equal(bucket(t, series, "2024-03-10").Values["count"]))
}

func TestService_Dashboard(t *testing.T) {
	svc := newTestService(t, memorySources(seededStore(t)))

	dash, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, dash.Series, 3)

	names := make([]string, 0, len(dash.Series))
	for _, s := range dash.Series {
		names = append(names, s.Chart)
		require.Len(t, s.Buckets, 7)
	}
	require.Equal(t, []string{"expenses", "income", "quote_requests"}, names)
}

func TestService_DashboardServesOtherChartsWhenOneSourceIsDown(t *testing.T) {
	s := seededStore(t)
	quotes := storagemocks.NewQuoteStore(t)
	quotes.EXPECT().
		ListQuoteRequestsBetween(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: timeout", storage.ErrUnavailable)).
		Once()

	svc := newTestService(t, Sources{Jobs: s, Expenses: s, Quotes: quotes})
	dash, err := svc.Dashboard(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, dash.Partial)
	require.Len(t, dash.Series, 3)

	byName := make(map[string]coreagg.Series)
	for _, series := range dash.Series {
		byName[series.Chart] = series
	}

	failed := byName["quote_requests"]
	require.Equal(t, NoticeUnavailable, failed.Notice)
	require.Len(t, failed.Buckets, 7)
	for _, b := range failed.Buckets {
		require.True(t, b.Values["count"].IsZero(), b.Date)
	}

	income := byName["income"]
	require.Empty(t, income.Notice)
	require.True(t, dec("150").Equal(bucket(t, &income, "2024-03-10").Values["net_income"]))
	require.Empty(t, byName["expenses"].Notice)
}

func TestService_DashboardFailsWhenEverySourceIsDown(t *testing.T) {
	down := fmt.Errorf("%w: connection refused", storage.ErrUnavailable)

	jobs := storagemocks.NewJobStore(t)
	jobs.EXPECT().ListJobsBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, down).Once()
	expenses := storagemocks.NewExpenseStore(t)
	expenses.EXPECT().ListExpensesBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, down).Once()
	quotes := storagemocks.NewQuoteStore(t)
	quotes.EXPECT().ListQuoteRequestsBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, down).Once()

	svc := newTestService(t, Sources{Jobs: jobs, Expenses: expenses, Quotes: quotes})
	dash, err := svc.Dashboard(context.Background(), 7)
	require.ErrorIs(t, err, storage.ErrUnavailable)
	require.Nil(t, dash)
}

func TestDashboardHandler_PartialFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := seededStore(t)
	quotes := storagemocks.NewQuoteStore(t)
	quotes.EXPECT().
		ListQuoteRequestsBetween(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: timeout", storage.ErrUnavailable)).
		Once()

	svc := newTestService(t, Sources{Jobs: s, Expenses: s, Quotes: quotes})
	r := gin.New()
	svc.RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/dashboard?days=7", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var dash Dashboard
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dash))
	require.True(t, dash.Partial)
	require.Len(t, dash.Series, 3)
	notices := 0
	for _, series := range dash.Series {
		if series.Notice == NoticeUnavailable {
			notices++
			require.Equal(t, "quote_requests", series.Chart)
		}
	}
	require.Equal(t, 1, notices)
}

func TestService_WindowBounds(t *testing.T) {
	svc := newTestService(t, memorySources(memory.NewStore()))

	_, err := svc.Series(context.Background(), "income", 91)
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.Series(context.Background(), "income", -1)
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.Series(context.Background(), "nope", 7)
	require.ErrorIs(t, err, coreagg.ErrUnknownChart)
}

func TestHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t, memorySources(seededStore(t)))
	r := gin.New()
	svc.RegisterRoutes(r)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantType   string
	}{
		{name: "list", path: "/v1/charts", wantStatus: http.StatusOK},
		{name: "series", path: "/v1/charts/income?days=14", wantStatus: http.StatusOK},
		{name: "dashboard", path: "/v1/dashboard", wantStatus: http.StatusOK},
		{name: "unknown chart", path: "/v1/charts/revenue", wantStatus: http.StatusNotFound, wantType: httperr.HttpUnknownChartError},
		{name: "days not a number", path: "/v1/charts/income?days=week", wantStatus: http.StatusBadRequest, wantType: httperr.HttpInvalidRequestError},
		{name: "days zero", path: "/v1/dashboard?days=0", wantStatus: http.StatusBadRequest, wantType: httperr.HttpInvalidRequestError},
		{name: "days too large", path: "/v1/charts/income?days=365", wantStatus: http.StatusBadRequest, wantType: httperr.HttpInvalidRequestError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.wantStatus, resp.Code)
			if tc.wantType == "" {
				return
			}
			var out httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
			require.Equal(t, tc.wantType, out.ErrorType)
		})
	}
}

func TestToRecord(t *testing.T) {
	rec, err := toRecord("j1", &v1.Job{NetProfit: dec("12.50"), PaymentMethod: v1.PaymentCard})
	require.NoError(t, err)
	require.Equal(t, "j1", rec.ID)
	require.Equal(t, "12.5", rec.Data["net_profit"])
	require.Equal(t, "card", rec.Data["payment_method"])
}
