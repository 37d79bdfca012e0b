package expenses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage/memory"
	storagemocks "github.com/crystal-vistas/vistas-ops/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(store storage.ExpenseStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(store, 1)
	svc.now = func() time.Time { return fixedNow }
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateHandler_RecomputesTotal(t *testing.T) {
	mockStore := storagemocks.NewExpenseStore(t)
	mockStore.EXPECT().
		CreateExpense(mock.Anything, mock.MatchedBy(func(e *v1.Expense) bool {
			return e.ID != "" && e.TotalPrice.Equal(decimal.RequireFromString("17.75"))
		})).
		Return(nil).
		Once()

	body := `{"date":"2024-04-30","time":"09:15","business_name":"Supply Depot","total_price":"999",
		"items":[{"name":"squeegee","price":"12.50"},{"name":"soap","price":"5.25"}]}`
	resp := do(newTestRouter(mockStore), http.MethodPost, "/v1/expenses", body)

	require.Equal(t, http.StatusCreated, resp.Code)
	var got v1.Expense
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Equal(t, "17.75", got.TotalPrice.String())
}

func TestCreateHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing business", body: `{"date":"2024-04-30"}`},
		{name: "bad time", body: `{"date":"2024-04-30","time":"9am","business_name":"X"}`},
		{name: "too many receipts", body: `{"date":"2024-04-30","business_name":"X","receipts":["a","b","c","d","e"]}`},
		{name: "negative item", body: `{"date":"2024-04-30","business_name":"X","items":[{"name":"a","price":"-1"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(newTestRouter(storagemocks.NewExpenseStore(t)), http.MethodPost, "/v1/expenses", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.Code)

			var out httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
			require.Equal(t, httperr.HttpInvalidRequestError, out.ErrorType)
		})
	}
}

func TestHandlers_StoreErrors(t *testing.T) {
	mockStore := storagemocks.NewExpenseStore(t)
	mockStore.EXPECT().ListExpenses(mock.Anything).Return(nil, fmt.Errorf("%w: refused", storage.ErrUnavailable)).Once()
	mockStore.EXPECT().GetExpense(mock.Anything, "missing").Return(nil, storage.ErrNotFound).Once()

	r := newTestRouter(mockStore)
	require.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/v1/expenses", "").Code)
	require.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/expenses/missing", "").Code)
}

func TestLifecycle_MemoryStore(t *testing.T) {
	r := newTestRouter(memory.NewStore())

	resp := do(r, http.MethodPost, "/v1/expenses", `{"date":"2024-04-01","time":"08:00","business_name":"Gas","total_price":"40"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created v1.Expense
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = do(r, http.MethodPost, "/v1/expenses", `{"date":"2024-04-02","business_name":"Hardware","total_price":"12"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = do(r, http.MethodPut, "/v1/expenses/"+created.ID, `{"date":"2024-04-01","time":"08:00","business_name":"Gas Station","total_price":"41"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(r, http.MethodGet, "/v1/expenses", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Expenses []v1.Expense `json:"expenses"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Expenses, 2)
	require.Equal(t, "Hardware", list.Expenses[0].BusinessName)
	require.Equal(t, "Gas Station", list.Expenses[1].BusinessName)

	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/v1/expenses/"+created.ID, "").Code)
	require.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/expenses/"+created.ID, "").Code)

	resp = do(r, http.MethodGet, "/v1/expenses/export", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Header().Get("Content-Disposition"), "expenses-20240501.xlsx")
}

func TestExpenseSheet(t *testing.T) {
	sheet := expenseSheet([]*v1.Expense{{
		Date: "2024-04-01", Time: "08:00", BusinessName: "Depot", ReceiptNumber: "R-1",
		TotalPrice: decimal.RequireFromString("9.5"),
		Items:      []v1.ExpenseItem{{Name: "rag"}, {Name: "pole"}},
	}})
	require.Equal(t, []interface{}{"2024-04-01", "08:00", "Depot", "R-1", "rag, pole", "9.50", 0}, sheet.Rows[0])
}
