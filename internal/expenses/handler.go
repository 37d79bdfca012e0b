package expenses

import (
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/export"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const resource = "expense"

func (s *Service) CreateHandler(c *gin.Context) {
	e, apiErr := s.parseExpense(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	now := s.now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.store.CreateExpense(c.Request.Context(), e); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Expenses] Created expense", "id", e.ID, "date", e.Date, "total", e.TotalPrice.String())
	c.JSON(http.StatusCreated, e)
}

func (s *Service) ListHandler(c *gin.Context) {
	list, err := s.store.ListExpenses(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": list})
}

func (s *Service) GetHandler(c *gin.Context) {
	e, err := s.store.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Service) UpdateHandler(c *gin.Context) {
	e, apiErr := s.parseExpense(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	e.ID = c.Param("id")
	e.UpdatedAt = s.now()

	if err := s.store.UpdateExpense(c.Request.Context(), e); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Expenses] Updated expense", "id", e.ID)
	c.JSON(http.StatusOK, e)
}

func (s *Service) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.DeleteExpense(c.Request.Context(), id); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Expenses] Deleted expense", "id", id)
	c.Status(http.StatusNoContent)
}

// ExportHandler handles GET /v1/expenses/export.
func (s *Service) ExportHandler(c *gin.Context) {
	list, err := s.store.ListExpenses(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	export.Serve(c, "expenses-"+s.now().Format("20060102")+".xlsx", expenseSheet(list))
}

func expenseSheet(list []*v1.Expense) export.Sheet {
	sheet := export.Sheet{
		Name:    "Expenses",
		Headers: []string{"Date", "Time", "Business", "Receipt Number", "Items", "Total", "Receipts"},
		Rows:    make([][]interface{}, 0, len(list)),
	}
	for _, e := range list {
		names := make([]string, 0, len(e.Items))
		for _, it := range e.Items {
			names = append(names, it.Name)
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			e.Date,
			e.Time,
			e.BusinessName,
			e.ReceiptNumber,
			strings.Join(names, ", "),
			e.TotalPrice.StringFixed(2),
			len(e.Receipts),
		})
	}
	return sheet
}

// parseExpense binds, normalizes and validates the body. Normalizing first means
// a client total is replaced by the item sum before it is checked.
func (s *Service) parseExpense(c *gin.Context) (*v1.Expense, *httperr.APIError) {
	var e v1.Expense
	if apiErr := httperr.BindJSON(c, s.maxBodySizeBytes, &e); apiErr != nil {
		return nil, apiErr
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		slog.Warn("[Expenses] Expense validation failed", "error", err)
		return nil, httperr.Invalid(err.Error())
	}
	return &e, nil
}
