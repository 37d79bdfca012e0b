// Package expenses serves business purchases and their receipts.
package expenses

import (
	"time"

	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.ExpenseStore
	maxBodySizeBytes int64
	now              func() time.Time
}

func NewService(store storage.ExpenseStore, maxBodySizeMB int) *Service {
	if store == nil {
		panic("expenses: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: int64(maxBodySizeMB) * 1024 * 1024,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/expenses/export", s.ExportHandler)
	r.POST("/v1/expenses", s.CreateHandler)
	r.GET("/v1/expenses", s.ListHandler)
	r.GET("/v1/expenses/:id", s.GetHandler)
	r.PUT("/v1/expenses/:id", s.UpdateHandler)
	r.DELETE("/v1/expenses/:id", s.DeleteHandler)
}
