// Package jobs serves work orders: identifier preview, CRUD and spreadsheet export.
package jobs

import (
	"time"

	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.JobStore
	maxBodySizeBytes int64
	now              func() time.Time
}

func NewService(store storage.JobStore, maxBodySizeMB int) *Service {
	if store == nil {
		panic("jobs: store must not be nil")
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

// RegisterRoutes registers the job routes. r is expected to be behind employee auth.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/jobs/next-id", s.NextIDHandler)
	r.GET("/v1/jobs/export", s.ExportHandler)
	r.POST("/v1/jobs", s.CreateHandler)
	r.GET("/v1/jobs", s.ListHandler)
	r.GET("/v1/jobs/:id", s.GetHandler)
	r.PUT("/v1/jobs/:id", s.UpdateHandler)
	r.DELETE("/v1/jobs/:id", s.DeleteHandler)
}
