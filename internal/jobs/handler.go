package jobs

import (
	"log/slog"
	"net/http"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/core/jobid"
	"github.com/crystal-vistas/vistas-ops/internal/export"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const resource = "job"

// NextIDResponse previews the identifier the next created job would get.
// Two open forms can see the same value; the one returned by create is authoritative.
type NextIDResponse struct {
	JobID string `json:"job_id"`
}

// NextIDHandler handles GET /v1/jobs/next-id.
func (s *Service) NextIDHandler(c *gin.Context) {
	latest, err := s.store.LatestJobID(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	next, err := jobid.Next(latest)
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	c.JSON(http.StatusOK, NextIDResponse{JobID: next.String()})
}

// CreateHandler handles POST /v1/jobs. The job_id is allocated by the store.
func (s *Service) CreateHandler(c *gin.Context) {
	job, apiErr := s.parseJob(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	now := s.now()
	job.ID = uuid.NewString()
	job.JobID = ""
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.store.CreateJob(c.Request.Context(), job); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Jobs] Created job", "id", job.ID, "job_id", job.JobID, "date", job.Date)
	c.JSON(http.StatusCreated, job)
}

func (s *Service) ListHandler(c *gin.Context) {
	list, err := s.store.ListJobs(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": list})
}

func (s *Service) GetHandler(c *gin.Context) {
	job, err := s.store.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateHandler handles PUT /v1/jobs/:id. job_id and created_at are kept from the stored job.
func (s *Service) UpdateHandler(c *gin.Context) {
	job, apiErr := s.parseJob(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	job.ID = c.Param("id")
	job.UpdatedAt = s.now()

	if err := s.store.UpdateJob(c.Request.Context(), job); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Jobs] Updated job", "id", job.ID, "job_id", job.JobID)
	c.JSON(http.StatusOK, job)
}

func (s *Service) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.store.DeleteJob(c.Request.Context(), id); err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}

	slog.Info("[Jobs] Deleted job", "id", id)
	c.Status(http.StatusNoContent)
}

// ExportHandler handles GET /v1/jobs/export and returns every job as an XLSX sheet.
func (s *Service) ExportHandler(c *gin.Context) {
	list, err := s.store.ListJobs(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, resource))
		return
	}
	export.Serve(c, "jobs-"+s.now().Format("20060102")+".xlsx", jobSheet(list))
}

func jobSheet(list []*v1.Job) export.Sheet {
	sheet := export.Sheet{
		Name:    "Jobs",
		Headers: []string{"Job ID", "Date", "Net Profit", "Expenses", "Gross", "Mileage", "Payment Method", "Receipts"},
		Rows:    make([][]interface{}, 0, len(list)),
	}
	for _, j := range list {
		sheet.Rows = append(sheet.Rows, []interface{}{
			j.JobID,
			j.Date,
			j.NetProfit.StringFixed(2),
			j.Expenses.StringFixed(2),
			j.NetProfit.Sub(j.Expenses).StringFixed(2),
			j.Mileage.String(),
			j.PaymentMethod,
			len(j.Receipts),
		})
	}
	return sheet
}

func (s *Service) parseJob(c *gin.Context) (*v1.Job, *httperr.APIError) {
	var job v1.Job
	if apiErr := httperr.BindJSON(c, s.maxBodySizeBytes, &job); apiErr != nil {
		return nil, apiErr
	}
	if err := job.Validate(); err != nil {
		slog.Warn("[Jobs] Job validation failed", "error", err)
		return nil, httperr.Invalid(err.Error())
	}
	return &job, nil
}
