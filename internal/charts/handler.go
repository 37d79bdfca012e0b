package charts

import (
	"errors"
	"net/http"
	"strconv"

	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the chart routes. r is expected to be behind employee auth.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/charts", s.ListChartsHandler)
	r.GET("/v1/charts/:name", s.SeriesHandler)
	r.GET("/v1/dashboard", s.DashboardHandler)
}

func (s *Service) ListChartsHandler(c *gin.Context) {
	list, err := s.charts.List(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "chart"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"charts": list})
}

// SeriesHandler handles GET /v1/charts/:name?days=N
func (s *Service) SeriesHandler(c *gin.Context) {
	days, apiErr := parseDays(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	series, err := s.Series(c.Request.Context(), c.Param("name"), days)
	if err != nil {
		httperr.Write(c, queryError(err))
		return
	}
	c.JSON(http.StatusOK, series)
}

// DashboardHandler handles GET /v1/dashboard?days=N
func (s *Service) DashboardHandler(c *gin.Context) {
	days, apiErr := parseDays(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	dash, err := s.Dashboard(c.Request.Context(), days)
	if err != nil {
		httperr.Write(c, queryError(err))
		return
	}
	c.JSON(http.StatusOK, dash)
}

// parseDays returns 0 when days is absent, which selects the default window.
func parseDays(c *gin.Context) (int, *httperr.APIError) {
	raw := c.Query("days")
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, httperr.Invalid("days must be a positive integer")
	}
	return days, nil
}

func queryError(err error) *httperr.APIError {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		return httperr.Invalid(err.Error())
	case errors.Is(err, coreagg.ErrUnknownChart):
		return &httperr.APIError{
			StatusCode: http.StatusNotFound,
			ErrorType:  httperr.HttpUnknownChartError,
			Message:    err.Error(),
		}
	}
	return httperr.FromStore(err, "chart")
}
