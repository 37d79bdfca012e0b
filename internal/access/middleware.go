package access

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const employeeKey = "access.employee"

// RequireEmployee rejects requests whose uid header does not name an approved employee.
func (s *Service) RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, apiErr := s.uid(c)
		if apiErr != nil {
			httperr.Abort(c, apiErr)
			return
		}

		emp, err := s.store.GetEmployee(c.Request.Context(), uid)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Warn("[Access] Rejected non-employee", "uid", uid, "path", c.FullPath())
			httperr.Abort(c, &httperr.APIError{
				StatusCode: http.StatusForbidden,
				ErrorType:  httperr.HttpForbiddenError,
				Message:    "Employee access required",
			})
			return
		}
		if err != nil {
			httperr.Abort(c, httperr.FromStore(err, "employee"))
			return
		}

		c.Set(employeeKey, emp)
		c.Next()
	}
}

// EmployeeFrom returns the employee RequireEmployee attached to c, or nil.
func EmployeeFrom(c *gin.Context) *v1.Employee {
	v, ok := c.Get(employeeKey)
	if !ok {
		return nil
	}
	emp, _ := v.(*v1.Employee)
	return emp
}

func (s *Service) uid(c *gin.Context) (string, *httperr.APIError) {
	uid := strings.TrimSpace(c.GetHeader(s.uidHeader))
	if uid == "" {
		return "", &httperr.APIError{
			StatusCode: http.StatusUnauthorized,
			ErrorType:  httperr.HttpUnauthorizedError,
			Message:    "Missing authenticated user",
		}
	}
	return uid, nil
}
