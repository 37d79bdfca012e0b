package access

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// SignInHandler handles POST /v1/auth/sign-in. Every sign-in is recorded; only
// employees get through.
func (s *Service) SignInHandler(c *gin.Context) {
	uid, apiErr := s.uid(c)
	if apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	var req v1.SignInRequest
	if apiErr := httperr.BindJSON(c, s.maxBodySizeBytes, &req); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}

	ctx := c.Request.Context()
	now := s.now()
	attempt := &v1.SignInAttempt{
		UID:          uid,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		ProviderID:   req.ProviderID,
		FirstSeenAt:  now,
		LastSignInAt: now,
	}
	if err := s.store.RecordSignInAttempt(ctx, attempt); err != nil {
		httperr.Write(c, httperr.FromStore(err, "sign-in attempt"))
		return
	}

	emp, err := s.store.GetEmployee(ctx, uid)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Info("[Access] Sign-in pending approval", "uid", uid, "email", req.Email)
		httperr.Write(c, &httperr.APIError{
			StatusCode: http.StatusForbidden,
			ErrorType:  httperr.HttpPendingApprovalError,
			Message:    "Your sign-in is waiting for approval",
		})
		return
	}
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "employee"))
		return
	}

	slog.Info("[Access] Employee signed in", "uid", uid)
	c.JSON(http.StatusOK, v1.SignInResult{Status: v1.SignInApproved, Employee: emp})
}

func (s *Service) ListAttemptsHandler(c *gin.Context) {
	attempts, err := s.store.ListSignInAttempts(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "sign-in attempt"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

func (s *Service) ListEmployeesHandler(c *gin.Context) {
	employees, err := s.store.ListEmployees(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "employee"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// ToggleApprovalHandler handles POST /v1/sign-in-attempts/:uid/approval.
// An employee is disabled, anyone else is approved.
func (s *Service) ToggleApprovalHandler(c *gin.Context) {
	ctx := c.Request.Context()
	target := c.Param("uid")
	caller := EmployeeFrom(c)

	attempt, err := s.store.GetSignInAttempt(ctx, target)
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "sign-in attempt"))
		return
	}

	_, err = s.store.GetEmployee(ctx, target)
	switch {
	case err == nil:
		if caller != nil && caller.UID == target {
			httperr.Write(c, &httperr.APIError{
				StatusCode: http.StatusForbidden,
				ErrorType:  httperr.HttpSelfDisableForbidError,
				Message:    "You cannot disable your own access",
			})
			return
		}
		if err := s.store.DeleteEmployee(ctx, target); err != nil {
			httperr.Write(c, httperr.FromStore(err, "employee"))
			return
		}
		slog.Info("[Access] Disabled employee", "uid", target, "by", callerUID(caller))
		c.JSON(http.StatusOK, v1.ApprovalResult{UID: target, Approved: false})

	case errors.Is(err, storage.ErrNotFound):
		emp := &v1.Employee{
			UID:         target,
			Email:       attempt.Email,
			DisplayName: attempt.DisplayName,
			ApprovedAt:  s.now(),
			ApprovedBy:  callerUID(caller),
		}
		if err := s.store.PutEmployee(ctx, emp); err != nil {
			httperr.Write(c, httperr.FromStore(err, "employee"))
			return
		}
		slog.Info("[Access] Approved employee", "uid", target, "by", emp.ApprovedBy)
		c.JSON(http.StatusOK, v1.ApprovalResult{UID: target, Approved: true})

	default:
		httperr.Write(c, httperr.FromStore(err, "employee"))
	}
}

func callerUID(e *v1.Employee) string {
	if e == nil {
		return ""
	}
	return e.UID
}
