// Package access decides who may use the employee dashboard.
//
// Identity is asserted by the upstream proxy in a request header. A uid is an
// employee once another employee approves its sign-in attempt.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// DefaultUIDHeader carries the authenticated uid when none is configured.
const DefaultUIDHeader = "X-Authenticated-Uid"

const bootstrapApprover = "bootstrap"

type Service struct {
	store            storage.AccessStore
	uidHeader        string
	maxBodySizeBytes int64
	now              func() time.Time
}

func NewService(store storage.AccessStore, uidHeader string, maxBodySizeMB int) *Service {
	if store == nil {
		panic("access: store must not be nil")
	}
	if uidHeader == "" {
		uidHeader = DefaultUIDHeader
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		store:            store,
		uidHeader:        uidHeader,
		maxBodySizeBytes: int64(maxBodySizeMB) * 1024 * 1024,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Bootstrap makes sure every uid in uids is an employee, so a fresh
// deployment has someone who can approve the rest.
func (s *Service) Bootstrap(ctx context.Context, uids []string) error {
	for _, uid := range uids {
		if uid == "" {
			continue
		}
		_, err := s.store.GetEmployee(ctx, uid)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("bootstrap employee %q: %w", uid, err)
		}

		e := &v1.Employee{UID: uid, ApprovedAt: s.now(), ApprovedBy: bootstrapApprover}
		if err := s.store.PutEmployee(ctx, e); err != nil {
			return fmt.Errorf("bootstrap employee %q: %w", uid, err)
		}
		slog.Info("[Access] Bootstrapped employee", "uid", uid)
	}
	return nil
}

// RegisterPublicRoutes registers the sign-in endpoint.
func (s *Service) RegisterPublicRoutes(r gin.IRouter) {
	r.POST("/v1/auth/sign-in", s.SignInHandler)
}

// RegisterRoutes registers approval management. r must be behind RequireEmployee.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/sign-in-attempts", s.ListAttemptsHandler)
	r.POST("/v1/sign-in-attempts/:uid/approval", s.ToggleApprovalHandler)
	r.GET("/v1/employees", s.ListEmployeesHandler)
}
