package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

type Server struct {
	Engine *gin.Engine
	Addr   string
	health HealthChecker
	cors   cors.Options
}

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Options configure the HTTP surface.
type Options struct {
	Mode string // debug | release

	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	// Empty disables cross-origin access.
	CORSAllowedOrigins []string

	// ExtraAllowedHeaders are request headers the browser may send besides the defaults.
	ExtraAllowedHeaders []string
}

func New(addr string, health HealthChecker, opts Options) *Server {
	// Set Gin mode based on configuration
	if opts.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	s := &Server{
		Engine: r,
		Addr:   addr,
		health: health,
		cors: cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: append([]string{"Accept", "Authorization", "Content-Type"}, opts.ExtraAllowedHeaders...),
			ExposedHeaders: []string{"Content-Disposition"},
			MaxAge:         300,
		},
	}

	// Health check endpoint with store connectivity verification
	r.GET("/health", s.healthHandler)

	return s
}

// Handler is the engine wrapped with CORS handling. Without allowed origins
// the engine is served as-is: cors treats an empty list as "allow all".
func (s *Server) Handler() http.Handler {
	if len(s.cors.AllowedOrigins) == 0 {
		return s.Engine
	}
	return cors.Handler(s.cors)(s.Engine)
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			slog.Error("[Server] Health check failed: store unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "store unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  "connected",
	})
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Server] Starting HTTP server", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
