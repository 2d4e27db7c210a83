package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine
	Addr   string
	store  Store

	// Sessions, when set, is reported as the live dashboard session count.
	Sessions SessionCounter

	startedAt time.Time
	nowFn     func() time.Time
}

// Store is the part of the complaint store the health check needs.
type Store interface {
	Ping(ctx context.Context) error
	// Backend names the store implementation, e.g. "sqlite", "postgres" or "memory".
	Backend() string
}

// SessionCounter reports how many dashboard sessions are held in memory.
type SessionCounter interface {
	Len() int
}

// Health is the body of GET /health.
type Health struct {
	Status    string    `json:"status"`
	Store     string    `json:"store"`
	Backend   string    `json:"backend,omitempty"`
	Sessions  *int      `json:"sessions,omitempty"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
	Error     string    `json:"error,omitempty"`
}

func New(addr string, store Store, mode string) *Server {
	if mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	s := &Server{
		Engine: r,
		Addr:   addr,
		store:  store,
		nowFn:  time.Now,
	}
	s.startedAt = s.nowFn()

	r.GET("/health", s.healthHandler)

	return s
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	now := s.nowFn()
	health := Health{
		Status:    "healthy",
		Store:     "none",
		StartedAt: s.startedAt.UTC(),
		Uptime:    now.Sub(s.startedAt).Round(time.Second).String(),
	}
	if s.Sessions != nil {
		n := s.Sessions.Len()
		health.Sessions = &n
	}

	if s.store != nil {
		health.Backend = s.store.Backend()
		if err := s.store.Ping(ctx); err != nil {
			slog.Error("[Server] Health check failed: store unreachable", "backend", health.Backend, "error", err)
			health.Status = "unhealthy"
			health.Store = "unreachable"
			health.Error = "store unreachable"
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}
		health.Store = "connected"
	}

	c.JSON(http.StatusOK, health)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("[Server] Starting HTTP Server...", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("[Server] Stopping HTTP Server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] HTTP Server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
