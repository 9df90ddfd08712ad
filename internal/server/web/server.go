// Package web is the presentation layer: route wiring, HTML rendering and
// cookie handling around the sessions service.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/authgate/internal/logging"
	"github.com/akarpov87/authgate/internal/server/config"
	"github.com/akarpov87/authgate/internal/server/sessions"
)

type Server struct {
	addr         string
	engine       *gin.Engine
	sessions     *sessions.Service
	logger       logging.Logger
	cookieSecure bool
}

func NewServer(cfg *config.Config, l logging.Logger, svc *sessions.Service) (*Server, error) {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(requestLogger(l), gin.Recovery())

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(staticFS()))

	s := &Server{
		addr:         cfg.Addr,
		engine:       engine,
		sessions:     svc,
		logger:       l.With("module", "web_server"),
		cookieSecure: cfg.CookieSecure,
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/login", s.handleLoginPage)
	s.engine.POST("/login", s.handleLogin)
	s.engine.GET("/logout", s.handleLogout)

	protected := s.engine.Group("")
	protected.Use(s.requireAuth())
	protected.GET("/home", s.handleHome)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
