// Package server exposes chart planning and rendering over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mazilong/tui.chart/internal/config"
	"github.com/mazilong/tui.chart/internal/logger"
	"github.com/mazilong/tui.chart/internal/reports"
	"github.com/mazilong/tui.chart/internal/storage"
)

// maxDefinitionSize bounds request bodies
const maxDefinitionSize = "4M"

// Server represents the HTTP application server
type Server struct {
	Config       *config.Config
	Generator    *reports.Generator
	Orchestrator *reports.StorageOrchestrator
	Version      string

	echo *echo.Echo
	log  *logger.Logger
}

// NewServer creates a server. store may be nil, which disables saving.
func NewServer(cfg *config.Config, store storage.Store, version string) *Server {
	s := &Server{
		Config:    cfg,
		Generator: reports.NewGenerator(cfg.DefaultTickCount, cfg.ChartWidth, cfg.ChartHeight),
		Version:   version,
		log:       logger.WithComponent("server"),
	}
	if store != nil {
		s.Orchestrator = reports.NewStorageOrchestrator(store)
	}
	s.echo = s.setupRoutes()
	return s
}

// Handler returns the configured echo instance
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) setupRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxDefinitionSize))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("Request handled", map[string]interface{}{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latencyMs": v.Latency.Milliseconds(),
			})
			return nil
		},
	}))

	e.GET("/health", s.HandleHealth)

	api := e.Group("/api")
	api.POST("/plan", s.HandlePlan)
	api.POST("/render", s.HandleRender)
	api.GET("/charts", s.HandleListCharts)
	api.GET("/charts/*", s.HandleChartFile)

	return e
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", map[string]interface{}{"addr": addr, "version": s.Version})
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("Shutting down server")
	return s.echo.Shutdown(shutdownCtx)
}
