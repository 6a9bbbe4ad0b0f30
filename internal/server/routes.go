package server

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/web"
)

// RegisterRoutes sets up all the application routes and boots the feature
// modules. It must be called once before Start.
func (s *Server) RegisterRoutes() error {
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(s.Client, 0)

	s.E.GET("/healthz", healthHandler.Get)
	if s.Cfg.GetMetricsEnabled() {
		s.E.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
	}
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	s.E.GET("/", homeHandler.HomeGet)

	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("server: registering module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(s.bootCtx, s.E.Group(m.Path()), s.Registry); err != nil {
			return fmt.Errorf("server: booting module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name(), "path", m.Path())
	}
	return nil
}
