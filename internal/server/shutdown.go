package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Shutdown stops the HTTP server, the modules and the event bus, then flushes
// pending spans. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}

	s.stopBackground()
	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
		}
	}
	if err := s.Bridge.Close(); err != nil {
		errs = append(errs, fmt.Errorf("event bus: %w", err))
	}
	s.Registry.Shutdown()
	s.stopTracing(ctx)

	if err := errors.Join(errs...); err != nil {
		slog.Error("Graceful shutdown incomplete", "error", err)
		return err
	}
	slog.Info("Server stopped")
	return nil
}
