package view

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/middleware"
)

const (
	visitorSessionName = "resumio-visitor"
	visitorSessionKey  = "id"
	visitorContextKey  = "visitor_id"
)

// Visitor assigns every browser a stable anonymous id kept in a signed cookie.
// Page state is keyed by this id. It must run after the session middleware.
func Visitor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(visitorSessionName, c)
			if sess == nil {
				return fmt.Errorf("view: visitor session unavailable: %w", err)
			}
			if err != nil {
				// A tampered or stale cookie yields a fresh session.
				slog.Debug("Visitor session could not be decoded", "error", err)
			}
			id, _ := sess.Values[visitorSessionKey].(string)
			if id == "" {
				id = uuid.NewString()
				sess.Values[visitorSessionKey] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					slog.Warn("Failed to save visitor session", "error", err)
				}
			}
			c.Set(visitorContextKey, id)
			middleware.Enrich(c, "visitor", id)
			return next(c)
		}
	}
}

// VisitorID returns the id assigned by Visitor, or "" outside it.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(visitorContextKey).(string)
	return id
}
