package middleware

import (
	"consulting_site_go/config"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VisitorCookie identifies a browser session; it carries no personal data
const VisitorCookie = "visitor_id"

const visitorContextKey contextKey = "visitor_id"

// visitorCookieLifetime matches the idle TTL of the decision registry
const visitorCookieLifetime = 2 * time.Hour

// VisitorSession assigns every browser a random visitor id, reusing the cookie when valid.
// The id keys the visitor's in-memory decision state.
func VisitorSession(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookie); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.New().String()
			}

			// Refresh on every request so the cookie expires with the idle state
			c.SetCookie(newCookie(VisitorCookie, id, visitorCookieLifetime, cfg.IsProduction()))
			c.Set(string(visitorContextKey), id)

			return next(c)
		}
	}
}

// GetVisitorID returns the visitor id assigned by VisitorSession
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(string(visitorContextKey)).(string); ok {
		return id
	}
	return ""
}
