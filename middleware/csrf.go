package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFHeader is the header HTMX requests carry the token in
const CSRFHeader = "X-CSRF-Token"

const csrfContextKey contextKey = "csrf"

// CSRF protects the form endpoints. The JSON contact API is exempt:
// it is called by non-browser clients and carries no cookies it depends on.
func CSRF(secure bool) echo.MiddlewareFunc {
	csrf := echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + CSRFHeader + ",form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteLaxMode,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/api/") || c.Path() == "/healthz"
		},
	})

	// Copy the token into the request context so templates can embed it
	expose := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), csrfContextKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return csrf(expose(next))
	}
}

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFToken returns the token stored in a request context
func CSRFToken(ctx context.Context) string {
	if val, ok := ctx.Value(csrfContextKey).(string); ok {
		return val
	}
	return ""
}
