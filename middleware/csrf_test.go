package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", "test-csrf-token")
		assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetCSRFToken(c))
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123)
		assert.Equal(t, "", GetCSRFToken(c))
	})
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(false))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, CSRFToken(c.Request().Context()))
	})
	e.POST("/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("TokenExposedToTemplates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
		assert.NotNil(t, findCookie(rec, "_csrf"))
	})

	t.Run("FormPostWithoutToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("fullName=Jane"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		e.ServeHTTP(rec, req)
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("FormPostWithToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		token := rec.Body.String()
		cookie := findCookie(rec, "_csrf")

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set(CSRFHeader, token)
		req.AddCookie(cookie)
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("APIExempt", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
