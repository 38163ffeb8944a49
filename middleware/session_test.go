package middleware

import (
	"consulting_site_go/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestVisitorSession(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{Environment: "development"}

	run := func(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler := VisitorSession(cfg)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
		return c, rec
	}

	t.Run("AssignsNewID", func(t *testing.T) {
		c, rec := run(httptest.NewRequest(http.MethodGet, "/", nil))

		id := GetVisitorID(c)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)

		cookie := findCookie(rec, VisitorCookie)
		if assert.NotNil(t, cookie) {
			assert.Equal(t, id, cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
	})

	t.Run("ReusesValidCookie", func(t *testing.T) {
		existing := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: existing})

		c, _ := run(req)
		assert.Equal(t, existing, GetVisitorID(c))
	})

	t.Run("ReplacesInvalidCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "not-a-uuid"})

		c, _ := run(req)
		assert.NotEqual(t, "not-a-uuid", GetVisitorID(c))
		assert.NotEmpty(t, GetVisitorID(c))
	})
}
