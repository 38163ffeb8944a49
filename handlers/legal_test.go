package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalDocument(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("Renders document", func(t *testing.T) {
		rec, err := serve(h, h.LegalDocument("terms"), testRequest{method: http.MethodGet, path: "/terms"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Terms of Service")
		assert.Contains(t, body, `<h2 id="scope">Scope</h2>`)
		assert.Contains(t, body, "15 January 2025")
		assert.Contains(t, body, `href="https://example.com/terms"`)
		assert.Contains(t, body, `id="site-footer"`)
		assert.Contains(t, body, "/privacy-uk", "footer is shown on legal pages")
	})

	t.Run("Missing document", func(t *testing.T) {
		_, err := serve(h, h.LegalDocument("privacy"), testRequest{method: http.MethodGet, path: "/privacy"})
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("Unreadable document", func(t *testing.T) {
		_, err := serve(h, h.LegalDocument("broken"), testRequest{method: http.MethodGet, path: "/broken"})
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}
