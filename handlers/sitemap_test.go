package handlers

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	h, _ := newTestHandler(t)
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, h.Sitemap(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var set SitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))

	locs := make(map[string]SitemapURL)
	for _, u := range set.URLs {
		locs[u.Loc] = u
	}
	assert.Contains(t, locs, "https://example.com/")
	require.Contains(t, locs, "https://example.com/terms")
	assert.Equal(t, "2025-01-15", locs["https://example.com/terms"].LastMod)
	assert.Contains(t, locs, "https://example.com/terms-uk")
	assert.NotContains(t, locs, "https://example.com/privacy", "documents that fail to load are left out")
}

func TestRobots(t *testing.T) {
	h, _ := newTestHandler(t)
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	require.NoError(t, h.Robots(c))
	body := rec.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Sitemap: https://example.com/sitemap.xml")
}
