package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSEOBuilders(t *testing.T) {
	seo := DefaultSEO("Terms", "Terms of service").
		WithCanonical("https://example.com/terms").
		WithLocale("es", "en")

	assert.Equal(t, "Terms", seo.Title)
	assert.Equal(t, "website", seo.OGType)
	assert.Equal(t, "https://example.com/terms", seo.Canonical)
	assert.Equal(t, "es", seo.Locale)
	assert.Equal(t, []string{"en"}, seo.AltLocales)
	assert.Equal(t, "index, follow", seo.Robots())

	assert.Equal(t, "noindex, nofollow", seo.WithNoIndex().Robots())
}
