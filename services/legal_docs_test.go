package services

import (
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const termsDoc = `---
title: Terms of Service
summary: The rules for working with us.
region: Worldwide
updated_at: 2025-01-15
---

## Payment Terms

Invoices are due within **30 days**.

<script>alert("x")</script>
`

func testLegalFS() fstest.MapFS {
	return fstest.MapFS{
		"terms.md":      {Data: []byte(termsDoc)},
		"terms_es.md":   {Data: []byte("---\ntitle: Términos del Servicio\n---\n\nTexto.\n")},
		"privacy-uk.md": {Data: []byte("# Privacy\n\nNo front matter here.\n")},
		"broken.md":     {Data: []byte("---\ntitle: [unclosed\n---\nBody\n")},
	}
}

func TestLegalLibraryGet(t *testing.T) {
	lib := NewLegalLibrary(testLegalFS(), true)

	t.Run("Renders front matter and markdown", func(t *testing.T) {
		doc, err := lib.Get("terms", "en")
		require.NoError(t, err)
		assert.Equal(t, "terms", doc.Slug)
		assert.Equal(t, "en", doc.Lang)
		assert.Equal(t, "Terms of Service", doc.Title)
		assert.Equal(t, "The rules for working with us.", doc.Summary)
		assert.Equal(t, "Worldwide", doc.Region)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), doc.UpdatedAt)
		assert.Contains(t, doc.HTML, `id="payment-terms"`)
		assert.Contains(t, doc.HTML, "<strong>30 days</strong>")
		assert.NotContains(t, doc.HTML, "<script")
	})

	t.Run("Translated file", func(t *testing.T) {
		doc, err := lib.Get("terms", "es")
		require.NoError(t, err)
		assert.Equal(t, "es", doc.Lang)
		assert.Equal(t, "Términos del Servicio", doc.Title)
	})

	t.Run("Falls back to untranslated file", func(t *testing.T) {
		doc, err := lib.Get("privacy-uk", "es")
		require.NoError(t, err)
		assert.Equal(t, "en", doc.Lang)
		assert.Equal(t, "Privacy UK", doc.Title)
		assert.True(t, doc.UpdatedAt.IsZero())
	})

	t.Run("Unknown document", func(t *testing.T) {
		_, err := lib.Get("refunds", "en")
		assert.ErrorIs(t, err, ErrLegalDocNotFound)
	})

	t.Run("Rejects path-like slugs", func(t *testing.T) {
		for _, slug := range []string{"../terms", "Terms", "terms.md", ""} {
			_, err := lib.Get(slug, "en")
			assert.ErrorIs(t, err, ErrLegalDocNotFound, slug)
		}
	})

	t.Run("Invalid front matter", func(t *testing.T) {
		_, err := lib.Get("broken", "en")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrLegalDocNotFound)
	})
}

func TestLegalLibraryCache(t *testing.T) {
	fsys := testLegalFS()

	cached := NewLegalLibrary(fsys, true)
	uncached := NewLegalLibrary(fsys, false)

	_, err := cached.Get("terms", "en")
	require.NoError(t, err)

	fsys["terms.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Revised Terms\n---\nNew body.\n")}

	doc, err := cached.Get("terms", "en")
	require.NoError(t, err)
	assert.Equal(t, "Terms of Service", doc.Title)

	doc, err = uncached.Get("terms", "en")
	require.NoError(t, err)
	assert.Equal(t, "Revised Terms", doc.Title)
}

func TestBundledLegalDocuments(t *testing.T) {
	lib := NewLegalLibrary(os.DirFS("../content/legal"), false)

	for _, slug := range LegalSlugs {
		t.Run(slug, func(t *testing.T) {
			doc, err := lib.Get(slug, "en")
			require.NoError(t, err)
			assert.NotEmpty(t, doc.Title)
			assert.NotEmpty(t, doc.HTML)
		})
	}
}

func TestSplitFrontMatter(t *testing.T) {
	fm, body := splitFrontMatter("---\ntitle: A\n---\n\nBody")
	assert.Equal(t, "title: A", fm)
	assert.Equal(t, "Body", body)

	fm, body = splitFrontMatter("No front matter")
	assert.Empty(t, fm)
	assert.Equal(t, "No front matter", body)

	fm, body = splitFrontMatter("---\nnever closed")
	assert.Empty(t, fm)
	assert.Equal(t, "---\nnever closed", body)
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Privacy UK", titleFromSlug("privacy-uk"))
	assert.Equal(t, "Terms IOM", titleFromSlug("terms-iom"))
	assert.Equal(t, "Terms Jersey", titleFromSlug("terms-jersey"))
}
