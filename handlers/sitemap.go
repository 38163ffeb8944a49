package handlers

import (
	"consulting_site_go/services"
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap lists the landing page and every legal document that can be loaded
func (h *Handler) Sitemap(c echo.Context) error {
	baseURL := strings.TrimSuffix(h.cfg.AppURL, "/")

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}

	for _, slug := range services.LegalSlugs {
		doc, err := h.legal.Get(slug, "en")
		if err != nil {
			// Missing documents are not linked
			continue
		}
		entry := SitemapURL{Loc: baseURL + "/" + slug, ChangeFreq: "yearly", Priority: 0.5}
		if !doc.UpdatedAt.IsZero() {
			entry.LastMod = doc.UpdatedAt.Format(time.DateOnly)
		}
		urls = append(urls, entry)
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots points crawlers at the sitemap and keeps them off the HTMX endpoints
func (h *Handler) Robots(c echo.Context) error {
	baseURL := strings.TrimSuffix(h.cfg.AppURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, path := range []string{"/api/", "/contact", "/cookies/", "/decisions/", "/region"} {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\nSitemap: " + baseURL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}
