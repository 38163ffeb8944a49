package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/services"
	"consulting_site_go/templates/pages"
	"consulting_site_go/templates/partials"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// LegalDocument renders the markdown document for slug in the visitor's language
func (h *Handler) LegalDocument(slug string) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := h.legal.Get(slug, middleware.GetLocale(c))
		if errors.Is(err, services.ErrLegalDocNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		if err != nil {
			c.Logger().Errorf("Failed to load legal document %s: %v", slug, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load document")
		}

		state := h.decisions.Peek(middleware.GetVisitorID(c))
		content := h.regionContent(c)
		consent := h.consentFlow(c)

		footer := h.footerView(state, content)
		footer.Visible = true

		view := pages.LegalView{
			SEO:     h.seo(c, doc.Title, doc.Summary, "/"+slug),
			Scripts: h.scripts(consent.Preferences()),
			Header:  h.headerView(c),
			Footer:  footer,
			Cookies: partials.NewCookieBannerView(consent),
			Doc:     doc,
		}
		return render(c, pages.Legal(view))
	}
}
