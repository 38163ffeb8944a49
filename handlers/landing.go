package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/services"
	"consulting_site_go/services/i18n"
	"consulting_site_go/templates/pages"
	"consulting_site_go/templates/partials"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Landing renders the full landing page. A full page load starts the visitor's
// decisions over; HTMX interactions then mutate them.
func (h *Handler) Landing(c echo.Context) error {
	ctx := c.Request().Context()
	state := h.decisions.Reset(middleware.GetVisitorID(c))
	content := h.regionContent(c)
	consent := h.consentFlow(c)

	view := pages.LandingView{
		SEO:          h.seo(c, i18n.T(ctx, "meta.title"), i18n.T(ctx, "meta.description"), "/"),
		Scripts:      h.scripts(consent.Preferences()),
		Content:      content,
		Header:       h.headerView(c),
		Pricing:      partials.NewPricingView(content, state.VatDecision()),
		Contact:      h.contactFormView(c, services.ContactForm{}),
		Sidebar:      h.sidebarView(state, content),
		Footer:       h.footerView(state, content),
		Cookies:      partials.NewCookieBannerView(consent),
		Services:     services.ServiceOfferings,
		Process:      services.ProcessSteps,
		CaseStudies:  services.CaseStudies,
		Testimonials: services.Testimonials,
	}
	return render(c, pages.Landing(view))
}

// Healthz reports liveness
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
