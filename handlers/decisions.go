package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// SetRegion stores the picked country and re-renders pricing, with the footer
// swapped out of band since its legal links depend on the region.
func (h *Handler) SetRegion(c echo.Context) error {
	region := middleware.SetCountryCookie(c, c.FormValue("country"))
	content := services.ResolveRegion(string(region))
	state := h.visitorState(c)

	if err := render(c, partials.Pricing(partials.NewPricingView(content, state.VatDecision()))); err != nil {
		return err
	}
	return render(c, partials.FooterOOB(h.footerView(state, content)))
}

// SetVatDecision records the answer to the VAT prompt. An empty decision
// clears it so the prompt is asked again.
func (h *Handler) SetVatDecision(c echo.Context) error {
	state := h.visitorState(c)
	state.SetVatDecision(models.ParseVatDecision(c.FormValue("decision")))

	content := h.regionContent(c)
	return render(c, partials.Pricing(partials.NewPricingView(content, state.VatDecision())))
}

// ReviewLegal opens the legal compliance sidebar
func (h *Handler) ReviewLegal(c echo.Context) error {
	state := h.visitorState(c)
	state.SetShowPrimarySidebar(true)
	return render(c, partials.LegalSidebar(h.sidebarView(state, h.regionContent(c))))
}

// AcceptLegal records acceptance of the terms and closes the sidebar
func (h *Handler) AcceptLegal(c echo.Context) error {
	state := h.visitorState(c)
	state.SetLegalComplianceAccepted(true)
	state.SetShowPrimarySidebar(false)
	return render(c, partials.LegalSidebar(h.sidebarView(state, h.regionContent(c))))
}

// CloseLegal hides the sidebar without changing the acceptance
func (h *Handler) CloseLegal(c echo.Context) error {
	state := h.visitorState(c)
	state.SetShowPrimarySidebar(false)
	return render(c, partials.LegalSidebar(h.sidebarView(state, h.regionContent(c))))
}
