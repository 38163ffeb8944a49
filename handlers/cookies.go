package handlers

import (
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/templates/components"
	"consulting_site_go/templates/partials"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AcceptCookies records "Accept All"
func (h *Handler) AcceptCookies(c echo.Context) error {
	flow := h.consentFlow(c)
	if err := flow.AcceptAll(); err != nil {
		c.Logger().Errorf("Failed to save cookie preferences: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cookie preferences")
	}
	return h.renderConsent(c, flow, true)
}

// DeclineCookies records "Necessary Only"
func (h *Handler) DeclineCookies(c echo.Context) error {
	flow := h.consentFlow(c)
	if err := flow.DeclineAll(); err != nil {
		c.Logger().Errorf("Failed to save cookie preferences: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cookie preferences")
	}
	return h.renderConsent(c, flow, true)
}

// CookiePreferences opens the preferences dialog
func (h *Handler) CookiePreferences(c echo.Context) error {
	flow := h.consentFlow(c)
	flow.OpenPreferences()
	return h.renderConsent(c, flow, false)
}

// SaveCookiePreferences stores the categories ticked in the dialog
func (h *Handler) SaveCookiePreferences(c echo.Context) error {
	flow := h.consentFlow(c)
	flow.OpenPreferences()
	for _, cat := range models.CookieCategories {
		flow.Toggle(cat, formBool(c.FormValue(string(cat))))
	}
	if err := flow.SavePreferences(flow.Preferences()); err != nil {
		c.Logger().Errorf("Failed to save cookie preferences: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save cookie preferences")
	}
	return h.renderConsent(c, flow, true)
}

// CancelCookiePreferences closes the dialog without saving
func (h *Handler) CancelCookiePreferences(c echo.Context) error {
	flow := h.consentFlow(c)
	flow.Cancel()
	return h.renderConsent(c, flow, false)
}

// renderConsent renders the banner area. After a save the allowed
// third-party scripts are swapped in out of band.
func (h *Handler) renderConsent(c echo.Context, flow *services.ConsentFlow, saved bool) error {
	if saved {
		c.Response().Header().Set("HX-Trigger", "cookieConsentChanged")
	}
	if err := render(c, partials.CookieBanner(partials.NewCookieBannerView(flow))); err != nil {
		return err
	}
	if !saved {
		return nil
	}
	return render(c, components.ConsentScriptsOOB(h.scripts(flow.Preferences())))
}
