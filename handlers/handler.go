package handlers

import (
	"consulting_site_go/config"
	"consulting_site_go/middleware"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/services/i18n"
	"consulting_site_go/templates/components"
	"consulting_site_go/templates/partials"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Handler serves the site. Its dependencies are injected so tests can
// build one with fakes; nothing here is package-global.
type Handler struct {
	cfg       *config.Config
	decisions *services.DecisionRegistry
	contact   *services.ContactService
	legal     *services.LegalLibrary
	turnstile *services.TurnstileVerifier
	now       func() time.Time
}

// New creates the handler set
func New(cfg *config.Config, decisions *services.DecisionRegistry, contact *services.ContactService, legal *services.LegalLibrary) *Handler {
	return &Handler{
		cfg:       cfg,
		decisions: decisions,
		contact:   contact,
		legal:     legal,
		turnstile: services.NewTurnstileVerifier(cfg.TurnstileSecretKey),
		now:       time.Now,
	}
}

// render writes a templ component to the response
func render(c echo.Context, component templ.Component) error {
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// visitorState returns the decision state of the current visitor, tracking it from now on
func (h *Handler) visitorState(c echo.Context) *services.DecisionState {
	return h.decisions.Get(middleware.GetVisitorID(c))
}

func (h *Handler) regionContent(c echo.Context) models.RegionContent {
	return services.ResolveRegion(string(middleware.GetRegion(c)))
}

func (h *Handler) consentFlow(c echo.Context) *services.ConsentFlow {
	store := services.NewPreferenceStore(services.NewCookieBackend(c, h.cfg.IsProduction()))
	return services.NewConsentFlow(store, nil)
}

func (h *Handler) headerView(c echo.Context) partials.HeaderView {
	return partials.HeaderView{
		Countries: services.CountryOptions,
		Current:   middleware.GetRegion(c),
		Lang:      middleware.GetLocale(c),
		Languages: i18n.Languages(),
	}
}

func (h *Handler) footerView(state *services.DecisionState, content models.RegionContent) partials.FooterView {
	return partials.FooterView{
		Visible: state.IsFormComplete(),
		Legal:   content.Legal,
		Year:    h.now().Year(),
		Social:  services.SocialLinks,
	}
}

func (h *Handler) sidebarView(state *services.DecisionState, content models.RegionContent) partials.SidebarView {
	return partials.SidebarView{
		Open:     state.ShowPrimarySidebar(),
		Accepted: state.LegalComplianceAccepted(),
		Legal:    content.Legal,
	}
}

func (h *Handler) seo(c echo.Context, title, description, path string) *models.SEO {
	lang := middleware.GetLocale(c)
	var alternates []string
	for _, l := range i18n.Languages() {
		if l != lang {
			alternates = append(alternates, l)
		}
	}
	return models.DefaultSEO(title, description).
		WithCanonical(h.cfg.AppURL+path).
		WithLocale(lang, alternates...)
}

func (h *Handler) scripts(prefs models.CookiePreferences) []components.ThirdPartyScript {
	return components.ConsentedScripts(h.cfg, prefs)
}
