package partials

import (
	"consulting_site_go/models"
	"consulting_site_go/services"
)

// PricingView is the region and VAT aware pricing section
type PricingView struct {
	Content     models.RegionContent
	Decision    models.VatDecision
	Price       string
	NeedsPrompt bool
	Tiers       []services.PricingTier
}

// NewPricingView derives the displayed price and prompt state from the region and decision
func NewPricingView(content models.RegionContent, decision models.VatDecision) PricingView {
	return PricingView{
		Content:     content,
		Decision:    decision,
		Price:       services.PriceFor(content, decision),
		NeedsPrompt: services.NeedsVatPrompt(content, decision),
		Tiers:       services.PricingTiers,
	}
}

// HeaderView is the navigation bar with the country picker
type HeaderView struct {
	Countries []services.CountryOption
	Current   models.Region
	Lang      string
	Languages []string
}

// SidebarView is the legal compliance side panel
type SidebarView struct {
	Open     bool
	Accepted bool
	Legal    models.RegionLegal
}

// ContactFormView is the contact form with its current values and errors
type ContactFormView struct {
	Form   services.ContactForm
	Errors services.ValidationErrors
	// Notice is the i18n key of a form-level error, if any
	Notice      string
	Success     bool
	ResetAfter  int // seconds
	PhonePrefix string
	// TurnstileSiteKey enables the bot check widget when set
	TurnstileSiteKey string
}

// FooterView is the footer, shown once the contact form is complete
type FooterView struct {
	Visible bool
	Legal   models.RegionLegal
	Year    int
	Social  []services.SocialLink
}

// CookieBannerView is the consent banner and preferences dialog
type CookieBannerView struct {
	ShowBanner  bool
	Editing     bool
	Preferences models.CookiePreferences
}

// NewCookieBannerView reads the visitor's consent flow
func NewCookieBannerView(flow *services.ConsentFlow) CookieBannerView {
	return CookieBannerView{
		ShowBanner:  flow.ShowBanner(),
		Editing:     flow.State() == services.ConsentEditing,
		Preferences: flow.Preferences(),
	}
}
