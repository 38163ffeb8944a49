package pages

import (
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/templates/components"
	"consulting_site_go/templates/partials"
	"fmt"
	"strings"
	"time"
)

// LandingView holds everything the landing page renders
type LandingView struct {
	SEO          *models.SEO
	Scripts      []components.ThirdPartyScript
	Content      models.RegionContent
	Header       partials.HeaderView
	Pricing      partials.PricingView
	Contact      partials.ContactFormView
	Sidebar      partials.SidebarView
	Footer       partials.FooterView
	Cookies      partials.CookieBannerView
	Services     []services.ServiceOffering
	Process      []services.ProcessStep
	CaseStudies  []services.CaseStudy
	Testimonials []services.Testimonial
}

// LegalView is a rendered legal document page
type LegalView struct {
	SEO     *models.SEO
	Scripts []components.ThirdPartyScript
	Header  partials.HeaderView
	Footer  partials.FooterView
	Cookies partials.CookieBannerView
	Doc     services.LegalDoc
}

// stars renders a rating as filled stars
func stars(n int) string {
	return strings.Repeat("★", n)
}

func stepNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

// formatDate renders a document date, or "" when unknown
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}
