package models

// Region is one of the fixed markets the site serves
type Region string

const (
	RegionUK        Region = "UK"
	RegionIsleOfMan Region = "Isle of Man"
	RegionJersey    Region = "Jersey"
	RegionWorldwide Region = "Worldwide"
)

// DefaultRegion is used whenever a region cannot be determined
const DefaultRegion = RegionUK

// Regions lists the supported regions in picker order.
var Regions = []Region{RegionUK, RegionIsleOfMan, RegionJersey, RegionWorldwide}

// RegionPricing holds pre-formatted price labels for a region
type RegionPricing struct {
	Base       string
	WithVat    string
	WithoutVat string
}

// RegionCTA holds call-to-action copy for a region
type RegionCTA struct {
	Primary   string
	Secondary string
}

// RegionLegal holds the region's legal document URLs
type RegionLegal struct {
	TermsURL   string
	PrivacyURL string
}

// RegionContent is the immutable content record for a region.
// VatRate is a non-negative percentage.
type RegionContent struct {
	Region         Region
	Currency       string
	CurrencySymbol string
	VatRate        float64
	VatLabel       string
	PhoneFormat    string
	Timezone       string
	Pricing        RegionPricing
	CTA            RegionCTA
	Legal          RegionLegal
}

// IsVatApplicable reports whether VAT is charged in this region
func (rc RegionContent) IsVatApplicable() bool {
	return rc.VatRate > 0
}
