package services

import (
	"consulting_site_go/models"
	"log"
	"strings"
)

// regionContent is the static content table, one record per supported region.
var regionContent = map[models.Region]models.RegionContent{
	models.RegionUK: {
		Region:         models.RegionUK,
		Currency:       "GBP",
		CurrencySymbol: "£",
		VatRate:        20,
		VatLabel:       "VAT",
		PhoneFormat:    "+44",
		Timezone:       "Europe/London",
		Pricing:        models.RegionPricing{Base: "£5,000", WithVat: "£6,000", WithoutVat: "£5,000"},
		CTA:            defaultCTA,
		Legal:          models.RegionLegal{TermsURL: "/terms-uk", PrivacyURL: "/privacy-uk"},
	},
	models.RegionIsleOfMan: {
		Region:         models.RegionIsleOfMan,
		Currency:       "GBP",
		CurrencySymbol: "£",
		VatRate:        0,
		VatLabel:       "No VAT",
		PhoneFormat:    "+44",
		Timezone:       "Europe/Isle_of_Man",
		Pricing:        models.RegionPricing{Base: "£5,000", WithVat: "£5,000", WithoutVat: "£5,000"},
		CTA:            defaultCTA,
		Legal:          models.RegionLegal{TermsURL: "/terms-iom", PrivacyURL: "/privacy-iom"},
	},
	models.RegionJersey: {
		Region:         models.RegionJersey,
		Currency:       "GBP",
		CurrencySymbol: "£",
		VatRate:        0,
		VatLabel:       "No VAT",
		PhoneFormat:    "+44",
		Timezone:       "Europe/Jersey",
		Pricing:        models.RegionPricing{Base: "£5,000", WithVat: "£5,000", WithoutVat: "£5,000"},
		CTA:            defaultCTA,
		Legal:          models.RegionLegal{TermsURL: "/terms-jersey", PrivacyURL: "/privacy-jersey"},
	},
	models.RegionWorldwide: {
		Region:         models.RegionWorldwide,
		Currency:       "USD",
		CurrencySymbol: "$",
		VatRate:        0,
		VatLabel:       "No VAT",
		PhoneFormat:    "+1",
		Timezone:       "UTC",
		Pricing:        models.RegionPricing{Base: "$6,500", WithVat: "$6,500", WithoutVat: "$6,500"},
		CTA:            defaultCTA,
		Legal:          models.RegionLegal{TermsURL: "/terms", PrivacyURL: "/privacy"},
	},
}

var defaultCTA = models.RegionCTA{
	Primary:   "Book Your Free Strategy Call",
	Secondary: "Get Started Today",
}

// countryToRegion maps country-picker labels to regions
var countryToRegion = map[string]models.Region{
	"United Kingdom": models.RegionUK,
	"Isle of Man":    models.RegionIsleOfMan,
	"Jersey":         models.RegionJersey,
	"Worldwide":      models.RegionWorldwide,
}

// CountryOption is an entry of the country picker
type CountryOption struct {
	Name   string
	Region models.Region
	Flag   string
}

// CountryOptions lists the picker entries in display order.
var CountryOptions = []CountryOption{
	{Name: "United Kingdom", Region: models.RegionUK, Flag: "🇬🇧"},
	{Name: "Isle of Man", Region: models.RegionIsleOfMan, Flag: "🇮🇲"},
	{Name: "Jersey", Region: models.RegionJersey, Flag: "🇯🇪"},
	{Name: "Worldwide", Region: models.RegionWorldwide, Flag: "🌍"},
}

// ResolveRegion returns the content record for a region code.
// Unknown codes fall back to the UK record; the picker only emits valid codes,
// so an unknown value is logged rather than treated as an error.
func ResolveRegion(code string) models.RegionContent {
	if content, ok := regionContent[models.Region(code)]; ok {
		return content
	}
	log.Printf("[WARNING] Unknown region code %q, falling back to %s", code, models.DefaultRegion)
	return regionContent[models.DefaultRegion]
}

// IsVatApplicable reports whether VAT applies in the given region
func IsVatApplicable(region models.Region) bool {
	content, ok := regionContent[region]
	return ok && content.IsVatApplicable()
}

// RegionFromCountry maps a country-picker label (or a region code) to a region.
// Unrecognised values default to the UK.
func RegionFromCountry(name string) models.Region {
	name = strings.TrimSpace(name)
	if region, ok := countryToRegion[name]; ok {
		return region
	}
	if _, ok := regionContent[models.Region(name)]; ok {
		return models.Region(name)
	}
	return models.DefaultRegion
}

// CountryForRegion returns the picker label for a region
func CountryForRegion(region models.Region) string {
	for _, opt := range CountryOptions {
		if opt.Region == region {
			return opt.Name
		}
	}
	return CountryOptions[0].Name
}

// PriceFor returns the price label to display given the visitor's VAT decision.
// The decision only matters where VAT applies; elsewhere the base price is shown.
func PriceFor(content models.RegionContent, decision models.VatDecision) string {
	if !content.IsVatApplicable() {
		return content.Pricing.Base
	}
	switch decision {
	case models.VatIncluded:
		return content.Pricing.WithVat
	case models.VatExcluded:
		return content.Pricing.WithoutVat
	default:
		return content.Pricing.Base
	}
}

// NeedsVatPrompt reports whether the VAT question should still be asked.
func NeedsVatPrompt(content models.RegionContent, decision models.VatDecision) bool {
	return content.IsVatApplicable() && decision == models.VatUnset
}
