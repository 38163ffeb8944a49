package services

import (
	"consulting_site_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegion(t *testing.T) {
	t.Run("Known regions", func(t *testing.T) {
		for _, region := range models.Regions {
			content := ResolveRegion(string(region))
			assert.Equal(t, region, content.Region)
			assert.NotEmpty(t, content.Pricing.Base)
			assert.NotEmpty(t, content.Legal.TermsURL)
		}
	})

	t.Run("UK charges VAT", func(t *testing.T) {
		content := ResolveRegion("UK")
		assert.Equal(t, 20.0, content.VatRate)
		assert.Equal(t, "£", content.CurrencySymbol)
		assert.Equal(t, "/terms-uk", content.Legal.TermsURL)
	})

	t.Run("Unknown code falls back to UK", func(t *testing.T) {
		content := ResolveRegion("Mars")
		assert.Equal(t, models.RegionUK, content.Region)
	})
}

func TestIsVatApplicable(t *testing.T) {
	assert.True(t, IsVatApplicable(models.RegionUK))
	assert.False(t, IsVatApplicable(models.RegionIsleOfMan))
	assert.False(t, IsVatApplicable(models.RegionJersey))
	assert.False(t, IsVatApplicable(models.RegionWorldwide))
	assert.False(t, IsVatApplicable(models.Region("Atlantis")))
}

func TestRegionFromCountry(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Region
	}{
		{"United Kingdom", models.RegionUK},
		{"Isle of Man", models.RegionIsleOfMan},
		{"  Jersey ", models.RegionJersey},
		{"Worldwide", models.RegionWorldwide},
		{"UK", models.RegionUK},
		{"France", models.RegionUK},
		{"", models.RegionUK},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RegionFromCountry(tt.input))
		})
	}
}

func TestCountryForRegion(t *testing.T) {
	assert.Equal(t, "Jersey", CountryForRegion(models.RegionJersey))
	assert.Equal(t, "United Kingdom", CountryForRegion(models.RegionUK))
	assert.Equal(t, "United Kingdom", CountryForRegion(models.Region("nowhere")))
}

func TestPriceFor(t *testing.T) {
	uk := ResolveRegion(string(models.RegionUK))
	worldwide := ResolveRegion(string(models.RegionWorldwide))

	assert.Equal(t, "£6,000", PriceFor(uk, models.VatIncluded))
	assert.Equal(t, "£5,000", PriceFor(uk, models.VatExcluded))
	assert.Equal(t, "£5,000", PriceFor(uk, models.VatUnset))

	// The decision is ignored where VAT does not apply
	assert.Equal(t, "$6,500", PriceFor(worldwide, models.VatIncluded))
	assert.Equal(t, "$6,500", PriceFor(worldwide, models.VatExcluded))
}

func TestNeedsVatPrompt(t *testing.T) {
	uk := ResolveRegion(string(models.RegionUK))
	iom := ResolveRegion(string(models.RegionIsleOfMan))

	assert.True(t, NeedsVatPrompt(uk, models.VatUnset))
	assert.False(t, NeedsVatPrompt(uk, models.VatIncluded))
	assert.False(t, NeedsVatPrompt(uk, models.VatExcluded))
	assert.False(t, NeedsVatPrompt(iom, models.VatUnset))
}
