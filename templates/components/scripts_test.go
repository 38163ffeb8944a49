package components

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsentedScripts(t *testing.T) {
	cfg := &config.Config{AnalyticsID: "G-TEST 1", MetaPixelID: "12345"}

	t.Run("Necessary only loads nothing", func(t *testing.T) {
		assert.Empty(t, ConsentedScripts(cfg, models.OnlyNecessaryCookies()))
	})

	t.Run("Everything accepted", func(t *testing.T) {
		scripts := ConsentedScripts(cfg, models.AllCookiesAccepted())
		require.Len(t, scripts, 2)

		assert.Equal(t, models.CookieAnalytics, scripts[0].Category)
		assert.Equal(t, "https://www.googletagmanager.com/gtag/js?id=G-TEST+1", scripts[0].Src)
		assert.Equal(t, "G-TEST 1", scripts[0].TrackingID)

		assert.Equal(t, models.CookieMarketing, scripts[1].Category)
		assert.Equal(t, "12345", scripts[1].TrackingID)
	})

	t.Run("Only marketing", func(t *testing.T) {
		scripts := ConsentedScripts(cfg, models.CookiePreferences{Necessary: true, Marketing: true})
		require.Len(t, scripts, 1)
		assert.Equal(t, models.CookieMarketing, scripts[0].Category)
	})

	t.Run("Unconfigured trackers are skipped", func(t *testing.T) {
		assert.Empty(t, ConsentedScripts(&config.Config{}, models.AllCookiesAccepted()))
		assert.Empty(t, ConsentedScripts(nil, models.AllCookiesAccepted()))
	})
}
