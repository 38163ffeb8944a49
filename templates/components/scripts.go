package components

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"net/url"
)

// ThirdPartyScript is an external script that may only load with the visitor's consent
type ThirdPartyScript struct {
	Category models.CookieCategory
	Src      string
	// TrackingID is handed to site.js, which initializes the tracker once the script loads
	TrackingID string
}

// ConsentedScripts returns the configured scripts the visitor's preferences allow
func ConsentedScripts(cfg *config.Config, prefs models.CookiePreferences) []ThirdPartyScript {
	var scripts []ThirdPartyScript
	if cfg == nil {
		return scripts
	}
	if prefs.Allows(models.CookieAnalytics) && cfg.AnalyticsID != "" {
		scripts = append(scripts, ThirdPartyScript{
			Category:   models.CookieAnalytics,
			Src:        "https://www.googletagmanager.com/gtag/js?id=" + url.QueryEscape(cfg.AnalyticsID),
			TrackingID: cfg.AnalyticsID,
		})
	}
	if prefs.Allows(models.CookieMarketing) && cfg.MetaPixelID != "" {
		scripts = append(scripts, ThirdPartyScript{
			Category:   models.CookieMarketing,
			Src:        "https://connect.facebook.net/en_US/fbevents.js",
			TrackingID: cfg.MetaPixelID,
		})
	}
	return scripts
}
