package models

import "time"

// CookieCategory identifies one of the consent categories offered in the cookie banner
type CookieCategory string

const (
	CookieNecessary  CookieCategory = "necessary"
	CookieAnalytics  CookieCategory = "analytics"
	CookieMarketing  CookieCategory = "marketing"
	CookieFunctional CookieCategory = "functional"
)

// CookieCategories lists the categories in banner display order.
var CookieCategories = []CookieCategory{CookieNecessary, CookieAnalytics, CookieMarketing, CookieFunctional}

// CookiePreferences holds a visitor's cookie-category choices.
// Necessary is always true; it cannot be disabled.
type CookiePreferences struct {
	Necessary  bool `json:"necessary"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
	Functional bool `json:"functional"`
}

// DefaultCookiePreferences returns the first-visit preferences
func DefaultCookiePreferences() CookiePreferences {
	return CookiePreferences{Necessary: true}
}

// AllCookiesAccepted returns the "Accept All" preference set
func AllCookiesAccepted() CookiePreferences {
	return CookiePreferences{Necessary: true, Analytics: true, Marketing: true, Functional: true}
}

// OnlyNecessaryCookies returns the "Decline All" preference set
func OnlyNecessaryCookies() CookiePreferences {
	return DefaultCookiePreferences()
}

// Allows reports whether the given category is enabled.
func (p CookiePreferences) Allows(category CookieCategory) bool {
	switch category {
	case CookieNecessary:
		return true
	case CookieAnalytics:
		return p.Analytics
	case CookieMarketing:
		return p.Marketing
	case CookieFunctional:
		return p.Functional
	default:
		return false
	}
}

// With returns a copy with the category toggled. Necessary cannot be disabled.
func (p CookiePreferences) With(category CookieCategory, enabled bool) CookiePreferences {
	switch category {
	case CookieAnalytics:
		p.Analytics = enabled
	case CookieMarketing:
		p.Marketing = enabled
	case CookieFunctional:
		p.Functional = enabled
	}
	p.Necessary = true
	return p
}

// CookieConsent is a loaded decision: the preferences plus when they were made.
type CookieConsent struct {
	Preferences CookiePreferences
	DecidedAt   time.Time // zero when the timestamp key is missing or unreadable
}
