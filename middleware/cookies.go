package middleware

import (
	"net/http"
	"time"
)

// persistentCookieLifetime is used for visitor choices that should outlive the session
const persistentCookieLifetime = 365 * 24 * time.Hour

// newCookie builds a site-wide, HttpOnly, Lax cookie
func newCookie(name, value string, lifetime time.Duration, secure bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if lifetime > 0 {
		cookie.Expires = time.Now().Add(lifetime)
		cookie.MaxAge = int(lifetime.Seconds())
	}
	return cookie
}
