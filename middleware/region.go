package middleware

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"context"
	"net/url"

	"github.com/labstack/echo/v4"
)

// CountryCookie holds the country picked in the header selector
const CountryCookie = "selectedCountry"

const regionContextKey contextKey = "region"

// Region resolves the visitor's region from the selectedCountry cookie.
// A missing or unknown value resolves to the default region.
func Region() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			region := models.DefaultRegion
			if cookie, err := c.Cookie(CountryCookie); err == nil {
				value, err := url.QueryUnescape(cookie.Value)
				if err != nil {
					value = cookie.Value
				}
				region = services.RegionFromCountry(value)
			}

			c.Set(string(regionContextKey), region)
			ctx := context.WithValue(c.Request().Context(), regionContextKey, region)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SetCountryCookie persists the country choice and updates the current request
func SetCountryCookie(c echo.Context, country string) models.Region {
	region := services.RegionFromCountry(country)
	cfg, ok := c.Get("config").(*config.Config)
	c.SetCookie(newCookie(CountryCookie, url.QueryEscape(services.CountryForRegion(region)), persistentCookieLifetime, ok && cfg.IsProduction()))

	c.Set(string(regionContextKey), region)
	ctx := context.WithValue(c.Request().Context(), regionContextKey, region)
	c.SetRequest(c.Request().WithContext(ctx))
	return region
}

// GetRegion returns the region resolved for this request
func GetRegion(c echo.Context) models.Region {
	if region, ok := c.Get(string(regionContextKey)).(models.Region); ok {
		return region
	}
	return models.DefaultRegion
}

// RegionFromContext returns the region stored in a request context
func RegionFromContext(ctx context.Context) models.Region {
	if region, ok := ctx.Value(regionContextKey).(models.Region); ok {
		return region
	}
	return models.DefaultRegion
}
