package middleware

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name   string
		cookie string
		want   models.Region
	}{
		{"NoCookie", "", models.RegionUK},
		{"CountryName", url.QueryEscape("Isle of Man"), models.RegionIsleOfMan},
		{"Worldwide", "Worldwide", models.RegionWorldwide},
		{"Unknown", "Atlantis", models.RegionUK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CountryCookie, Value: tt.cookie})
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Region()(func(c echo.Context) error {
				assert.Equal(t, tt.want, RegionFromContext(c.Request().Context()))
				return nil
			})
			assert.NoError(t, handler(c))
			assert.Equal(t, tt.want, GetRegion(c))
		})
	}
}

func TestSetCountryCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/region", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", &config.Config{Environment: "production"})

	region := SetCountryCookie(c, "Jersey")

	assert.Equal(t, models.RegionJersey, region)
	assert.Equal(t, models.RegionJersey, GetRegion(c))
	cookie := findCookie(rec, CountryCookie)
	if assert.NotNil(t, cookie) {
		assert.Equal(t, "Jersey", cookie.Value)
		assert.True(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
	}
}

func TestGetRegionDefault(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Equal(t, models.DefaultRegion, GetRegion(c))
}
