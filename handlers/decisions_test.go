package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/models"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVatDecision(t *testing.T) {
	h, _ := newTestHandler(t)
	visitor := newVisitorID()

	tests := []struct {
		name       string
		decision   string
		want       models.VatDecision
		wantPrice  string
		wantPrompt bool
	}{
		{"Include VAT", "included", models.VatIncluded, "£6,000", false},
		{"Exclude VAT", "excluded", models.VatExcluded, "£5,000", false},
		{"Change preference", "", models.VatUnset, "£5,000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(h, h.SetVatDecision, testRequest{
				method:  http.MethodPost,
				path:    "/decisions/vat",
				form:    url.Values{"decision": {tt.decision}},
				visitor: visitor,
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, h.decisions.Get(visitor).VatDecision())

			body := rec.Body.String()
			assert.Contains(t, body, `id="pricing"`)
			assert.Contains(t, body, tt.wantPrice)
			if tt.wantPrompt {
				assert.Contains(t, body, "vat-prompt")
			} else {
				assert.NotContains(t, body, "vat-prompt")
			}
		})
	}
}

func TestSetRegion(t *testing.T) {
	h, _ := newTestHandler(t)
	visitor := newVisitorID()

	rec, err := serve(h, h.SetRegion, testRequest{
		method:  http.MethodPost,
		path:    "/region",
		form:    url.Values{"country": {"Worldwide"}},
		visitor: visitor,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "$6,500")
	assert.Contains(t, body, "No VAT applicable")
	assert.NotContains(t, body, "vat-prompt")
	assert.Contains(t, body, `hx-swap-oob="innerHTML:#site-footer"`)

	cookie := responseCookie(rec, middleware.CountryCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "Worldwide", cookie.Value)
	assert.False(t, cookie.Secure)
}

func TestLegalSidebar(t *testing.T) {
	h, _ := newTestHandler(t)
	visitor := newVisitorID()
	request := func(path string) testRequest {
		return testRequest{method: http.MethodPost, path: path, visitor: visitor}
	}

	rec, err := serve(h, h.ReviewLegal, request("/decisions/legal/review"))
	require.NoError(t, err)
	assert.True(t, h.decisions.Get(visitor).ShowPrimarySidebar())
	assert.Contains(t, rec.Body.String(), `hx-post="/decisions/legal/accept"`)
	assert.NotContains(t, rec.Body.String(), "hidden")

	rec, err = serve(h, h.AcceptLegal, request("/decisions/legal/accept"))
	require.NoError(t, err)
	state := h.decisions.Get(visitor)
	assert.True(t, state.LegalComplianceAccepted())
	assert.False(t, state.ShowPrimarySidebar(), "accepting closes the sidebar")
	assert.Contains(t, rec.Body.String(), "hidden")

	rec, err = serve(h, h.ReviewLegal, request("/decisions/legal/review"))
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "Terms accepted. Thank you.")
	assert.NotContains(t, rec.Body.String(), `hx-post="/decisions/legal/accept"`)

	rec, err = serve(h, h.CloseLegal, request("/decisions/legal/close"))
	require.NoError(t, err)
	state = h.decisions.Get(visitor)
	assert.False(t, state.ShowPrimarySidebar())
	assert.True(t, state.LegalComplianceAccepted(), "closing keeps the acceptance")
	assert.Contains(t, rec.Body.String(), "hidden")
}
