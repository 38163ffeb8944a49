package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactValues() url.Values {
	return url.Values{
		"fullName":    {"Jane Doe"},
		"email":       {"jane@example.com"},
		"phone":       {"+44 7700 900123"},
		"company":     {"Acme Ltd"},
		"budget":      {"25-100k"},
		"message":     {"We would like to discuss a growth plan."},
		"gdprConsent": {"true"},
	}
}

func TestAPIContact(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
		wantSent   int
	}{
		{
			name:       "Success",
			body:       `{"fullName":"Jane Doe","email":"jane@example.com","message":"Hello there, let's talk.","gdprConsent":true}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Form submitted successfully"}`,
			wantSent:   2,
		},
		{
			name:       "Missing consent",
			body:       `{"fullName":"Jane Doe","email":"jane@example.com","message":"Hello there, let's talk.","gdprConsent":false}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "Missing name",
			body:       `{"email":"jane@example.com","message":"Hello","gdprConsent":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "Markup-only message",
			body:       `{"fullName":"Jane Doe","email":"jane@example.com","message":"<b></b>","gdprConsent":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "Array body",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "Null body",
			body:       `null`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "Consent sent as a string",
			body:       `{"fullName":"Jane Doe","email":"jane@example.com","message":"Hello there, let's talk.","gdprConsent":"true"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "Malformed JSON",
			body:       `{"fullName":`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mailer := newTestHandler(t)
			_, c, rec := setupEcho(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			require.NoError(t, h.APIContact(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantSent, mailer.count())
		})
	}
}

func TestCheckContact(t *testing.T) {
	h, _ := newTestHandler(t)
	visitor := newVisitorID()

	t.Run("Incomplete form hides footer", func(t *testing.T) {
		rec, err := serve(h, h.CheckContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact/check",
			form:    url.Values{"fullName": {"Jane"}},
			visitor: visitor,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, strings.TrimSpace(rec.Body.String()))
		assert.False(t, h.decisions.Get(visitor).IsFormComplete())
	})

	t.Run("Complete form shows footer", func(t *testing.T) {
		rec, err := serve(h, h.CheckContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact/check",
			form:    validContactValues(),
			visitor: visitor,
		})
		require.NoError(t, err)
		assert.True(t, h.decisions.Get(visitor).IsFormComplete())
		assert.Contains(t, rec.Body.String(), "/terms-uk")
		assert.Contains(t, rec.Body.String(), "2025")
	})

	t.Run("Shortening a field flips it back", func(t *testing.T) {
		values := validContactValues()
		values.Set("message", "Too short")

		rec, err := serve(h, h.CheckContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact/check",
			form:    values,
			visitor: visitor,
		})
		require.NoError(t, err)
		assert.False(t, h.decisions.Get(visitor).IsFormComplete())
		assert.Empty(t, strings.TrimSpace(rec.Body.String()))
	})
}

func TestSubmitContact(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mailer := newTestHandler(t)
		visitor := newVisitorID()

		rec, err := serve(h, h.SubmitContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact",
			form:    validContactValues(),
			visitor: visitor,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "contactSubmitted", rec.Header().Get("HX-Trigger"))

		body := rec.Body.String()
		assert.Contains(t, body, "Message sent successfully!")
		assert.Contains(t, body, `hx-get="/contact/form"`)
		assert.Contains(t, body, `hx-swap-oob="innerHTML:#site-footer"`)
		assert.Equal(t, 2, mailer.count())
		assert.True(t, h.decisions.Get(visitor).IsFormComplete())
	})

	t.Run("Validation errors are rendered in place", func(t *testing.T) {
		h, mailer := newTestHandler(t)
		form := validContactValues()
		form.Set("phone", "123")
		form.Set("message", "short")

		rec, err := serve(h, h.SubmitContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact",
			form:    form,
			visitor: newVisitorID(),
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("HX-Trigger"))

		body := rec.Body.String()
		assert.Contains(t, body, "Phone must be 10 to 20 digits")
		assert.Contains(t, body, "Message must be at least 10 characters.")
		assert.Contains(t, body, `value="Jane Doe"`, "entered values are kept")
		assert.Equal(t, 0, mailer.count())
	})

	t.Run("Spanish errors", func(t *testing.T) {
		h, _ := newTestHandler(t)
		form := validContactValues()
		form.Del("gdprConsent")

		rec, err := serve(h, h.SubmitContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact?lang=es",
			form:    form,
			visitor: newVisitorID(),
		})
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Debe consentir el tratamiento de datos para continuar.")
	})

	t.Run("Honeypot returns the form untouched", func(t *testing.T) {
		h, mailer := newTestHandler(t)
		form := validContactValues()
		form.Set("website", "http://spam.example")

		rec, err := serve(h, h.SubmitContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact",
			form:    form,
			visitor: newVisitorID(),
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Message sent successfully!")
		assert.Equal(t, 0, mailer.count())
	})

	t.Run("Submission already in flight", func(t *testing.T) {
		h, mailer := newTestHandler(t)
		visitor := newVisitorID()
		state := h.decisions.Get(visitor)

		// Hold the visitor's submit guard as a concurrent request would
		release := make(chan struct{})
		flow := services.NewContactFlow(blockingSubmitter{release: release}, state)
		done := make(chan struct{})
		go func() {
			defer close(done)
			flow.Submit(context.Background(), services.ContactForm{
				FullName:    "Jane Doe",
				Email:       "jane@example.com",
				Message:     "We would like to discuss a growth plan.",
				GDPRConsent: true,
			})
		}()
		require.Eventually(t, state.Submitting, time.Second, time.Millisecond)

		rec, err := serve(h, h.SubmitContact, testRequest{
			method:  http.MethodPost,
			path:    "/contact",
			form:    validContactValues(),
			visitor: visitor,
		})
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Your message is already being sent.")
		assert.Equal(t, 0, mailer.count())

		close(release)
		<-done
	})
}

// blockingSubmitter holds a submission open until release is closed
type blockingSubmitter struct {
	release chan struct{}
}

func (s blockingSubmitter) Submit(ctx context.Context, sub models.ContactSubmission) error {
	<-s.release
	return nil
}

func TestContactFormFresh(t *testing.T) {
	h, _ := newTestHandler(t)
	rec, err := serve(h, h.ContactFormFresh, testRequest{
		method: http.MethodGet,
		path:   "/contact/form",
		cookies: []*http.Cookie{
			{Name: middleware.CountryCookie, Value: "Worldwide"},
		},
	})
	require.NoError(t, err)
	body := rec.Body.String()
	assert.Contains(t, body, `hx-post="/contact"`)
	assert.Contains(t, body, `placeholder="+1"`)
	assert.NotContains(t, body, "notice-error")
}

func TestFormBool(t *testing.T) {
	assert.True(t, formBool("true"))
	assert.True(t, formBool("on"))
	assert.True(t, formBool("1"))
	assert.False(t, formBool(""))
	assert.False(t, formBool("false"))
}
