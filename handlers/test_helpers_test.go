package handlers

import (
	"consulting_site_go/config"
	"consulting_site_go/middleware"
	"consulting_site_go/services"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// recordingMailer keeps sent emails in memory
type recordingMailer struct {
	mu   sync.Mutex
	sent []*services.Email
}

func (m *recordingMailer) Enabled() bool { return true }

func (m *recordingMailer) Send(ctx context.Context, email *services.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

var testLegalDocs = fstest.MapFS{
	"terms.md":    {Data: []byte("---\ntitle: Terms of Service\nsummary: How we work.\nupdated_at: 2025-01-15\n---\n\n## Scope\n\nAll work is agreed in writing.\n")},
	"terms-uk.md": {Data: []byte("---\ntitle: UK Terms\n---\n\nUK body.\n")},
	"broken.md":   {Data: []byte("---\ntitle: [oops\n---\n")},
}

// newTestHandler builds a Handler with in-memory dependencies
func newTestHandler(t *testing.T) (*Handler, *recordingMailer) {
	t.Helper()
	cfg := &config.Config{
		Environment:     "test",
		AppURL:          "https://example.com",
		ContactToEmail:  "owner@example.com",
		EmailFromName:   "Strategic Business Consulting",
		MailSendTimeout: time.Second,
		AnalyticsID:     "G-TEST",
	}
	mailer := &recordingMailer{}
	contact := services.NewContactService(mailer, nil, services.ContactServiceConfigFrom(cfg))
	h := New(cfg, services.NewDecisionRegistry(time.Hour), contact, services.NewLegalLibrary(testLegalDocs, false))
	h.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return h, mailer
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

// testRequest describes one call through the visitor middleware
type testRequest struct {
	method  string
	path    string
	form    url.Values
	visitor string
	cookies []*http.Cookie
	headers map[string]string
}

// serve runs handler behind the locale, region and visitor middleware the server uses
func serve(h *Handler, handler echo.HandlerFunc, r testRequest) (*httptest.ResponseRecorder, error) {
	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}
	_, c, rec := setupEcho(r.method, r.path, body)
	req := c.Request()
	if r.form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	req.Header.Set("HX-Request", "true")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if r.visitor != "" {
		req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: r.visitor})
	}
	for _, cookie := range r.cookies {
		req.AddCookie(cookie)
	}
	c.Set("config", h.cfg)

	chain := middleware.Locale(h.cfg)(middleware.Region()(middleware.VisitorSession(h.cfg)(handler)))
	return rec, chain(c)
}

func newVisitorID() string {
	return uuid.New().String()
}

// responseCookie returns the named cookie set on the response, or nil
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
