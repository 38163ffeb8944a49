package services

import (
	"consulting_site_go/config"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withEmailTemplates swaps the template source for the duration of a test
func withEmailTemplates(t *testing.T, fsys fstest.MapFS) {
	t.Helper()
	old := emailTemplates
	emailTemplates = fsys
	t.Cleanup(func() { emailTemplates = old })
}

func TestLoadTemplate(t *testing.T) {
	withEmailTemplates(t, fstest.MapFS{
		"test_template.html":    {Data: []byte("<html><body>Hello {{.UserName}}</body></html>")},
		"test_template.txt":     {Data: []byte("Hello {{.UserName}}")},
		"test_template_es.html": {Data: []byte("<html><body>Hola {{.UserName}}</body></html>")},
		"test_template_es.txt":  {Data: []byte("Hola {{.UserName}}")},
	})

	type data struct {
		UserName string
	}
	tplData := data{UserName: "John"}

	t.Run("Load Base Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("Load Localized Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "es", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hola John")
		assert.Contains(t, text, "Hola John")
	})

	t.Run("Fallback to Base when Localized Missing", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "fr", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("HTML values are escaped", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", data{UserName: "<script>x</script>"})
		assert.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, text, "<script>x</script>")
	})

	t.Run("Template Not Found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "en", tplData)
		assert.Error(t, err)
	})
}

func TestBuildEmailWithFallback(t *testing.T) {
	withEmailTemplates(t, fstest.MapFS{
		"test_build.html":    {Data: []byte("HTML {{.Val}}")},
		"test_build.txt":     {Data: []byte("Text {{.Val}}")},
		"test_build_de.html": {Data: []byte("HTML {{.Val")},
		"test_build_de.txt":  {Data: []byte("Text {{.Val}}")},
	})

	email, err := buildEmailWithFallback("test_build", "en", map[string]string{"Val": "OK"}, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"test@example.com"}, email.To)
	assert.Equal(t, "HTML OK", email.HTMLBody)
	assert.Equal(t, "Text OK", email.TextBody)

	// A broken translation falls back to English
	email, err = buildEmailWithFallback("test_build", "de", map[string]string{"Val": "OK"}, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "HTML OK", email.HTMLBody)

	_, err = buildEmailWithFallback("missing", "en", nil, "test@example.com")
	assert.Error(t, err)
}

func TestBuildContactEmails(t *testing.T) {
	data := ContactEmailData{
		FullName:     "Jane <Doe>",
		Email:        "jane@example.com",
		Company:      "Acme Ltd",
		Message:      "Line one\nLine two",
		MessageLines: []string{"Line one", "Line two"},
		GDPRConsent:  true,
		SubmittedAt:  "1 Mar 2025 12:00 UTC",
		SenderName:   "Strategic Business Consulting",
	}

	t.Run("Notification", func(t *testing.T) {
		email, err := BuildContactNotificationEmail("owner@example.com", data)
		require.NoError(t, err)
		assert.Equal(t, []string{"owner@example.com"}, email.To)
		assert.Equal(t, "jane@example.com", email.ReplyTo)
		assert.Equal(t, "New inquiry from Jane <Doe>", email.Subject)
		assert.Contains(t, email.HTMLBody, "Jane &lt;Doe&gt;")
		assert.Contains(t, email.HTMLBody, "Line one<br>Line two")
		assert.Contains(t, email.TextBody, "Jane <Doe>")
	})

	t.Run("Confirmation", func(t *testing.T) {
		email, err := BuildContactConfirmationEmail(data, "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"jane@example.com"}, email.To)
		assert.Empty(t, email.ReplyTo)
		assert.Equal(t, "Thank you for contacting Strategic Business Consulting", email.Subject)
		assert.NotEmpty(t, email.HTMLBody)
		assert.NotEmpty(t, email.TextBody)
	})

	t.Run("Unsupported language uses English", func(t *testing.T) {
		email, err := BuildContactConfirmationEmail(data, "fr")
		require.NoError(t, err)
		assert.Equal(t, "Thank you for contacting Strategic Business Consulting", email.Subject)
	})
}

func TestNewMailer(t *testing.T) {
	t.Run("Test mode logs", func(t *testing.T) {
		mailer := NewMailer(&config.Config{EmailTestMode: true, ResendAPIKey: "key"})
		assert.IsType(t, ConsoleMailer{}, mailer)
		assert.True(t, mailer.Enabled())
	})

	t.Run("API key uses Resend", func(t *testing.T) {
		mailer := NewMailer(&config.Config{ResendAPIKey: "key", EmailFrom: "hello@example.com", EmailFromName: "Consulting"})
		resendMailer, ok := mailer.(*ResendMailer)
		require.True(t, ok)
		assert.Equal(t, "Consulting <hello@example.com>", resendMailer.from)
		assert.True(t, mailer.Enabled())
	})

	t.Run("Nothing configured", func(t *testing.T) {
		mailer := NewMailer(&config.Config{})
		assert.IsType(t, NoopMailer{}, mailer)
		assert.False(t, mailer.Enabled())
		assert.NoError(t, mailer.Send(context.Background(), &Email{}))
	})
}

func TestConsoleMailer(t *testing.T) {
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}
	assert.NoError(t, ConsoleMailer{}.Send(context.Background(), email))

	err := ConsoleMailer{}.Send(context.Background(), &Email{To: []string{"test@example.com"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestResendMailer_NoBody(t *testing.T) {
	mailer := NewResendMailer("key", "", "hello@example.com")
	assert.Equal(t, "hello@example.com", mailer.from)

	err := mailer.Send(context.Background(), &Email{To: []string{"test@example.com"}, Subject: "Test"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}
