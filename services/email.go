package services

import (
	"bytes"
	"consulting_site_go/config"
	"consulting_site_go/services/i18n"
	"consulting_site_go/templates/emails"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"strings"
	texttemplate "text/template"

	"github.com/resend/resend-go/v2"
)

// emailTemplates is the template source; tests may replace it.
var emailTemplates fs.FS = emails.FS

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer sends email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
	// Enabled reports whether Send actually delivers anything.
	Enabled() bool
}

// NewMailer picks the mailer for the configuration:
// console logging in test mode, Resend when an API key is set, otherwise none.
func NewMailer(cfg *config.Config) Mailer {
	switch {
	case cfg.EmailTestMode:
		log.Println("[INFO] Email test mode enabled: emails are logged, not sent")
		return ConsoleMailer{}
	case cfg.ResendAPIKey != "":
		return NewResendMailer(cfg.ResendAPIKey, cfg.EmailFromName, cfg.EmailFrom)
	default:
		log.Println("[WARNING] RESEND_API_KEY not configured. Email notifications disabled.")
		return NoopMailer{}
	}
}

// ResendMailer sends email through the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a Resend-backed mailer
func NewResendMailer(apiKey, fromName, fromEmail string) *ResendMailer {
	from := fromEmail
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Enabled() bool { return true }

// Send sends an email using the Resend API
func (m *ResendMailer) Send(ctx context.Context, email *Email) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
	}

	// Set body (prefer HTML if available)
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// ConsoleMailer logs emails instead of sending them
type ConsoleMailer struct{}

func (ConsoleMailer) Enabled() bool { return true }

func (ConsoleMailer) Send(ctx context.Context, email *Email) error {
	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}
	logEmailToConsole(email)
	return nil
}

// NoopMailer is used when no email provider is configured
type NoopMailer struct{}

func (NoopMailer) Enabled() bool { return false }

func (NoopMailer) Send(ctx context.Context, email *Email) error { return nil }

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	if email.ReplyTo != "" {
		log.Printf("Reply-To: %s", email.ReplyTo)
	}
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// loadTemplate renders templateName_lang.{html,txt}, falling back to templateName.{html,txt}.
// The html variant is rendered with html/template so submitted values are escaped.
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	read := func(ext string) (string, []byte, error) {
		name := fmt.Sprintf("%s_%s%s", templateName, lang, ext)
		content, err := fs.ReadFile(emailTemplates, name)
		if err != nil {
			name = templateName + ext
			content, err = fs.ReadFile(emailTemplates, name)
			if err != nil {
				return "", nil, fmt.Errorf("failed to read template %s: %w", name, err)
			}
		}
		return name, content, nil
	}

	name, content, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	name, content, err = read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(name).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// buildEmailWithFallback loads a template in the requested language, retrying in English
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) (*Email, error) {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil && lang != "en" {
		log.Printf("Error loading %s email template for lang %s: %v", templateName, lang, err)
		htmlBody, textBody, err = loadTemplate(templateName, "en", tmplData)
	}
	if err != nil {
		return nil, err
	}

	return &Email{
		To:       []string{toEmail},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// ContactEmailData contains data for both contact email templates
type ContactEmailData struct {
	FullName     string
	Email        string
	Phone        string
	Company      string
	Budget       string
	Region       string
	Message      string
	MessageLines []string
	GDPRConsent  bool
	SubmittedAt  string
	SenderName   string
}

// BuildContactNotificationEmail creates the operator notification for a new inquiry
func BuildContactNotificationEmail(operatorEmail string, data ContactEmailData) (*Email, error) {
	email, err := buildEmailWithFallback("contact_notification", "en", data, operatorEmail)
	if err != nil {
		return nil, err
	}
	email.Subject = i18n.Translate("en", "email.subject.contact_notification", map[string]interface{}{"name": data.FullName})
	email.ReplyTo = data.Email
	return email, nil
}

// BuildContactConfirmationEmail creates the confirmation sent back to the submitter
func BuildContactConfirmationEmail(data ContactEmailData, lang string) (*Email, error) {
	email, err := buildEmailWithFallback("contact_confirmation", lang, data, data.Email)
	if err != nil {
		return nil, err
	}
	email.Subject = i18n.Translate(lang, "email.subject.contact_confirmation", map[string]interface{}{"company": data.SenderName})
	return email, nil
}
