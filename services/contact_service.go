package services

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"context"
	"errors"
	"html"
	"log"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// ErrMissingRequiredFields is returned when name, email, message or GDPR consent is missing
var ErrMissingRequiredFields = errors.New("Missing required fields")

// SubmissionMeta carries request details that are not part of the payload
type SubmissionMeta struct {
	Lang      string
	Region    models.Region
	IPAddress string
	UserAgent string
}

// ContactServiceConfig holds the ContactService settings
type ContactServiceConfig struct {
	OperatorEmail string
	SenderName    string
	SendTimeout   time.Duration
}

// ContactServiceConfigFrom extracts the contact settings from the app config
func ContactServiceConfigFrom(cfg *config.Config) ContactServiceConfig {
	return ContactServiceConfig{
		OperatorEmail: cfg.ContactToEmail,
		SenderName:    cfg.EmailFromName,
		SendTimeout:   cfg.MailSendTimeout,
	}
}

// ContactService accepts contact submissions. It holds no per-request state.
type ContactService struct {
	mailer    Mailer
	archive   InquiryArchive
	cfg       ContactServiceConfig
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewContactService creates the service. A nil mailer disables email; a nil archive disables archiving.
func NewContactService(mailer Mailer, archive InquiryArchive, cfg ContactServiceConfig) *ContactService {
	if mailer == nil {
		mailer = NoopMailer{}
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = config.DefaultMailSendTimeout
	}
	return &ContactService{
		mailer:    mailer,
		archive:   archive,
		cfg:       cfg,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Submit strips markup, checks the required fields and then makes a best-effort
// attempt to notify the operator, confirm to the submitter and archive the inquiry.
// Only a missing required field produces an error; delivery failures are logged.
// A field holding nothing but markup counts as missing.
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission, meta SubmissionMeta) error {
	sub = s.clean(sub)
	if !sub.HasRequiredFields() {
		return ErrMissingRequiredFields
	}

	// Outbound work should finish even if the visitor disconnects.
	ctx = context.WithoutCancel(ctx)

	if s.mailer.Enabled() {
		data := s.emailData(sub, meta)

		if email, err := BuildContactNotificationEmail(s.cfg.OperatorEmail, data); err != nil {
			log.Printf("[ERROR] Failed to build contact notification email: %v", err)
		} else if err := s.send(ctx, email); err != nil {
			log.Printf("[ERROR] Failed to send contact notification email: %v", err)
		}

		if email, err := BuildContactConfirmationEmail(data, meta.Lang); err != nil {
			log.Printf("[ERROR] Failed to build contact confirmation email: %v", err)
		} else if err := s.send(ctx, email); err != nil {
			log.Printf("[ERROR] Failed to send contact confirmation email to %s: %v", sub.Email, err)
		}
	} else {
		log.Println("[WARNING] Email provider not configured. Contact notifications disabled.")
	}

	if s.archive != nil {
		inquiry := models.NewInquiry(sub)
		inquiry.Region = string(meta.Region)
		inquiry.IPAddress = meta.IPAddress
		inquiry.UserAgent = meta.UserAgent
		if err := s.archive.Record(ctx, inquiry); err != nil {
			log.Printf("[ERROR] Failed to archive inquiry from %s: %v", sub.Email, err)
		}
	}

	return nil
}

func (s *ContactService) send(ctx context.Context, email *Email) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()
	return s.mailer.Send(ctx, email)
}

// clean strips any markup from submitted text and removes surrounding whitespace
func (s *ContactService) clean(sub models.ContactSubmission) models.ContactSubmission {
	strip := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
	}
	sub.FullName = strip(sub.FullName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strip(sub.Phone)
	sub.Company = strip(sub.Company)
	sub.Budget = strip(sub.Budget)
	sub.Message = strip(sub.Message)
	return sub
}

func (s *ContactService) emailData(sub models.ContactSubmission, meta SubmissionMeta) ContactEmailData {
	message := strings.ReplaceAll(sub.Message, "\r\n", "\n")
	return ContactEmailData{
		FullName:     sub.FullName,
		Email:        sub.Email,
		Phone:        sub.Phone,
		Company:      sub.Company,
		Budget:       sub.Budget,
		Region:       string(meta.Region),
		Message:      message,
		MessageLines: strings.Split(message, "\n"),
		GDPRConsent:  sub.GDPRConsent,
		SubmittedAt:  s.now().UTC().Format("2 Jan 2006 15:04 MST"),
		SenderName:   s.cfg.SenderName,
	}
}
