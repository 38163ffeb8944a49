package services

import (
	"consulting_site_go/config"
	"consulting_site_go/models"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records every email it is asked to send
type fakeMailer struct {
	mu        sync.Mutex
	sent      []*Email
	err       error
	disabled  bool
	deadlines []bool
}

func (m *fakeMailer) Enabled() bool { return !m.disabled }

func (m *fakeMailer) Send(ctx context.Context, email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, hasDeadline := ctx.Deadline()
	m.deadlines = append(m.deadlines, hasDeadline)
	m.sent = append(m.sent, email)
	return m.err
}

func (m *fakeMailer) Sent() []*Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Email(nil), m.sent...)
}

// fakeArchive keeps inquiries in memory
type fakeArchive struct {
	mu        sync.Mutex
	inquiries []models.Inquiry
	err       error
}

func (a *fakeArchive) Record(ctx context.Context, inquiry *models.Inquiry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.inquiries = append(a.inquiries, *inquiry)
	return nil
}

func (a *fakeArchive) List(ctx context.Context, since time.Time) ([]models.Inquiry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Inquiry(nil), a.inquiries...), nil
}

func testContactConfig() ContactServiceConfig {
	return ContactServiceConfig{
		OperatorEmail: "owner@example.com",
		SenderName:    "Strategic Business Consulting",
		SendTimeout:   time.Second,
	}
}

func validSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Company:     "Acme Ltd",
		Message:     "We would like to discuss a growth plan.",
		GDPRConsent: true,
	}
}

func TestContactServiceSubmit(t *testing.T) {
	ctx := context.Background()
	meta := SubmissionMeta{Lang: "en", Region: models.RegionUK, IPAddress: "203.0.113.7", UserAgent: "test-agent"}

	t.Run("Sends notification and confirmation", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testContactConfig())

		require.NoError(t, svc.Submit(ctx, validSubmission(), meta))

		sent := mailer.Sent()
		require.Len(t, sent, 2)

		notification := sent[0]
		assert.Equal(t, []string{"owner@example.com"}, notification.To)
		assert.Equal(t, "jane@example.com", notification.ReplyTo)
		assert.Equal(t, "New inquiry from Jane Doe", notification.Subject)
		assert.Contains(t, notification.HTMLBody, "Acme Ltd")
		assert.Contains(t, notification.TextBody, "Jane Doe")

		confirmation := sent[1]
		assert.Equal(t, []string{"jane@example.com"}, confirmation.To)
		assert.Equal(t, "Thank you for contacting Strategic Business Consulting", confirmation.Subject)

		assert.Equal(t, []bool{true, true}, mailer.deadlines, "each send is bounded by a timeout")
	})

	t.Run("Confirmation follows the visitor's language", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testContactConfig())

		require.NoError(t, svc.Submit(ctx, validSubmission(), SubmissionMeta{Lang: "es"}))

		sent := mailer.Sent()
		require.Len(t, sent, 2)
		assert.Equal(t, "New inquiry from Jane Doe", sent[0].Subject)
		assert.Equal(t, "Gracias por contactar con Strategic Business Consulting", sent[1].Subject)
		assert.Contains(t, sent[1].TextBody, "Estimado/a Jane Doe")
	})

	t.Run("Missing required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(*models.ContactSubmission)
		}{
			{"No name", func(s *models.ContactSubmission) { s.FullName = "" }},
			{"No email", func(s *models.ContactSubmission) { s.Email = "" }},
			{"No message", func(s *models.ContactSubmission) { s.Message = "" }},
			{"No consent", func(s *models.ContactSubmission) { s.GDPRConsent = false }},
			{"Markup-only message", func(s *models.ContactSubmission) { s.Message = "<b></b>" }},
			{"Blank name", func(s *models.ContactSubmission) { s.FullName = "   " }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mailer := &fakeMailer{}
				archive := &fakeArchive{}
				svc := NewContactService(mailer, archive, testContactConfig())

				sub := validSubmission()
				tt.modify(&sub)

				err := svc.Submit(ctx, sub, meta)
				assert.ErrorIs(t, err, ErrMissingRequiredFields)
				assert.Equal(t, "Missing required fields", err.Error())
				assert.Empty(t, mailer.Sent())
				assert.Empty(t, archive.inquiries)
			})
		}
	})

	t.Run("Delivery failures are swallowed", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("provider down")}
		svc := NewContactService(mailer, nil, testContactConfig())

		assert.NoError(t, svc.Submit(ctx, validSubmission(), meta))
		assert.Len(t, mailer.Sent(), 2, "confirmation is still attempted")
	})

	t.Run("Disabled mailer sends nothing", func(t *testing.T) {
		mailer := &fakeMailer{disabled: true}
		svc := NewContactService(mailer, nil, testContactConfig())

		assert.NoError(t, svc.Submit(ctx, validSubmission(), meta))
		assert.Empty(t, mailer.Sent())
	})

	t.Run("Nil mailer", func(t *testing.T) {
		svc := NewContactService(nil, nil, ContactServiceConfig{})
		assert.NoError(t, svc.Submit(ctx, validSubmission(), meta))
	})

	t.Run("Archives cleaned inquiry with metadata", func(t *testing.T) {
		archive := &fakeArchive{}
		svc := NewContactService(NoopMailer{}, archive, testContactConfig())

		sub := validSubmission()
		sub.FullName = "<b>Jane</b> Doe"
		sub.Message = "Tom & Jerry <script>alert(1)</script>need a plan"

		require.NoError(t, svc.Submit(ctx, sub, meta))
		require.Len(t, archive.inquiries, 1)

		inquiry := archive.inquiries[0]
		assert.Equal(t, "Jane Doe", inquiry.FullName)
		assert.Equal(t, "Tom & Jerry need a plan", inquiry.Message)
		assert.Equal(t, "UK", inquiry.Region)
		assert.Equal(t, "203.0.113.7", inquiry.IPAddress)
		assert.Equal(t, "test-agent", inquiry.UserAgent)
		assert.NotEmpty(t, inquiry.ID)
	})

	t.Run("Archive failure is swallowed", func(t *testing.T) {
		archive := &fakeArchive{err: errors.New("disk full")}
		svc := NewContactService(NoopMailer{}, archive, testContactConfig())
		assert.NoError(t, svc.Submit(ctx, validSubmission(), meta))
	})

	t.Run("Cancelled request still delivers", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testContactConfig())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		require.NoError(t, svc.Submit(cancelled, validSubmission(), meta))
		assert.Len(t, mailer.Sent(), 2)
	})
}

func TestContactServiceConfigFrom(t *testing.T) {
	cfg := ContactServiceConfigFrom(&config.Config{
		ContactToEmail:  "owner@example.com",
		EmailFromName:   "Consulting",
		MailSendTimeout: 5 * time.Second,
	})
	assert.Equal(t, "owner@example.com", cfg.OperatorEmail)
	assert.Equal(t, "Consulting", cfg.SenderName)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)

	svc := NewContactService(nil, nil, ContactServiceConfig{})
	assert.Equal(t, config.DefaultMailSendTimeout, svc.cfg.SendTimeout)
}
