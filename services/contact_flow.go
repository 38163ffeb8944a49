package services

import (
	"bytes"
	"consulting_site_go/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// SuccessDisplayDuration is how long the success state is shown before the form resets
const SuccessDisplayDuration = 3 * time.Second

// DefaultSubmitTimeout bounds a single HTTP submission
const DefaultSubmitTimeout = 10 * time.Second

// GenericSubmitFailure is the i18n key shown when the endpoint cannot be reached
const GenericSubmitFailure = "contact.errors.submit_failed"

// ErrSubmissionInFlight is returned when a submission is attempted while another is pending
var ErrSubmissionInFlight = errors.New("submission already in progress")

// SubmitError describes a submission the endpoint did not accept
type SubmitError struct {
	// Status is the HTTP status, or 0 when the request never completed
	Status int
	// Message is shown to the visitor
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact submission failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("contact submission failed (%d): %s", e.Status, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Transport reports whether the request failed before a response arrived
func (e *SubmitError) Transport() bool { return e.Status == 0 }

// Submitter delivers a validated submission to the contact endpoint
type Submitter interface {
	Submit(ctx context.Context, sub models.ContactSubmission) error
}

// ServiceSubmitter calls the ContactService in-process
type ServiceSubmitter struct {
	Service *ContactService
	Meta    SubmissionMeta
}

func (s ServiceSubmitter) Submit(ctx context.Context, sub models.ContactSubmission) error {
	if err := s.Service.Submit(ctx, sub, s.Meta); err != nil {
		if errors.Is(err, ErrMissingRequiredFields) {
			return &SubmitError{Status: http.StatusBadRequest, Message: err.Error()}
		}
		return &SubmitError{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
	}
	return nil
}

// HTTPSubmitter posts the submission as JSON to a running server's /api/contact
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter targets baseURL + /api/contact with a DefaultSubmitTimeout client
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
		client:   &http.Client{Timeout: DefaultSubmitTimeout},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, sub models.ContactSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &SubmitError{Message: GenericSubmitFailure, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Surface the server's own message when it sent one
	message := http.StatusText(resp.StatusCode)
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var errResp models.ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
		message = errResp.Error
	}
	return &SubmitError{Status: resp.StatusCode, Message: message}
}

// SubmitOutcome is the visible result of a submission attempt
type SubmitOutcome int

const (
	// OutcomeIgnored means the honeypot was filled; nothing was sent and nothing is reported
	OutcomeIgnored SubmitOutcome = iota
	OutcomeSubmitted
)

// ContactFlow runs a visitor's contact form submission:
// honeypot check, validation, in-flight guard, delivery, then a timed reset.
type ContactFlow struct {
	submitter Submitter
	state     *DecisionState

	// SuccessHold is how long the success state stays before the reset
	SuccessHold time.Duration
	// OnReset runs after the success state has been cleared
	OnReset func()
}

// NewContactFlow binds a submitter to the visitor's decision state
func NewContactFlow(submitter Submitter, state *DecisionState) *ContactFlow {
	return &ContactFlow{
		submitter:   submitter,
		state:       state,
		SuccessHold: SuccessDisplayDuration,
	}
}

// Submit validates and delivers the form.
// It returns ValidationErrors for invalid fields, ErrSubmissionInFlight while
// another submission for the same visitor is pending, and a *SubmitError when
// delivery fails.
func (f *ContactFlow) Submit(ctx context.Context, form ContactForm) (SubmitOutcome, error) {
	if form.IsBot() {
		log.Println("[INFO] Contact form honeypot filled; submission dropped")
		return OutcomeIgnored, nil
	}

	if errs := form.Validate(); errs != nil {
		return OutcomeIgnored, errs
	}

	if !f.state.beginSubmit() {
		return OutcomeIgnored, ErrSubmissionInFlight
	}
	defer f.state.endSubmit()

	if err := f.submitter.Submit(ctx, form.Submission()); err != nil {
		var submitErr *SubmitError
		if !errors.As(err, &submitErr) {
			submitErr = &SubmitError{Message: GenericSubmitFailure, Err: err}
		}
		return OutcomeIgnored, submitErr
	}

	f.state.SetFormComplete(true)
	time.AfterFunc(f.SuccessHold, func() {
		f.state.SetFormComplete(false)
		if f.OnReset != nil {
			f.OnReset()
		}
	})
	return OutcomeSubmitted, nil
}
