package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TurnstileFormField is the form field the Turnstile widget fills in
const TurnstileFormField = "cf-turnstile-response"

// ErrTurnstileFailed is returned when a token is missing or rejected
var ErrTurnstileFailed = errors.New("turnstile verification failed")

var turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// TurnstileVerifier checks Cloudflare Turnstile tokens submitted with the contact form
type TurnstileVerifier struct {
	secretKey string
	client    *http.Client
}

// NewTurnstileVerifier returns nil when no secret is configured, which disables the check
func NewTurnstileVerifier(secretKey string) *TurnstileVerifier {
	if secretKey == "" {
		return nil
	}
	return &TurnstileVerifier{
		secretKey: secretKey,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify verifies the token with Cloudflare
func (v *TurnstileVerifier) Verify(ctx context.Context, token, ip string) error {
	if token == "" {
		return fmt.Errorf("%w: missing token", ErrTurnstileFailed)
	}

	form := url.Values{
		"secret":   {v.secretKey},
		"response": {token},
		"remoteip": {ip},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, turnstileVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build turnstile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode turnstile response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("%w, error codes: %v", ErrTurnstileFailed, result.ErrorCodes)
	}
	return nil
}
