package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurnstileVerifier(t *testing.T) {
	assert.Nil(t, NewTurnstileVerifier(""))
	assert.NotNil(t, NewTurnstileVerifier("secret"))
}

func TestTurnstileVerify(t *testing.T) {
	// Backup and restore URL
	oldURL := turnstileVerifyURL
	defer func() { turnstileVerifyURL = oldURL }()

	verifier := NewTurnstileVerifier("secret")
	ctx := context.Background()

	t.Run("Missing token", func(t *testing.T) {
		err := verifier.Verify(ctx, "", "127.0.0.1")
		assert.ErrorIs(t, err, ErrTurnstileFailed)
		assert.Contains(t, err.Error(), "missing token")
	})

	t.Run("Verification success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "secret", r.PostForm.Get("secret"))
			assert.Equal(t, "valid-token", r.PostForm.Get("response"))
			assert.Equal(t, "1.1.1.1", r.PostForm.Get("remoteip"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(TurnstileResponse{Success: true})
		}))
		defer server.Close()

		turnstileVerifyURL = server.URL
		assert.NoError(t, verifier.Verify(ctx, "valid-token", "1.1.1.1"))
	})

	t.Run("Verification failure with error codes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(TurnstileResponse{
				Success:    false,
				ErrorCodes: []string{"invalid-input-response"},
			})
		}))
		defer server.Close()

		turnstileVerifyURL = server.URL
		err := verifier.Verify(ctx, "bad-token", "1.1.1.1")
		assert.ErrorIs(t, err, ErrTurnstileFailed)
		assert.Contains(t, err.Error(), "invalid-input-response")
	})

	t.Run("Malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		turnstileVerifyURL = server.URL
		err := verifier.Verify(ctx, "token", "1.1.1.1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrTurnstileFailed)
	})
}
