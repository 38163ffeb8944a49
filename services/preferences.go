package services

import (
	"consulting_site_go/models"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Storage keys for the consent decision
const (
	ConsentPreferencesKey = "cookieConsent"
	ConsentDateKey        = "cookieConsentDate"
)

// consentCookieLifetime keeps the decision effectively indefinite
const consentCookieLifetime = 365 * 24 * time.Hour

// PreferenceBackend is the key/value storage the preference store persists into
type PreferenceBackend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// PreferenceStore persists a visitor's cookie-category choices
type PreferenceStore struct {
	backend PreferenceBackend
	now     func() time.Time
}

// NewPreferenceStore creates a store over the given backend
func NewPreferenceStore(backend PreferenceBackend) *PreferenceStore {
	return &PreferenceStore{backend: backend, now: time.Now}
}

// storedPreferences uses pointers so that keys missing from older payloads can be defaulted
type storedPreferences struct {
	Necessary  *bool `json:"necessary"`
	Analytics  *bool `json:"analytics"`
	Marketing  *bool `json:"marketing"`
	Functional *bool `json:"functional"`
}

// Load returns the saved preferences, or nil when nothing was saved or the
// payload cannot be parsed. Missing keys take their default value and
// Necessary is always true.
func (s *PreferenceStore) Load() *models.CookiePreferences {
	raw, ok := s.backend.Get(ConsentPreferencesKey)
	if !ok || raw == "" {
		return nil
	}

	var stored *storedPreferences
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("[WARNING] Ignoring malformed cookie preferences: %v", err)
		return nil
	}
	if stored == nil {
		log.Printf("[WARNING] Ignoring empty cookie preferences payload")
		return nil
	}

	prefs := models.DefaultCookiePreferences()
	if stored.Analytics != nil {
		prefs.Analytics = *stored.Analytics
	}
	if stored.Marketing != nil {
		prefs.Marketing = *stored.Marketing
	}
	if stored.Functional != nil {
		prefs.Functional = *stored.Functional
	}
	return &prefs
}

// LoadConsent returns the saved preferences together with their timestamp, or nil
func (s *PreferenceStore) LoadConsent() *models.CookieConsent {
	prefs := s.Load()
	if prefs == nil {
		return nil
	}
	return &models.CookieConsent{Preferences: *prefs, DecidedAt: s.DecidedAt()}
}

// DecidedAt returns when the preferences were last saved, or the zero time
func (s *PreferenceStore) DecidedAt() time.Time {
	raw, ok := s.backend.Get(ConsentDateKey)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasDecided reports whether the visitor has already made a consent choice
func (s *PreferenceStore) HasDecided() bool {
	return s.Load() != nil
}

// Save writes the preferences and the current timestamp
func (s *PreferenceStore) Save(prefs models.CookiePreferences) error {
	prefs.Necessary = true

	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode cookie preferences: %w", err)
	}
	if err := s.backend.Set(ConsentPreferencesKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save cookie preferences: %w", err)
	}
	if err := s.backend.Set(ConsentDateKey, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to save cookie consent date: %w", err)
	}
	return nil
}

// AcceptAll saves and returns the preference set with every category enabled
func (s *PreferenceStore) AcceptAll() (models.CookiePreferences, error) {
	prefs := models.AllCookiesAccepted()
	return prefs, s.Save(prefs)
}

// DeclineAll saves and returns the preference set with only necessary cookies
func (s *PreferenceStore) DeclineAll() (models.CookiePreferences, error) {
	prefs := models.OnlyNecessaryCookies()
	return prefs, s.Save(prefs)
}

// CookieBackend stores preferences in the visitor's browser cookies.
// Values written during a request are visible to later reads in the same request.
type CookieBackend struct {
	c       echo.Context
	secure  bool
	pending map[string]string
}

// NewCookieBackend wraps the request context. secure marks written cookies Secure.
func NewCookieBackend(c echo.Context, secure bool) *CookieBackend {
	return &CookieBackend{c: c, secure: secure, pending: make(map[string]string)}
}

func (b *CookieBackend) Get(key string) (string, bool) {
	if v, ok := b.pending[key]; ok {
		return v, true
	}
	cookie, err := b.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return decodeCookieValue(cookie.Value), true
}

func (b *CookieBackend) Set(key, value string) error {
	b.pending[key] = value
	b.c.SetCookie(&http.Cookie{
		Name:     key,
		Value:    encodeCookieValue(value),
		Path:     "/",
		Expires:  time.Now().Add(consentCookieLifetime),
		HttpOnly: true,
		Secure:   b.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Cookie values cannot carry raw JSON, so values are base64url encoded.
func encodeCookieValue(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

func decodeCookieValue(value string) string {
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return value
	}
	return string(decoded)
}

// MemoryBackend is an in-process PreferenceBackend
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// ConsentState is the cookie banner's lifecycle state
type ConsentState int

const (
	ConsentUndecided ConsentState = iota
	ConsentDecided
	ConsentEditing
)

func (s ConsentState) String() string {
	switch s {
	case ConsentUndecided:
		return "undecided"
	case ConsentDecided:
		return "decided"
	case ConsentEditing:
		return "editing"
	default:
		return fmt.Sprintf("ConsentState(%d)", int(s))
	}
}

// ConsentFlow drives the banner and preferences dialog over a PreferenceStore.
// Once a decision exists the banner is never shown again; editing only
// commits back to decided or is discarded.
type ConsentFlow struct {
	store  *PreferenceStore
	state  ConsentState
	draft  models.CookiePreferences
	onSave func(models.CookiePreferences)
}

// NewConsentFlow loads the current decision. onSave, if non-nil, runs after
// every successful save so the caller can enable or disable third-party scripts.
func NewConsentFlow(store *PreferenceStore, onSave func(models.CookiePreferences)) *ConsentFlow {
	f := &ConsentFlow{store: store, onSave: onSave, draft: models.DefaultCookiePreferences()}
	if prefs := store.Load(); prefs != nil {
		f.state = ConsentDecided
		f.draft = *prefs
	}
	return f
}

// State returns the current lifecycle state
func (f *ConsentFlow) State() ConsentState {
	return f.state
}

// ShowBanner reports whether the consent banner should be visible
func (f *ConsentFlow) ShowBanner() bool {
	return f.state == ConsentUndecided
}

// Preferences returns the preferences currently in effect, or being edited
func (f *ConsentFlow) Preferences() models.CookiePreferences {
	return f.draft
}

// AcceptAll records the "Accept All" choice
func (f *ConsentFlow) AcceptAll() error {
	return f.commit(models.AllCookiesAccepted())
}

// DeclineAll records the "Decline All" choice
func (f *ConsentFlow) DeclineAll() error {
	return f.commit(models.OnlyNecessaryCookies())
}

// OpenPreferences enters the editing state
func (f *ConsentFlow) OpenPreferences() {
	if current := f.store.Load(); current != nil {
		f.draft = *current
	}
	f.state = ConsentEditing
}

// Toggle changes one category in the draft. Necessary cannot be disabled.
func (f *ConsentFlow) Toggle(category models.CookieCategory, enabled bool) {
	f.draft = f.draft.With(category, enabled)
}

// SavePreferences commits the draft (or the given preferences) and leaves editing
func (f *ConsentFlow) SavePreferences(prefs models.CookiePreferences) error {
	return f.commit(prefs)
}

// Cancel discards the draft. A visitor who had not decided yet stays undecided.
func (f *ConsentFlow) Cancel() {
	if current := f.store.Load(); current != nil {
		f.draft = *current
		f.state = ConsentDecided
		return
	}
	f.draft = models.DefaultCookiePreferences()
	f.state = ConsentUndecided
}

func (f *ConsentFlow) commit(prefs models.CookiePreferences) error {
	prefs.Necessary = true
	if err := f.store.Save(prefs); err != nil {
		return err
	}
	f.draft = prefs
	f.state = ConsentDecided
	if f.onSave != nil {
		f.onSave(prefs)
	}
	return nil
}
