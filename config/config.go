package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Inquiry archive backends
const (
	ArchiveNone   = "none"
	ArchiveSQLite = "sqlite"
	ArchiveR2     = "r2"
)

// DefaultMailSendTimeout bounds each outbound email send.
const DefaultMailSendTimeout = 10 * time.Second

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Email (Resend)
	ResendAPIKey    string
	EmailFrom       string
	EmailFromName   string
	ContactToEmail  string
	EmailTestMode   bool // When true, emails are logged to console instead of sent
	MailSendTimeout time.Duration
	// Inquiry archive (optional durable record of submissions)
	InquiryArchive string
	DBPath         string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	// Cloudflare Turnstile (optional bot check on the contact form)
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Third-party scripts, loaded only with cookie consent
	AnalyticsID string
	MetaPixelID string
	// Other
	AllowedOrigins  []string
	LegalContentDir string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "onboarding@resend.dev"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Strategic Business Consulting"),
		ContactToEmail:     getEnv("CONTACT_TO_EMAIL", "admin@strategicconsulting.com"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", false),
		MailSendTimeout:    getEnvDuration("MAIL_SEND_TIMEOUT", DefaultMailSendTimeout),
		InquiryArchive:     normalizeArchive(getEnv("INQUIRY_ARCHIVE", ArchiveNone)),
		DBPath:             getEnv("DB_PATH", "db/inquiries.db"),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		AnalyticsID:        getEnv("GA_MEASUREMENT_ID", ""),
		MetaPixelID:        getEnv("META_PIXEL_ID", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		LegalContentDir:    getEnv("LEGAL_CONTENT_DIR", "content/legal"),
	}
}

// IsProduction reports whether the app runs in production; cookies are then marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MailConfigured reports whether outbound email can be attempted at all.
func (c *Config) MailConfigured() bool {
	return c.EmailTestMode || c.ResendAPIKey != ""
}

// R2Configured reports whether every R2 credential is present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func normalizeArchive(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case ArchiveSQLite:
		return ArchiveSQLite
	case ArchiveR2:
		return ArchiveR2
	case "", ArchiveNone:
		return ArchiveNone
	default:
		log.Printf("[WARNING] Unknown INQUIRY_ARCHIVE value %q, archiving disabled", value)
		return ArchiveNone
	}
}
