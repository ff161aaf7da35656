package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Intake endpoint (external spreadsheet script)
	IntakeURL          string
	IntakeTimeout      time.Duration
	RedeliveryInterval time.Duration // zero disables redelivery of failed submissions
	// Lead archive
	DBPath             string
	LeadArchiveEnabled bool
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	NotifyEmail   string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	ExportDir         string
	// Admin area
	AdminUsername     string
	AdminPasswordHash string
	// Tracing
	OTLPEndpoint string
	ServiceName  string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	intakeURL := getEnv("INTAKE_URL", "")
	if intakeURL == "" {
		// Legacy variable name from the Apps Script deployment
		intakeURL = getEnv("GOOGLE_SCRIPT_URL", "")
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        environment,
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		IntakeURL:          intakeURL,
		IntakeTimeout:      getEnvDuration("INTAKE_TIMEOUT", 10*time.Second),
		RedeliveryInterval: getEnvDuration("REDELIVERY_INTERVAL", 0),
		DBPath:             getEnv("DB_PATH", "db/leads.db"),
		LeadArchiveEnabled: getEnvBool("LEAD_ARCHIVE_ENABLED", true),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@agenz.my"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Agenz Website"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		NotifyEmail:        getEnv("NOTIFY_EMAIL", ""),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		ExportDir:          getEnv("EXPORT_DIR", "exports"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:        getEnv("OTEL_SERVICE_NAME", "agenz-site"),
	}

	// Invalid settings are fatal in production, tolerated in development
	if err := cfg.Validate(); err != nil {
		if cfg.IsProduction() {
			log.Fatalf("[CRITICAL] %v", err)
		}
		log.Printf("[WARNING] %v", err)
	}

	return cfg
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TurnstileEnabled reports whether forms render and verify the CAPTCHA. Both keys are needed.
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

// AdminEnabled reports whether the admin area should be mounted
func (c *Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
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
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// Validate checks the settings a public deployment depends on. A missing INTAKE_URL is
// allowed: forms still succeed and the dispatcher logs that nothing is forwarded.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.AppURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("APP_URL %q is not an absolute URL", c.AppURL))
	} else if c.IsProduction() && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("APP_URL must use https in production (got %q)", c.AppURL))
	}

	if (c.TurnstileSiteKey == "") != (c.TurnstileSecretKey == "") {
		errs = append(errs, errors.New("TURNSTILE_SITE_KEY and TURNSTILE_SECRET_KEY must be set together"))
	}

	if c.AdminPasswordHash != "" && !strings.HasPrefix(c.AdminPasswordHash, "$2") {
		errs = append(errs, errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash (generate one with cmd/hash-password)"))
	}

	return errors.Join(errs...)
}
