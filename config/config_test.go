package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment: "production",
		AppURL:      "https://agenz.my",
		IntakeURL:   "https://script.google.com/macros/s/abc/exec",
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("HTTPAppURLInProduction", func(t *testing.T) {
		cfg := validConfig()
		cfg.AppURL = "http://agenz.my"
		assert.ErrorContains(t, cfg.Validate(), "https")

		cfg.Environment = "development"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("RelativeAppURL", func(t *testing.T) {
		cfg := validConfig()
		cfg.AppURL = "agenz.my"
		assert.ErrorContains(t, cfg.Validate(), "absolute URL")
	})

	t.Run("MissingIntakeIsAllowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.IntakeURL = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("HalfTurnstile", func(t *testing.T) {
		cfg := validConfig()
		cfg.TurnstileSiteKey = "site"
		assert.ErrorContains(t, cfg.Validate(), "TURNSTILE")

		cfg.TurnstileSecretKey = "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("PlainAdminPassword", func(t *testing.T) {
		cfg := validConfig()
		cfg.AdminPasswordHash = "hunter2"
		assert.ErrorContains(t, cfg.Validate(), "bcrypt")

		cfg.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
		assert.NoError(t, cfg.Validate())
	})
}

func TestTurnstileEnabled(t *testing.T) {
	assert.False(t, (&Config{TurnstileSecretKey: "secret"}).TurnstileEnabled())
	assert.False(t, (&Config{TurnstileSiteKey: "site"}).TurnstileEnabled())
	assert.True(t, (&Config{TurnstileSiteKey: "site", TurnstileSecretKey: "secret"}).TurnstileEnabled())
}

func TestAdminEnabled(t *testing.T) {
	assert.False(t, (&Config{AdminUsername: "admin"}).AdminEnabled())
	assert.True(t, (&Config{AdminUsername: "admin", AdminPasswordHash: "$2a$"}).AdminEnabled())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("AGENZ_TEST_BOOL", "yes")
	t.Setenv("AGENZ_TEST_BAD_BOOL", "maybe")
	t.Setenv("AGENZ_TEST_DURATION", "90s")
	t.Setenv("AGENZ_TEST_BAD_DURATION", "-5s")

	assert.True(t, getEnvBool("AGENZ_TEST_BOOL", false))
	assert.True(t, getEnvBool("AGENZ_TEST_BAD_BOOL", true))
	assert.False(t, getEnvBool("AGENZ_TEST_UNSET_BOOL", false))
	assert.Equal(t, 90*time.Second, getEnvDuration("AGENZ_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("AGENZ_TEST_BAD_DURATION", time.Second))
	assert.Equal(t, "fallback", getEnv("AGENZ_TEST_UNSET", "fallback"))
}
