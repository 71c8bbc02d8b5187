package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	API    APIConfig
	Auth   AuthConfig
	Upload UploadConfig
	Stub   StubConfig
}

// APIConfig holds backend endpoint settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds bearer-token source settings. Token takes precedence over
// TokenFile when both are set.
type AuthConfig struct {
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token_file"`
}

// UploadConfig holds upload widget settings.
type UploadConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// StubConfig holds settings for the local stub backend.
type StubConfig struct {
	Port            string        `mapstructure:"port"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	Tenant          string        `mapstructure:"tenant"`
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
}

// Load reads configuration from environment variables with the RFPDOCS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RFPDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API defaults
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", "60s")

	// Auth defaults
	v.SetDefault("auth.token", "")
	v.SetDefault("auth.token_file", "")

	// Upload defaults
	v.SetDefault("upload.settle_delay", "1s")

	// Stub server defaults
	v.SetDefault("stub.port", ":8080")
	v.SetDefault("stub.jwt_secret", "dev-only-secret")
	v.SetDefault("stub.tenant", "acme")
	v.SetDefault("stub.processing_delay", "3s")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"api.base_url":          "RFPDOCS_API_BASE_URL",
		"api.timeout":           "RFPDOCS_API_TIMEOUT",
		"auth.token":            "RFPDOCS_AUTH_TOKEN",
		"auth.token_file":       "RFPDOCS_AUTH_TOKEN_FILE",
		"upload.settle_delay":   "RFPDOCS_UPLOAD_SETTLE_DELAY",
		"stub.port":             "RFPDOCS_STUB_PORT",
		"stub.jwt_secret":       "RFPDOCS_STUB_JWT_SECRET",
		"stub.tenant":           "RFPDOCS_STUB_TENANT",
		"stub.processing_delay": "RFPDOCS_STUB_PROCESSING_DELAY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
		Timeout: v.GetDuration("api.timeout"),
	}
	cfg.Auth = AuthConfig{
		Token:     v.GetString("auth.token"),
		TokenFile: v.GetString("auth.token_file"),
	}
	cfg.Upload = UploadConfig{
		SettleDelay: v.GetDuration("upload.settle_delay"),
	}
	cfg.Stub = StubConfig{
		Port:            v.GetString("stub.port"),
		JWTSecret:       v.GetString("stub.jwt_secret"),
		Tenant:          v.GetString("stub.tenant"),
		ProcessingDelay: v.GetDuration("stub.processing_delay"),
	}

	return cfg, nil
}
