package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"cors": map[string]any{
			"clientUrl": "",
		},
		"auth": map[string]any{
			"refreshTokenTTL": "168h",
		},
		"rateLimit": map[string]any{
			"rps": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRET_KEY_ACCESS", want: "secretKey.access"},
		{envKey: "CORS_CLIENT_URL", want: "cors.clientUrl"},
		{envKey: "AUTH_REFRESH_TOKEN_TTL", want: "auth.refreshTokenTTL"},
		{envKey: "RATE_LIMIT_RPS", want: "rateLimit.rps"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "POSTGRES__SSLMODE", want: "postgres.sslMode"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyLegacyEnv_FillsOnlyEmptyValues(t *testing.T) {
	env := map[string]string{
		"PORT":               "9000",
		"CLIENT_URL":         "https://app.example.com",
		"JWT_SECRET":         "legacy-access",
		"JWT_REFRESH_SECRET": "legacy-refresh",
	}

	cfg := &Config{}
	cfg.SecretKey.Access = "configured-access"

	applyLegacyEnv(cfg, func(k string) string { return env[k] })

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "https://app.example.com", cfg.CORS.ClientURL)
	assert.Equal(t, "configured-access", cfg.SecretKey.Access)
	assert.Equal(t, "legacy-refresh", cfg.SecretKey.Refresh)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.True(t, cfg.Auth.IsCookieSecure())
	assert.Equal(t, time.Hour, cfg.Session.CleanupInterval)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.InDelta(t, 5.0, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.NotNil(t, cfg.PubSub)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	secure := false
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 12, CookieSecure: &secure},
		Session: &SessionConfig{CleanupInterval: 0},
	}

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Auth.IsCookieSecure())
	assert.Zero(t, cfg.Session.CleanupInterval, "explicit zero disables the sweeper")
}
