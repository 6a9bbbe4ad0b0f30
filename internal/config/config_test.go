package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GetAppEnv())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DefaultServerAddr, cfg.GetServerAddr())
	assert.Equal(t, DefaultAPIBaseURL, cfg.GetAPIBaseURL())
	assert.Equal(t, 2*time.Minute, cfg.GetAPITimeout())
	assert.Equal(t, int64(5<<20), cfg.GetMaxUploadBytes())
	assert.Equal(t, 10, cfg.GetRateLimitPerMinute())
	assert.Equal(t, 30*time.Minute, cfg.GetPageStateTTL())
	assert.True(t, cfg.GetMetricsEnabled())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, BreakerConfig{Enabled: true, MaxFailures: 5, Cooldown: 30 * time.Second}, cfg.GetBreaker())
	assert.Equal(t, devSessionSecret, cfg.GetSessionSecret())
	assert.False(t, cfg.GetTracing().Enabled)
	assert.Equal(t, "resumio", cfg.GetTracing().ServiceName)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"APP_ENV":                  "production",
		"API_BASE_URL":             "https://api.resumio.dev/",
		"API_TIMEOUT":              "45s",
		"API_BREAKER_ENABLED":      "false",
		"API_BREAKER_MAX_FAILURES": "2",
		"SESSION_SECRET":           "s3cret",
		"MAX_UPLOAD_BYTES":         "1024",
		"METRICS_ENABLED":          "0",
		"LOG_FORMAT":               "json",
		"TRACING_ENABLED":          "true",
		"TRACING_ZIPKIN_URL":       "http://zipkin:9411/api/v2/spans",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://api.resumio.dev", cfg.GetAPIBaseURL(), "trailing slash is trimmed")
	assert.Equal(t, 45*time.Second, cfg.GetAPITimeout())
	assert.False(t, cfg.GetBreaker().Enabled)
	assert.Equal(t, uint32(2), cfg.GetBreaker().MaxFailures)
	assert.Equal(t, "s3cret", cfg.GetSessionSecret())
	assert.Equal(t, int64(1024), cfg.GetMaxUploadBytes())
	assert.False(t, cfg.GetMetricsEnabled())
	assert.Equal(t, "info", cfg.GetLogLevel(), "production defaults to info")
	assert.True(t, cfg.GetTracing().Enabled)
	assert.Equal(t, "http://zipkin:9411/api/v2/spans", cfg.GetTracing().ZipkinURL)
}

func TestFromEnv_ProductionRequiresSessionSecret(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"APP_ENV": "production"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestFromEnv_ReportsAllInvalidValues(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"API_TIMEOUT":      "soon",
		"MAX_UPLOAD_BYTES": "big",
		"METRICS_ENABLED":  "maybe",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_TIMEOUT")
	assert.Contains(t, err.Error(), "MAX_UPLOAD_BYTES")
	assert.Contains(t, err.Error(), "METRICS_ENABLED")
}
