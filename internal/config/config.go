package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultServerAddr = ":8080"

	devSessionSecret = "resumio-development-session-secret"
)

// Provider is the read-only view of the configuration used by the server,
// the modules and the CLI.
type Provider interface {
	GetAppEnv() string
	IsProduction() bool
	GetServerAddr() string
	GetAppBaseURL() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetBreaker() BreakerConfig
	GetSessionSecret() string
	GetMaxUploadBytes() int64
	GetRateLimitPerMinute() int
	GetPageStateTTL() time.Duration
	GetMetricsEnabled() bool
	GetTracing() TracingConfig
	GetLogFormat() string
	GetLogLevel() string
}

// BreakerConfig controls the circuit breaker in front of the backend.
type BreakerConfig struct {
	Enabled     bool
	MaxFailures uint32
	Cooldown    time.Duration
}

// TracingConfig controls span export to Zipkin.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv             string
	ServerAddr         string
	AppBaseURL         string
	APIBaseURL         string
	APITimeout         time.Duration
	Breaker            BreakerConfig
	SessionSecret      string
	MaxUploadBytes     int64
	RateLimitPerMinute int
	PageStateTTL       time.Duration
	MetricsEnabled     bool
	Tracing            TracingConfig
	LogFormat          string
	LogLevel           string
}

// New loads configuration from a .env file, when present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := envReader{get: getenv}

	cfg := &Config{
		AppEnv:             env.str("APP_ENV", "development"),
		ServerAddr:         env.str("SERVER_ADDR", DefaultServerAddr),
		AppBaseURL:         env.str("APP_BASE_URL", "http://localhost:8080"),
		APIBaseURL:         strings.TrimRight(env.str("API_BASE_URL", DefaultAPIBaseURL), "/"),
		APITimeout:         env.duration("API_TIMEOUT", 2*time.Minute),
		SessionSecret:      env.str("SESSION_SECRET", ""),
		MaxUploadBytes:     env.int64("MAX_UPLOAD_BYTES", 5<<20),
		RateLimitPerMinute: int(env.int64("RATE_LIMIT_PER_MINUTE", 10)),
		PageStateTTL:       env.duration("PAGE_STATE_TTL", 30*time.Minute),
		MetricsEnabled:     env.bool("METRICS_ENABLED", true),
		LogFormat:          env.str("LOG_FORMAT", "text"),
		Breaker: BreakerConfig{
			Enabled:     env.bool("API_BREAKER_ENABLED", true),
			MaxFailures: uint32(env.int64("API_BREAKER_MAX_FAILURES", 5)),
			Cooldown:    env.duration("API_BREAKER_COOLDOWN", 30*time.Second),
		},
		Tracing: TracingConfig{
			Enabled:     env.bool("TRACING_ENABLED", false),
			ServiceName: env.str("TRACING_SERVICE_NAME", "resumio"),
			ZipkinURL:   env.str("TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
		},
	}
	defaultLevel := "debug"
	if cfg.IsProduction() {
		defaultLevel = "info"
	}
	cfg.LogLevel = env.str("LOG_LEVEL", defaultLevel)

	if len(env.errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(env.errs, "; "))
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("invalid configuration: SESSION_SECRET is required in production")
		}
		slog.Warn("SESSION_SECRET not set, using an insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("invalid configuration: MAX_UPLOAD_BYTES must be positive")
	}
	return cfg, nil
}

func (c *Config) GetAppEnv() string              { return c.AppEnv }
func (c *Config) IsProduction() bool             { return strings.EqualFold(c.AppEnv, "production") }
func (c *Config) GetServerAddr() string          { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string          { return c.AppBaseURL }
func (c *Config) GetAPIBaseURL() string          { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration   { return c.APITimeout }
func (c *Config) GetBreaker() BreakerConfig      { return c.Breaker }
func (c *Config) GetSessionSecret() string       { return c.SessionSecret }
func (c *Config) GetMaxUploadBytes() int64       { return c.MaxUploadBytes }
func (c *Config) GetRateLimitPerMinute() int     { return c.RateLimitPerMinute }
func (c *Config) GetPageStateTTL() time.Duration { return c.PageStateTTL }
func (c *Config) GetMetricsEnabled() bool        { return c.MetricsEnabled }
func (c *Config) GetTracing() TracingConfig      { return c.Tracing }
func (c *Config) GetLogFormat() string           { return c.LogFormat }
func (c *Config) GetLogLevel() string            { return c.LogLevel }

// envReader collects parse errors so that every bad variable is reported at once.
type envReader struct {
	get  func(string) string
	errs []string
}

func (r *envReader) str(key, def string) string {
	if v := strings.TrimSpace(r.get(key)); v != "" {
		return v
	}
	return def
}

func (r *envReader) bool(key string, def bool) bool {
	v := strings.TrimSpace(r.get(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a boolean", key, v))
		return def
	}
	return b
}

func (r *envReader) int64(key string, def int64) int64 {
	v := strings.TrimSpace(r.get(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not an integer", key, v))
		return def
	}
	return n
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(r.get(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a duration", key, v))
		return def
	}
	return d
}
