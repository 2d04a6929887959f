package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const devSessionSecret = "dev-only-session-secret"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	// DBURL empty means the service runs without a store.
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	DBPingTimeout           time.Duration

	CacheEnabled       bool
	CacheTTL           time.Duration
	CORSAllowedOrigins []string

	SessionSecret       string
	SessionCookieName   string
	SessionTTL          time.Duration
	SessionCookieSecure bool
	OwnerOpenID         string

	OAuthBaseURL            string
	OAuthAppID              string
	OAuthTimeout            time.Duration
	OAuthCircuitEnabled     bool
	OAuthCircuitFailures    int
	OAuthCircuitOpenTimeout time.Duration
	OAuthCircuitHalfOpenReq int

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "fantasy-cricket-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		DBURL:                      strings.TrimSpace(os.Getenv("DB_URL")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SessionSecret:              strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionCookieName:          strings.TrimSpace(getEnv("SESSION_COOKIE_NAME", "app_session_id")),
		OwnerOpenID:                strings.TrimSpace(os.Getenv("OWNER_OPEN_ID")),
		OAuthBaseURL:               strings.TrimRight(strings.TrimSpace(os.Getenv("OAUTH_BASE_URL")), "/"),
		OAuthAppID:                 strings.TrimSpace(os.Getenv("OAUTH_APP_ID")),
		PyroscopeServerAddress:     strings.TrimSpace(os.Getenv("PYROSCOPE_SERVER_ADDRESS")),
		PyroscopeAuthToken:         strings.TrimSpace(os.Getenv("PYROSCOPE_AUTH_TOKEN")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(os.Getenv("PYROSCOPE_BASIC_AUTH_USER")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(os.Getenv("PYROSCOPE_BASIC_AUTH_PASSWORD")),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.LogLevel, err = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.DBDisablePreparedBinary, err = strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")); err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if cfg.DBPingTimeout, err = positiveDuration("DB_PING_TIMEOUT", "5s"); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	if cfg.CacheTTL, err = positiveDuration("CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}

	if err := cfg.loadSession(); err != nil {
		return Config{}, err
	}
	if err := cfg.loadOAuth(); err != nil {
		return Config{}, err
	}
	if err := cfg.loadTelemetry(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadSession() error {
	if c.SessionSecret == "" {
		if c.AppEnv != EnvDev {
			return fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", c.AppEnv)
		}
		c.SessionSecret = devSessionSecret
	}
	if c.SessionCookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME cannot be empty")
	}

	var err error
	if c.SessionTTL, err = positiveDuration("SESSION_TTL", "8760h"); err != nil {
		return err
	}

	secureDefault := "false"
	if c.AppEnv != EnvDev {
		secureDefault = "true"
	}
	if c.SessionCookieSecure, err = strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", secureDefault)); err != nil {
		return fmt.Errorf("parse SESSION_COOKIE_SECURE: %w", err)
	}
	return nil
}

func (c *Config) loadOAuth() error {
	var err error
	if c.OAuthTimeout, err = positiveDuration("OAUTH_TIMEOUT", "5s"); err != nil {
		return err
	}
	if c.OAuthCircuitEnabled, err = strconv.ParseBool(getEnv("OAUTH_CIRCUIT_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse OAUTH_CIRCUIT_ENABLED: %w", err)
	}
	if c.OAuthCircuitFailures, err = getEnvAsInt("OAUTH_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse OAUTH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if c.OAuthCircuitFailures < 1 {
		return fmt.Errorf("OAUTH_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if c.OAuthCircuitOpenTimeout, err = positiveDuration("OAUTH_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return err
	}
	if c.OAuthCircuitHalfOpenReq, err = getEnvAsInt("OAUTH_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse OAUTH_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if c.OAuthCircuitHalfOpenReq < 1 {
		return fmt.Errorf("OAUTH_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	return nil
}

func (c *Config) loadTelemetry() error {
	var err error
	if c.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	c.UptraceDSN = strings.TrimSpace(os.Getenv("UPTRACE_DSN"))
	if c.UptraceDSN == "" {
		c.UptraceDSN = parseUptraceDSNFromOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	if c.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if c.PyroscopeEnabled && c.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	c.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", c.ServiceName))
	if c.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}
	return nil
}

// StoreConfigured reports whether a database URL was provided.
func (c Config) StoreConfigured() bool {
	return c.DBURL != ""
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
