package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Suggestion SuggestionConfig `yaml:"suggestion"`
	HTTPLimit  HTTPLimitConfig  `yaml:"http_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig holds storage settings. The memory driver keeps everything
// in process and is meant for local development and tests.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"pathwise"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// Completion providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderStub      = "stub"
)

// LLMConfig holds completion gateway settings.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"stub"`
	APIKey          string        `yaml:"api_key"           env:"LLM_API_KEY"`
	Model           string        `yaml:"model"             env:"LLM_MODEL"             env-default:"claude-sonnet-4-5"`
	BaseURL         string        `yaml:"base_url"          env:"LLM_BASE_URL"`
	Temperature     float64       `yaml:"temperature"       env:"LLM_TEMPERATURE"       env-default:"0.7"`
	MaxOutputTokens int           `yaml:"max_output_tokens" env:"LLM_MAX_OUTPUT_TOKENS" env-default:"1024"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"           env-default:"30s"`

	BreakerFailureThreshold uint32        `yaml:"breaker_failure_threshold" env:"LLM_BREAKER_FAILURE_THRESHOLD" env-default:"5"`
	BreakerOpenTimeout      time.Duration `yaml:"breaker_open_timeout"      env:"LLM_BREAKER_OPEN_TIMEOUT"      env-default:"60s"`
}

// SuggestionConfig holds pipeline settings.
type SuggestionConfig struct {
	RateWindow        time.Duration `yaml:"rate_window"         env:"SUGGESTION_RATE_WINDOW"         env-default:"24h"`
	CachePrefixLength int           `yaml:"cache_prefix_length" env:"SUGGESTION_CACHE_PREFIX_LENGTH" env-default:"30"`
	CacheSize         int           `yaml:"cache_size"          env:"SUGGESTION_CACHE_SIZE"          env-default:"1024"`
	// CacheShared lets one owner's record answer another owner's request.
	CacheShared bool `yaml:"cache_shared" env:"SUGGESTION_CACHE_SHARED" env-default:"false"`
}

// HTTPLimitConfig holds the per-IP request throttle.
type HTTPLimitConfig struct {
	Enabled           bool `yaml:"enabled"             env:"HTTP_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"HTTP_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	Burst             int  `yaml:"burst"               env:"HTTP_LIMIT_BURST"               env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
