package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Suggestion.validate(); err != nil {
		return fmt.Errorf("suggestion: %w", err)
	}
	if c.HTTPLimit.Enabled && (c.HTTPLimit.RequestsPerMinute <= 0 || c.HTTPLimit.Burst <= 0) {
		return fmt.Errorf("http_limit: requests_per_minute and burst must be > 0 when enabled")
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the %s driver", DriverPostgres)
		}
		if d.MaxConns <= 0 || d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("pool sizes must satisfy 0 <= min_conns <= max_conns, max_conns > 0 (got %d/%d)", d.MinConns, d.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q", d.Driver)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case ProviderAnthropic, ProviderGemini:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for the %s provider", l.Provider)
		}
		if l.Model == "" {
			return fmt.Errorf("model is required for the %s provider", l.Provider)
		}
	case ProviderStub:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", l.MaxOutputTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.BreakerFailureThreshold == 0 {
		return fmt.Errorf("breaker_failure_threshold must be > 0")
	}
	return nil
}

func (s *SuggestionConfig) validate() error {
	if s.RateWindow <= 0 {
		return fmt.Errorf("rate_window must be > 0 (got %v)", s.RateWindow)
	}
	if s.CachePrefixLength <= 0 {
		return fmt.Errorf("cache_prefix_length must be > 0 (got %d)", s.CachePrefixLength)
	}
	if s.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be > 0 (got %d)", s.CacheSize)
	}
	return nil
}
