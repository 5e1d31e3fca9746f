package model

import "time"

// Config holds the complete agent configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Upload     UploadConfig     `yaml:"upload"`
	LLM        LLMConfig        `yaml:"llm"`
	Routing    RoutingConfig    `yaml:"routing"`
	Validation ValidationConfig `yaml:"validation"`
	Cache      CacheConfig      `yaml:"cache"`
	Currency   CurrencyConfig   `yaml:"currency"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr      string        `yaml:"addr"`
	SampleDir string        `yaml:"sample_dir"`
	Timeout   time.Duration `yaml:"timeout"`
}

// UploadConfig configures document upload handling
type UploadConfig struct {
	Dir         string   `yaml:"dir"`
	MaxBytes    int64    `yaml:"max_bytes"`
	AllowedExts []string `yaml:"allowed_exts"`
}

// LLMConfig configures the optional LLM extraction strategy.
// Extraction falls back to the rule engine when Provider is empty or the
// service call fails.
type LLMConfig struct {
	Provider  string        `yaml:"provider"` // "openai" or "" (disabled)
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"-"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
	// RequestsPerMinute throttles calls to the external service
	RequestsPerMinute float64 `yaml:"requests_per_minute"`
}

// RoutingConfig holds the routing policy parameters. The thresholds and
// keyword lists are policy, not invariants, and may be tuned per deployment.
type RoutingConfig struct {
	FastTrackThreshold float64  `yaml:"fast_track_threshold"`
	FraudKeywords      []string `yaml:"fraud_keywords"`
	InjuryKeywords     []string `yaml:"injury_keywords"`
}

// ValidationConfig holds validation policy parameters
type ValidationConfig struct {
	// DiscrepancyRatio flags damage-vs-estimate gaps above this relative difference
	DiscrepancyRatio float64 `yaml:"discrepancy_ratio"`
}

// CacheConfig configures the extraction result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// CurrencyConfig labels monetary amounts in output
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":5000",
			SampleDir: "sample_fnol",
			Timeout:   2 * time.Minute,
		},
		Upload: UploadConfig{
			Dir:         "uploads",
			MaxBytes:    16 * 1024 * 1024, // 16MB max upload
			AllowedExts: []string{".pdf", ".txt"},
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Model:             "gpt-4o-mini",
			Timeout:           30 * time.Second,
			MaxTokens:         1500,
			RequestsPerMinute: 60,
		},
		Routing: RoutingConfig{
			FastTrackThreshold: 25000,
			FraudKeywords: []string{
				"fraud", "fraudulent", "inconsistent", "staged",
				"suspicious", "fake", "fabricated",
			},
			InjuryKeywords: []string{
				"injury", "bodily injury", "personal injury", "medical",
				"hospitalization", "hospital", "death", "fatality", "wounded",
			},
		},
		Validation: ValidationConfig{
			DiscrepancyRatio: 0.5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Currency: CurrencyConfig{
			Symbol: "₹",
			Name:   "INR",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
