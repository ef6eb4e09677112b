// Package config provides configuration management for the staking engine.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Staking    StakingConfig    `mapstructure:"staking" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Converter  ConverterConfig  `mapstructure:"converter" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// StakingConfig represents defaults applied to staking operations
type StakingConfig struct {
	DefaultBankroll float64 `mapstructure:"default_bankroll" validate:"gte=0"`
	Independent     bool    `mapstructure:"independent"`
}

// SimulationConfig represents Monte Carlo simulation configuration.
//
// MaxIndependentEdges bounds the independent-mode outcome enumeration, which
// costs O(2^n) in the number of simultaneous edges.
type SimulationConfig struct {
	Iterations          int   `mapstructure:"iterations" validate:"required,gt=0"`
	Seed                int64 `mapstructure:"seed"`
	MaxIndependentEdges int   `mapstructure:"max_independent_edges" validate:"required,gt=0,lte=30"`
}

// ConverterConfig represents odds-normalizer configuration. Mode "local" runs
// the in-process converter; mode "http" calls a shared normalizer service.
type ConverterConfig struct {
	Mode            string  `mapstructure:"mode" validate:"required,oneof=local http"`
	URL             string  `mapstructure:"url" validate:"omitempty,url"`
	APIKey          string  `mapstructure:"api_key"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
	CacheEnabled    bool    `mapstructure:"cache_enabled"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheMaxSize    int     `mapstructure:"cache_max_size" validate:"required,gt=0"`
}

// MetricsConfig represents Prometheus exposure configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"omitempty,hostname_port"`
}
