package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration from an optional file, falling back to
// built-in defaults for everything the file does not set. A missing file is
// not an error; the defaults alone form a valid configuration.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := newViper()
	setDefaults(v)

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			expanded := os.ExpandEnv(string(data))
			if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("STAKE_ENGINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stake-engine")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("staking.default_bankroll", 100.0)
	v.SetDefault("staking.independent", false)

	v.SetDefault("simulation.iterations", 100)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.max_independent_edges", 20)

	v.SetDefault("converter.mode", "local")
	v.SetDefault("converter.timeout_seconds", 10)
	v.SetDefault("converter.max_retries", 3)
	v.SetDefault("converter.rate_limit", 10.0)
	v.SetDefault("converter.cache_enabled", true)
	v.SetDefault("converter.cache_ttl_seconds", 300)
	v.SetDefault("converter.cache_max_size", 10000)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", "localhost:9090")
}
