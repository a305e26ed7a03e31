package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool-level configuration for sb-credctl.
type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Output OutputConfig `mapstructure:"output"`
}

// StoreConfig holds credential store configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty means the per-user default
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text | json
}

// NewViper creates a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("store.path", "")
	v.SetDefault("output.format", "text")

	// Bind environment variables with SB_CREDCTL_ prefix
	v.SetEnvPrefix("SB_CREDCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads configuration from environment variables and defaults.
func Load() (*Config, error) {
	return LoadWithViper(NewViper())
}

// LoadWithViper loads configuration using a pre-configured viper instance,
// allowing CLI flags to be bound before loading.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be text or json")
	}
	return nil
}

// MaskToken returns a masked form of a token for display and logging.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
