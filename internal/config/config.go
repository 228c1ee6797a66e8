// Package config loads farmfilter CLI settings from defaults, an optional
// YAML file, and FARMFILTER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/forestrie/go-farmfilter/bloom"
)

const (
	configName      = ".farmfilter"
	configType      = "yaml"
	envPrefix       = "FARMFILTER"
	envKeySeparator = "_"
)

// Defaults.
const (
	DefaultHash      = bloom.DefaultHashName
	DefaultErrorRate = bloom.DefaultErrorRate
	DefaultCompress  = false
	DefaultLogLevel  = "INFO"
	DefaultBits      = bloom.DefaultBits
	DefaultHashes    = bloom.DefaultHashes
)

var (
	ErrInvalidErrorRate = errors.New("config: error_rate must be in the open interval (0, 1)")
	ErrInvalidHashes    = errors.New("config: hashes must be between 1 and 255")
	ErrInvalidBits      = errors.New("config: bits must be positive")
)

// Config holds settings shared by the CLI commands.
type Config struct {
	// Hash names the bloom hash function, see bloom.HashNames.
	Hash      string  `mapstructure:"hash"`
	ErrorRate float64 `mapstructure:"error_rate"`
	Compress  bool    `mapstructure:"compress"`
	LogLevel  string  `mapstructure:"log_level"`
	Bits      uint64  `mapstructure:"bits"`
	Hashes    int     `mapstructure:"hashes"`
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty it is used as the explicit config file path.
// Otherwise .farmfilter.yaml is searched in CWD and $HOME; a missing file is
// not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("hash", DefaultHash)
	v.SetDefault("error_rate", DefaultErrorRate)
	v.SetDefault("compress", DefaultCompress)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("bits", DefaultBits)
	v.SetDefault("hashes", DefaultHashes)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := bloom.HashByName(c.Hash); err != nil {
		return fmt.Errorf("hash %q: %w", c.Hash, err)
	}
	if !(c.ErrorRate > 0 && c.ErrorRate < 1) {
		return ErrInvalidErrorRate
	}
	if c.Bits == 0 {
		return ErrInvalidBits
	}
	if c.Hashes < 1 || c.Hashes > bloom.MaxSeedsV1 {
		return ErrInvalidHashes
	}
	return nil
}

// HashFunc returns the configured hash function.
func (c *Config) HashFunc() bloom.HashFunc {
	h, err := bloom.HashByName(c.Hash)
	if err != nil {
		return bloom.DefaultHash
	}
	return h
}
