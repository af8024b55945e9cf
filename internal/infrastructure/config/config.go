package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/eslsoft/flash/pkg/xdgdir"
)

// Config holds all configuration for the flash CLI.
type Config struct {
	Deck   DeckConfig   `mapstructure:"deck"`
	Review ReviewConfig `mapstructure:"review"`
	Log    LogConfig    `mapstructure:"log"`
}

// DeckConfig holds deck discovery configuration.
type DeckConfig struct {
	Dir string `mapstructure:"dir"`
}

// ReviewConfig holds review session defaults. The per-run CLI flags are
// bound over these keys.
type ReviewConfig struct {
	Shuffle     bool  `mapstructure:"shuffle"`
	ShuffleSeed int64 `mapstructure:"shuffle_seed"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(xdgdir.Config("flash"))
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix("flash")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Deck defaults
	viper.SetDefault("deck.dir", xdgdir.Data("flash"))

	// Review defaults
	viper.SetDefault("review.shuffle", false)
	viper.SetDefault("review.shuffle_seed", 0)

	// Log defaults; stdout belongs to the card renderer, so stay quiet
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}
