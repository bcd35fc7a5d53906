package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Input files
	RoleFile   string `mapstructure:"ROLE_FILE"`
	PlayerFile string `mapstructure:"PLAYER_FILE"`

	// Solve behaviour
	Formation string `mapstructure:"FORMATION"`
	FillBench bool   `mapstructure:"FILL_BENCH"`
	BenchSize int    `mapstructure:"BENCH_SIZE"`

	// Output file; empty writes to stdout
	Output string `mapstructure:"OUTPUT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("ROLE_FILE", "roles.txt")
	viper.SetDefault("PLAYER_FILE", "players.json")
	viper.SetDefault("FORMATION", "")
	viper.SetDefault("FILL_BENCH", false)
	viper.SetDefault("BENCH_SIZE", 7)
	viper.SetDefault("OUTPUT", "")

	viper.AutomaticEnv()

	// Read config file if present; environment-only setups are fine
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.BenchSize < 0 {
		return nil, fmt.Errorf("BENCH_SIZE must be non-negative, got %d", config.BenchSize)
	}

	return &config, nil
}

// IsDevelopment returns true when running in a development environment
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.Env) == "development"
}
