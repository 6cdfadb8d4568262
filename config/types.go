package config

import "time"

// Config represents the complete CLI configuration structure.
type Config struct {
	API     APIConfig         `mapstructure:"api"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Filters map[string]string `mapstructure:"filters"`
}

// APIConfig holds Jobo API connection details.
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
