package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// loggingConfig wraps Config for YAML parsing.
type loggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/labyrinth.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing file yields defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var wrapped loggingConfig
			if err := yaml.Unmarshal(data, &wrapped); err == nil {
				if wrapped.Logging.Level != "" {
					config.Level = wrapped.Logging.Level
				}
				config.ConsoleEnabled = wrapped.Logging.ConsoleEnabled
				if wrapped.Logging.ConsoleFormat != "" {
					config.ConsoleFormat = wrapped.Logging.ConsoleFormat
				}
				config.FileEnabled = wrapped.Logging.FileEnabled
				if wrapped.Logging.FilePath != "" {
					config.FilePath = wrapped.Logging.FilePath
				}
				if wrapped.Logging.FileFormat != "" {
					config.FileFormat = wrapped.Logging.FileFormat
				}
				if wrapped.Logging.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = wrapped.Logging.FileMaxSizeMB
				}
				if wrapped.Logging.FileMaxBackups > 0 {
					config.FileMaxBackups = wrapped.Logging.FileMaxBackups
				}
				if wrapped.Logging.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = wrapped.Logging.FileMaxAgeDays
				}
			}
		}
	}

	// Environment overrides take precedence over the file.
	if level := os.Getenv("LABYRINTH_LOG_LEVEL"); level != "" {
		config.Level = level
	}
	if console := os.Getenv("LABYRINTH_LOG_CONSOLE"); console != "" {
		if enabled, err := strconv.ParseBool(console); err == nil {
			config.ConsoleEnabled = enabled
		}
	}
	if file := os.Getenv("LABYRINTH_LOG_FILE"); file != "" {
		config.FileEnabled = true
		config.FilePath = file
	}

	return config, nil
}
