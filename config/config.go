package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Search     SearchConfig     `mapstructure:"search"`
	Validation ValidationConfig `mapstructure:"validation"`
	Log        LogConfig        `mapstructure:"log"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	HistorySize     int     `mapstructure:"history_size"`     // Distinct recent queries kept per engine
	SuggestionLimit int     `mapstructure:"suggestion_limit"` // Maximum suggestions per result
	FuzzyRatio      float64 `mapstructure:"fuzzy_ratio"`      // Edit distance allowed per query word length
	Locale          string  `mapstructure:"locale"`           // BCP 47 tag used when sorting strings
	DefaultLimit    int     `mapstructure:"default_limit"`    // Page size used by the CLI when --limit is unset
}

// ValidationConfig contains form validation settings
type ValidationConfig struct {
	MaxUploadMB      float64  `mapstructure:"max_upload_mb"`
	AllowedFileTypes []string `mapstructure:"allowed_file_types"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level            string        `mapstructure:"level"`  // debug, info, warn, error
	Format           string        `mapstructure:"format"` // json, console
	Output           string        `mapstructure:"output"` // console, file, both
	File             LogFileConfig `mapstructure:"file"`
	EnableStacktrace bool          `mapstructure:"enable_stacktrace"`
}

// LogFileConfig contains log rotation settings
type LogFileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"` // in MB
	MaxAge     int    `mapstructure:"max_age"`  // in days
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// LoadConfig loads configuration from file and environment variables.
// An explicit configPath must exist; without one the usual locations are
// searched and defaults are used when nothing is found.
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("records")
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/open-academic-records")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("RECORDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("search.history_size", 10)
	viper.SetDefault("search.suggestion_limit", 5)
	viper.SetDefault("search.fuzzy_ratio", 0.3)
	viper.SetDefault("search.locale", "en")
	viper.SetDefault("search.default_limit", 20)
	viper.SetDefault("validation.max_upload_mb", 10)
	viper.SetDefault("validation.allowed_file_types", []string{
		"application/pdf",
		"image/jpeg",
		"image/png",
	})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output", "console")
	viper.SetDefault("log.enable_stacktrace", false)
	viper.SetDefault("log.file.filename", "logs/records.log")
	viper.SetDefault("log.file.max_size", 100)
	viper.SetDefault("log.file.max_age", 30)
	viper.SetDefault("log.file.max_backups", 10)
	viper.SetDefault("log.file.compress", true)
}

// Validate checks ranges that would otherwise make the engines misbehave
func (c *Config) Validate() error {
	if c.Search.HistorySize < 1 {
		return errors.New("search.history_size must be at least 1")
	}
	if c.Search.SuggestionLimit < 1 {
		return errors.New("search.suggestion_limit must be at least 1")
	}
	if c.Search.FuzzyRatio <= 0 || c.Search.FuzzyRatio > 1 {
		return errors.New("search.fuzzy_ratio must be greater than 0 and at most 1")
	}
	if c.Validation.MaxUploadMB <= 0 {
		return errors.New("validation.max_upload_mb must be greater than 0")
	}
	return nil
}
