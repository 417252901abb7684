package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"`     // current application environment (local, dev, prod etc)
	Dataset Dataset `mapstructure:"dataset"` // question dataset locations
	Quiz    Quiz    `mapstructure:"quiz"`    // interactive session defaults
	DB      DB      `mapstructure:"database"` // optional question bank database
}

// Dataset points at the local dataset files produced by the downloader.
type Dataset struct {
	Path           string `mapstructure:"path"`            // merged questions-with-answers JSON
	RulesPDFPath   string `mapstructure:"rules_pdf_path"`  // governing FS rules document, optional
	CategorizedDir string `mapstructure:"categorized_dir"` // output directory for per-category files
}

// Quiz contains interactive session defaults.
type Quiz struct {
	DefaultCount int `mapstructure:"default_count"` // questions per session when not asked
	WrapWidth    int `mapstructure:"wrap_width"`    // terminal wrap width for question text
}

// DB contains database-related configuration parameters. The database is
// optional: when no URL is configured the trainer runs file-only.
type DB struct {
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a question bank database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A local .env is convenient during development; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("dataset.path", "data/fsquiz_questions_with_answers.json")
	v.SetDefault("dataset.rules_pdf_path", "data/FS-Rules_2026_v1.0.pdf")
	v.SetDefault("dataset.categorized_dir", "categorized_questions")
	v.SetDefault("quiz.default_count", 20)
	v.SetDefault("quiz.wrap_width", 88)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// The database URL is sensitive and comes from the environment only.
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
