package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hypotest/internal/errors"

	"github.com/joho/godotenv"
)

// Report formats understood by the report renderer.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config represents the complete application configuration
type Config struct {
	Test    TestConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// TestConfig holds the hypothesis test settings
type TestConfig struct {
	Alpha         float64
	EqualVariance bool
}

// ReportConfig holds console report settings
type ReportConfig struct {
	Format string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Test:    TestConfig{Alpha: 0.05, EqualVariance: true},
		Report:  ReportConfig{Format: FormatText},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// Load reads an optional .env file, then configuration from environment variables, and validates it.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	config := Default()
	if err := loadTestConfig(&config.Test); err != nil {
		return nil, err
	}
	config.Report.Format = strings.ToLower(getEnvOrDefault("TTEST_REPORT_FORMAT", config.Report.Format))
	config.Logging.Level = getEnvOrDefault("LOG_LEVEL", config.Logging.Level)

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// loadTestConfig overlays the environment on the defaults already in tc.
func loadTestConfig(tc *TestConfig) error {
	alpha, err := getEnvFloatOrDefault("TTEST_ALPHA", tc.Alpha)
	if err != nil {
		return err
	}
	equalVariance, err := getEnvBoolOrDefault("TTEST_EQUAL_VARIANCE", tc.EqualVariance)
	if err != nil {
		return err
	}
	tc.Alpha = alpha
	tc.EqualVariance = equalVariance
	return nil
}

// Validate checks the fields the report and calculator depend on.
func Validate(config *Config) error {
	if !(config.Test.Alpha > 0 && config.Test.Alpha < 1) {
		return errors.ConfigInvalid(fmt.Sprintf("alpha must be in (0, 1), got %v", config.Test.Alpha))
	}
	switch config.Report.Format {
	case FormatText, FormatMarkdown, FormatHTML:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown report format %q", config.Report.Format))
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be a number, got %q", key, value))
	}
	return floatValue, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, errors.ConfigInvalid(fmt.Sprintf("%s must be a boolean, got %q", key, value))
	}
	return boolValue, nil
}
