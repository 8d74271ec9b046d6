package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultQuoteTableFile    = "2026 TableX Quote Table.xlsx"
	defaultQuoteQueueFile    = "2026 QUOTE QUEUE.xlsx"
	defaultQuoteTemplateFile = "MAF-2026 Quote Template.xlsx"
)

type Config struct {
	SourceDir string
	OutputDir string

	QuoteTablePath    string
	QuoteQueuePath    string
	QuoteTemplatePath string

	QueueDefaultYear int

	// SQLitePath enables the SQLite mirror of every output when non-empty.
	SQLitePath string

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	sourceDir := getEnv("SOURCE_DIR", filepath.Join(cwd, "data", "source"))
	cfg := Config{
		SourceDir: sourceDir,
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		QuoteTablePath:    getEnv("QUOTE_TABLE_PATH", filepath.Join(sourceDir, defaultQuoteTableFile)),
		QuoteQueuePath:    getEnv("QUOTE_QUEUE_PATH", filepath.Join(sourceDir, defaultQuoteQueueFile)),
		QuoteTemplatePath: getEnv("QUOTE_TEMPLATE_PATH", filepath.Join(sourceDir, defaultQuoteTemplateFile)),

		QueueDefaultYear: getEnvInt("QUEUE_DEFAULT_YEAR", 2023),

		SQLitePath: getEnv("SQLITE_PATH", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

// Validate checks the settings every run depends on.
func (c Config) Validate() error {
	checks := []struct{ name, value string }{
		{"QUOTE_TABLE_PATH", c.QuoteTablePath},
		{"QUOTE_QUEUE_PATH", c.QuoteQueuePath},
		{"QUOTE_TEMPLATE_PATH", c.QuoteTemplatePath},
		{"OUTPUT_DIR", c.OutputDir},
	}
	for _, check := range checks {
		if err := c.Require(check.name, check.value); err != nil {
			return err
		}
	}
	if c.QueueDefaultYear < 2000 || c.QueueDefaultYear > 2099 {
		return fmt.Errorf("QUEUE_DEFAULT_YEAR out of range: %d", c.QueueDefaultYear)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
