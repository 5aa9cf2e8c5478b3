// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App           AppConfig
	Logger        LoggerConfig
	Storage       StorageConfig
	Autosave      AutosaveConfig
	Recorder      RecorderConfig
	Transcription TranscriptionConfig
	Seed          SeedConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// Store backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// StorageConfig holds persistent store configuration.
type StorageConfig struct {
	// DataPath is the base directory for all persisted state (default: ~/NoteVault).
	DataPath string
	// Backend selects the store implementation: badger (default) or sqlite.
	Backend string
	// ExportDir is where export documents are written (default: {data}/exports).
	ExportDir string
}

// AutosaveConfig holds editor autosave configuration.
type AutosaveConfig struct {
	// Debounce is how long a burst of edits is coalesced before the
	// pending write is committed (default: 1s, matching the editor).
	Debounce time.Duration
}

// RecorderConfig holds voice capture configuration.
type RecorderConfig struct {
	// Encodings is the preference-ordered list of audio encodings. The
	// recorder picks the first one the capture device supports.
	Encodings []string
}

// TranscriptionConfig holds transcription collaborator configuration.
type TranscriptionConfig struct {
	// Timeout bounds a single transcription call (default: 10s).
	Timeout time.Duration
}

// SeedConfig holds first-run bootstrap configuration.
type SeedConfig struct {
	// Demo seeds demonstration content into an empty store (default: true).
	Demo bool
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Base path for persisted state")
	backend := flag.String("store-backend", "", "Store backend (badger, sqlite)")
	exportDir := flag.String("export-dir", "", "Directory for export documents")
	autosaveDebounce := flag.String("autosave-debounce", "", "Autosave debounce window (default: 1s)")
	recorderEncodings := flag.String("recorder-encodings", "", "Comma-separated audio encoding preference list")
	transcriptionTimeout := flag.String("transcription-timeout", "", "Transcription call timeout (default: 10s)")
	seedDemo := flag.String("seed-demo", "", "Seed demo content on first run (default: true)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	// Parse flags but don't exit on error - we want to handle it gracefully.
	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DataPath:  getConfigValue(*dataPath, "DATA_PATH", ""),
			Backend:   getConfigValue(*backend, "STORE_BACKEND", BackendBadger),
			ExportDir: getConfigValue(*exportDir, "EXPORT_DIR", ""),
		},
		Recorder: RecorderConfig{
			Encodings: splitList(getConfigValue(*recorderEncodings, "RECORDER_ENCODINGS", "audio/webm,audio/ogg,audio/wav")),
		},
		Seed: SeedConfig{
			Demo: getBoolConfigValue(*seedDemo, "SEED_DEMO", true),
		},
	}

	// Parse durations.
	debounceStr := getConfigValue(*autosaveDebounce, "AUTOSAVE_DEBOUNCE", "1s")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid autosave debounce %q: %w", debounceStr, err)
	}
	cfg.Autosave.Debounce = debounce

	timeoutStr := getConfigValue(*transcriptionTimeout, "TRANSCRIPTION_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid transcription timeout %q: %w", timeoutStr, err)
	}
	cfg.Transcription.Timeout = timeout

	// Expand and validate paths.
	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}
	if err := cfg.expandExportDir(); err != nil {
		return nil, fmt.Errorf("invalid export dir: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Storage.Backend != BackendBadger && c.Storage.Backend != BackendSQLite {
		return fmt.Errorf("invalid store backend: %s (must be badger or sqlite)", c.Storage.Backend)
	}

	if c.Storage.DataPath == "" {
		return errors.New("data path cannot be empty after expansion")
	}

	if len(c.Recorder.Encodings) == 0 {
		return errors.New("recorder encoding preference list cannot be empty")
	}

	if c.Autosave.Debounce <= 0 {
		return errors.New("autosave debounce must be positive")
	}
	if c.Transcription.Timeout <= 0 {
		return errors.New("transcription timeout must be positive")
	}

	return nil
}

// DatabasePath returns the store location for the configured backend.
func (c *Config) DatabasePath() string {
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(c.Storage.DataPath, "notevault.db")
	}
	return filepath.Join(c.Storage.DataPath, "db")
}

// expandDataPath expands ~ and makes the path absolute.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "NoteVault")

	expanded, err := expandPath(c.Storage.DataPath, defaultPath)
	if err != nil {
		return err
	}
	c.Storage.DataPath = expanded
	return nil
}

// expandExportDir expands ~ and makes the path absolute.
// Defaults to {data}/exports if not specified.
func (c *Config) expandExportDir() error {
	defaultPath := filepath.Join(c.Storage.DataPath, "exports")

	expanded, err := expandPath(c.Storage.ExportDir, defaultPath)
	if err != nil {
		return err
	}
	c.Storage.ExportDir = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// splitList splits a comma-separated value into trimmed non-empty items.
func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
