package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
)

// Settings holds the runtime configuration resolved from the environment.
// Flag values override these in main.
type Settings struct {
	BookPath        string
	Language        string
	ReminderTrigger string // ISO8601 duration for calendar alarms, e.g. "-P1D"; empty disables
}

// LoadSettings resolves settings from a .env file (when present) and the
// process environment, falling back to defaults.
func LoadSettings() (Settings, error) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load(DotenvFile)

	s := Settings{
		Language:        getEnv(EnvLanguage, DefaultLanguage),
		ReminderTrigger: getEnv(EnvReminder, DefaultReminderTrigger),
	}

	if !slices.Contains(SupportedLanguages, s.Language) {
		s.Language = DefaultLanguage
	}

	path := os.Getenv(EnvBookFile)
	if path == "" {
		var err error
		path, err = DefaultBookPath()
		if err != nil {
			return Settings{}, err
		}
	}
	s.BookPath = path

	return s, nil
}

// DefaultBookPath determines the platform-specific config location for the
// address book file, creating the app directory when needed.
func DefaultBookPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}

	appDir := filepath.Join(configDir, AppID)

	if err := os.MkdirAll(appDir, DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", ErrCreateDir, err)
	}

	return filepath.Join(appDir, BookFileName), nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
