package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lelelada/go-contacts/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each shipped locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)

	keysToCheck := []string{
		config.TKeyWelcome,
		config.TKeyPrompt,
		config.TKeyGoodbye,
		config.TKeyHello,
		config.TKeyInvalidCommand,
		config.TKeyContactAdded,
		config.TKeyContactUpdated,
		config.TKeyContactDeleted,
		config.TKeyPhoneUpdated,
		config.TKeyPhoneRemoved,
		config.TKeyNoContacts,
		config.TKeyBirthdayAdded,
		config.TKeyBirthdayOf,
		config.TKeyNoBirthday,
		config.TKeyNoUpcoming,
		config.TKeyCalendarSaved,
		config.TKeyEvtSummaryAge,
		config.TKeyEvtSummaryBirth,
		config.TKeyErrInvalidPhone,
		config.TKeyErrInvalidDate,
		config.TKeyErrPhoneNotFound,
		config.TKeyErrContactNotFound,
		config.TKeyErrMissingArgs,
		config.TKeyErrInvalidWindow,
		config.TKeyErrSaveFailed,
		config.TKeyErrCalendarFailed,
	}

	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			file := "active." + lang + ".json"

			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", file)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				// Fallback for running tests from different CWD
				path = filepath.Join("..", "..", "internal", "ui", "locales", file)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", file)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			// Verify consistency
			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, file)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				_, exists := definedKeys[jsonKey]
				if !exists {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}
