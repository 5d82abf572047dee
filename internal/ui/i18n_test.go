package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestSetupI18nDetectsLanguages(t *testing.T) {
	app, _, _ := setupTestApp(t)

	assert.ElementsMatch(t, []string{"en", "uk"}, app.SupportedLanguages)
}

func TestLocalizationSwitching(t *testing.T) {
	app, _, _ := setupTestApp(t)

	assert.Equal(t, "How can I help you?", app.GetMsg("msg_hello"))

	app.Settings.Language = "uk"
	app.UpdateLocalizer()

	assert.Equal(t, "Чим можу допомогти?", app.GetMsg("msg_hello"))
	assert.Equal(t, "Додано день народження для Ada.",
		app.GetMsgData("msg_birthday_added", map[string]interface{}{"Name": "Ada"}))
}

func TestGetMsgFallsBackToKey(t *testing.T) {
	app, _, _ := setupTestApp(t)

	assert.Equal(t, "msg_does_not_exist", app.GetMsg("msg_does_not_exist"))
}

func TestGetMsgWithoutLocalizer(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Localizer = nil

	assert.Equal(t, "msg_hello", app.GetMsg("msg_hello"))
}

func TestSummaryFormatter(t *testing.T) {
	app, _, _ := setupTestApp(t)
	format := app.summaryFormatter()

	assert.Equal(t, "Birthday: Ada (34)", format("Ada", 34))
	assert.Equal(t, "Birthday: Ada (birth)", format("Ada", 0))
}

func TestSummaryFormatterLocalized(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Settings.Language = "uk"
	app.UpdateLocalizer()

	format := app.summaryFormatter()

	assert.Equal(t, "День народження: Ada (34)", format("Ada", 34))
	assert.Equal(t, "День народження: Ada (народження)", format("Ada", 0))
}

func TestSummaryFormatterFallback(t *testing.T) {
	// Scenario: formatting is requested before I18n setup. The formatter
	// must still produce a usable summary.
	app, _, _ := setupTestApp(t)
	app.Localizer = nil

	format := app.summaryFormatter()

	assert.Equal(t, "Birthday: Ada (34)", format("Ada", 34))
	assert.Equal(t, "Birthday: Ada (birth)", format("Ada", 0))
}
