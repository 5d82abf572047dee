package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lelelada/go-contacts/internal/config"
	"github.com/lelelada/go-contacts/internal/contact"
)

// -----------------------------------------------------------------------------
// Session Helpers
// -----------------------------------------------------------------------------

// runSession feeds a scripted input through the full command loop and
// returns everything the app printed.
func runSession(t *testing.T, store *MockStore, input string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	app := NewGoContactsApp(strings.NewReader(input), out, contact.NewAddressBook(), store, config.Settings{Language: "en"})

	err := app.Run(context.Background())
	return out.String(), err
}

// -----------------------------------------------------------------------------
// Command Loop Tests
// -----------------------------------------------------------------------------

func TestRun_Session(t *testing.T) {
	// Scenario: a short session that greets, stores a contact, reads it
	// back and exits. The store must be asked to persist on the way out.
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := runSession(t, store, "hello\nadd Bob 0501234567\nphone Bob\nexit\n")

	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.Contains(t, out, "Welcome to the assistant bot!")
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "0501234567")
	assert.Contains(t, out, "Good bye!")
	assert.Equal(t, 4, strings.Count(out, "Enter a command: "), "one prompt per line read")
}

func TestRun_CloseAlias(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := runSession(t, store, "close\n")

	require.NoError(t, err)
	store.AssertExpectations(t)
	assert.Contains(t, out, "Good bye!")
}

func TestRun_EOFQuits(t *testing.T) {
	// Scenario: input ends without an explicit exit (piped stdin). The
	// app must still say goodbye and persist the book.
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := runSession(t, store, "add Bob 0501234567\n")

	require.NoError(t, err)
	store.AssertExpectations(t)
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Good bye!")
}

func TestRun_SaveFailureSurfaces(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	out, err := runSession(t, store, "exit\n")

	require.Error(t, err)
	assert.Contains(t, out, "Failed to save the address book.")
}

func TestRun_UnknownCommandKeepsLooping(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := runSession(t, store, "frobnicate\nhello\nexit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid command.")
	assert.Contains(t, out, "How can I help you?")
}

func TestRun_BlankLinesReprompt(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := runSession(t, store, "\n   \nexit\n")

	require.NoError(t, err)
	assert.NotContains(t, out, "Invalid command.")
	assert.Equal(t, 3, strings.Count(out, "Enter a command: "))
}

func TestRun_ContextCancelQuits(t *testing.T) {
	// Scenario: the process receives an interrupt while the loop waits
	// for input. A reader that never delivers a line models the blocked
	// terminal.
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	in, _ := io.Pipe()
	out := &bytes.Buffer{}
	app := NewGoContactsApp(in, out, contact.NewAddressBook(), store, config.Settings{Language: "en"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)

	require.NoError(t, err)
	store.AssertExpectations(t)
	assert.Contains(t, out.String(), "Good bye!")
}

func TestRun_SessionStateAccumulates(t *testing.T) {
	// Scenario: commands within one session see each other's effects.
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	script := strings.Join([]string{
		"add Ada 0501234567",
		"add-birthday Ada 15.03.1990",
		"show-birthday Ada",
		"change Ada 0501234567 0999999999",
		"all",
		"exit",
	}, "\n") + "\n"

	out, err := runSession(t, store, script)

	require.NoError(t, err)
	assert.Contains(t, out, "Birthday added for Ada.")
	assert.Contains(t, out, "Ada's birthday is on 15.03.1990")
	assert.Contains(t, out, "Contact name: Ada, phones: 0999999999, birthday: 15.03.1990")
}
