package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook(names ...string) *AddressBook {
	book := NewAddressBook()
	for _, name := range names {
		book.Add(NewRecord(name))
	}
	return book
}

func addWithBirthday(t *testing.T, book *AddressBook, name, birthday string) {
	t.Helper()
	r := NewRecord(name)
	require.NoError(t, r.SetBirthday(birthday))
	book.Add(r)
}

func recordNames(book *AddressBook) []string {
	names := make([]string, 0, book.Len())
	for _, r := range book.Records() {
		names = append(names, r.Name())
	}
	return names
}

func TestAddressBookAddAndFind(t *testing.T) {
	book := NewAddressBook()
	r := NewRecord("Ada")

	book.Add(r)

	found, ok := book.Find("Ada")
	require.True(t, ok)
	assert.Same(t, r, found)

	_, ok = book.Find("Bob")
	assert.False(t, ok, "absence is reported through ok, not an error")
}

func TestAddressBookOverwriteKeepsPosition(t *testing.T) {
	book := newTestBook("Ada", "Bob", "Eve")

	replacement := NewRecord("Bob")
	require.NoError(t, replacement.AddPhone("0501234567"))
	book.Add(replacement)

	assert.Equal(t, []string{"Ada", "Bob", "Eve"}, recordNames(book), "overwriting must not move the record to the end")
	assert.Equal(t, 3, book.Len())

	found, ok := book.Find("Bob")
	require.True(t, ok)
	assert.Same(t, replacement, found)
}

func TestAddressBookDelete(t *testing.T) {
	book := newTestBook("Ada", "Bob", "Eve")

	book.Delete("Bob")

	assert.Equal(t, 2, book.Len())
	_, ok := book.Find("Bob")
	assert.False(t, ok)
	assert.Equal(t, []string{"Ada", "Eve"}, recordNames(book))
}

func TestAddressBookDeleteAbsent(t *testing.T) {
	book := newTestBook("Ada")

	book.Delete("Bob")

	assert.Equal(t, 1, book.Len())
}

func TestAddressBookDeleteThenReAdd(t *testing.T) {
	book := newTestBook("Ada", "Bob", "Eve")

	book.Delete("Ada")
	book.Add(NewRecord("Ada"))

	assert.Equal(t, []string{"Bob", "Eve", "Ada"}, recordNames(book), "a deleted name re-added goes to the end")
}

func TestAddressBookRecordsOrder(t *testing.T) {
	book := newTestBook("Eve", "Ada", "Bob")

	assert.Equal(t, []string{"Eve", "Ada", "Bob"}, recordNames(book), "listing follows insertion order, not name order")
}

// TestUpcomingBirthdays verifies the seven-day window: today and the
// following seven days inclusive, skipping records without a birthday.
func TestUpcomingBirthdays(t *testing.T) {
	ref := date(2024, 1, 1)

	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "03.01.1990")
	addWithBirthday(t, book, "Bob", "15.01.1985")
	addWithBirthday(t, book, "Eve", "01.01.2000")
	addWithBirthday(t, book, "Mallory", "08.01.1970")
	book.Add(NewRecord("Trent"))

	got := book.UpcomingBirthdays(ref, 7)

	require.Len(t, got, 3, "Bob is two weeks out and Trent has no birthday")
	assert.Equal(t, Upcoming{Name: "Ada", Date: date(2024, 1, 3)}, got[0])
	assert.Equal(t, Upcoming{Name: "Eve", Date: date(2024, 1, 1)}, got[1], "a birthday today is included")
	assert.Equal(t, Upcoming{Name: "Mallory", Date: date(2024, 1, 8)}, got[2], "the last day of the window is included")
}

func TestUpcomingBirthdaysDayAfterWindow(t *testing.T) {
	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "09.01.1990")

	got := book.UpcomingBirthdays(date(2024, 1, 1), 7)

	assert.Empty(t, got, "day eight is outside a seven-day window")
}

func TestUpcomingBirthdaysExcludesRolledOver(t *testing.T) {
	// A birthday already behind the reference re-anchors to the next year
	// and cannot fall inside a short window.
	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "01.01.1990")

	got := book.UpcomingBirthdays(date(2024, 6, 10), 7)

	assert.Empty(t, got)
}

func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "29.02.2000")

	got := book.UpcomingBirthdays(date(2025, 2, 26), 7)

	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 3, 1), got[0].Date, "in a common year the leap-day birthday lands on Mar 1")
}

func TestUpcomingBirthdaysTurnOfYear(t *testing.T) {
	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "02.01.1990")

	got := book.UpcomingBirthdays(date(2024, 12, 30), 7)

	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 1, 2), got[0].Date, "the window crosses into January")
}

func TestUpcomingBirthdaysCustomWindow(t *testing.T) {
	book := NewAddressBook()
	addWithBirthday(t, book, "Ada", "20.01.1990")

	assert.Empty(t, book.UpcomingBirthdays(date(2024, 1, 1), 7))
	assert.Len(t, book.UpcomingBirthdays(date(2024, 1, 1), 30), 1)
}

func TestUpcomingBirthdaysEmptyBook(t *testing.T) {
	book := NewAddressBook()

	assert.Empty(t, book.UpcomingBirthdays(date(2024, 1, 1), 7))
}

func TestUpcomingBirthdaysKeepsInsertionOrder(t *testing.T) {
	ref := date(2024, 1, 1)

	book := NewAddressBook()
	addWithBirthday(t, book, "Eve", "05.01.2000")
	addWithBirthday(t, book, "Ada", "02.01.1990")

	got := book.UpcomingBirthdays(ref, 7)

	require.Len(t, got, 2)
	assert.Equal(t, "Eve", got[0].Name, "results follow book order, not date order")
	assert.Equal(t, "Ada", got[1].Name)
}
