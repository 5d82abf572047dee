package storage

import (
	"context"

	"github.com/lelelada/go-contacts/internal/contact"
)

// Store loads and saves an address book. Implementations own the format and
// the location; callers only see a book.
type Store interface {
	Load(ctx context.Context) (*contact.AddressBook, error)
	Save(ctx context.Context, book *contact.AddressBook) error
}
