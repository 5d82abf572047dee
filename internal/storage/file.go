package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/lelelada/go-contacts/internal/config"
	"github.com/lelelada/go-contacts/internal/contact"
)

// FileStore persists the address book as a vCard 4.0 stream, one card per
// record. Saves go through a temporary file in the same directory followed
// by a rename, so an interrupted write never truncates the existing book.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the vCard file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the book from disk. A missing file is a normal first run and
// yields an empty book; any other failure is an error, so a corrupt book is
// reported instead of being silently replaced by an empty one.
func (s *FileStore) Load(ctx context.Context) (*contact.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(config.MsgBookMissing,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyFile, s.path)
		return contact.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer f.Close()

	book, err := decodeBook(ctx, f)
	if err != nil {
		return nil, err
	}

	slog.Info(config.MsgBookLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.path,
		config.LogKeyRecords, book.Len())
	return book, nil
}

// Save writes the whole book, replacing the previous file only after the new
// content is fully on disk.
func (s *FileStore) Save(ctx context.Context, book *contact.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	tmp, err := os.CreateTemp(dir, config.BookFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeBook(tmp, book); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	if err := os.Chmod(tmp.Name(), config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookReplace, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.path,
		config.LogKeyRecords, book.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return nil
}

func encodeBook(w io.Writer, book *contact.AddressBook) error {
	enc := vcard.NewEncoder(w)
	for _, rec := range book.Records() {
		if err := enc.Encode(cardFromRecord(rec)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBookEncode, err)
		}
	}
	return nil
}

func decodeBook(ctx context.Context, r io.Reader) (*contact.AddressBook, error) {
	book := contact.NewAddressBook()
	decoder := vcard.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookDecode, err)
		}

		rec, err := recordFromCard(card)
		if err != nil {
			return nil, err
		}
		book.Add(rec)
	}
	return book, nil
}

func cardFromRecord(rec *contact.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(config.VCardFN, rec.Name())
	card.SetValue(config.VCardUID, rec.UID())
	for _, p := range rec.Phones() {
		card.AddValue(config.VCardTel, p.String())
	}
	if b, ok := rec.Birthday(); ok {
		card.SetValue(config.VCardBDAY, b.Time().Format(config.DateFormatFullDash))
	}
	vcard.ToV4(card)
	return card
}

// recordFromCard rebuilds a record, re-validating phones so a hand-edited
// file cannot smuggle invalid data past the model.
func recordFromCard(card vcard.Card) (*contact.Record, error) {
	name := card.Value(config.VCardFN)
	if name == "" {
		return nil, errors.New(config.ErrCardNoName)
	}

	rec := contact.RestoreRecord(card.Value(config.VCardUID), name)
	for _, tel := range card.Values(config.VCardTel) {
		if err := rec.AddPhone(tel); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookDecode, err)
		}
	}

	if raw := card.Value(config.VCardBDAY); raw != "" {
		t, err := parseBDay(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookDecode, err)
		}
		if err := rec.SetBirthday(t.Format(config.DateFormatBirthday)); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookDecode, err)
		}
	}
	return rec, nil
}

// parseBDay accepts the layout we write plus the compact vCard form, so
// books exported by other tools still load.
func parseBDay(value string) (time.Time, error) {
	layouts := []string{config.DateFormatFullDash, config.DateFormatFullBasic}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: %q", config.ErrCardBadBDay, value)
}
