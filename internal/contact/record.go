package contact

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lelelada/go-contacts/internal/config"
)

// Record holds one contact: a name, an ordered phone list and an optional
// birthday. Phones keep insertion order and duplicates are permitted. The
// uid identifies the record across saves and calendar exports.
type Record struct {
	uid      string
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name with a fresh uid.
func NewRecord(name string) *Record {
	return &Record{
		uid:  uuid.NewString(),
		name: name,
	}
}

// RestoreRecord rebuilds a record from persisted state with a known uid.
// An empty uid gets a fresh one, which migrates books saved before uids
// existed.
func RestoreRecord(uid, name string) *Record {
	if uid == "" {
		uid = uuid.NewString()
	}
	return &Record{
		uid:  uid,
		name: name,
	}
}

// Name returns the identifying contact name.
func (r *Record) Name() string {
	return r.name
}

// UID returns the stable record identifier.
func (r *Record) UID() string {
	return r.uid
}

// AddPhone validates raw and appends it to the phone list. The record is
// left unchanged when validation fails.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone equal to value. Removing an absent phone
// is a no-op, not an error.
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if string(p) != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldValue with a validated
// newValue, keeping its position. The list is untouched when oldValue is
// absent or newValue fails validation.
func (r *Record) EditPhone(oldValue, newValue string) error {
	idx := -1
	for i, p := range r.phones {
		if string(p) == oldValue {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldValue)
	}
	p, err := ParsePhone(newValue)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, error) {
	for _, p := range r.phones {
		if string(p) == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrPhoneNotFound, value)
}

// SetBirthday validates raw as DD.MM.YYYY and replaces any existing
// birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// String renders the one-line form used by the contact listing, for example
// "Contact name: Ada, phones: 0501234567; 0507654321, birthday: 15.03.1990".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = string(p)
	}
	line := fmt.Sprintf(config.FormatRecordLine, r.name, strings.Join(values, config.PhoneJoinRecord))
	if r.birthday != nil {
		line += fmt.Sprintf(config.FormatRecordBirthday, r.birthday.String())
	}
	return line
}
