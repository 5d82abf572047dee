package contact

import "time"

// AddressBook maps contact names to records while preserving insertion
// order for listings. At most one record per name: re-adding a name
// overwrites its record but keeps the original position.
//
// AddressBook is not safe for concurrent use; the application mutates it
// from a single command loop.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// Add inserts the record, overwriting any record with the same name.
func (ab *AddressBook) Add(r *Record) {
	if _, ok := ab.records[r.Name()]; !ok {
		ab.order = append(ab.order, r.Name())
	}
	ab.records[r.Name()] = r
}

// Find returns the record for name. Absence is a normal outcome, reported
// through ok rather than an error.
func (ab *AddressBook) Find(name string) (*Record, bool) {
	r, ok := ab.records[name]
	return r, ok
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (ab *AddressBook) Delete(name string) {
	if _, ok := ab.records[name]; !ok {
		return
	}
	delete(ab.records, name)
	for i, n := range ab.order {
		if n == name {
			ab.order = append(ab.order[:i], ab.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of records.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}

// Records returns the records in insertion order.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(ab.order))
	for _, name := range ab.order {
		out = append(out, ab.records[name])
	}
	return out
}

// Upcoming is one result of the upcoming-birthdays query: the contact name
// and the re-anchored occurrence date.
type Upcoming struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns, in insertion order, every record whose next
// birthday occurrence falls within windowDays of ref, both ends inclusive.
// Only the calendar date of ref matters; its time of day is ignored.
func (ab *AddressBook) UpcomingBirthdays(ref time.Time, windowDays int) []Upcoming {
	loc := ref.Location()
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	windowEnd := refDate.AddDate(0, 0, windowDays)

	var upcoming []Upcoming
	for _, r := range ab.Records() {
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		next := b.Next(ref)
		if next.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, Upcoming{Name: r.Name(), Date: next})
	}
	return upcoming
}
