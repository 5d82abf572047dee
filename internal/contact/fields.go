package contact

import (
	"fmt"
	"time"

	"github.com/lelelada/go-contacts/internal/config"
)

// Phone is a validated phone number, exactly ten decimal digits.
// Construct through ParsePhone; the zero value is not a valid phone.
type Phone string

// ParsePhone validates raw into a Phone. The input must already be exactly
// ten ASCII digits; separators and country prefixes are not stripped.
func ParsePhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneNumberLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
		}
	}
	return Phone(raw), nil
}

func (p Phone) String() string {
	return string(p)
}

// Birthday is a calendar date parsed from DD.MM.YYYY input. It carries no
// time-of-day or timezone meaning; only year, month and day are significant.
type Birthday time.Time

// ParseBirthday parses a strict DD.MM.YYYY date. Day and month must be two
// digits, the year four, and impossible dates such as 31.04.2000 are
// rejected.
func ParseBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday(t), nil
}

// String renders the date back in the DD.MM.YYYY input format.
func (b Birthday) String() string {
	return time.Time(b).Format(config.DateFormatBirthday)
}

// Time exposes the underlying date value.
func (b Birthday) Time() time.Time {
	return time.Time(b)
}

// Next returns the birthday's next occurrence relative to ref: the month and
// day re-anchored onto ref's year, or onto the following year when that date
// has already passed. Feb 29 normalizes to Mar 1 in non-leap years, which is
// the rule this application applies to leaplings.
func (b Birthday) Next(ref time.Time) time.Time {
	t := time.Time(b)
	loc := ref.Location()

	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	candidate := time.Date(ref.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(refDate) {
		candidate = time.Date(ref.Year()+1, t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}
