package contact

import "time"

// Clock abstracts time.Now so the birthday window query and the calendar
// export can be tested against fixed dates.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
