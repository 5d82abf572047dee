package calendar

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/lelelada/go-contacts/internal/config"
	"github.com/lelelada/go-contacts/internal/contact"
)

// SummaryFormatter renders the event title for a contact turning age in the
// event year. Age 0 is the birth itself.
type SummaryFormatter func(name string, age int) string

// Generator builds an iCalendar feed with one all-day event per contact
// birthday, spanning the previous, current and next year.
type Generator struct {
	Clock contact.Clock

	// FormatSummary localizes event titles. When nil a plain English
	// fallback is used.
	FormatSummary SummaryFormatter
}

// Generate encodes the book's birthdays as an iCalendar object. Records
// without a birthday are skipped. A non-empty reminderTrigger attaches a
// DISPLAY alarm with that ISO 8601 offset to every event.
func (g *Generator) Generate(book *contact.AddressBook, reminderTrigger string) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Birthdays are local calendar dates; only the stamp is UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	withBirthday := 0
	for _, rec := range book.Records() {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}
		withBirthday++

		if b.Next(now).Equal(todayStart) {
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompCalendar,
				config.LogKeyName, rec.Name(),
				config.LogKeyDOB, b.Time().Format(config.DateFormatFullDash))
		}

		for _, event := range g.createEvents(rec, b, reminderTrigger, now) {
			event.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, event.Component)
		}
	}

	if len(cal.Children) == 0 {
		// A stub keeps the output a valid VCALENDAR for calendar clients.
		slog.Info(config.MsgCalendarNone, config.LogKeyComponent, config.CompCalendar)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarGen,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyCount, withBirthday)
	return buf.Bytes(), nil
}

// createEvents generates the events for one record: previous, current and
// next year, so calendar apps scrolling a few months either way see entries
// without a fresh export. No event is created before the person is born.
func (g *Generator) createEvents(rec *contact.Record, b contact.Birthday, reminderTrigger string, now time.Time) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()
	birth := b.Time()

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birth.Year() {
			continue
		}

		age := y - birth.Year()
		summary := fmt.Sprintf(config.FallbackSummary, rec.Name())
		if g.FormatSummary != nil {
			summary = g.FormatSummary(rec.Name(), age)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, rec.UID(), y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to Mar 1 in common years, matching the
		// upcoming-birthdays query.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a VALUE=TEXT param on the prop.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
