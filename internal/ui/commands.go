package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lelelada/go-contacts/internal/calendar"
	"github.com/lelelada/go-contacts/internal/config"
	"github.com/lelelada/go-contacts/internal/contact"
)

// dispatch parses one input line and executes the command. It reports true
// when the loop should quit. Blank lines just re-prompt.
func (app *GoContactsApp) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	slog.Debug(config.MsgCmdDispatch,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCommand, command)

	switch command {
	case config.CmdExit, config.CmdClose:
		return true
	case config.CmdHello:
		app.println(app.GetMsg(config.TKeyHello))
	case config.CmdHelp:
		app.println(config.UsageText)
	case config.CmdAdd:
		app.printResult(app.handleAdd(args))
	case config.CmdChange:
		app.printResult(app.handleChange(args))
	case config.CmdPhone:
		app.printResult(app.handlePhone(args))
	case config.CmdAll:
		app.println(app.renderAll())
	case config.CmdAddBirthday:
		app.printResult(app.handleAddBirthday(args))
	case config.CmdShowBirthday:
		app.printResult(app.handleShowBirthday(args))
	case config.CmdBirthdays:
		app.printResult(app.handleBirthdays(args))
	case config.CmdDelete:
		app.printResult(app.handleDelete(args))
	case config.CmdRemovePhone:
		app.printResult(app.handleRemovePhone(args))
	case config.CmdCalendar:
		app.printResult(app.handleCalendar(args))
	default:
		app.println(app.GetMsg(config.TKeyInvalidCommand))
	}
	return false
}

// printResult renders a handler outcome: the message on success, one fixed
// localized line per error kind otherwise.
func (app *GoContactsApp) printResult(msg string, err error) {
	if err != nil {
		app.println(app.errorLine(err))
		return
	}
	app.println(msg)
}

// errorLine maps an error kind to its user-facing line.
func (app *GoContactsApp) errorLine(err error) string {
	switch {
	case errors.Is(err, ErrMissingArguments):
		return app.GetMsg(config.TKeyErrMissingArgs)
	case errors.Is(err, contact.ErrInvalidPhone):
		return app.GetMsg(config.TKeyErrInvalidPhone)
	case errors.Is(err, contact.ErrInvalidDate):
		return app.GetMsg(config.TKeyErrInvalidDate)
	case errors.Is(err, contact.ErrPhoneNotFound):
		return app.GetMsg(config.TKeyErrPhoneNotFound)
	case errors.Is(err, contact.ErrContactNotFound):
		return app.GetMsg(config.TKeyErrContactNotFound)
	case errors.Is(err, ErrInvalidWindow):
		return app.GetMsg(config.TKeyErrInvalidWindow)
	case errors.Is(err, ErrCalendarFailed):
		return app.GetMsg(config.TKeyErrCalendarFailed)
	default:
		return err.Error()
	}
}

// requireArgs guards command arity.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return ErrMissingArguments
	}
	return nil
}

// handleAdd creates the record on first sight of the name and appends the
// phone. Nothing is inserted into the book until the phone validates, so a
// typo never leaves an empty contact behind.
func (app *GoContactsApp) handleAdd(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if rec, ok := app.Book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return app.GetMsg(config.TKeyContactUpdated), nil
	}

	rec := contact.NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	app.Book.Add(rec)
	return app.GetMsg(config.TKeyContactAdded), nil
}

// handleChange replaces one phone with another on an existing contact.
func (app *GoContactsApp) handleChange(args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	rec, ok := app.Book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", contact.ErrContactNotFound, args[0])
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return app.GetMsg(config.TKeyPhoneUpdated), nil
}

// handlePhone lists a contact's phones on one line.
func (app *GoContactsApp) handlePhone(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, ok := app.Book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", contact.ErrContactNotFound, args[0])
	}

	phones := rec.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, config.PhoneJoinList), nil
}

// renderAll lists every record, one line each, in insertion order.
func (app *GoContactsApp) renderAll() string {
	if app.Book.Len() == 0 {
		return app.GetMsg(config.TKeyNoContacts)
	}
	lines := make([]string, 0, app.Book.Len())
	for _, rec := range app.Book.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

// handleAddBirthday sets a contact's birthday, creating the record first
// when the name is new. The date must validate before the book is touched.
func (app *GoContactsApp) handleAddBirthday(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, raw := args[0], args[1]

	rec, ok := app.Book.Find(name)
	if !ok {
		rec = contact.NewRecord(name)
	}
	if err := rec.SetBirthday(raw); err != nil {
		return "", err
	}
	if !ok {
		app.Book.Add(rec)
	}

	return app.GetMsgData(config.TKeyBirthdayAdded, map[string]interface{}{"Name": name}), nil
}

// handleShowBirthday prints a contact's birthday. An unknown name and a
// contact without a birthday read the same to the user.
func (app *GoContactsApp) handleShowBirthday(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, ok := app.Book.Find(args[0])
	if !ok {
		return app.GetMsg(config.TKeyNoBirthday), nil
	}
	b, ok := rec.Birthday()
	if !ok {
		return app.GetMsg(config.TKeyNoBirthday), nil
	}

	return app.GetMsgData(config.TKeyBirthdayOf, map[string]interface{}{
		"Name": rec.Name(),
		"Date": b.String(),
	}), nil
}

// handleBirthdays lists upcoming birthdays, seven days ahead by default or
// an explicit number of days when given.
func (app *GoContactsApp) handleBirthdays(args []string) (string, error) {
	windowDays := config.DefaultWindowDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidWindow, args[0])
		}
		windowDays = n
	}

	upcoming := app.Book.UpcomingBirthdays(app.Clock.Now(), windowDays)
	slog.Debug(config.MsgWindowQuery,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, windowDays,
		config.LogKeyCount, len(upcoming))
	if len(upcoming) == 0 {
		return app.GetMsg(config.TKeyNoUpcoming), nil
	}

	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf(config.FormatUpcoming, u.Name, u.Date.Format(config.DateFormatBirthday))
	}
	return strings.Join(lines, "\n"), nil
}

// handleDelete removes a contact from the book.
func (app *GoContactsApp) handleDelete(args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	if _, ok := app.Book.Find(args[0]); !ok {
		return "", fmt.Errorf("%w: %q", contact.ErrContactNotFound, args[0])
	}
	app.Book.Delete(args[0])
	return app.GetMsg(config.TKeyContactDeleted), nil
}

// handleRemovePhone removes one phone from a contact.
func (app *GoContactsApp) handleRemovePhone(args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, ok := app.Book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", contact.ErrContactNotFound, args[0])
	}
	if _, err := rec.FindPhone(args[1]); err != nil {
		return "", err
	}
	rec.RemovePhone(args[1])
	return app.GetMsg(config.TKeyPhoneRemoved), nil
}

// handleCalendar exports every birthday as an iCalendar file.
func (app *GoContactsApp) handleCalendar(args []string) (string, error) {
	path := config.CalendarFileName
	if len(args) > 0 {
		path = args[0]
	}

	gen := &calendar.Generator{
		Clock:         app.Clock,
		FormatSummary: app.summaryFormatter(),
	}
	data, err := gen.Generate(app.Book, app.Settings.ReminderTrigger)
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return "", fmt.Errorf("%w: %v", ErrCalendarFailed, err)
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		slog.Error(config.ErrCalendarWrite,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, path,
			config.LogKeyError, err)
		return "", fmt.Errorf("%w: %v", ErrCalendarFailed, err)
	}

	slog.Info(config.MsgCalendarFile,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFile, path)
	return app.GetMsgData(config.TKeyCalendarSaved, map[string]interface{}{"Path": path}), nil
}
