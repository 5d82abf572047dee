package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/lelelada/go-contacts/internal/config"
	"github.com/lelelada/go-contacts/internal/contact"
	"github.com/lelelada/go-contacts/internal/storage"
)

// GoContactsApp encapsulates the command loop, its dependencies and the
// translation state. All book mutations happen on the loop goroutine.
type GoContactsApp struct {
	In  io.Reader
	Out io.Writer

	Book  *contact.AddressBook
	Store storage.Store
	Clock contact.Clock // Injected clock for testability

	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer

	Settings config.Settings

	SupportedLanguages []string
}

// NewGoContactsApp constructs the application and wires dependencies.
func NewGoContactsApp(in io.Reader, out io.Writer, book *contact.AddressBook, store storage.Store, settings config.Settings) *GoContactsApp {
	return &GoContactsApp{
		In:                 in,
		Out:                out,
		Book:               book,
		Store:              store,
		Clock:              contact.RealClock{}, // Default to real clock in production
		Settings:           settings,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// inputEvent carries one line of user input, or the reason input ended.
type inputEvent struct {
	line string
	err  error // io.EOF on normal end of input
}

// Run starts the command loop and blocks until the user quits, input ends,
// or ctx is cancelled. The book is saved on every exit path.
func (app *GoContactsApp) Run(ctx context.Context) error {
	app.SetupI18n()

	slog.Info(config.MsgLoopStart, config.LogKeyComponent, config.CompUI)
	defer slog.Info(config.MsgLoopStop, config.LogKeyComponent, config.CompUI)

	app.println(app.GetMsg(config.TKeyWelcome))

	events := make(chan inputEvent, config.ChannelBufferSize)
	go app.readInput(events)

	for {
		app.print(app.GetMsg(config.TKeyPrompt))

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			app.println("")
			return app.quit()

		case ev := <-events:
			if errors.Is(ev.err, io.EOF) {
				// End of piped input quits like exit/close.
				app.println("")
				return app.quit()
			}
			if ev.err != nil {
				if err := app.shutdownSave(); err != nil {
					slog.Error(config.ErrBookSave,
						config.LogKeyComponent, config.CompUI,
						config.LogKeyError, err)
				}
				return fmt.Errorf("%s: %w", config.ErrReadInput, ev.err)
			}
			if app.dispatch(ev.line) {
				return app.quit()
			}
		}
	}
}

// readInput feeds user lines to the loop, in order, on a single channel so
// the final EOF can never overtake a pending line. Reads on app.In are not
// interruptible, so after a context cancel this goroutine stays parked in
// Scan or the channel send until the process exits.
func (app *GoContactsApp) readInput(events chan<- inputEvent) {
	scanner := bufio.NewScanner(app.In)
	for scanner.Scan() {
		events <- inputEvent{line: scanner.Text()}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	events <- inputEvent{err: err}
}

// quit prints the farewell and persists the book.
func (app *GoContactsApp) quit() error {
	app.println(app.GetMsg(config.TKeyGoodbye))
	if err := app.shutdownSave(); err != nil {
		app.println(app.GetMsg(config.TKeyErrSaveFailed))
		return err
	}
	return nil
}

// shutdownSave saves with its own deadline; the loop context may already be
// cancelled by the time we get here.
func (app *GoContactsApp) shutdownSave() error {
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownSaveTimeout)
	defer cancel()
	return app.Store.Save(ctx, app.Book)
}

func (app *GoContactsApp) print(s string) {
	fmt.Fprint(app.Out, s)
}

func (app *GoContactsApp) println(s string) {
	fmt.Fprintln(app.Out, s)
}
