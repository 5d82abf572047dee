package ui

import (
	"errors"

	"github.com/lelelada/go-contacts/internal/config"
)

// Loop-level failures with their own user-facing lines.
var (
	ErrMissingArguments = errors.New(config.ErrArgsMissing)
	ErrInvalidWindow    = errors.New(config.ErrWindowDays)
	ErrCalendarFailed   = errors.New(config.ErrCalendarExport)
)
