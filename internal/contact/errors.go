package contact

import (
	"errors"

	"github.com/lelelada/go-contacts/internal/config"
)

// Validation and lookup failures are reported through these sentinels so
// callers can match kinds with errors.Is and render one fixed line per kind.
// The core itself never prints or logs.
var (
	ErrInvalidPhone    = errors.New(config.ErrPhoneDigits)
	ErrInvalidDate     = errors.New(config.ErrDateFormat)
	ErrPhoneNotFound   = errors.New(config.ErrPhoneMissing)
	ErrContactNotFound = errors.New(config.ErrContactMissing)
)
