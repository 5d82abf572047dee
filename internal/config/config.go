package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName          = "Go Contacts"
	AppID            = "com.github.lelelada.go-contacts"
	LogFileName      = "app.log"
	BookFileName     = "addressbook.vcf"
	CalendarFileName = "birthdays.ics"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// The address book and logs are personal data.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagFile        = "file"
	FlagLang        = "lang"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescFile    = "Path to the address book file (overrides " + EnvBookFile + ")"
	FlagDescLang    = "Interface language (overrides " + EnvLanguage + ")"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment & Settings
// -----------------------------------------------------------------------------

const (
	// DotenvFile is loaded from the working directory when present.
	DotenvFile = ".env"

	EnvBookFile = "GO_CONTACTS_FILE"
	EnvLanguage = "GO_CONTACTS_LANG"
	EnvReminder = "GO_CONTACTS_CALENDAR_REMINDER"
)

// SupportedLanguages defines the list of available interface languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// REPL Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdCalendar     = "calendar"
	CmdExit         = "exit"
	CmdClose        = "close"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome        = "msg_welcome"
	TKeyPrompt         = "msg_prompt"
	TKeyGoodbye        = "msg_goodbye"
	TKeyHello          = "msg_hello"
	TKeyInvalidCommand = "msg_invalid_command"
	TKeyContactAdded   = "msg_contact_added"
	TKeyContactUpdated = "msg_contact_updated"
	TKeyContactDeleted = "msg_contact_deleted"
	TKeyPhoneUpdated   = "msg_phone_updated"
	TKeyPhoneRemoved   = "msg_phone_removed"
	TKeyNoContacts     = "msg_no_contacts"
	TKeyBirthdayAdded  = "msg_birthday_added" // Requires Name
	TKeyBirthdayOf     = "msg_birthday_of"    // Requires Name, Date
	TKeyNoBirthday     = "msg_no_birthday"
	TKeyNoUpcoming     = "msg_no_upcoming"
	TKeyCalendarSaved  = "msg_calendar_saved" // Requires Path

	// Calendar event summaries (shared with the exporter)
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (for age 0)

	// Error kinds (one fixed line per kind)
	TKeyErrInvalidPhone    = "err_invalid_phone"
	TKeyErrInvalidDate     = "err_invalid_date"
	TKeyErrPhoneNotFound   = "err_phone_not_found"
	TKeyErrContactNotFound = "err_contact_not_found"
	TKeyErrMissingArgs     = "err_missing_args"
	TKeyErrInvalidWindow   = "err_invalid_window"
	TKeyErrSaveFailed      = "err_save_failed"
	TKeyErrCalendarFailed  = "err_calendar_failed"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultWindowDays = 7
	PhoneNumberLength = 10

	// DefaultReminderTrigger disables calendar alarms unless configured.
	DefaultReminderTrigger = ""
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Calendar//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// vCard Fields
	VCardFN   = "FN"
	VCardTel  = "TEL"
	VCardBDAY = "BDAY"
	VCardUID  = "UID"
)

// -----------------------------------------------------------------------------
// Data Formats & Layouts
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing DD.MM.YYYY layout.
	DateFormatBirthday = "02.01.2006"

	// DateFormatFullDash is the vCard BDAY layout written by storage.
	DateFormatFullDash = "2006-01-02"

	// DateFormatFullBasic is the compact BDAY layout accepted on load.
	DateFormatFullBasic = "20060102"

	// UID Generation (record uid + year + domain)
	FormatUID = "%s-%d@%s"

	// Presentation
	FormatRecordLine     = "Contact name: %s, phones: %s"
	FormatRecordBirthday = ", birthday: %s"
	FormatUpcoming       = "%s: %s"
	PhoneJoinRecord      = "; "
	PhoneJoinList        = ", "

	ShutdownSaveTimeout = 5 * time.Second
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPhoneDigits    = "phone number must contain exactly 10 digits"
	ErrDateFormat     = "invalid date format, use DD.MM.YYYY"
	ErrPhoneMissing   = "phone not found"
	ErrContactMissing = "contact not found"
	ErrArgsMissing    = "not enough arguments"
	ErrWindowDays     = "invalid number of days"
	ErrCalendarExport = "calendar export failed"
	ErrLocNotInit     = "localizer not initialized"

	ErrBookLoad      = "failed to load address book"
	ErrBookDecode    = "failed to decode address book"
	ErrCardNoName    = "contact card has no FN property"
	ErrCardBadBDay   = "unsupported BDAY value"
	ErrBookEncode    = "failed to encode address book"
	ErrBookSave      = "failed to save address book"
	ErrBookReplace   = "failed to replace address book file"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrCalendarWrite = "failed to write calendar file"
	ErrReadInput     = "failed to read input"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrConfigDir     = "could not determine user config dir"
	ErrCreateDir     = "could not create app dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"

	// StubVCalendar is the minimal valid iCalendar object used when no events exist.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// UsageText lists the commands of the loop. Kept as a single constant so the
// help output cannot drift from the dispatcher without review.
const UsageText = `Available commands:
  hello                          greeting
  add <name> <phone>             add a contact or a phone (10 digits)
  change <name> <old> <new>      replace a phone number
  phone <name>                   show a contact's phones
  all                            list every contact
  add-birthday <name> <date>     set a birthday (DD.MM.YYYY)
  show-birthday <name>           show a contact's birthday
  birthdays [days]               birthdays in the next days (default 7)
  remove-phone <name> <phone>    remove a phone number
  delete <name>                  remove a contact
  calendar [file]                export birthdays as iCalendar (default birthdays.ics)
  help                           this text
  exit | close                   save and quit`

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgCtxCancel    = "Context cancelled, shutting down"
	MsgBookLoaded   = "Address book loaded"
	MsgBookMissing  = "No saved address book, starting empty"
	MsgBookSaved    = "Address book saved"
	MsgCalendarFile = "Calendar export written"
	MsgCalendarGen  = "Calendar generated"
	MsgCalendarNone = "No birthdays to export, writing stub"
	MsgBdayToday    = "Birthday occurs today"
	MsgWindowQuery  = "Upcoming birthdays queried"
	MsgLoopStart    = "Command loop started"
	MsgLoopStop     = "Command loop stopped"
	MsgCmdDispatch  = "Dispatching command"
	MsgLocaleSkip   = "Skipping non-locale file"
	MsgLocaleBad    = "Skipping malformed locale filename"
	MsgLocaleLoaded = "Locale loaded successfully"
	MsgTransMissing = "Missing translation key"
	MsgLangFallback = "Unsupported language requested, using default"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "dob"
	LogKeyCommand   = "command"
	LogKeyWindow    = "window_days"
	LogKeyRecords   = "records"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompUI       = "ui"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompI18n     = "i18n"
)
