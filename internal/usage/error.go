package usage

// ErrorKind represents the type of user-facing error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidIdentifier
	ErrThemeNotFound
	ErrConfigMissing
	ErrConfigUnreadable
	ErrMalformedConfig
	ErrConfigUnwritable
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Theme not found
//	  - Emulator config missing, unreadable, malformed or unwritable
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid theme identifier
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrInvalidFlag:       2,
	ErrMissingArgument:   2,
	ErrUnknownCommand:    1,
	ErrInvalidIdentifier: 2,
	ErrThemeNotFound:     1,
	ErrConfigMissing:     1,
	ErrConfigUnreadable:  1,
	ErrMalformedConfig:   1,
	ErrConfigUnwritable:  1,
}

// Error represents a user-facing error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
