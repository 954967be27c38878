package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("thm: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("thm: missing required argument '%s'", arg),
	}
}

// UnknownCommand is returned when the command tokens match no node in the tree.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("thm: '%s' is not a thm command. See 'thm --help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean:"
		for _, s := range suggestions {
			msg += "\n   " + s
		}
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// InvalidIdentifier is returned when a theme identifier is empty or would
// escape the themes directory.
func InvalidIdentifier(id string) *Error {
	return &Error{
		Kind:    ErrInvalidIdentifier,
		Message: fmt.Sprintf("thm: invalid theme identifier '%s'", id),
	}
}

// ThemeNotFound is returned when no theme file matches the identifier.
func ThemeNotFound(id, dir string) *Error {
	return &Error{
		Kind:    ErrThemeNotFound,
		Message: fmt.Sprintf("thm: theme '%s' not found in %s", id, dir),
	}
}

// ConfigMissing is returned when the emulator config file does not exist.
func ConfigMissing(path string) *Error {
	return &Error{
		Kind:    ErrConfigMissing,
		Message: fmt.Sprintf("thm: emulator config not found at %s", path),
	}
}

// ConfigUnreadable is returned when the emulator config cannot be read.
func ConfigUnreadable(path string, cause error) *Error {
	return &Error{
		Kind:    ErrConfigUnreadable,
		Message: fmt.Sprintf("thm: cannot read emulator config %s: %v", path, cause),
	}
}

// MalformedConfig is returned when the existing config cannot be parsed well
// enough to locate or insert the theme import safely.
func MalformedConfig(path, detail string) *Error {
	return &Error{
		Kind:    ErrMalformedConfig,
		Message: fmt.Sprintf("thm: refusing to edit %s: %s", path, detail),
	}
}

// ConfigUnwritable is returned when the updated config cannot be written.
// The original file is untouched in this case.
func ConfigUnwritable(path string, cause error) *Error {
	return &Error{
		Kind:    ErrConfigUnwritable,
		Message: fmt.Sprintf("thm: cannot write emulator config %s: %v", path, cause),
	}
}
