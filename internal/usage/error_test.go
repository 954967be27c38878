package usage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"invalid flag is user input", InvalidFlag("--bogus"), 2},
		{"missing argument is user input", MissingArgument("name"), 2},
		{"invalid identifier is user input", InvalidIdentifier("../x"), 2},
		{"unknown command is environment", UnknownCommand("stes"), 1},
		{"theme not found is environment", ThemeNotFound("dracula", "/themes"), 1},
		{"config missing is environment", ConfigMissing("/cfg"), 1},
		{"unknown kind defaults to 1", &Error{Kind: ErrorKind(99), Message: "x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.ExitCode())
		})
	}
}

func TestMessagesNamePaths(t *testing.T) {
	err := ThemeNotFound("dracula", "/home/u/.config/alacritty/themes")
	require.Contains(t, err.Error(), "dracula")
	require.Contains(t, err.Error(), "/home/u/.config/alacritty/themes")

	err = ConfigUnreadable("/cfg/alacritty.toml", errTest)
	require.Contains(t, err.Error(), "/cfg/alacritty.toml")
	require.Contains(t, err.Error(), "boom")
}

var errTest = &Error{Message: "boom"}

func TestUnknownCommandSuggestions(t *testing.T) {
	err := UnknownCommand("stes", "set")
	require.Contains(t, err.Error(), "Did you mean")
	require.Contains(t, err.Error(), "set")
}
