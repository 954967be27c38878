package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetImport_InsertAtTop(t *testing.T) {
	lines := []string{
		`font = "Mono"`,
		"",
		"[window]",
		"opacity = 0.95",
	}

	got, replaced, err := SetImport(lines, "/themes/dracula.toml", StyleTOML)

	require.NoError(t, err)
	require.False(t, replaced)
	require.Equal(t, []string{
		`import = ["/themes/dracula.toml"]`,
		`font = "Mono"`,
		"",
		"[window]",
		"opacity = 0.95",
	}, got)
}

func TestSetImport_ReplaceExisting(t *testing.T) {
	lines := []string{
		`font = "Mono"`,
		`import = ["/themes/dracula.toml"]`,
		"[window]",
	}

	got, replaced, err := SetImport(lines, "/themes/solarized.toml", StyleTOML)

	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, []string{
		`font = "Mono"`,
		`import = ["/themes/solarized.toml"]`,
		"[window]",
	}, got)
}

func TestSetImport_Idempotent(t *testing.T) {
	lines := []string{`font = "Mono"`}

	once, _, err := SetImport(lines, "/themes/dracula.toml", StyleTOML)
	require.NoError(t, err)

	twice, replaced, err := SetImport(once, "/themes/dracula.toml", StyleTOML)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, once, twice)
}

func TestSetImport_DoesNotMutateInput(t *testing.T) {
	lines := []string{`import = ["/old.toml"]`, `font = "Mono"`}

	_, _, err := SetImport(lines, "/new.toml", StyleTOML)

	require.NoError(t, err)
	require.Equal(t, `import = ["/old.toml"]`, lines[0])
}

func TestSetImport_PreservesInlineComment(t *testing.T) {
	lines := []string{`import = ["/old.toml"] # set by hand`}

	got, replaced, err := SetImport(lines, "/new.toml", StyleTOML)

	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, `import = ["/new.toml"] # set by hand`, got[0])
}

func TestSetImport_YAMLStyle(t *testing.T) {
	lines := []string{"font:", "  size: 11"}

	got, _, err := SetImport(lines, "/themes/dracula.yml", StyleYAML)

	require.NoError(t, err)
	require.Equal(t, `import: ["/themes/dracula.yml"]`, got[0])
}

func TestSetImport_ReplacesYAMLForm(t *testing.T) {
	lines := []string{`import: ["/old.yml"]`}

	got, replaced, err := SetImport(lines, "/new.yml", StyleYAML)

	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, `import: ["/new.yml"]`, got[0])
}

func TestSetImport_RefusesMultipleDirectives(t *testing.T) {
	lines := []string{
		`import = ["/a.toml"]`,
		`import = ["/b.toml"]`,
	}

	_, _, err := SetImport(lines, "/c.toml", StyleTOML)

	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple import directives")
}

func TestSetImport_RefusesMultilineArray(t *testing.T) {
	lines := []string{
		"import = [",
		`  "/a.toml",`,
		"]",
	}

	_, _, err := SetImport(lines, "/c.toml", StyleTOML)

	require.Error(t, err)
	require.Contains(t, err.Error(), "spans multiple lines")
}

func TestSetImport_RefusesBlockStyleList(t *testing.T) {
	lines := []string{
		"import:",
		"  - ~/.config/alacritty/themes/old.yml",
		"font:",
		"  size: 11",
	}

	_, _, err := SetImport(lines, "/themes/new.yml", StyleYAML)

	require.Error(t, err)
	require.Contains(t, err.Error(), "block-style")
}

func TestSetImport_RefusesBlockStyleListWithComment(t *testing.T) {
	lines := []string{
		"import: # themes",
		"  - /a.yml",
	}

	_, _, err := SetImport(lines, "/themes/new.yml", StyleYAML)

	require.Error(t, err)
	require.Contains(t, err.Error(), "block-style")
}

func TestSetImport_CommentAfterApostropheInPath(t *testing.T) {
	lines := []string{`import = ["/themes/o'brien.toml"] # note`}

	got, replaced, err := SetImport(lines, "/themes/new.toml", StyleTOML)

	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, `import = ["/themes/new.toml"] # note`, got[0])
}

func TestSetImport_IgnoresNonDirectiveLines(t *testing.T) {
	lines := []string{
		"# import = nothing here, just a comment mentioning import",
		`important = true`,
		`label = "import"`,
	}

	got, replaced, err := SetImport(lines, "/t.toml", StyleTOML)

	require.NoError(t, err)
	require.False(t, replaced)
	require.Len(t, got, 4)
	require.Equal(t, lines, got[1:])
}

func TestGetImport(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   string
		wantOK bool
	}{
		{
			name:   "toml form",
			lines:  []string{`font = "Mono"`, `import = ["/themes/dracula.toml"]`},
			want:   "/themes/dracula.toml",
			wantOK: true,
		},
		{
			name:   "yaml form",
			lines:  []string{`import: ["/themes/dracula.yml"]`},
			want:   "/themes/dracula.yml",
			wantOK: true,
		},
		{
			name:   "single quotes",
			lines:  []string{`import: ['/themes/dracula.yml']`},
			want:   "/themes/dracula.yml",
			wantOK: true,
		},
		{
			name:   "no directive",
			lines:  []string{`font = "Mono"`},
			wantOK: false,
		},
		{
			name:   "empty config",
			lines:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetImport(tt.lines)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStyleFor(t *testing.T) {
	require.Equal(t, StyleTOML, StyleFor("/cfg/alacritty.toml"))
	require.Equal(t, StyleYAML, StyleFor("/cfg/alacritty.yml"))
	require.Equal(t, StyleYAML, StyleFor("/cfg/alacritty.yaml"))
	require.Equal(t, StyleTOML, StyleFor("/cfg/alacritty"))
}
