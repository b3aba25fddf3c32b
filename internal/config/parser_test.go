package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
)

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	validYAML := `name: light
description: Light palette
tokens:
  spacing:
    unit: 4
colors:
  primary: "#0055ff"
`

	validTOML := `name = "dark"

[tokens.spacing]
unit = 8

[colors]
primary = "#88aaff"
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, doc *ThemeDocument, err error)
	}{
		{
			name:     "yaml theme is parsed",
			file:     "theme.yaml",
			contents: validYAML,
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				require.NoError(t, err)
				require.Equal(t, "light", doc.Name)
				require.Equal(t, "#0055ff", doc.Colors["primary"])
			},
		},
		{
			name:     "toml theme is parsed",
			file:     "theme.toml",
			contents: validTOML,
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", doc.Name)
				require.EqualValues(t, 8, doc.Theme().TokenOr("spacing.unit", nil))
			},
		},
		{
			name:     "missing name fails validation",
			file:     "theme.yaml",
			contents: "tokens: {}\n",
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "name", validationErr.Field)
			},
		},
		{
			name:     "unknown yaml field is a parse error with line",
			file:     "theme.yaml",
			contents: "name: light\npalette: {}\n",
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "malformed toml reports its line",
			file:     "theme.toml",
			contents: "name = \"x\"\ncolors = [\n",
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "empty color value fails validation",
			file:     "theme.yaml",
			contents: "name: light\ncolors:\n  primary: \"\"\n",
			assert: func(t *testing.T, doc *ThemeDocument, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "colors")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tc.file, tc.contents)
			doc, err := LoadTheme(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadStyles(t *testing.T) {
	t.Parallel()

	validYAML := `name: Button
direction: rtl
styles:
  container:
    color: $color.primary
    marginLeft: 4
extendable:
  container:
    color: true
extensions:
  - container:
      color: red
`

	validTOML := `direction = "ltr"

[styles.container]
color = "blue"

[extendable]
container = true

[[extensions]]
[extensions.container]
padding = 2
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, doc *StyleDocument, err error)
	}{
		{
			name:     "yaml styles are parsed",
			file:     "button.yml",
			contents: validYAML,
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				require.NoError(t, err)
				require.Equal(t, "Button", doc.Name)
				require.Len(t, doc.Extensions, 1)
				require.Contains(t, doc.Styles, "container")
			},
		},
		{
			name:     "toml styles are parsed",
			file:     "button.toml",
			contents: validTOML,
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Extensions, 1)
				require.Equal(t, true, doc.Extendable["container"])
			},
		},
		{
			name:     "bad direction fails validation",
			file:     "button.yaml",
			contents: "direction: up\nstyles:\n  a: {}\n",
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "direction", validationErr.Field)
			},
		},
		{
			name:     "missing styles fails validation",
			file:     "button.yaml",
			contents: "name: Empty\n",
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "styles", validationErr.Field)
			},
		},
		{
			name:     "style key with whitespace fails validation",
			file:     "button.yaml",
			contents: "styles:\n  \"bad key\": {}\n",
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "style_key")
			},
		},
		{
			name:     "empty file is a parse error",
			file:     "button.yaml",
			contents: "",
			assert: func(t *testing.T, doc *StyleDocument, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tc.file, tc.contents)
			doc, err := LoadStyles(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadStyles(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatTOML, FormatFromPath("a/b.TOML"))
	require.Equal(t, FormatYAML, FormatFromPath("a/b.yaml"))
	require.Equal(t, FormatYAML, FormatFromPath("a/b"))
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
