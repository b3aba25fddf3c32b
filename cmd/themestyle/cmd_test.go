package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themestyle/pkg/themes"
)

const testTheme = `name: light
colors:
  primary: "#0055ff"
tokens:
  space: 4
`

const testStyles = `name: Button
styles:
  container:
    color: $color.primary
    marginLeft: $space
    background: white
extendable:
  container:
    background: true
extensions:
  - container:
      background: black
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func fixtures(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	return writeFile(t, dir, "theme.yaml", testTheme), writeFile(t, dir, "button.yaml", testStyles)
}

func TestRenderCSS(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("render", "--theme", theme, "--styles", styles)
	require.NoError(t, err)
	assert.Equal(t, ".ts-container-1{background:black;color:#0055ff;margin-left:4px}\n", stdout)
}

func TestRenderCSSRTL(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("render", "--theme", theme, "--styles", styles, "--direction", "rtl")
	require.NoError(t, err)
	assert.Contains(t, stdout, ".ts-container-1-rtl{")
	assert.Contains(t, stdout, "margin-right:4px")
}

func TestRenderCSSJSON(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("render", "--theme", theme, "--styles", styles, "--json")
	require.NoError(t, err)

	var payload struct {
		Theme   string            `json:"theme"`
		Classes map[string]string `json:"classes"`
		Rules   []string          `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "light", payload.Theme)
	assert.Equal(t, "ts-container-1", payload.Classes["container"])
	assert.Len(t, payload.Rules, 1)
}

func TestRenderNativeJSON(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("render", "--theme", theme, "--styles", styles, "--interface", "native", "--json")
	require.NoError(t, err)

	var payload struct {
		Styles map[string]struct {
			ID    int            `json:"id"`
			Style map[string]any `json:"style"`
		} `json:"styles"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	container := payload.Styles["container"]
	assert.Equal(t, 0, container.ID)
	assert.Equal(t, "black", container.Style["background"])
	assert.Equal(t, "#0055ff", container.Style["color"])
}

func TestRenderTerminal(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("render", "--theme", theme, "--styles", styles, "--interface", "terminal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "container")
}

func TestRenderErrors(t *testing.T) {
	theme, styles := fixtures(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown interface", args: []string{"--theme", theme, "--styles", styles, "--interface", "svg"}, want: "unknown interface"},
		{name: "bad direction", args: []string{"--theme", theme, "--styles", styles, "--direction", "up"}, want: "unknown direction"},
		{name: "unknown theme", args: []string{"--theme", "sepia", "--styles", styles}, want: "dark, default, light"},
		{name: "missing styles file", args: []string{"--theme", theme, "--styles", filepath.Join(t.TempDir(), "none.yaml")}, want: "does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(append([]string{"render"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderRejectsInvalidExtension(t *testing.T) {
	dir := t.TempDir()
	theme := writeFile(t, dir, "theme.yaml", testTheme)
	styles := writeFile(t, dir, "bad.yaml", `styles:
  container:
    color: red
extendable:
  container:
    background: true
extensions:
  - container:
      color: blue
`)

	_, _, err := executeCommand("render", "--theme", theme, "--styles", styles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container.color")
}

func TestValidateCommand(t *testing.T) {
	_, styles := fixtures(t)

	stdout, _, err := executeCommand("validate", "--styles", styles)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 styles, 1 extensions\n", stdout)
}

func TestValidateCommandTOML(t *testing.T) {
	dir := t.TempDir()
	styles := writeFile(t, dir, "card.toml", `[styles.card]
padding = 2

[[extensions]]
[extensions.card]
padding = 4
`)

	_, _, err := executeCommand("validate", "--styles", styles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card")
	assert.Contains(t, err.Error(), "extendable")
}

func TestVerboseLogsCacheDecisions(t *testing.T) {
	theme, styles := fixtures(t)

	_, stderr, err := executeCommand("render", "-v", "--theme", theme, "--styles", styles)
	require.NoError(t, err)
	assert.Contains(t, stderr, "styles recomputed")
}

func TestBuildPreview(t *testing.T) {
	theme, styles := fixtures(t)
	dir := t.TempDir()
	dark := writeFile(t, dir, "dark.toml", "name = \"dark\"\n")

	flags := &rootFlags{}
	model, err := buildPreview(flags, &previewOptions{themePaths: []string{theme, dark}, stylesPath: styles, direction: "rtl"})
	require.NoError(t, err)
	require.NoError(t, model.Err())
	assert.Equal(t, "light", model.Theme().Name)
	assert.Equal(t, "rtl", model.Direction().String())

	model, err = buildPreview(flags, &previewOptions{stylesPath: styles})
	require.NoError(t, err)
	assert.Same(t, themes.Light(), model.Theme())
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "themestyle 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2025-10-03")
	require.Contains(t, stdout, "go: go")

	stdout, _, err = executeCommand("version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", stdout)
}

func TestDiffDirections(t *testing.T) {
	theme, styles := fixtures(t)

	stdout, _, err := executeCommand("diff", "--theme", theme, "--styles", styles)
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- ltr\n+++ rtl\n")
	assert.Contains(t, stdout, "-.ts-container-1{background:black;color:#0055ff;margin-left:4px}")
	assert.Contains(t, stdout, "+.ts-container-1-rtl{background:black;color:#0055ff;margin-right:4px}")
	assert.Contains(t, stdout, "1 added, 1 removed")
}

func TestDiffThemes(t *testing.T) {
	light, styles := fixtures(t)
	dark := writeFile(t, t.TempDir(), "dark.yaml", "name: dark\ncolors:\n  primary: \"#88aaff\"\ntokens:\n  space: 4\n")

	stdout, _, err := executeCommand("diff", "--theme", light, "--theme", dark, "--styles", styles, "--interface", "native")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- theme.yaml\n+++ dark.yaml\n")
	assert.Contains(t, stdout, "#88aaff")
}

func TestDiffIdenticalThemes(t *testing.T) {
	light, styles := fixtures(t)

	stdout, _, err := executeCommand("diff", "--theme", light, "--theme", light, "--styles", styles)
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", stdout)
}

func TestDiffRejectsThreeThemes(t *testing.T) {
	theme, styles := fixtures(t)

	_, _, err := executeCommand("diff", "--theme", theme, "--theme", theme, "--theme", theme, "--styles", styles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most two themes")
}

const builtinStyles = `name: Card
styles:
  card:
    color: $color.primary
    padding: $spacing.md
`

func TestRenderBuiltinThemes(t *testing.T) {
	styles := writeFile(t, t.TempDir(), "card.yaml", builtinStyles)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default when omitted", args: nil, want: ".ts-card-1{color:#3b82f6;padding:4px}\n"},
		{name: "light by name", args: []string{"--theme", "light"}, want: ".ts-card-1{color:#3b82f6;padding:4px}\n"},
		{name: "dark by name", args: []string{"--theme", "dark"}, want: ".ts-card-1{color:#60a5fa;padding:4px}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--styles", styles}, tt.args...)
			stdout, _, err := executeCommand(args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDiffBuiltinThemes(t *testing.T) {
	styles := writeFile(t, t.TempDir(), "card.yaml", builtinStyles)

	stdout, _, err := executeCommand("diff", "--theme", "light", "--theme", "dark", "--styles", styles)
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- light\n+++ dark\n")
	assert.Contains(t, stdout, "+.ts-card-1{color:#60a5fa;padding:4px}")

	stdout, _, err = executeCommand("diff", "--styles", styles)
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- ltr\n+++ rtl\n")
}
