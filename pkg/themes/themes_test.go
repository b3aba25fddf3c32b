package themes

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemesAreStable(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
	assert.Same(t, Default(), Light())
	assert.NotSame(t, Light(), Dark())
	assert.Equal(t, []string{"dark", "default", "light"}, Names())

	theme, ok := Lookup("dark")
	require.True(t, ok)
	assert.Same(t, Dark(), theme)

	_, ok = Lookup("sepia")
	assert.False(t, ok)
}

func TestThemeTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		light any
		dark  any
	}{
		{name: "slot base", path: "color.primary", light: "#3b82f6", dark: "#60a5fa"},
		{name: "slot member", path: "palette.danger.onBase", light: "#7f1d1d", dark: "#450a0a"},
		{name: "dark surface override", path: "palette.surface.base", light: "#f9fafb", dark: "#0b1120"},
		{name: "family shade", path: "colors.blue.500", light: "#3b82f6", dark: "#3b82f6"},
		{name: "spacing", path: "spacing.md", light: 4, dark: 4},
		{name: "component border", path: "border.card", light: "rounded", dark: "rounded"},
		{name: "typography", path: "typography.title.bold", light: true, dark: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Light().Token(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.light, got)

			got, ok = Dark().Token(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.dark, got)
		})
	}
}

func TestPaletteColor(t *testing.T) {
	t.Parallel()

	color, ok := PaletteColor("green.50")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#f0fdf4"), color)

	for _, ref := range []string{"green", "green.550", "mauve.500", "green.bright", "#ff0000"} {
		_, ok := PaletteColor(ref)
		assert.False(t, ok, ref)
	}
}

func TestScales(t *testing.T) {
	t.Parallel()

	n, ok := Spacing("lg")
	require.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = Spacing("huge")
	assert.False(t, ok)

	for _, size := range SpacingSizes {
		_, ok := Spacing(size)
		assert.True(t, ok, size)
	}

	border, ok := Border("double")
	require.True(t, ok)
	assert.Equal(t, lipgloss.DoubleBorder(), border)

	_, ok = Border("zigzag")
	assert.False(t, ok)
}
