package style

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenPreservesOrder(t *testing.T) {
	t.Parallel()

	inline := StyleMap{"color": "red"}
	got := Flatten([]any{"a", []any{"b", []any{"c", []any{}}, "d"}, inline, nil})

	require.Len(t, got, 6)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "b", got[1])
	assert.Equal(t, "c", got[2])
	assert.Equal(t, "d", got[3])
	assert.Equal(t, inline, got[4])
	assert.Nil(t, got[5])
}

func TestThemeToken(t *testing.T) {
	t.Parallel()

	theme := NewTheme("light", map[string]any{
		"color": map[string]any{"primary": "#ff5a5f"},
		"unit":  8,
	})

	value, ok := theme.Token("color.primary")
	require.True(t, ok)
	assert.Equal(t, "#ff5a5f", value)

	_, ok = theme.Token("color.secondary")
	assert.False(t, ok)
	_, ok = theme.Token("unit.size")
	assert.False(t, ok)
	assert.Equal(t, 4, theme.TokenOr("spacing", 4))

	var missing *Theme
	_, ok = missing.Token("unit")
	assert.False(t, ok)
}

func TestThemesCompareByIdentity(t *testing.T) {
	t.Parallel()

	a := NewTheme("same", map[string]any{"unit": 8})
	b := NewTheme("same", map[string]any{"unit": 8})
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func TestStylesheetKeys(t *testing.T) {
	t.Parallel()

	sheet := NewStylesheet(map[string]any{"b": 1, "a": 2})
	assert.Equal(t, []string{"a", "b"}, sheet.Keys())
	assert.Equal(t, 2, sheet.Get("a"))
	assert.Nil(t, sheet.Get("missing"))

	var missing *Stylesheet
	assert.Nil(t, missing.Get("a"))
	assert.Nil(t, missing.Keys())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	dir, err := ParseDirection("RTL")
	require.NoError(t, err)
	assert.Equal(t, RTL, dir)

	dir, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, LTR, dir)

	_, err = ParseDirection("up")
	require.Error(t, err)

	var decoded Direction
	require.NoError(t, decoded.UnmarshalText([]byte("rtl")))
	assert.Equal(t, RTL, decoded)
	assert.Equal(t, LTR, decoded.Flip())

	text, err := RTL.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rtl", string(text))
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := ThemeFromContext(ctx)
	assert.False(t, ok)
	_, ok = InterfaceFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, LTR, DirectionFromContext(ctx))

	outer := NewTheme("outer", nil)
	inner := NewTheme("inner", nil)
	ctx = WithTheme(ctx, outer)
	ctx = WithDirection(ctx, RTL)
	nested := WithTheme(ctx, inner)

	got, ok := ThemeFromContext(nested)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.Equal(t, RTL, DirectionFromContext(nested))

	got, ok = ThemeFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, outer, got)

	_, ok = ThemeFromContext(WithTheme(ctx, nil))
	assert.False(t, ok)
}

func TestDeclarationChecked(t *testing.T) {
	t.Parallel()

	var missing DeclarationFunc
	styles, err := missing.Checked()(nil)
	require.NoError(t, err)
	assert.NotNil(t, styles)
	assert.Empty(t, styles)

	empty := DeclarationFunc(func(*Theme) StyleMap { return nil })
	styles, err = empty.Checked()(nil)
	require.NoError(t, err)
	assert.NotNil(t, styles)

	theme := NewTheme("t", map[string]any{"c": "red"})
	declared := DeclarationFunc(func(th *Theme) StyleMap {
		return StyleMap{"box": map[string]any{"color": th.TokenOr("c", "")}}
	})
	styles, err = declared.Checked()(theme)
	require.NoError(t, err)
	assert.Equal(t, StyleMap{"box": map[string]any{"color": "red"}}, styles)
}
