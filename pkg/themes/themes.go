// Package themes provides the built-in themes: palette slots, Tailwind-style
// colour families, a spacing scale, border names and typography presets,
// exposed as style.Theme tokens.
//
// Built-in themes are created once, so repeated lookups return the same
// *style.Theme and keep hitting the same binding cache entries.
package themes

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Built-in theme names.
const (
	NameDefault = "default"
	NameLight   = "light"
	NameDark    = "dark"
)

var (
	builtinOnce sync.Once
	builtin     map[string]*style.Theme
)

func load() map[string]*style.Theme {
	builtinOnce.Do(func() {
		light := style.NewTheme(NameLight, tokens(defaultPalette(), false))
		builtin = map[string]*style.Theme{
			NameDefault: light,
			NameLight:   light,
			NameDark:    style.NewTheme(NameDark, tokens(darkPalette(), true)),
		}
	})
	return builtin
}

// Default returns the default theme, which is the light theme.
func Default() *style.Theme {
	return load()[NameDefault]
}

// Light returns the light theme.
func Light() *style.Theme {
	return load()[NameLight]
}

// Dark returns the dark theme.
func Dark() *style.Theme {
	return load()[NameDark]
}

// Lookup returns the built-in theme called name.
func Lookup(name string) (*style.Theme, bool) {
	theme, ok := load()[name]
	return theme, ok
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	themes := load()
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tokens lays a palette out as theme tokens:
//
//	palette.<slot>.{base,onBase,muted,contrast}
//	color.<slot>          the slot's base colour
//	colors.<family>.<shade>
//	spacing.<size>
//	border.<component>    a border name
//	typography.<preset>   a property map
func tokens(p Palette, dark bool) map[string]any {
	palette := make(map[string]any, len(p))
	colors := make(map[string]any, len(p))
	for slot, set := range p {
		slotTokens := set.tokens(dark)
		palette[slot] = slotTokens
		colors[slot] = slotTokens["base"]
	}

	families := make(map[string]any, len(Families))
	for name, shades := range Families {
		families[name] = shades.tokens()
	}

	return map[string]any{
		"palette":    palette,
		"color":      colors,
		"colors":     families,
		"spacing":    spacingTokens(),
		"border":     map[string]any{"card": "rounded", "button": "rounded", "badge": "rounded", "alert": "normal", "input": "rounded"},
		"typography": typography(palette),
	}
}

func typography(palette map[string]any) map[string]any {
	slot := func(name, key string) any {
		return palette[name].(map[string]any)[key]
	}
	text := slot("surface", "onBase")
	return map[string]any{
		"body":     map[string]any{"color": text},
		"title":    map[string]any{"color": slot("primary", "base"), "bold": true},
		"subtitle": map[string]any{"color": slot("secondary", "muted"), "faint": true},
		"code":     map[string]any{"color": slot("secondary", "base"), "background": slot("surface", "muted"), "padding": []any{0, 1}},
		"emphasis": map[string]any{"color": text, "bold": true},
		"muted":    map[string]any{"color": text, "faint": true},
	}
}
