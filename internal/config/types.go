package config

import (
	"strings"

	"github.com/alexisbeaulieu97/themestyle/pkg/extend"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// TokenPrefix marks a string style value as a reference to a theme token,
// e.g. "$color.primary".
const TokenPrefix = "$"

// ThemeDocument is a theme as stored on disk.
type ThemeDocument struct {
	Name        string            `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string            `yaml:"description,omitempty" toml:"description,omitempty"`
	Tokens      map[string]any    `yaml:"tokens,omitempty" toml:"tokens,omitempty"`
	Colors      map[string]string `yaml:"colors,omitempty" toml:"colors,omitempty" validate:"omitempty,dive,keys,style_key,endkeys,required"`
}

// Theme builds the runtime theme. Colors are exposed under the "color" token
// namespace unless tokens already define that key.
func (d *ThemeDocument) Theme() *style.Theme {
	tokens := make(map[string]any, len(d.Tokens)+1)
	for key, value := range d.Tokens {
		tokens[key] = value
	}
	if len(d.Colors) > 0 {
		colors, _ := style.AsMap(tokens["color"])
		merged := make(map[string]any, len(colors)+len(d.Colors))
		for key, value := range d.Colors {
			merged[key] = value
		}
		for key, value := range colors {
			merged[key] = value
		}
		tokens["color"] = merged
	}
	return style.NewTheme(d.Name, tokens)
}

// StyleDocument is a style declaration as stored on disk.
type StyleDocument struct {
	Name       string           `yaml:"name,omitempty" toml:"name,omitempty" validate:"omitempty,max=100"`
	Direction  string           `yaml:"direction,omitempty" toml:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	Styles     map[string]any   `yaml:"styles" toml:"styles" validate:"required,min=1,dive,keys,style_key,endkeys,required"`
	Extendable map[string]any   `yaml:"extendable,omitempty" toml:"extendable,omitempty"`
	Extensions []map[string]any `yaml:"extensions,omitempty" toml:"extensions,omitempty" validate:"omitempty,dive,required"`
}

// ParsedDirection returns the document's direction, LTR when unset.
func (d *StyleDocument) ParsedDirection() style.Direction {
	dir, err := style.ParseDirection(d.Direction)
	if err != nil {
		return style.LTR
	}
	return dir
}

// Declaration returns a declaration function for the document's styles.
// Token references are substituted from the theme; unknown tokens are left
// as written.
func (d *StyleDocument) Declaration() style.DeclarationFunc {
	return declarationFor(d.Styles)
}

// ExtensionDeclarations returns one declaration per extension, in order.
func (d *StyleDocument) ExtensionDeclarations() []style.DeclarationFunc {
	fns := make([]style.DeclarationFunc, 0, len(d.Extensions))
	for _, ext := range d.Extensions {
		fns = append(fns, declarationFor(ext))
	}
	return fns
}

// Schema converts the extendable section into an extension schema. Leaves
// other than booleans are treated as not extendable.
func (d *StyleDocument) Schema() extend.Schema {
	if d.Extendable == nil {
		return nil
	}
	return schemaFrom(d.Extendable)
}

func schemaFrom(node map[string]any) extend.Schema {
	schema := make(extend.Schema, len(node))
	for key, value := range node {
		switch v := value.(type) {
		case bool:
			schema[key] = v
		default:
			if nested, ok := style.AsMap(v); ok {
				schema[key] = schemaFrom(nested)
				continue
			}
			schema[key] = false
		}
	}
	return schema
}

func declarationFor(styles map[string]any) style.DeclarationFunc {
	return func(theme *style.Theme) style.StyleMap {
		return style.StyleMap(substitute(styles, theme))
	}
}

func substitute(node map[string]any, theme *style.Theme) map[string]any {
	out := make(map[string]any, len(node))
	for key, value := range node {
		out[key] = substituteValue(value, theme)
	}
	return out
}

func substituteValue(value any, theme *style.Theme) any {
	switch v := value.(type) {
	case string:
		if path, ok := strings.CutPrefix(v, TokenPrefix); ok && path != "" {
			if token, found := theme.Token(path); found {
				return token
			}
		}
		return v
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = substituteValue(item, theme)
		}
		return items
	default:
		if nested, ok := style.AsMap(v); ok {
			return substitute(nested, theme)
		}
		return v
	}
}
