package style

import (
	"sort"
	"strings"
)

// Theme is an application-defined set of design tokens. Themes are compared
// by pointer identity only.
type Theme struct {
	Name   string
	Tokens map[string]any
}

// NewTheme creates a theme with the supplied tokens.
func NewTheme(name string, tokens map[string]any) *Theme {
	if tokens == nil {
		tokens = map[string]any{}
	}
	return &Theme{Name: name, Tokens: tokens}
}

// Token looks up a dotted token path such as "color.primary".
func (t *Theme) Token(path string) (any, bool) {
	if t == nil || path == "" {
		return nil, false
	}

	var current any = t.Tokens
	for _, part := range strings.Split(path, ".") {
		node, ok := AsMap(current)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// TokenOr returns the token at path, or fallback when it is absent.
func (t *Theme) TokenOr(path string, fallback any) any {
	if value, ok := t.Token(path); ok {
		return value
	}
	return fallback
}

// StyleMap maps a style key (e.g. "container") to its property map. Property
// values are scalars or nested maps (pseudo selectors, media queries).
type StyleMap map[string]any

// AsMap reports whether v is a style mapping and returns it as a plain map.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case StyleMap:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// Stylesheet is the output of an interface's create function. Rules hold one
// backend-specific reference per style key.
type Stylesheet struct {
	Rules map[string]any
}

// NewStylesheet wraps backend rules in a Stylesheet.
func NewStylesheet(rules map[string]any) *Stylesheet {
	if rules == nil {
		rules = map[string]any{}
	}
	return &Stylesheet{Rules: rules}
}

// Get returns the reference for key, or nil when the key was not declared.
func (s *Stylesheet) Get(key string) any {
	if s == nil {
		return nil
	}
	return s.Rules[key]
}

// Keys returns the declared style keys in sorted order.
func (s *Stylesheet) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.Rules))
	for key := range s.Rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// RenderableProps is what a resolve function produces: properties to spread
// onto a rendered element (class names, inline styles, ...).
type RenderableProps map[string]any

// DeclarationFunc evaluates a style declaration for a theme. It must be pure:
// the same theme always yields an equivalent map.
type DeclarationFunc func(theme *Theme) StyleMap

// CreateFunc turns a declaration result into a Stylesheet.
type CreateFunc func(styles StyleMap) (*Stylesheet, error)

// ResolveFunc turns style references into renderable props. References may be
// Stylesheet entries, inline StyleMaps or arbitrarily nested []any.
type ResolveFunc func(refs []any) RenderableProps

// CheckedDeclarationFunc is a declaration that can fail, such as an extended
// declaration whose extension was rejected.
type CheckedDeclarationFunc func(theme *Theme) (StyleMap, error)

// Checked adapts fn to a CheckedDeclarationFunc. A nil fn or a nil result
// yields an empty StyleMap.
func (fn DeclarationFunc) Checked() CheckedDeclarationFunc {
	return func(theme *Theme) (StyleMap, error) {
		if fn == nil {
			return StyleMap{}, nil
		}
		if styles := fn(theme); styles != nil {
			return styles, nil
		}
		return StyleMap{}, nil
	}
}
