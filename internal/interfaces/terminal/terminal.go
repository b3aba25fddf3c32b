// Package terminal is a style backend that turns declarations into lipgloss
// styles for terminal output.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
	"github.com/alexisbeaulieu97/themestyle/pkg/themes"
)

// Rule is the stylesheet entry for one style key.
type Rule struct {
	Props map[string]any
	Style lipgloss.Style
}

// Render renders s with the rule's style.
func (r *Rule) Render(s ...string) string {
	if r == nil {
		return strings.Join(s, " ")
	}
	return r.Style.Render(s...)
}

// Interface returns the terminal style interface. RTL create mirrors
// left/right properties before building styles.
func Interface() *style.Interface {
	return &style.Interface{
		Create:    CreateLTR,
		Resolve:   Resolve,
		CreateLTR: CreateLTR,
		CreateRTL: CreateRTL,
	}
}

// CreateLTR builds one Rule per style key.
func CreateLTR(styles style.StyleMap) (*style.Stylesheet, error) {
	return create(styles, false)
}

// CreateRTL is CreateLTR with directional properties mirrored.
func CreateRTL(styles style.StyleMap) (*style.Stylesheet, error) {
	return create(styles, true)
}

func create(styles style.StyleMap, mirror bool) (*style.Stylesheet, error) {
	rules := make(map[string]any, len(styles))
	for _, key := range interfaces.SortedKeys(styles) {
		props, ok := style.AsMap(styles[key])
		if !ok {
			return nil, fmt.Errorf("style %q: expected a property map, got %T", key, styles[key])
		}
		if mirror {
			props = interfaces.Mirror(props)
		}
		built, err := Build(props)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", key, err)
		}
		rules[key] = &Rule{Props: props, Style: built}
	}
	return style.NewStylesheet(rules), nil
}

// Resolve merges the properties of every ref, later refs winning, and returns
// the combined lipgloss style under "style". Inline property maps that do not
// build are skipped; the other refs still apply.
func Resolve(refs []any) style.RenderableProps {
	merged := map[string]any{}
	for _, ref := range style.Flatten(refs) {
		var props map[string]any
		switch v := ref.(type) {
		case *Rule:
			if v != nil {
				props = v.Props
			}
		default:
			inline, ok := style.AsMap(v)
			if !ok {
				continue
			}
			if _, err := Build(inline); err != nil {
				continue
			}
			props = inline
		}
		for key, value := range props {
			merged[key] = value
		}
	}

	built, err := Build(merged)
	if err != nil {
		built = lipgloss.NewStyle()
	}
	return style.RenderableProps{"style": built, "props": merged}
}

var positions = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

// Build converts a property map into a lipgloss style. Properties without a
// terminal equivalent and nested maps are ignored.
//
// Colours may name a palette shade ("blue.500"), spacing may use the scale
// names of package themes ("md", or "sm lg"), and borders are looked up by
// name ("rounded").
func Build(props map[string]any) (lipgloss.Style, error) {
	s := lipgloss.NewStyle()
	for _, key := range interfaces.SortedKeys(props) {
		value := props[key]
		if _, nested := style.AsMap(value); nested {
			continue
		}

		var err error
		switch key {
		case "color", "foreground":
			s = s.Foreground(color(value))
		case "background", "backgroundColor":
			s = s.Background(color(value))
		case "borderColor":
			s = s.BorderForeground(color(value))
		case "bold":
			s = s.Bold(truthy(value))
		case "italic":
			s = s.Italic(truthy(value))
		case "underline":
			s = s.Underline(truthy(value))
		case "faint":
			s = s.Faint(truthy(value))
		case "fontWeight":
			s = s.Bold(fmt.Sprint(value) == "bold" || fmt.Sprint(value) == "700")
		case "border":
			s, err = applyBorder(s, value)
		case "textAlign", "align":
			pos, ok := positions[fmt.Sprint(value)]
			if !ok {
				err = fmt.Errorf("unknown alignment %v", value)
				break
			}
			s = s.Align(pos)
		case "padding":
			s, err = applySpacing(s.Padding, value)
		case "margin":
			s, err = applySpacing(s.Margin, value)
		case "paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
			"marginTop", "marginRight", "marginBottom", "marginLeft",
			"width", "height":
			s, err = applySide(s, key, value)
		}
		if err != nil {
			return s, fmt.Errorf("%s: %w", key, err)
		}
	}
	return s, nil
}

func applyBorder(s lipgloss.Style, value any) (lipgloss.Style, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return s.Border(lipgloss.NormalBorder()), nil
		}
		return s, nil
	case string:
		if v == "none" {
			return s, nil
		}
		border, ok := themes.Border(v)
		if !ok {
			return s, fmt.Errorf("unknown border %q", v)
		}
		return s.Border(border), nil
	default:
		return s, fmt.Errorf("unsupported border value %v", value)
	}
}

func applySpacing(set func(...int) lipgloss.Style, value any) (lipgloss.Style, error) {
	var values []any
	switch v := value.(type) {
	case []any:
		values = v
	case string:
		for _, field := range strings.Fields(v) {
			values = append(values, field)
		}
	default:
		values = []any{v}
	}
	if len(values) == 0 || len(values) > 4 {
		return set(), fmt.Errorf("expected 1 to 4 values, got %d", len(values))
	}

	ints := make([]int, 0, len(values))
	for _, item := range values {
		n, err := spacing(item)
		if err != nil {
			return set(), err
		}
		ints = append(ints, n)
	}
	return set(ints...), nil
}

func applySide(s lipgloss.Style, key string, value any) (lipgloss.Style, error) {
	parse := spacing
	if key == "width" || key == "height" {
		parse = interfaces.ToInt
	}
	n, err := parse(value)
	if err != nil {
		return s, err
	}
	switch key {
	case "paddingTop":
		return s.PaddingTop(n), nil
	case "paddingRight":
		return s.PaddingRight(n), nil
	case "paddingBottom":
		return s.PaddingBottom(n), nil
	case "paddingLeft":
		return s.PaddingLeft(n), nil
	case "marginTop":
		return s.MarginTop(n), nil
	case "marginRight":
		return s.MarginRight(n), nil
	case "marginBottom":
		return s.MarginBottom(n), nil
	case "marginLeft":
		return s.MarginLeft(n), nil
	case "width":
		return s.Width(n), nil
	default:
		return s.Height(n), nil
	}
}

func color(value any) lipgloss.Color {
	ref := fmt.Sprint(value)
	if c, ok := themes.PaletteColor(ref); ok {
		return c
	}
	return lipgloss.Color(ref)
}

// spacing accepts a cell count or a spacing scale name.
func spacing(value any) (int, error) {
	if name, ok := value.(string); ok {
		if n, found := themes.Spacing(name); found {
			return n, nil
		}
	}
	return interfaces.ToInt(value)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "bold" || v == "italic" || v == "underline"
	default:
		n, err := interfaces.ToInt(value)
		return err == nil && n != 0
	}
}
