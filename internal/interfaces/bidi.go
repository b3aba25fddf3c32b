// Package interfaces holds helpers shared by the bundled style backends.
package interfaces

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// MirrorProperty swaps "left" and "right" inside a property name, in either
// camelCase (marginLeft) or kebab-case (margin-left) form.
func MirrorProperty(name string) string {
	replacer := strings.NewReplacer(
		"Left", "\x00R", "Right", "\x00L",
		"left", "\x00r", "right", "\x00l",
	)
	swapped := replacer.Replace(name)
	return strings.NewReplacer("\x00R", "Right", "\x00L", "Left", "\x00r", "right", "\x00l", "left").Replace(swapped)
}

// MirrorValue flips directional keyword values for the properties that take them.
func MirrorValue(property string, value any) any {
	switch strings.ToLower(strings.ReplaceAll(property, "-", "")) {
	case "textalign", "float", "clear", "align":
	default:
		return value
	}
	s, ok := value.(string)
	if !ok {
		return value
	}
	switch s {
	case "left":
		return "right"
	case "right":
		return "left"
	case "start", "end":
		return s
	}
	return value
}

// Mirror returns a copy of props with every property and value mirrored.
// Nested maps (pseudo selectors, media queries) are mirrored recursively.
func Mirror(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for key, value := range props {
		if nested, ok := style.AsMap(value); ok {
			out[key] = Mirror(nested)
			continue
		}
		out[MirrorProperty(key)] = MirrorValue(key, value)
	}
	return out
}

// ToInt coerces a numeric document value to int. Strings are parsed after
// dropping a trailing "px".
func ToInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
