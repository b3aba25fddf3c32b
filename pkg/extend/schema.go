// Package extend layers extending style declarations on top of a base
// declaration, gated by a schema of extendable paths.
package extend

import (
	"reflect"
	"sort"
	"strconv"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Predicate decides whether an extending value is acceptable for a path.
type Predicate func(value any, theme *style.Theme) bool

// Schema declares which style paths an extension may touch. Each value is
// true (the whole subtree is freely overridable), a Predicate, or a nested
// Schema. A missing key, false or nil means "not extendable". Under a nested
// Schema an extension may give a mapping, a string, number or bool, or a
// non-empty list whose elements are checked under their index.
type Schema map[string]any

const (
	msgNotExtendable     = "path is not declared extendable"
	msgPredicateRejected = "value rejected by extendable predicate"
)

// Validate checks every path of ext against schema, depth-first in sorted key
// order. The first violation is returned as a StyleExtensionError.
func Validate(ext style.StyleMap, schema Schema, theme *style.Theme) error {
	return validateMapping(map[string]any(ext), map[string]any(schema), theme, nil)
}

func validateMapping(ext map[string]any, schema map[string]any, theme *style.Theme, path []string) error {
	keys := make([]string, 0, len(ext))
	for key := range ext {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		current := append(path[:len(path):len(path)], key)
		node, ok := schema[key]
		if !ok || !declared(node) {
			return themeerrors.NewStyleExtensionError(current, msgNotExtendable)
		}
		if err := validateValue(ext[key], node, theme, current); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(value any, node any, theme *style.Theme, path []string) error {
	if pred, ok := asPredicate(node); ok {
		if !pred(value, theme) {
			return themeerrors.NewStyleExtensionError(path, msgPredicateRejected)
		}
		return nil
	}

	if allowed, ok := node.(bool); ok && allowed {
		return nil
	}

	schemaNode, ok := asSchema(node)
	if !ok {
		return themeerrors.NewStyleExtensionError(path, msgNotExtendable)
	}

	if nested, ok := style.AsMap(value); ok {
		return validateMapping(nested, schemaNode, theme, path)
	}
	if isScalar(value) {
		return nil
	}
	// Lists are checked element by element, keyed by index.
	if items, ok := asList(value); ok && len(items) > 0 {
		return validateMapping(items, schemaNode, theme, path)
	}
	return themeerrors.NewStyleExtensionError(path, msgNotExtendable)
}

func isScalar(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// asList keys the elements of a slice or array by their index.
func asList(value any) (map[string]any, bool) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	items := make(map[string]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		items[strconv.Itoa(i)] = v.Index(i).Interface()
	}
	return items, true
}

func declared(node any) bool {
	switch n := node.(type) {
	case nil:
		return false
	case bool:
		return n
	default:
		return true
	}
}

func asPredicate(node any) (Predicate, bool) {
	switch fn := node.(type) {
	case Predicate:
		return fn, fn != nil
	case func(any, *style.Theme) bool:
		return fn, fn != nil
	default:
		return nil, false
	}
}

func asSchema(node any) (map[string]any, bool) {
	switch n := node.(type) {
	case Schema:
		return map[string]any(n), true
	case map[string]any:
		return n, true
	default:
		return nil, false
	}
}
