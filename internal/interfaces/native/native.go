// Package native is a style backend that registers declared properties in an
// id table and hands references through to the renderer untouched.
package native

import (
	"sync"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Backend owns the id table shared by every stylesheet it creates.
type Backend struct {
	mu     sync.RWMutex
	nextID int
	table  map[int]map[string]any
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{table: make(map[int]map[string]any)}
}

// Interface exposes the backend as a style interface. It has no direction
// variants and nothing to flush.
func (b *Backend) Interface() *style.Interface {
	return &style.Interface{
		Create:  b.Create,
		Resolve: b.Resolve,
	}
}

// Create registers each declared key and returns a sheet mapping keys to ids.
// Ids are assigned in sorted key order.
func (b *Backend) Create(styles style.StyleMap) (*style.Stylesheet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rules := make(map[string]any, len(styles))
	for _, key := range interfaces.SortedKeys(styles) {
		props, _ := style.AsMap(styles[key])
		b.table[b.nextID] = props
		rules[key] = b.nextID
		b.nextID++
	}
	return style.NewStylesheet(rules), nil
}

// Resolve returns refs under "style"; ids, inline maps and nested lists are
// passed through unchanged.
func (b *Backend) Resolve(refs []any) style.RenderableProps {
	if refs == nil {
		refs = []any{}
	}
	return style.RenderableProps{"style": refs}
}

// Lookup returns the properties registered under id.
func (b *Backend) Lookup(id int) (map[string]any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	props, ok := b.table[id]
	return props, ok
}

// Flatten resolves refs into a single property map, later refs winning.
func (b *Backend) Flatten(refs []any) map[string]any {
	out := map[string]any{}
	for _, ref := range style.Flatten(refs) {
		var props map[string]any
		switch v := ref.(type) {
		case int:
			props, _ = b.Lookup(v)
		default:
			props, _ = style.AsMap(v)
		}
		for key, value := range props {
			out[key] = value
		}
	}
	return out
}
