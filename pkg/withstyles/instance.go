package withstyles

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Instance is a per-rendered-instance cache: one slot per direction, owned by
// the instance. It shares only the declaration cache with its Binding, so
// discarding the instance discards its derived results.
type Instance struct {
	binding *Binding

	mu    sync.Mutex
	slots directionSlots
}

// NewInstance creates an instance-scoped cache backed by b's declarations.
func (b *Binding) NewInstance() *Instance {
	return &Instance{binding: b}
}

// Resolve follows the same invalidation rules as Binding.Resolve, against the
// instance's own slots.
func (in *Instance) Resolve(theme *style.Theme, iface *style.Interface, dir style.Direction) (*Result, error) {
	if err := checkInputs(theme, iface); err != nil {
		return nil, err
	}
	dir = normalize(dir)
	if in.binding.opts.FlushBefore {
		iface.FlushBuffered()
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	// The declaration cache lives on the binding and is guarded by its lock.
	in.binding.mu.Lock()
	defer in.binding.mu.Unlock()

	entry, err := in.binding.resolveSlot(&in.slots[dir], theme, iface, dir)
	if err != nil {
		return nil, err
	}
	return entry.result, nil
}

// ResolveContext is Resolve with values read from ctx and the registry.
func (in *Instance) ResolveContext(ctx context.Context) (*Result, error) {
	theme, iface, dir := in.binding.ambient(ctx)
	return in.Resolve(theme, iface, dir)
}
