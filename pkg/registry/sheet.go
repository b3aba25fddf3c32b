package registry

import (
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// SheetFunc returns a stylesheet created once, at the time it was built.
type SheetFunc func() *style.Stylesheet

// Create is CreateLTR.
func (r *Registry) Create(fn style.DeclarationFunc) (SheetFunc, error) {
	return r.CreateLTR(fn)
}

// CreateLTR evaluates fn against the registered theme and creates the
// stylesheet with the interface's left-to-right create function.
func (r *Registry) CreateLTR(fn style.DeclarationFunc) (SheetFunc, error) {
	return r.createWithDirection(fn, style.LTR)
}

// CreateRTL is CreateLTR for right-to-left output.
func (r *Registry) CreateRTL(fn style.DeclarationFunc) (SheetFunc, error) {
	return r.createWithDirection(fn, style.RTL)
}

func (r *Registry) createWithDirection(fn style.DeclarationFunc, dir style.Direction) (SheetFunc, error) {
	theme, err := r.Get()
	if err != nil {
		return nil, err
	}
	create, _, err := r.selected(dir)
	if err != nil {
		return nil, err
	}

	var declared style.StyleMap
	if fn != nil {
		declared = fn(theme)
	}
	if declared == nil {
		declared = style.StyleMap{}
	}

	sheet, err := create(declared)
	if err != nil {
		return nil, err
	}
	return func() *style.Stylesheet { return sheet }, nil
}

// Resolve is ResolveLTR.
func (r *Registry) Resolve(refs ...any) (style.RenderableProps, error) {
	return r.ResolveLTR(refs...)
}

// ResolveLTR resolves refs through the registered interface, left-to-right.
func (r *Registry) ResolveLTR(refs ...any) (style.RenderableProps, error) {
	return r.resolveWithDirection(refs, style.LTR)
}

// ResolveRTL resolves refs through the registered interface, right-to-left.
func (r *Registry) ResolveRTL(refs ...any) (style.RenderableProps, error) {
	return r.resolveWithDirection(refs, style.RTL)
}

func (r *Registry) resolveWithDirection(refs []any, dir style.Direction) (style.RenderableProps, error) {
	_, resolve, err := r.selected(dir)
	if err != nil {
		return nil, err
	}
	return resolve(refs), nil
}

// Flush asks the registered interface to emit buffered output. It is a no-op
// when nothing is registered or the interface does not buffer.
func (r *Registry) Flush() {
	_, iface := r.Lookup()
	iface.FlushBuffered()
}

// Create is CreateLTR on the default registry.
func Create(fn style.DeclarationFunc) (SheetFunc, error) {
	return defaultRegistry.Create(fn)
}

// CreateLTR on the default registry.
func CreateLTR(fn style.DeclarationFunc) (SheetFunc, error) {
	return defaultRegistry.CreateLTR(fn)
}

// CreateRTL on the default registry.
func CreateRTL(fn style.DeclarationFunc) (SheetFunc, error) {
	return defaultRegistry.CreateRTL(fn)
}

// Resolve is ResolveLTR on the default registry.
func Resolve(refs ...any) (style.RenderableProps, error) {
	return defaultRegistry.Resolve(refs...)
}

// ResolveLTR on the default registry.
func ResolveLTR(refs ...any) (style.RenderableProps, error) {
	return defaultRegistry.ResolveLTR(refs...)
}

// ResolveRTL on the default registry.
func ResolveRTL(refs ...any) (style.RenderableProps, error) {
	return defaultRegistry.ResolveRTL(refs...)
}

// Flush on the default registry.
func Flush() {
	defaultRegistry.Flush()
}
