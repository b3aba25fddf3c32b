package withstyles

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/internal/perf"
	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
	"github.com/alexisbeaulieu97/themestyle/pkg/extend"
	"github.com/alexisbeaulieu97/themestyle/pkg/registry"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Result is the triple handed to a component. Results are shared between
// resolutions and must be treated as read-only.
type Result struct {
	Styles *style.Stylesheet
	CSS    *Resolver
	Theme  *style.Theme
}

// Resolver resolves style references through the interface selected for a
// direction. Its identity is stable while the interface is unchanged.
type Resolver struct {
	resolve style.ResolveFunc
}

// CSS resolves refs (stylesheet entries, inline maps or nested lists).
func (r *Resolver) CSS(refs ...any) style.RenderableProps {
	if r == nil || r.resolve == nil {
		return style.RenderableProps{}
	}
	return r.resolve(refs)
}

// declaration is a memoized declaration result; its pointer is its identity.
type declaration struct {
	styles style.StyleMap
}

type cacheEntry struct {
	iface       *style.Interface
	theme       *style.Theme
	create      style.CreateFunc
	resolve     style.ResolveFunc
	declaration *declaration
	result      *Result
}

type directionSlots [2]*cacheEntry

// Binding attaches a style declaration to components. Each Binding owns its
// caches; two bindings built from the same declaration share nothing.
type Binding struct {
	declare style.CheckedDeclarationFunc
	opts    Options
	log     *logger.Logger

	mu           sync.Mutex
	declarations map[*style.Theme]*declaration
	entries      map[*style.Theme]*directionSlots
}

// New creates a Binding for declare. A nil declare declares no styles.
func New(declare style.DeclarationFunc, opts ...Option) (*Binding, error) {
	return newBinding(declare.Checked(), opts...)
}

func newBinding(declare style.CheckedDeclarationFunc, opts ...Option) (*Binding, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return newBindingWithOptions(declare, options), nil
}

func newBindingWithOptions(declare style.CheckedDeclarationFunc, options Options) *Binding {
	log := options.Logger
	if options.Name != "" {
		log = log.WithField("binding", options.Name)
	}
	return &Binding{
		declare:      declare,
		opts:         options,
		log:          log,
		declarations: make(map[*style.Theme]*declaration),
		entries:      make(map[*style.Theme]*directionSlots),
	}
}

// Bind returns a wrapper factory for declare, mirroring New followed by Wrap.
func Bind(declare style.DeclarationFunc, opts ...Option) (func(Component) *Wrapped, error) {
	b, err := New(declare, opts...)
	if err != nil {
		return nil, err
	}
	return b.Wrap, nil
}

// Options returns a copy of the binding's options.
func (b *Binding) Options() Options {
	return b.opts
}

// Extend returns a new Binding whose declaration is this one extended by each
// fn in order. Every layer is validated against ExtendableStyles when the
// styles are resolved; a binding without a schema rejects any extension.
func (b *Binding) Extend(fns ...style.DeclarationFunc) *Binding {
	declare := extend.Chain(b.declare, b.opts.ExtendableStyles, fns...)
	return newBindingWithOptions(declare, b.opts)
}

// Resolve returns the derived triple for the given theme, interface and
// direction, recomputing only what changed since the last resolution.
func (b *Binding) Resolve(theme *style.Theme, iface *style.Interface, dir style.Direction) (*Result, error) {
	if err := checkInputs(theme, iface); err != nil {
		return nil, err
	}
	dir = normalize(dir)
	if b.opts.FlushBefore {
		iface.FlushBuffered()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	slots := b.entries[theme]
	if slots == nil {
		slots = &directionSlots{}
		b.entries[theme] = slots
	}

	entry, err := b.resolveSlot(&slots[dir], theme, iface, dir)
	if err != nil {
		return nil, err
	}
	return entry.result, nil
}

// ResolveContext reads theme, interface and direction from ctx, falling back
// to the registry for anything absent.
func (b *Binding) ResolveContext(ctx context.Context) (*Result, error) {
	theme, iface, dir := b.ambient(ctx)
	return b.Resolve(theme, iface, dir)
}

func (b *Binding) ambient(ctx context.Context) (*style.Theme, *style.Interface, style.Direction) {
	reg := b.opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	fallbackTheme, fallbackIface := reg.Lookup()

	theme, ok := style.ThemeFromContext(ctx)
	if !ok {
		theme = fallbackTheme
	}
	iface, ok := style.InterfaceFromContext(ctx)
	if !ok {
		iface = fallbackIface
	}
	return theme, iface, style.DirectionFromContext(ctx)
}

// resolveSlot runs the memoization algorithm against one direction slot.
// The caller holds b.mu.
func (b *Binding) resolveSlot(slot **cacheEntry, theme *style.Theme, iface *style.Interface, dir style.Direction) (*cacheEntry, error) {
	prev := *slot
	if prev != nil && prev.iface == iface && prev.theme == theme {
		return prev, nil
	}

	interfaceChanged := prev == nil || prev.iface != iface
	themeChanged := prev == nil || prev.theme != theme

	next := &cacheEntry{iface: iface, theme: theme}
	if interfaceChanged {
		next.create = perf.WrapCreate(b.log, iface.CreateFor(dir))
		next.resolve = perf.WrapResolve(b.log, iface.ResolveFor(dir))
	} else {
		next.create = prev.create
		next.resolve = prev.resolve
	}

	decl, err := b.declarationFor(theme)
	if err != nil {
		return nil, err
	}
	next.declaration = decl

	result := &Result{Theme: theme}
	if interfaceChanged || prev.declaration != decl {
		sheet, err := next.create(decl.styles)
		if err != nil {
			return nil, err
		}
		result.Styles = sheet
	} else {
		result.Styles = prev.result.Styles
	}

	if interfaceChanged {
		result.CSS = &Resolver{resolve: next.resolve}
	} else {
		result.CSS = prev.result.CSS
	}
	next.result = result

	b.log.WithFields(map[string]any{
		"direction":         dir.String(),
		"interface_changed": interfaceChanged,
		"theme_changed":     themeChanged,
	}).Debug("styles recomputed")

	*slot = next
	return next, nil
}

// declarationFor returns the memoized declaration result for theme. The
// caller holds b.mu.
func (b *Binding) declarationFor(theme *style.Theme) (*declaration, error) {
	if decl, ok := b.declarations[theme]; ok {
		return decl, nil
	}

	styles, err := b.declare(theme)
	if err != nil {
		return nil, err
	}
	if styles == nil {
		styles = style.StyleMap{}
	}

	decl := &declaration{styles: styles}
	b.declarations[theme] = decl
	return decl, nil
}

// Forget drops every cached value derived from theme.
func (b *Binding) Forget(theme *style.Theme) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.declarations, theme)
	delete(b.entries, theme)
}

// Reset drops all cached values.
func (b *Binding) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.declarations = make(map[*style.Theme]*declaration)
	b.entries = make(map[*style.Theme]*directionSlots)
}

func checkInputs(theme *style.Theme, iface *style.Interface) error {
	if iface == nil {
		return themeerrors.NewUnregisteredStateError("style interface")
	}
	if theme == nil {
		return themeerrors.NewUnregisteredStateError("theme")
	}
	return nil
}

func normalize(dir style.Direction) style.Direction {
	if dir == style.RTL {
		return style.RTL
	}
	return style.LTR
}
