// Package registry holds the active style interface and theme for call sites
// that do not receive them through context.
//
// A Registry can be constructed and passed around explicitly. The package-level
// functions operate on a process-wide default instance; registration there is
// last-writer-wins.
package registry

import (
	"sync"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/internal/perf"
	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Registry stores the currently registered theme and style interface.
type Registry struct {
	mu       sync.RWMutex
	theme    *style.Theme
	iface    *style.Interface
	validate bool
	logger   *logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithValidation toggles capability validation in RegisterInterface. It is on by default.
func WithValidation(enabled bool) Option {
	return func(r *Registry) {
		r.validate = enabled
	}
}

// WithLogger attaches a logger used for debug records and perf measures.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) {
		r.logger = log.Named("registry")
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{validate: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterTheme makes theme the active fallback theme.
func (r *Registry) RegisterTheme(theme *style.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme
	r.logger.WithField("theme", themeName(theme)).Debug("theme registered")
}

// RegisterInterface makes iface the active fallback interface. With
// validation enabled, an interface missing Create or Resolve is rejected and
// the previous registration is kept.
func (r *Registry) RegisterInterface(iface *style.Interface) error {
	if r.validationEnabled() {
		if err := style.Validate(iface); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.iface = iface
	r.logger.Debug("style interface registered")
	return nil
}

func (r *Registry) validationEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.validate
}

// Get returns the registered theme or an UnregisteredStateError.
func (r *Registry) Get() (*style.Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.theme == nil {
		return nil, themeerrors.NewUnregisteredStateError("theme")
	}
	return r.theme, nil
}

// GetInterface returns the registered interface or an UnregisteredStateError.
func (r *Registry) GetInterface() (*style.Interface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.iface == nil {
		return nil, themeerrors.NewUnregisteredStateError("style interface")
	}
	return r.iface, nil
}

// Lookup returns whatever is registered, nil for absent values. Context-sourced
// consumers use it to fall through without treating absence as an error.
func (r *Registry) Lookup() (*style.Theme, *style.Interface) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme, r.iface
}

// Reset clears both registrations.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = nil
	r.iface = nil
}

// Logger returns the logger attached to the registry, possibly nil.
func (r *Registry) Logger() *logger.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

func themeName(theme *style.Theme) string {
	if theme == nil {
		return ""
	}
	return theme.Name
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// RegisterTheme registers theme on the default registry.
func RegisterTheme(theme *style.Theme) {
	defaultRegistry.RegisterTheme(theme)
}

// RegisterInterface registers iface on the default registry.
func RegisterInterface(iface *style.Interface) error {
	return defaultRegistry.RegisterInterface(iface)
}

// Get returns the theme registered on the default registry.
func Get() (*style.Theme, error) {
	return defaultRegistry.Get()
}

// GetInterface returns the interface registered on the default registry.
func GetInterface() (*style.Interface, error) {
	return defaultRegistry.GetInterface()
}

// Reset clears the default registry (for tests).
func Reset() {
	defaultRegistry.Reset()
}

// selected returns the perf-instrumented create or resolve for dir.
func (r *Registry) selected(dir style.Direction) (style.CreateFunc, style.ResolveFunc, error) {
	iface, err := r.GetInterface()
	if err != nil {
		return nil, nil, err
	}
	log := r.Logger()
	return perf.WrapCreate(log, iface.CreateFor(dir)), perf.WrapResolve(log, iface.ResolveFor(dir)), nil
}
