package withstyles

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Props are the inputs handed to a component.
type Props map[string]any

// Component renders props to output.
type Component interface {
	Render(ctx context.Context, props Props) (string, error)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx context.Context, props Props) (string, error)

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, props Props) (string, error) {
	return f(ctx, props)
}

// Named is implemented by components that report their own display name.
type Named interface {
	Name() string
}

// Wrapped renders its component with the binding's styles, resolver and
// theme injected under the configured prop names.
type Wrapped struct {
	binding   *Binding
	component Component
	name      string

	mu         sync.Mutex
	rendered   bool
	lastProps  Props
	lastResult *Result
	lastOutput string
}

// Wrap returns c wrapped with this binding.
func (b *Binding) Wrap(c Component) *Wrapped {
	return &Wrapped{
		binding:   b,
		component: c,
		name:      componentName(c, b.opts.Name),
	}
}

// DisplayName returns "withStyles(<component name>)".
func (w *Wrapped) DisplayName() string {
	return fmt.Sprintf("withStyles(%s)", w.name)
}

// DisplayName returns "withStyles(<name>)" for the binding's configured name.
func (b *Binding) DisplayName() string {
	return fmt.Sprintf("withStyles(%s)", componentName(nil, b.opts.Name))
}

// Unwrap returns the wrapped component.
func (w *Wrapped) Unwrap() Component {
	return w.component
}

// Binding returns the binding backing w.
func (w *Wrapped) Binding() *Binding {
	return w.binding
}

// Render resolves styles from ctx and renders the wrapped component. Caller
// props named like the injected props are overridden.
func (w *Wrapped) Render(ctx context.Context, props Props) (string, error) {
	result, err := w.binding.ResolveContext(ctx)
	if err != nil {
		return "", err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	pure := w.binding.opts.PureComponent
	if pure && w.rendered && result == w.lastResult && shallowEqual(props, w.lastProps) {
		return w.lastOutput, nil
	}

	opts := w.binding.opts
	injected := make(Props, len(props)+3)
	for key, value := range props {
		injected[key] = value
	}
	injected[opts.ThemePropName] = result.Theme
	injected[opts.StylesPropName] = result.Styles
	injected[opts.CSSPropName] = result.CSS

	out, err := w.component.Render(ctx, injected)
	if err != nil {
		return "", err
	}

	if pure {
		w.rendered = true
		w.lastProps = props
		w.lastResult = result
		w.lastOutput = out
	}
	return out, nil
}

func componentName(c Component, fallback string) string {
	if named, ok := c.(Named); ok && named.Name() != "" {
		return named.Name()
	}
	if fallback != "" {
		return fallback
	}
	if c != nil {
		t := reflect.TypeOf(c)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Name() != "" && t.Name() != "ComponentFunc" {
			return t.Name()
		}
	}
	return "Component"
}

// StylesFrom extracts the injected values from props using opts' prop names.
func StylesFrom(props Props, opts Options) (*Result, bool) {
	sheet, ok := props[opts.StylesPropName].(*style.Stylesheet)
	if !ok {
		return nil, false
	}
	css, ok := props[opts.CSSPropName].(*Resolver)
	if !ok {
		return nil, false
	}
	theme, _ := props[opts.ThemePropName].(*style.Theme)
	return &Result{Styles: sheet, CSS: css, Theme: theme}, true
}
