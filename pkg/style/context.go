package style

import "context"

type contextKey int

const (
	themeKey contextKey = iota
	interfaceKey
	directionKey
)

// WithTheme returns a context carrying theme for descendants.
func WithTheme(ctx context.Context, theme *Theme) context.Context {
	return context.WithValue(ctx, themeKey, theme)
}

// ThemeFromContext returns the nearest theme, if any. A nil theme counts as absent.
func ThemeFromContext(ctx context.Context) (*Theme, bool) {
	if ctx == nil {
		return nil, false
	}
	theme, ok := ctx.Value(themeKey).(*Theme)
	return theme, ok && theme != nil
}

// WithInterface returns a context carrying iface for descendants.
func WithInterface(ctx context.Context, iface *Interface) context.Context {
	return context.WithValue(ctx, interfaceKey, iface)
}

// InterfaceFromContext returns the nearest interface, if any.
func InterfaceFromContext(ctx context.Context) (*Interface, bool) {
	if ctx == nil {
		return nil, false
	}
	iface, ok := ctx.Value(interfaceKey).(*Interface)
	return iface, ok && iface != nil
}

// WithDirection returns a context carrying dir for descendants.
func WithDirection(ctx context.Context, dir Direction) context.Context {
	return context.WithValue(ctx, directionKey, dir)
}

// DirectionFromContext returns the nearest direction, defaulting to LTR.
func DirectionFromContext(ctx context.Context) Direction {
	if ctx == nil {
		return LTR
	}
	if dir, ok := ctx.Value(directionKey).(Direction); ok {
		return dir
	}
	return LTR
}
