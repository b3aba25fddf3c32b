// Package withstyles binds style declarations to components and memoizes the
// derived {stylesheet, resolver, theme} triple across rendering passes.
//
// # Caching
//
// A Binding keeps two caches:
//
//   - a theme-keyed cache of declaration results, shared by every direction and
//     interface, so a declaration runs at most once per theme;
//   - per theme, one slot per direction holding the interface and theme the
//     slot was computed for, the selected create/resolve functions and the
//     derived Result.
//
// A slot is reused only while both its interface and theme are identical
// (pointer equality) to the ones being resolved. When only the interface
// changes, the stylesheet and resolver are rebuilt; when only the declaration
// result changes, the resolver is kept and the stylesheet is recreated.
//
// Entries live as long as the Binding. Call Forget when a theme is retired or
// Reset to drop everything.
//
// # Granularity
//
// Wrapped components share their Binding's cache. Instances created with
// NewInstance own their direction slots and share only the declaration cache;
// use them when one Binding backs components that must not share derived
// results.
//
//	button, err := withstyles.New(func(theme *style.Theme) style.StyleMap {
//		return style.StyleMap{"root": map[string]any{"color": theme.TokenOr("color.primary", "black")}}
//	}, withstyles.WithFlushBefore(true))
//	wrapped := button.Wrap(withstyles.ComponentFunc(renderButton))
//	out, err := wrapped.Render(ctx, withstyles.Props{"label": "OK"})
package withstyles
