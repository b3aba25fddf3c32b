// Package style holds the data model shared by the style resolution packages.
//
// A Theme supplies design tokens, an Interface turns abstract style
// declarations into backend output, and a Direction selects which interface
// variant handles a declaration. Themes and interfaces are always handled as
// pointers and compared by identity: two themes with identical tokens are
// different themes.
//
//	iface := &style.Interface{Create: createFn, Resolve: resolveFn}
//	if err := style.Validate(iface); err != nil {
//		return err
//	}
//	create := iface.CreateFor(style.RTL) // CreateRTL when set, Create otherwise
//
// Ambient values travel through context.Context:
//
//	ctx = style.WithTheme(ctx, theme)
//	ctx = style.WithDirection(ctx, style.RTL)
package style
