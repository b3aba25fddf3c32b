package withstyles

import (
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// fakeInterface records every call made through the interface it builds.
type fakeInterface struct {
	calls   []string
	created []style.StyleMap
}

func (f *fakeInterface) count(name string) int {
	n := 0
	for _, call := range f.calls {
		if call == name {
			n++
		}
	}
	return n
}

func (f *fakeInterface) create(name string) style.CreateFunc {
	return func(styles style.StyleMap) (*style.Stylesheet, error) {
		f.calls = append(f.calls, name)
		f.created = append(f.created, styles)
		return style.NewStylesheet(map[string]any{"variant": name}), nil
	}
}

func (f *fakeInterface) resolve(name string) style.ResolveFunc {
	return func(refs []any) style.RenderableProps {
		f.calls = append(f.calls, name)
		return style.RenderableProps{"variant": name, "refs": style.Flatten(refs)}
	}
}

// directional builds an interface with LTR/RTL variants and a flush.
func (f *fakeInterface) directional() *style.Interface {
	return &style.Interface{
		Create:     f.create("create"),
		Resolve:    f.resolve("resolve"),
		CreateLTR:  f.create("createLTR"),
		CreateRTL:  f.create("createRTL"),
		ResolveLTR: f.resolve("resolveLTR"),
		ResolveRTL: f.resolve("resolveRTL"),
		Flush: func() {
			f.calls = append(f.calls, "flush")
		},
	}
}

// generic builds an interface with only the required members.
func (f *fakeInterface) generic() *style.Interface {
	return &style.Interface{
		Create:  f.create("create"),
		Resolve: f.resolve("resolve"),
	}
}

// countingDeclaration returns a declaration and a pointer to its call count.
func countingDeclaration(styles style.StyleMap) (style.DeclarationFunc, *int) {
	calls := 0
	return func(*style.Theme) style.StyleMap {
		calls++
		return styles
	}, &calls
}
