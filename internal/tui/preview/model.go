// Package preview is an interactive terminal preview of a style binding that
// re-resolves as the theme or direction changes.
package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themestyle/pkg/direction"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
	"github.com/alexisbeaulieu97/themestyle/pkg/withstyles"
)

// Model is the preview model.
type Model struct {
	binding  *withstyles.Binding
	iface    *style.Interface
	themes   []*style.Theme
	provider *direction.Provider

	themeIdx int
	result   *withstyles.Result
	cached   bool
	seen     map[*withstyles.Result]bool
	err      error

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a preview over themes, starting at the provider's direction.
// Themes must not be empty.
func NewModel(binding *withstyles.Binding, iface *style.Interface, themes []*style.Theme, provider *direction.Provider) Model {
	if provider == nil {
		provider = direction.NewProvider(style.LTR, nil)
	}
	m := Model{
		binding:  binding,
		iface:    iface,
		themes:   themes,
		provider: provider,
		seen:     make(map[*withstyles.Result]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.resolve()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() *style.Theme {
	if len(m.themes) == 0 {
		return nil
	}
	return m.themes[m.themeIdx]
}

// Direction returns the active direction.
func (m Model) Direction() style.Direction {
	return m.provider.Get()
}

// Result returns the last resolution, nil after an error.
func (m Model) Result() *withstyles.Result {
	return m.result
}

// Err returns the last resolution error.
func (m Model) Err() error {
	return m.err
}

func (m Model) context() context.Context {
	ctx := style.WithInterface(context.Background(), m.iface)
	if theme := m.Theme(); theme != nil {
		ctx = style.WithTheme(ctx, theme)
	}
	return m.provider.Context(ctx)
}

// resolve re-runs the binding and records whether the result came from cache.
func (m *Model) resolve() {
	result, err := m.binding.ResolveContext(m.context())
	if err != nil {
		m.result = nil
		m.err = err
		m.cached = false
		return
	}
	m.err = nil
	m.result = result
	m.cached = m.seen[result]
	m.seen[result] = true
}

func (m *Model) nextTheme(step int) {
	if len(m.themes) == 0 {
		return
	}
	m.themeIdx = (m.themeIdx + step + len(m.themes)) % len(m.themes)
}
