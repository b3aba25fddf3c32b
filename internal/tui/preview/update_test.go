package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/terminal"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
	assert.Equal(t, 100, model.help.Width)
}

func TestUpdate_FlipDirectionReusesSlots(t *testing.T) {
	m := newTestModel(t)
	ltr := m.Result()

	m = press(t, m, "d")
	assert.Equal(t, style.RTL, m.Direction())
	rtl := m.Result()
	assert.NotSame(t, ltr, rtl)
	assert.False(t, m.cached)

	rule := rtl.Styles.Get("title").(*terminal.Rule)
	assert.Equal(t, 1, rule.Style.GetPaddingRight(), "rtl mirrors padding")

	m = press(t, m, "d")
	assert.Same(t, ltr, m.Result())
	assert.True(t, m.cached)
}

func TestUpdate_CycleThemes(t *testing.T) {
	m := newTestModel(t)
	light := m.Result()

	m = press(t, m, "t")
	assert.Equal(t, "dark", m.Theme().Name)
	assert.Same(t, m.Theme(), m.Result().Theme)

	m = press(t, m, "T")
	assert.Same(t, light, m.Result())
	assert.True(t, m.cached)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.help.ShowAll)

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInit(t *testing.T) {
	assert.Nil(t, newTestModel(t).Init())
}
