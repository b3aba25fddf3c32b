package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themestyle/internal/interfaces/terminal"
)

// View renders the preview.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.binding.DisplayName()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSamples())
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	themeName := "(none)"
	if theme := m.Theme(); theme != nil {
		themeName = theme.Name
	}
	status := fmt.Sprintf("theme: %s (%d/%d)  direction: %s", themeName, m.themeIdx+1, len(m.themes), m.Direction())
	line := statusStyle.Render(status)
	if m.err == nil {
		state := "recomputed"
		if m.cached {
			state = "cached"
		}
		line += "  " + cachedStyle.Render(state)
	}
	return line
}

func (m Model) renderSamples() string {
	if m.result == nil || m.result.Styles == nil {
		return ""
	}

	width := m.width - 20
	if width < 10 {
		width = 10
	}

	var lines []string
	for _, name := range m.result.Styles.Keys() {
		var sample string
		switch rule := m.result.Styles.Get(name).(type) {
		case *terminal.Rule:
			sample = rule.Render(name)
		default:
			sample = fmt.Sprintf("%v", rule)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, keyLabelStyle.Render(name), sampleStyle.MaxWidth(width).Render(sample))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
