package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	idleStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	resultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// View renders the path line, method selector, and result pane.
func (m *Model) View() tea.View {
	title := titleStyle.Render(fmt.Sprintf("ypath — %s", m.filename))

	var methodCells []string

	for i, meth := range methods {
		style := idleStyle
		if i == m.methodIdx {
			style = activeStyle
		}

		methodCells = append(methodCells, style.Render(meth.String()))
	}

	methodLine := "Method: " + strings.Join(methodCells, " ")

	pathLine := fmt.Sprintf("Path:   %s│%s", string(m.path[:m.cursor]), string(m.path[m.cursor:]))

	result := resultStyle.Render(m.result)

	help := helpStyle.Render(
		fmt.Sprintf("tab/shift+tab: method   ←/→: move   backspace/delete: edit   ctrl+u: clear   esc: quit   (%s)",
			m.duration))

	body := strings.Join([]string{title, "", methodLine, pathLine, "", result, "", help}, "\n")

	v := tea.NewView(body)
	v.AltScreen = true

	return v
}
