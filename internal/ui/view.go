package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var left strings.Builder
	codeBox := editorStyle
	testsBox := editorStyle
	if m.focus == focusCode {
		codeBox = editorFocusStyle
	} else {
		testsBox = editorFocusStyle
	}
	left.WriteString(codeBox.Render(m.code.View()))
	if m.testsVisible {
		left.WriteString("\n")
		left.WriteString(testsBox.Render(m.tests.View()))
	}

	right := m.resultsView()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), " ", right)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("llmpad"),
		body,
		m.statusView(),
	)
}

func (m Model) resultsView() string {
	if m.loading {
		return fmt.Sprintf("\n %s waiting for %s...", m.spin.View(), m.runner.BackendName())
	}
	if len(m.cards) == 0 {
		return statusStyle.Render("\n Results will appear here.")
	}
	return m.results.View()
}

func (m Model) statusView() string {
	parts := []string{
		fmt.Sprintf("lang: %s", m.language()),
		fmt.Sprintf("backend: %s", m.runner.BackendName()),
	}
	if m.testsVisible {
		parts = append(parts, "tests: on")
	}
	status := statusStyle.Render(strings.Join(parts, " │ "))

	hints := statusStyle.Render(
		"ctrl+r run · ctrl+f format · ctrl+k review md · ctrl+t tests · ctrl+l language · ctrl+s/o save/load · ctrl+y copy · ctrl+c quit",
	)

	line := status
	if m.notice != "" {
		line += "  " + noticeStyle.Render(m.notice)
	}
	return line + "\n" + hints
}
