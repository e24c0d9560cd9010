package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"llmpad/internal/runner"
	"llmpad/internal/session"
	"llmpad/pkg"
)

// One message type per asynchronous outcome; the Update loop stays a
// plain switch over these.
type (
	runDoneMsg struct{ resp pkg.ExecutionResponse }

	// opDoneMsg carries a single-block result (format, markdown review).
	opDoneMsg struct {
		title    string
		language string
		raw      string
	}

	opErrMsg struct{ err error }

	sessionSavedMsg struct{}

	sessionLoadedMsg struct{ snap pkg.SessionSnapshot }

	noticeMsg struct{ text string }
)

func runCmd(r *runner.Runner, req pkg.ExecutionRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := r.RunCode(context.Background(), req)
		if err != nil {
			return opErrMsg{err: err}
		}
		return runDoneMsg{resp: resp}
	}
}

func formatCmd(r *runner.Runner, language, code string) tea.Cmd {
	return func() tea.Msg {
		formatted, err := r.FormatCode(context.Background(), language, code)
		if err != nil {
			return opErrMsg{err: err}
		}
		return opDoneMsg{title: "Formatted", language: language, raw: formatted}
	}
}

func reviewCmd(r *runner.Runner, text string) tea.Cmd {
	return func() tea.Msg {
		review, err := r.ReviewMarkdown(context.Background(), text)
		if err != nil {
			return opErrMsg{err: err}
		}
		return opDoneMsg{title: "Markdown Review", language: "markdown", raw: review}
	}
}

func saveCmd(store session.Store, snap pkg.SessionSnapshot) tea.Cmd {
	return func() tea.Msg {
		if err := store.Save(context.Background(), snap); err != nil {
			return opErrMsg{err: err}
		}
		return sessionSavedMsg{}
	}
}

func loadCmd(store session.Store) tea.Cmd {
	return func() tea.Msg {
		snap, err := store.Load(context.Background())
		if err != nil {
			if errors.Is(err, session.ErrNoSnapshot) {
				return noticeMsg{text: "No saved session to load"}
			}
			return opErrMsg{err: err}
		}
		return sessionLoadedMsg{snap: snap}
	}
}
