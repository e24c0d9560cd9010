// Package ui is the terminal front end: two editors, a language
// selector, and a results pane of rendered cards. All UI state lives
// in this model and changes only through Update; nothing is inferred
// from what happens to be on screen.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"llmpad/internal/config"
	"llmpad/internal/detect"
	"llmpad/internal/runner"
	"llmpad/internal/session"
	"llmpad/pkg"
)

type focusArea int

const (
	focusCode focusArea = iota
	focusTests
)

// Model is the whole UI state record: language selection, test-panel
// visibility and the last result are explicit fields, not display
// side effects.
type Model struct {
	cfg      config.Config
	runner   *runner.Runner
	store    session.Store
	detector detect.Detector
	debounce *Debouncer

	code    textarea.Model
	tests   textarea.Model
	results viewport.Model
	spin    spinner.Model

	renderer *glamour.TermRenderer

	langIdx      int
	testsVisible bool
	focus        focusArea
	loading      bool
	loadEnabled  bool
	notice       string
	cards        []Card

	width  int
	height int
	ready  bool
}

// New builds the initial model. loadEnabled is decided once at
// startup: Load stays disabled until something has been saved.
func New(cfg config.Config, r *runner.Runner, store session.Store) Model {
	code := textarea.New()
	code.Placeholder = "Enter code here..."
	code.CharLimit = 0
	code.Focus()

	tests := textarea.New()
	tests.Placeholder = "Enter unit tests here..."
	tests.CharLimit = 0

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))),
	)

	return Model{
		cfg:    cfg,
		runner: r,
		store:  store,
		detector: detect.Detector{
			MinChars:   cfg.Detect.MinChars,
			Confidence: cfg.Detect.Confidence,
		},
		debounce:    NewDebouncer(cfg.Detect.Debounce),
		code:        code,
		tests:       tests,
		spin:        spin,
		loadEnabled: store.Exists(context.Background()),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// language returns the currently selected language tag.
func (m Model) language() string {
	return pkg.Languages[m.langIdx]
}

// snapshot captures the current edit state for Save.
func (m Model) snapshot() pkg.SessionSnapshot {
	return pkg.SessionSnapshot{
		Code:         m.code.Value(),
		Tests:        m.tests.Value(),
		Language:     m.language(),
		TestsVisible: m.testsVisible,
	}
}

// applySnapshot restores the edit state from a loaded snapshot.
// Unknown languages fall back to the first selector entry.
func (m *Model) applySnapshot(snap pkg.SessionSnapshot) {
	m.code.SetValue(snap.Code)
	m.tests.SetValue(snap.Tests)
	m.testsVisible = snap.TestsVisible
	m.langIdx = 0
	for i, lang := range pkg.Languages {
		if lang == snap.Language {
			m.langIdx = i
			break
		}
	}
}

// setCards replaces the result cards and refreshes the viewport.
func (m *Model) setCards(cards []Card) {
	m.cards = cards
	m.refreshResults()
}

func (m *Model) refreshResults() {
	if !m.ready {
		return
	}
	copyRaw := CopyPayload(m.cards)
	var rendered string
	for _, c := range m.cards {
		rendered += renderCard(c, m.renderer, c.Raw != "" && c.Raw == copyRaw) + "\n"
	}
	m.results.SetContent(rendered)
	m.results.GotoTop()
}
