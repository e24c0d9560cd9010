package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"llmpad/internal/logger"
	"llmpad/pkg"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case DebounceMsg:
		if !m.debounce.Live(msg) {
			return m, nil
		}
		if lang, ok := m.detector.Detect(m.code.Value()); ok && lang != m.language() {
			for i, l := range pkg.Languages {
				if l == lang {
					m.langIdx = i
					logger.Debug().Str("language", lang).Msg("auto-detected language")
					break
				}
			}
		}
		return m, nil

	case runDoneMsg:
		m.loading = false
		m.setCards(CardsFromResponse(msg.resp, m.language()))
		return m, nil

	case opDoneMsg:
		m.loading = false
		m.setCards([]Card{{
			Title: msg.title,
			Body:  FenceWrap(msg.raw, msg.language),
			Raw:   msg.raw,
		}})
		return m, nil

	case opErrMsg:
		m.loading = false
		m.setCards([]Card{ErrorCard(msg.err)})
		return m, nil

	case sessionSavedMsg:
		m.loadEnabled = true
		m.notice = "Session saved"
		return m, nil

	case sessionLoadedMsg:
		m.applySnapshot(msg.snap)
		m.notice = "Session loaded"
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil
	}

	// Component housekeeping messages (cursor blinks and the like).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	cmds = append(cmds, cmd)
	m.tests, cmd = m.tests.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Run):
		return m.submit(runCmd(m.runner, pkg.ExecutionRequest{
			Language: m.language(),
			Code:     m.code.Value(),
			Tests:    m.testsValue(),
		}))

	case key.Matches(msg, keys.Format):
		return m.submit(formatCmd(m.runner, m.language(), m.code.Value()))

	case key.Matches(msg, keys.Review):
		return m.submit(reviewCmd(m.runner, m.code.Value()))

	case key.Matches(msg, keys.ToggleTests):
		m.testsVisible = !m.testsVisible
		if !m.testsVisible && m.focus == focusTests {
			m.focusCodeEditor()
		}
		m.layoutEditors()
		return m, nil

	case key.Matches(msg, keys.CycleLang):
		m.langIdx = (m.langIdx + 1) % len(pkg.Languages)
		return m, nil

	case key.Matches(msg, keys.Save):
		return m, saveCmd(m.store, m.snapshot())

	case key.Matches(msg, keys.Load):
		if !m.loadEnabled {
			m.notice = "No saved session to load"
			return m, nil
		}
		return m, loadCmd(m.store)

	case key.Matches(msg, keys.Copy):
		if raw := CopyPayload(m.cards); raw != "" {
			if err := clipboard.WriteAll(raw); err != nil {
				m.notice = "Clipboard unavailable"
			} else {
				m.notice = "Copied to clipboard"
			}
		}
		return m, nil

	case msg.String() == "pgup" || msg.String() == "pgdown":
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case key.Matches(msg, keys.SwitchFocus):
		if m.testsVisible {
			if m.focus == focusCode {
				m.focus = focusTests
				m.code.Blur()
				return m, m.tests.Focus()
			}
			m.focusCodeEditor()
			return m, textarea.Blink
		}
		return m, nil
	}

	// Everything else goes to the focused editor; edits to the code
	// buffer re-arm the debounced language detection.
	var cmd tea.Cmd
	if m.focus == focusTests {
		m.tests, cmd = m.tests.Update(msg)
		return m, cmd
	}

	before := m.code.Value()
	m.code, cmd = m.code.Update(msg)
	if m.code.Value() != before {
		return m, tea.Batch(cmd, m.debounce.Schedule())
	}
	return m, cmd
}

// submit starts one backend action. While one is in flight further
// submits are dropped; each user action is serialized from the UI's
// point of view.
func (m Model) submit(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, cmd)
}

func (m *Model) focusCodeEditor() {
	m.focus = focusCode
	m.tests.Blur()
	m.code.Focus()
}

// testsValue returns the test buffer only while the test panel is
// shown; a hidden panel submits no tests.
func (m Model) testsValue() string {
	if !m.testsVisible {
		return ""
	}
	return m.tests.Value()
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	resultsWidth := m.width/2 - 4
	if resultsWidth < 20 {
		resultsWidth = 20
	}
	if !m.ready {
		m.results = viewport.New(resultsWidth, m.height-6)
		m.ready = true
	} else {
		m.results.Width = resultsWidth
		m.results.Height = m.height - 6
	}

	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(resultsWidth-2),
	)

	m.layoutEditors()
	m.refreshResults()
	return m, nil
}

// layoutEditors sizes the editors for the left column, splitting it
// when the test panel is visible.
func (m *Model) layoutEditors() {
	if !m.ready {
		return
	}
	editorWidth := m.width/2 - 4
	if editorWidth < 20 {
		editorWidth = 20
	}
	editorHeight := m.height - 6

	m.code.SetWidth(editorWidth)
	m.tests.SetWidth(editorWidth)
	if m.testsVisible {
		m.code.SetHeight(editorHeight * 2 / 3)
		m.tests.SetHeight(editorHeight/3 - 2)
	} else {
		m.code.SetHeight(editorHeight)
	}
}
