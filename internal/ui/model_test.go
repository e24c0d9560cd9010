package ui

import (
	"path/filepath"
	"testing"

	"llmpad/internal/config"
	"llmpad/internal/runner"
	"llmpad/internal/session"
	"llmpad/pkg"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return New(config.Default(), runner.New(nil), store)
}

func TestSnapshotApplyRoundTrip(t *testing.T) {
	m := newTestModel(t)

	snap := pkg.SessionSnapshot{
		Code:         "print('x')",
		Tests:        "assert True",
		Language:     "go",
		TestsVisible: true,
	}
	m.applySnapshot(snap)

	if got := m.snapshot(); got != snap {
		t.Errorf("snapshot after apply = %+v, want %+v", got, snap)
	}
}

func TestApplySnapshotUnknownLanguageFallsBack(t *testing.T) {
	m := newTestModel(t)
	m.applySnapshot(pkg.SessionSnapshot{Language: "cobol"})

	if m.language() != pkg.Languages[0] {
		t.Errorf("unknown language should fall back to %q, got %q", pkg.Languages[0], m.language())
	}
}

func TestHiddenTestPanelSubmitsNoTests(t *testing.T) {
	m := newTestModel(t)
	m.tests.SetValue("assert something")

	m.testsVisible = false
	if m.testsValue() != "" {
		t.Error("a hidden test panel must submit no tests")
	}

	m.testsVisible = true
	if m.testsValue() != "assert something" {
		t.Error("a visible test panel should submit its buffer")
	}
}

func TestLoadDisabledWithoutSnapshot(t *testing.T) {
	m := newTestModel(t)
	if m.loadEnabled {
		t.Error("load should start disabled when nothing was ever saved")
	}
}
