package parser

import (
	"reflect"
	"testing"

	"llmpad/pkg"
)

func TestPartsGrammarExecutionOutcomes(t *testing.T) {
	reply := pkg.Reply{Parts: []pkg.ReplyPart{
		{Exec: &pkg.ExecResult{OK: true, Output: "hello\n"}},
		{Text: "The program prints a greeting.\n"},
	}}

	resp := PartsGrammar{}.Parse(reply, "python")
	if resp.Stdout != "hello\n" {
		t.Errorf("stdout = %q, want %q", resp.Stdout, "hello\n")
	}
	if resp.Stderr != "" {
		t.Errorf("stderr should be empty, got %q", resp.Stderr)
	}

	failed := pkg.Reply{Parts: []pkg.ReplyPart{
		{Exec: &pkg.ExecResult{OK: false, Output: "NameError: name 'x' is not defined\n"}},
	}}
	resp = PartsGrammar{}.Parse(failed, "python")
	if resp.Stderr == "" {
		t.Error("non-success outcome should populate stderr")
	}
	if resp.Stdout != "" {
		t.Errorf("stdout should be empty on failure, got %q", resp.Stdout)
	}
}

func TestPartsGrammarTestResultsBlock(t *testing.T) {
	reply := pkg.Reply{Parts: []pkg.ReplyPart{
		{Text: "Here is the report.\n\n### Test Results\nPassed: 1/2\nPASS: a\nFAIL: b"},
	}}

	resp := PartsGrammar{}.Parse(reply, "python")
	want := "Passed: 1/2\nPASS: a\nFAIL: b"
	if resp.TestResults != want {
		t.Errorf("testResults = %q, want %q", resp.TestResults, want)
	}
	if resp.Suggestion != "" {
		t.Errorf("test report must not leak into the suggestion, got %q", resp.Suggestion)
	}
}

func TestPartsGrammarSuggestionAfterTestResults(t *testing.T) {
	reply := pkg.Reply{Parts: []pkg.ReplyPart{
		{Exec: &pkg.ExecResult{OK: true, Output: "3\n"}},
		{Text: "Looks fine overall.\n\n### Test Results\nPassed: 2/2\nPASS: a\nPASS: b\n\n```python\nprint(1 + 2)\n```\n"},
	}}

	resp := PartsGrammar{}.Parse(reply, "python")
	if resp.TestResults != "Passed: 2/2\nPASS: a\nPASS: b" {
		t.Errorf("testResults = %q", resp.TestResults)
	}
	if resp.Suggestion != "print(1 + 2)" {
		t.Errorf("suggestion = %q, want the fenced block body", resp.Suggestion)
	}
	if resp.Stdout != "3\n" {
		t.Errorf("stdout = %q", resp.Stdout)
	}
}

func TestPartsGrammarFallbackToStdout(t *testing.T) {
	// No structured part, no suggestion fence: leftover prose becomes
	// stdout.
	reply := pkg.Reply{Parts: []pkg.ReplyPart{
		{Text: "The code prints the first ten primes."},
	}}
	resp := PartsGrammar{}.Parse(reply, "python")
	if resp.Stdout != "The code prints the first ten primes." {
		t.Errorf("stdout fallback = %q", resp.Stdout)
	}

	// A captured suggestion suppresses the fallback.
	withFence := pkg.Reply{Parts: []pkg.ReplyPart{
		{Text: "Try this instead:\n\n```python\nprint('hi')\n```\n"},
	}}
	resp = PartsGrammar{}.Parse(withFence, "python")
	if resp.Suggestion != "print('hi')" {
		t.Errorf("suggestion = %q", resp.Suggestion)
	}
	if resp.Stdout != "" {
		t.Errorf("stdout should stay empty once a suggestion is captured, got %q", resp.Stdout)
	}
}

func TestPartsGrammarIdempotent(t *testing.T) {
	reply := pkg.Reply{Parts: []pkg.ReplyPart{
		{Exec: &pkg.ExecResult{OK: true, Output: "ok\n"}},
		{Text: "### Test Results\nPassed: 1/1\nPASS: only\n\n```go\nfmt.Println(\"ok\")\n```\n"},
	}}

	first := PartsGrammar{}.Parse(reply, "go")
	second := PartsGrammar{}.Parse(reply, "go")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing the same parts diverged: %+v vs %+v", first, second)
	}
}

func TestPartsGrammarEmptyReply(t *testing.T) {
	resp := PartsGrammar{}.Parse(pkg.Reply{}, "python")
	if !resp.Empty() {
		t.Errorf("empty reply should parse to an empty response, got %+v", resp)
	}
}
