package ui

import (
	"strings"
	"testing"

	"llmpad/internal/parser"
	"llmpad/pkg"
)

func TestCardsFromEmptyResponse(t *testing.T) {
	cards := CardsFromResponse(pkg.ExecutionResponse{}, "python")
	if len(cards) != 1 {
		t.Fatalf("expected the single no-output card, got %d cards", len(cards))
	}
	if cards[0].Title != "No Output" || cards[0].Error {
		t.Errorf("unexpected card: %+v", cards[0])
	}
}

func TestCardsFromFullResponse(t *testing.T) {
	resp := pkg.ExecutionResponse{
		Stdout:      "hello\n",
		Stderr:      "warning: deprecated\n",
		Suggestion:  "print('hello')",
		TestResults: "Passed: 1/1\nPASS: greet",
	}

	cards := CardsFromResponse(resp, "python")
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}

	titles := make([]string, len(cards))
	for i, c := range cards {
		titles[i] = c.Title
	}
	want := []string{"Output", "Errors", TestResultsTitle, "Suggestion"}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("card %d title = %q, want %q", i, titles[i], want[i])
		}
	}

	if !cards[1].Error {
		t.Error("the stderr card should carry error styling")
	}
	if !strings.Contains(cards[3].Body, "```python\nprint('hello')\n```") {
		t.Error("suggestion body should be fenced with the language tag")
	}
}

func TestCardRawSurvivesFenceWrap(t *testing.T) {
	resp := pkg.ExecutionResponse{Suggestion: "x = 1\ny = 2"}
	cards := CardsFromResponse(resp, "python")

	card := cards[0]
	if card.Raw != resp.Suggestion {
		t.Errorf("raw = %q, want the unwrapped suggestion", card.Raw)
	}
	// Stripping the display wrapper must return exactly the raw text.
	if got := parser.StripFence(card.Body); got != card.Raw {
		t.Errorf("StripFence(body) = %q, want %q", got, card.Raw)
	}
}

func TestCopyPayloadPrefersLastCopyable(t *testing.T) {
	cards := CardsFromResponse(pkg.ExecutionResponse{
		Stdout:     "out\n",
		Suggestion: "better code",
	}, "go")

	if got := CopyPayload(cards); got != "better code" {
		t.Errorf("CopyPayload = %q, want the suggestion", got)
	}

	onlyOut := CardsFromResponse(pkg.ExecutionResponse{Stdout: "out\n"}, "go")
	if got := CopyPayload(onlyOut); got != "out\n" {
		t.Errorf("CopyPayload = %q, want stdout", got)
	}

	if got := CopyPayload(nil); got != "" {
		t.Errorf("CopyPayload(nil) = %q, want empty", got)
	}
}

func TestTagPassFailKeepsContent(t *testing.T) {
	body := "Passed: 1/2\nPASS: adds numbers\nFAIL: handles zero\nsome detail"
	tagged := TagPassFail(body)

	for _, line := range []string{"Passed: 1/2", "PASS: adds numbers", "FAIL: handles zero", "some detail"} {
		if !strings.Contains(tagged, line) {
			t.Errorf("tagged output lost line %q", line)
		}
	}
	if len(strings.Split(tagged, "\n")) != 4 {
		t.Error("tagging must not add or remove lines")
	}
}
