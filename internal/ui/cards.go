package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"llmpad/internal/prompt"
	"llmpad/pkg"
)

// TestResultsTitle routes a card through PASS/FAIL line tagging
// instead of Markdown rendering.
const TestResultsTitle = "Test Results"

// Card is one visual result element. Body is Markdown; Raw, when set,
// is the exact text a copy action places on the clipboard.
type Card struct {
	Title string
	Body  string
	Raw   string
	Error bool
}

// FenceWrap builds the display Markdown for a raw block. StripFence in
// the parser package undoes exactly this wrapping, which is what keeps
// clipboard copies byte-identical to the model's text.
func FenceWrap(raw, language string) string {
	return prompt.Fence + language + "\n" + raw + "\n" + prompt.Fence
}

// CardsFromResponse converts a parsed execution response into result
// cards. An all-empty response yields the informational no-output
// card: absence of output is a valid outcome, not a fault.
func CardsFromResponse(resp pkg.ExecutionResponse, language string) []Card {
	if resp.Empty() {
		return []Card{{
			Title: "No Output",
			Body:  "The model returned no output for this request.",
		}}
	}

	var cards []Card
	if resp.Stdout != "" {
		cards = append(cards, Card{
			Title: "Output",
			Body:  FenceWrap(resp.Stdout, ""),
			Raw:   resp.Stdout,
		})
	}
	if resp.Stderr != "" {
		cards = append(cards, Card{
			Title: "Errors",
			Body:  FenceWrap(resp.Stderr, ""),
			Raw:   resp.Stderr,
			Error: true,
		})
	}
	if resp.TestResults != "" {
		cards = append(cards, Card{
			Title: TestResultsTitle,
			Body:  resp.TestResults,
		})
	}
	if resp.Suggestion != "" {
		cards = append(cards, Card{
			Title: "Suggestion",
			Body:  FenceWrap(resp.Suggestion, language),
			Raw:   resp.Suggestion,
		})
	}
	return cards
}

// ErrorCard renders a terminal failure for one action.
func ErrorCard(err error) Card {
	return Card{
		Title: "Error",
		Body:  err.Error(),
		Error: true,
	}
}

// TagPassFail styles test-report lines: PASS-prefixed lines green,
// FAIL-prefixed lines red, everything else untouched.
func TagPassFail(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "PASS:"):
			lines[i] = passStyle.Render(line)
		case strings.HasPrefix(trimmed, "FAIL:"):
			lines[i] = failStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// CopyPayload returns the raw text a copy action should pick up: the
// last copyable card wins, which puts the suggestion ahead of plain
// output when both are present.
func CopyPayload(cards []Card) string {
	raw := ""
	for _, c := range cards {
		if c.Raw != "" {
			raw = c.Raw
		}
	}
	return raw
}

// renderCard paints one card for the results viewport. copyHint marks
// the card a copy action currently targets.
func renderCard(c Card, mdr *glamour.TermRenderer, copyHint bool) string {
	var b strings.Builder

	title := cardTitleStyle.Render("▌ " + c.Title)
	if c.Error {
		title = cardErrorTitleStyle.Render("▌ " + c.Title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	switch {
	case c.Title == TestResultsTitle:
		b.WriteString(TagPassFail(c.Body))
		b.WriteString("\n")
	case mdr != nil:
		if rendered, err := mdr.Render(c.Body); err == nil {
			b.WriteString(rendered)
		} else {
			b.WriteString(c.Body)
			b.WriteString("\n")
		}
	default:
		b.WriteString(c.Body)
		b.WriteString("\n")
	}

	if copyHint && c.Raw != "" {
		b.WriteString(copyHintStyle.Render("ctrl+y copies this block"))
		b.WriteString("\n")
	}
	return b.String()
}
