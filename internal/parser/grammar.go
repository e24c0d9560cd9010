package parser

import (
	"regexp"
	"strings"

	"llmpad/internal/prompt"
	"llmpad/pkg"
)

// Grammar converts one raw backend reply into the four execution
// fields. Parsing never fails: a reply nothing can be recovered from
// yields an all-empty response, which the caller renders as "no
// output" rather than an error.
type Grammar interface {
	Parse(reply pkg.Reply, language string) pkg.ExecutionResponse
}

// testResultsRe locates the literal test-report heading and captures
// its body up to the next heading, the next fence, or end of text.
var testResultsRe = regexp.MustCompile(
	"(?s)" + regexp.QuoteMeta(prompt.TestResultsHeading) + `:?[ \t]*\n(.*?)(\n#|\n` + prompt.Fence + `|\z)`,
)

// ExtractTestResults pulls the first test-report block out of text,
// returning the block body and the text with that block removed. The
// terminator is left in place so a suggestion fence directly following
// the report still extracts.
func ExtractTestResults(text string) (results, remainder string) {
	loc := testResultsRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", text
	}
	body := strings.TrimSpace(text[loc[2]:loc[3]])
	return body, text[:loc[0]] + text[loc[4]:]
}
