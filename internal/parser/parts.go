package parser

import (
	"strings"

	"llmpad/pkg"
)

// PartsGrammar handles the structured-tool backend: the reply is a
// sequence of typed parts where code-execution results carry an
// outcome flag, and commentary arrives as interleaved free text.
// Parsing is a pure function of the parts list, so re-parsing the same
// capture yields the same tuple.
type PartsGrammar struct{}

func (PartsGrammar) Parse(reply pkg.Reply, language string) pkg.ExecutionResponse {
	var out pkg.ExecutionResponse
	var freeText strings.Builder
	structured := false

	for _, part := range reply.Parts {
		switch {
		case part.Exec != nil:
			structured = true
			if part.Exec.OK {
				out.Stdout += part.Exec.Output
			} else {
				out.Stderr += part.Exec.Output
			}
		case part.Text != "":
			freeText.WriteString(part.Text)
		}
	}

	// The test report is cut out first so its PASS/FAIL lines can
	// never bleed into the suggestion extraction.
	text := freeText.String()
	out.TestResults, text = ExtractTestResults(text)

	if body, ok := ExtractFence(text, language); ok {
		out.Suggestion = body
	}

	// A reply with no execution part and no suggestion is most likely
	// the model answering in plain prose; surface that as stdout
	// rather than dropping it.
	if !structured && out.Suggestion == "" {
		if leftover := strings.TrimSpace(text); leftover != "" {
			out.Stdout = leftover
		}
	}

	return out
}
