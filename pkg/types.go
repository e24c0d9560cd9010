package pkg

// Core types shared between the prompt builder, backends, parser and UI.

// ExecutionRequest is built fresh per user action and never mutated
// afterwards.
type ExecutionRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Tests    string `json:"tests,omitempty"`
}

// ExecutionResponse carries whatever the model chose to report. Every
// field is optional: an absent field means "nothing to show", not an
// error.
type ExecutionResponse struct {
	Stdout      string `json:"stdout"`
	Stderr      string `json:"stderr"`
	Suggestion  string `json:"suggestion"`
	TestResults string `json:"testResults"`
}

// Empty reports whether no field was recovered at all.
func (r ExecutionResponse) Empty() bool {
	return r.Stdout == "" && r.Stderr == "" && r.Suggestion == "" && r.TestResults == ""
}

// ExecResult is the structured code-execution part of a reply: an
// outcome flag plus the captured output.
type ExecResult struct {
	OK     bool   `json:"ok"`
	Output string `json:"output"`
}

// ReplyPart is one typed part of a structured backend reply. Exactly
// one of Text or Exec is set.
type ReplyPart struct {
	Text string      `json:"text,omitempty"`
	Exec *ExecResult `json:"exec,omitempty"`
}

// Reply is the raw backend answer handed to a response grammar.
// Structured backends fill Parts; freeform backends fill Text.
type Reply struct {
	Parts []ReplyPart `json:"parts,omitempty"`
	Text  string      `json:"text,omitempty"`
}

// JoinedText flattens a reply to plain text: freeform replies return
// their body, structured replies concatenate their text parts.
func (r Reply) JoinedText() string {
	if r.Text != "" {
		return r.Text
	}
	var b []byte
	for _, part := range r.Parts {
		b = append(b, part.Text...)
	}
	return string(b)
}

// SessionSnapshot is the single persisted record of editor contents
// and UI visibility state. Serialized wholesale under one key; there
// is no versioning, an unreadable blob loads as zero values.
type SessionSnapshot struct {
	Code         string `json:"code"`
	Tests        string `json:"tests"`
	Language     string `json:"language"`
	TestsVisible bool   `json:"testsVisible"`
}

// Languages the playground offers in its selector. Detection may pick
// any of these; unrecognized languages still render with plain
// escaping.
var Languages = []string{
	"python",
	"javascript",
	"typescript",
	"go",
	"rust",
	"java",
	"c",
	"cpp",
	"ruby",
	"markdown",
}
