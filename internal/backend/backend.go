// Package backend issues exactly one LLM request per invocation. There
// is no retry, no backoff and no streaming: the caller gets a single
// raw reply or a single error.
package backend

import (
	"context"

	"llmpad/internal/parser"
	"llmpad/pkg"
)

// CompletionRequest describes one round trip. AllowExec enables the
// provider's code-execution tool where one exists; WantJSON asks the
// provider to constrain the body to JSON where it can. Backends ignore
// the flag they cannot honor.
type CompletionRequest struct {
	Prompt    string
	AllowExec bool
	WantJSON  bool
}

// Backend is one LLM endpoint plus the grammar that understands its
// reply shape.
type Backend interface {
	Name() string
	Grammar() parser.Grammar
	Complete(ctx context.Context, req CompletionRequest) (pkg.Reply, error)
}
