// Package runner coordinates one user action end to end: validate the
// input, build the prompt, call the backend once, hand the reply to
// the backend's grammar. It holds no state between actions.
package runner

import (
	"context"
	"errors"
	"strings"
	"time"

	"llmpad/internal/backend"
	"llmpad/internal/logger"
	"llmpad/internal/parser"
	"llmpad/internal/prompt"
	"llmpad/pkg"
)

// ErrEmptyCode is returned before any network call when the submitted
// code is blank.
var ErrEmptyCode = errors.New("no code to submit")

type Runner struct {
	backend backend.Backend
}

func New(b backend.Backend) *Runner {
	return &Runner{backend: b}
}

// BackendName reports which backend this runner talks to.
func (r *Runner) BackendName() string {
	return r.backend.Name()
}

// RunCode submits the execute-and-review prompt and parses the reply
// through the backend's grammar. An empty parse is a valid outcome and
// comes back as an all-empty response, not an error.
func (r *Runner) RunCode(ctx context.Context, req pkg.ExecutionRequest) (pkg.ExecutionResponse, error) {
	if strings.TrimSpace(req.Code) == "" {
		return pkg.ExecutionResponse{}, ErrEmptyCode
	}

	start := time.Now()
	reply, err := r.backend.Complete(ctx, backend.CompletionRequest{
		Prompt:    prompt.ExecutionPrompt(req.Language, req.Code, req.Tests),
		AllowExec: true,
		WantJSON:  true,
	})
	if err != nil {
		return pkg.ExecutionResponse{}, err
	}

	resp := r.backend.Grammar().Parse(reply, req.Language)
	logger.Info().
		Str("backend", r.backend.Name()).
		Str("language", req.Language).
		Bool("has_tests", strings.TrimSpace(req.Tests) != "").
		Bool("empty_result", resp.Empty()).
		Dur("elapsed", time.Since(start)).
		Msg("run completed")
	return resp, nil
}

// FormatCode submits the reformat-only prompt and returns the body of
// the returned fenced block. A reply without any fence is passed
// through trimmed, on the theory that a bare reformatted body is
// better than nothing.
func (r *Runner) FormatCode(ctx context.Context, language, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	reply, err := r.backend.Complete(ctx, backend.CompletionRequest{
		Prompt: prompt.FormatPrompt(language, code),
	})
	if err != nil {
		return "", err
	}
	return singleFence(reply.JoinedText(), language), nil
}

// ReviewMarkdown submits the prose-review prompt.
func (r *Runner) ReviewMarkdown(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCode
	}

	reply, err := r.backend.Complete(ctx, backend.CompletionRequest{
		Prompt: prompt.MarkdownReviewPrompt(text),
	})
	if err != nil {
		return "", err
	}
	return singleFence(reply.JoinedText(), "markdown"), nil
}

func singleFence(text, language string) string {
	if body, ok := parser.ExtractFence(text, language); ok {
		return body
	}
	if body, ok := parser.ExtractFence(text, ""); ok {
		return body
	}
	return strings.TrimSpace(text)
}
