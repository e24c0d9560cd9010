package backend

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"llmpad/internal/config"
	"llmpad/internal/parser"
	"llmpad/pkg"
)

// Gemini is the cloud backend. Execution requests enable the code
// execution tool, so replies come back as typed parts that the parts
// grammar understands.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the cloud backend. A missing API key is a hard
// startup failure, not something to limp along without.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required for the gemini backend")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (g *Gemini) Name() string { return config.BackendGemini }

func (g *Gemini) Grammar() parser.Grammar { return parser.PartsGrammar{} }

func (g *Gemini) Complete(ctx context.Context, req CompletionRequest) (pkg.Reply, error) {
	genCfg := &genai.GenerateContentConfig{}
	if req.AllowExec {
		genCfg.Tools = []*genai.Tool{
			{CodeExecution: &genai.ToolCodeExecution{}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return pkg.Reply{}, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return pkg.Reply{}, nil
	}

	var reply pkg.Reply
	for _, part := range resp.Candidates[0].Content.Parts {
		switch {
		case part.CodeExecutionResult != nil:
			reply.Parts = append(reply.Parts, pkg.ReplyPart{
				Exec: &pkg.ExecResult{
					OK:     part.CodeExecutionResult.Outcome == genai.OutcomeOK,
					Output: part.CodeExecutionResult.Output,
				},
			})
		case part.Text != "":
			reply.Parts = append(reply.Parts, pkg.ReplyPart{Text: part.Text})
		}
		// ExecutableCode parts (the model echoing the program it ran)
		// are intentionally dropped.
	}
	return reply, nil
}
