package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/schema"
	"github.com/ollama/ollama/api"

	"llmpad/internal/config"
	"llmpad/internal/parser"
	"llmpad/pkg"
)

// Ollama is the local daemon backend. Replies are freeform text; for
// execution requests the daemon is asked to constrain the body to
// JSON, which the JSON grammar then decodes.
//
// The response format is fixed per chat model, so two models are kept:
// one JSON-constrained for execution requests and one unconstrained
// for formatting and review.
type Ollama struct {
	jsonModel *ollama.ChatModel
	textModel *ollama.ChatModel
	host      string
}

func NewOllama(ctx context.Context, cfg config.OllamaConfig) (*Ollama, error) {
	base := ollama.ChatModelConfig{
		BaseURL: cfg.Host,
		Timeout: cfg.Timeout,
		Model:   cfg.Model,
		Options: &api.Options{
			Runner: api.Runner{NumCtx: 8192},
		},
	}

	textCfg := base
	textModel, err := ollama.NewChatModel(ctx, &textCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama chat model: %w", err)
	}

	jsonCfg := base
	jsonCfg.Format = json.RawMessage(`"json"`)
	jsonModel, err := ollama.NewChatModel(ctx, &jsonCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama chat model: %w", err)
	}

	return &Ollama{
		jsonModel: jsonModel,
		textModel: textModel,
		host:      cfg.Host,
	}, nil
}

func (o *Ollama) Name() string { return config.BackendOllama }

func (o *Ollama) Grammar() parser.Grammar { return parser.JSONGrammar{} }

func (o *Ollama) Complete(ctx context.Context, req CompletionRequest) (pkg.Reply, error) {
	model := o.textModel
	if req.WantJSON {
		model = o.jsonModel
	}

	msg, err := model.Generate(ctx, []*schema.Message{
		schema.UserMessage(req.Prompt),
	})
	if err != nil {
		return pkg.Reply{}, o.classify(err)
	}
	return pkg.Reply{Text: msg.Content}, nil
}

// classify translates connection-refused failures into an actionable
// message naming the host; everything else passes through wrapped.
func (o *Ollama) classify(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) || strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("ollama backend unreachable at %s: check that the daemon is running (ollama serve)", o.host)
	}
	return fmt.Errorf("ollama request failed: %w", err)
}
