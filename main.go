package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"llmpad/internal/backend"
	"llmpad/internal/config"
	"llmpad/internal/logger"
	"llmpad/internal/runner"
	"llmpad/internal/session"
	"llmpad/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "llmpad:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log); err != nil {
		return err
	}

	ctx := context.Background()

	b, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := session.New(ctx, cfg.Session)
	if err != nil {
		return err
	}

	logger.Info().
		Str("backend", b.Name()).
		Msg("starting llmpad")

	model := ui.New(cfg, runner.New(b), store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func newBackend(ctx context.Context, cfg config.Config) (backend.Backend, error) {
	switch cfg.Backend {
	case config.BackendOllama:
		return backend.NewOllama(ctx, cfg.Ollama)
	default:
		return backend.NewGemini(ctx, cfg.Gemini)
	}
}
