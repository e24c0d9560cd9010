package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, BackendGemini, cfg.Backend)
	require.Equal(t, 20, cfg.Detect.MinChars)
	require.NotEmpty(t, cfg.Ollama.Host)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("backend: ollama\nollama:\n  host: http://ollama.lan:11434\n  model: codellama\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BackendOllama, cfg.Backend)
	require.Equal(t, "http://ollama.lan:11434", cfg.Ollama.Host)
	require.Equal(t, "codellama", cfg.Ollama.Model)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: gemini\n"), 0o644))

	t.Setenv("LLMPAD_BACKEND", "ollama")
	t.Setenv("OLLAMA_MODEL", "qwen2.5-coder:7b")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BackendOllama, cfg.Backend)
	require.Equal(t, "qwen2.5-coder:7b", cfg.Ollama.Model)
}

func TestAPIKeyComesFromEnvOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "test-key", cfg.Gemini.APIKey)
}

func TestUnknownBackendRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: openai\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
