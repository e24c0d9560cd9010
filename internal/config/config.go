package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"llmpad/internal/logger"
)

// Backend names accepted in the config file and LLMPAD_BACKEND.
const (
	BackendGemini = "gemini"
	BackendOllama = "ollama"
)

// GeminiConfig configures the cloud backend. The API key is only ever
// read from the environment, never from the config file.
type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"`
}

// OllamaConfig configures the local daemon backend.
type OllamaConfig struct {
	Host    string        `yaml:"host"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// DetectConfig tunes the debounced language auto-detection.
type DetectConfig struct {
	MinChars   int           `yaml:"min_chars"`
	Confidence float64       `yaml:"confidence"`
	Debounce   time.Duration `yaml:"debounce"`
}

// SessionConfig selects the snapshot store. When RedisURL is set the
// snapshot lives under a single Redis key, otherwise in a JSON file.
type SessionConfig struct {
	Path     string `yaml:"path"`
	RedisURL string `yaml:"-"`
	Key      string `yaml:"key"`
}

// Config is the full application configuration.
type Config struct {
	Backend string        `yaml:"backend"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Ollama  OllamaConfig  `yaml:"ollama"`
	Detect  DetectConfig  `yaml:"detect"`
	Session SessionConfig `yaml:"session"`
	Log     logger.Config `yaml:"log"`
}

// Default returns the built-in configuration used when no config file
// is present.
func Default() Config {
	return Config{
		Backend: BackendGemini,
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Ollama: OllamaConfig{
			Host:    "http://localhost:11434",
			Model:   "qwen2.5-coder",
			Timeout: 2 * time.Minute,
		},
		Detect: DetectConfig{
			MinChars:   20,
			Confidence: 0.1,
			Debounce:   500 * time.Millisecond,
		},
		Session: SessionConfig{
			Path: defaultSessionPath(),
			Key:  "llmpad:session",
		},
		Log: logger.Config{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "llmpad.log",
		},
	}
}

// Load reads configuration from the given YAML file and applies
// environment overrides. A missing file is not an error: the defaults
// are used as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("error parsing config file '%s': %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("error reading config file '%s': %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.Backend != BackendGemini && cfg.Backend != BackendOllama {
		return cfg, fmt.Errorf("unknown backend '%s' (want %q or %q)", cfg.Backend, BackendGemini, BackendOllama)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LLMPAD_BACKEND"); v != "" {
		cfg.Backend = v
	}
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.Ollama.Host = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}
	cfg.Session.RedisURL = os.Getenv("REDIS_URL")
	if v := os.Getenv("LLMPAD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "llmpad", "session.json")
}
