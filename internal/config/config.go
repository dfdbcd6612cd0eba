package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrUnknownBackend = errors.New("unknown model backend")
	ErrUnknownStore   = errors.New("unknown record store")
)

// Model backends.
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Record stores.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds the process-level settings. Game choices (language, difficulty,
// role) are made in-game and are not part of it.
type Config struct {
	Backend         string        `envconfig:"DETECTIVE_BACKEND" default:"ollama"`
	Model           string        `envconfig:"DETECTIVE_MODEL" default:"gemma3:latest"`
	ModelTimeout    time.Duration `envconfig:"DETECTIVE_MODEL_TIMEOUT" default:"120s"`
	AnalysisRetries int           `envconfig:"DETECTIVE_ANALYSIS_RETRIES" default:"2"`

	OllamaHost    string `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`

	RecordStore string `envconfig:"DETECTIVE_RECORD_STORE" default:"file"`
	RecordsDir  string `envconfig:"DETECTIVE_RECORDS_DIR" default:"logs"`
	SQLitePath  string `envconfig:"DETECTIVE_SQLITE_PATH" default:"detective.sqlite"`
}

// Load reads an optional .env file at dotenvPath, then the environment.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(c.Backend)
	switch c.Backend {
	case BackendOllama, BackendOpenAI, BackendGemini:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	c.RecordStore = strings.ToLower(c.RecordStore)
	switch c.RecordStore {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.RecordStore)
	}
	if c.AnalysisRetries < 0 {
		c.AnalysisRetries = 0
	}
	return nil
}
