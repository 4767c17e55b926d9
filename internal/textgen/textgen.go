// Package textgen wraps external text-generation providers behind a
// single prompt-in, text-out contract.
package textgen

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Providers.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
)

const defaultTimeout = 60 * time.Second

// Config is provider client configuration.
type Config struct {
	Provider  string
	Model     string
	BaseURL   string
	APIKey    string
	APIKeyEnv string
	Timeout   time.Duration
}

// Generator produces text from a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New constructs the generator for cfg.Provider. The optional
// httpClient overrides transport for openai-compatible providers,
// mainly for tests.
func New(cfg Config, httpClient *http.Client) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI, ProviderDeepSeek, "":
		return newOpenAIGenerator(cfg, httpClient)
	case ProviderGemini:
		return newGeminiGenerator(cfg)
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}

// resolveAPIKey returns the explicit key or falls back to the
// configured environment variable.
func resolveAPIKey(cfg Config, defaultEnv string) (string, error) {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key, nil
	}
	envKey := strings.TrimSpace(cfg.APIKeyEnv)
	if envKey == "" {
		envKey = defaultEnv
	}
	if key := strings.TrimSpace(os.Getenv(envKey)); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("api key is required (set ai.api_key or env %s)", envKey)
}
