package textgen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel  = "gemini-3-flash-preview"
	defaultGeminiKeyEnv = "GEMINI_API_KEY"
)

// geminiGenerator calls the Google GenAI API.
type geminiGenerator struct {
	cfg    Config
	apiKey string
}

func newGeminiGenerator(cfg Config) (*geminiGenerator, error) {
	apiKey, err := resolveAPIKey(cfg, defaultGeminiKeyEnv)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &geminiGenerator{cfg: cfg, apiKey: apiKey}, nil
}

// Generate executes a single GenerateContent request.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.apiKey})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genai generate content: %w", err)
	}

	output := strings.TrimSpace(resp.Text())
	if output == "" {
		return "", fmt.Errorf("genai response did not contain output text")
	}
	return output, nil
}
