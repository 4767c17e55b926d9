package textgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const (
	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultOpenAIModel     = "gpt-4o"
	defaultOpenAIKeyEnv    = "OPENAI_API_KEY"
	defaultDeepSeekBaseURL = "https://api.deepseek.com"
	defaultDeepSeekModel   = "deepseek-chat"
	defaultDeepSeekKeyEnv  = "DEEPSEEK_API_KEY"
)

// openAIGenerator calls an OpenAI-compatible Responses API endpoint.
// The deepseek provider is the same client with different defaults.
type openAIGenerator struct {
	model  string
	client openai.Client
}

func newOpenAIGenerator(cfg Config, httpClient *http.Client) (*openAIGenerator, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	model := strings.TrimSpace(cfg.Model)
	keyEnv := defaultOpenAIKeyEnv
	if cfg.Provider == ProviderDeepSeek {
		keyEnv = defaultDeepSeekKeyEnv
		if baseURL == "" {
			baseURL = defaultDeepSeekBaseURL
		}
		if model == "" {
			model = defaultDeepSeekModel
		}
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	apiKey, err := resolveAPIKey(cfg, keyEnv)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(timeout),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &openAIGenerator{
		model:  model,
		client: openai.NewClient(opts...),
	}, nil
}

// Generate executes a single Responses API request.
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: g.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai responses.create: %w", err)
	}
	if msg := strings.TrimSpace(resp.Error.Message); msg != "" {
		return "", fmt.Errorf("openai response failed: %s", msg)
	}

	output := strings.TrimSpace(resp.OutputText())
	if output == "" {
		return "", fmt.Errorf("openai response did not contain output text")
	}
	return output, nil
}
