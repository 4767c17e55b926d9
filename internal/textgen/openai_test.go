package textgen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResponsesServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"error": {"code": "", "message": ""},
			"output": [
				{
					"type": "message",
					"role": "assistant",
					"content": [
						{
							"type": "output_text",
							"text": ` + quoteJSON(text) + `,
							"annotations": []
						}
					]
				}
			]
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func quoteJSON(s string) string {
	out := []byte{'"'}
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, []byte(string(r))...)
		}
	}
	return string(append(out, '"'))
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	t.Parallel()

	srv := fakeResponsesServer(t, "---\ndate: 2025-01-08\n---\n# 计划")

	gen, err := New(Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o",
		BaseURL:  srv.URL,
		APIKey:   "test-key",
	}, nil)
	require.NoError(t, err)

	out, err := gen.Generate(context.Background(), "生成今日计划")
	require.NoError(t, err)
	assert.Contains(t, out, "# 计划")
}

func TestOpenAIGenerator_EmptyOutput(t *testing.T) {
	t.Parallel()

	srv := fakeResponsesServer(t, "   ")

	gen, err := New(Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o",
		BaseURL:  srv.URL,
		APIKey:   "test-key",
	}, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "output text")
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New(Config{Provider: ProviderOpenAI, Model: "gpt-4o", APIKeyEnv: "PLANGEN_TEST_ABSENT_KEY"}, nil)
	assert.ErrorContains(t, err, "api key is required")
}

func TestNew_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Provider: "claude", APIKey: "k"}, nil)
	assert.ErrorContains(t, err, "unsupported ai provider")
}

func TestNew_DeepSeekDefaults(t *testing.T) {
	t.Parallel()

	gen, err := New(Config{Provider: ProviderDeepSeek, APIKey: "k"}, nil)
	require.NoError(t, err)
	og, ok := gen.(*openAIGenerator)
	require.True(t, ok)
	assert.Equal(t, "deepseek-chat", og.model)
}
