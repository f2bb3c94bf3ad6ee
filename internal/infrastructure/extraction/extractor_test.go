package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain/intake"
	"checkpoint-server/internal/utils/platformerrors"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *GroqExtractor {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := resty.New()
	t.Cleanup(func() { _ = client.Close() })

	return NewGroqExtractor(client, &config.Config{
		CompletionBaseURL:     server.URL,
		CompletionAPIKey:      "test-key",
		CompletionModel:       "llama-3.3-70b-versatile",
		CompletionTemperature: 0.3,
		CompletionMaxTokens:   1000,
	})
}

func completionWith(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestExtractAskOutcome(t *testing.T) {
	extractor := newTestExtractor(t, completionWith(t,
		`{"action": "ask", "message": "Qual o projeto?", "extracted": {"site": "PEACV06"}}`))

	history := []intake.Turn{{Role: intake.TurnRoleUser, Text: "Site PEACV06"}}
	outcome, err := extractor.Extract(context.Background(), history, intake.Draft{})
	require.NoError(t, err)

	ask, ok := outcome.(intake.Ask)
	require.True(t, ok)
	assert.Equal(t, "Qual o projeto?", ask.Message)
	assert.Equal(t, "PEACV06", ask.Extracted.Site)
}

func TestExtractUpstreamErrorStatus(t *testing.T) {
	extractor := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := extractor.Extract(context.Background(), nil, intake.Draft{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeExtraction))
}

func TestExtractEmptyChoices(t *testing.T) {
	extractor := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := extractor.Extract(context.Background(), nil, intake.Draft{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeExtraction))
}

func TestExtractUnparsableOutput(t *testing.T) {
	extractor := newTestExtractor(t, completionWith(t, "não consegui montar o JSON"))

	_, err := extractor.Extract(context.Background(), nil, intake.Draft{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeExtraction))
}
