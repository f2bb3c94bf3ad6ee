package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain/intake"
	"checkpoint-server/internal/infrastructure/metrics"
	"checkpoint-server/internal/utils/platformerrors"
)

// GroqExtractor resolves field extraction against an OpenAI-compatible chat
// completion endpoint. It is stateless; the draft snapshot and turn history
// arrive with every call.
type GroqExtractor struct {
	client      *resty.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

var _ intake.Extractor = (*GroqExtractor)(nil)

func NewGroqExtractor(client *resty.Client, cfg *config.Config) *GroqExtractor {
	return &GroqExtractor{
		client:      client,
		baseURL:     strings.TrimRight(cfg.CompletionBaseURL, "/"),
		apiKey:      cfg.CompletionAPIKey,
		model:       cfg.CompletionModel,
		temperature: cfg.CompletionTemperature,
		maxTokens:   cfg.CompletionMaxTokens,
	}
}

func (e *GroqExtractor) Extract(ctx context.Context, history []intake.Turn, draft intake.Draft) (outcome intake.Outcome, err error) {
	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.ExtractionDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	}()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: buildSystemPrompt(draft),
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Text,
		})
	}

	request := openai.ChatCompletionRequest{
		Model:       e.model,
		Messages:    messages,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	}

	var respBody openai.ChatCompletionResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", e.apiKey)).
		SetBody(request).
		SetResult(&respBody).
		Post(e.baseURL + "/chat/completions")
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExtraction,
			"completion service unreachable",
			err,
			"6b2d8f4a-1e9c-47b3-a5d0-3f7e9c1b6d4a",
		)
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExtraction,
			fmt.Sprintf("completion service returned status %d", resp.StatusCode()),
			nil,
			"f1a3c5e7-9b2d-4486-8c0e-5d7f1a3b9c2e",
		)
	}
	if len(respBody.Choices) == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExtraction,
			"completion response has no choices",
			nil,
			"4d8b2f6c-3a1e-45d9-b7c4-0e9a6f2d8b5c",
		)
	}

	outcome, err = ParseOutcome(respBody.Choices[0].Message.Content)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExtraction,
			"completion output could not be parsed",
			err,
			"9c5e1b7d-6f3a-42c8-a0d5-8b2f4e6c1a9d",
		)
	}
	return outcome, nil
}
