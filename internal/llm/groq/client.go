// Package groq implements llm.Client against Groq's OpenAI-compatible API.
package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1/"

// Client implements llm.Client using Groq chat completions.
type Client struct {
	api *openai.Client
}

// NewClient constructs a Groq client. Calls are never retried.
func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	api := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	return &Client{api: &api}, nil
}

// Complete sends one chat completion request.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Completion, error) {
	if strings.TrimSpace(req.Model) == "" {
		return llm.Completion{}, fmt.Errorf("groq: model is required")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		}
	}

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	elapsed := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.ObserveLLMCall(elapsed, 0, err)
		return llm.Completion{}, describeError(err)
	}

	usage := llm.Usage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}
	logUsage(req, completion.Model, usage, elapsed)

	if len(completion.Choices) == 0 {
		metrics.ObserveLLMCall(elapsed, usage.TotalTokens, llm.ErrEmptyCompletion)
		return llm.Completion{}, fmt.Errorf("groq response missing choices: %w", llm.ErrEmptyCompletion)
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		metrics.ObserveLLMCall(elapsed, usage.TotalTokens, llm.ErrEmptyCompletion)
		return llm.Completion{}, fmt.Errorf("groq response empty content: %w", llm.ErrEmptyCompletion)
	}
	metrics.ObserveLLMCall(elapsed, usage.TotalTokens, nil)

	model := completion.Model
	if model == "" {
		model = req.Model
	}
	return llm.Completion{Content: content, Model: model, Usage: usage}, nil
}

func describeError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("groq error status %d: %w", apiErr.StatusCode, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("groq request timeout: %w", err)
	}
	return fmt.Errorf("groq request: %w", err)
}

func logUsage(req llm.Request, model string, usage llm.Usage, elapsedMs float64) {
	telemetry.Info("llm.usage", map[string]any{
		"provider":          "groq",
		"feature":           req.Feature,
		"model":             model,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
		"duration_ms":       elapsedMs,
	})
}
