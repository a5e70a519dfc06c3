package triage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/openai/openai-go"
)

// LLM is the completion backend used to extract assessments. Implementations
// must request a single JSON object as the reply body.
type LLM interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAI calls the OpenAI chat completions endpoint. The API key is read
// from the environment by the underlying client.
type OpenAI struct {
	client openai.Client
	model  string
	temp   float64
}

func NewOpenAI(model string, temp float64) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(),
		model:  model,
		temp:   temp,
	}
}

func (o *OpenAI) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)

	if len(systemPrompt) > 0 {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	chatOpts := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       o.model,
		Temperature: openai.Float(o.temp),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	}

	res, err := o.client.Chat.Completions.New(ctx, chatOpts)
	if err != nil {
		slog.Error("openai error: chat completions failed", "error", err)
		return "", fmt.Errorf("openai generation failed: %w", err)
	}

	return res.Choices[0].Message.Content, nil
}

// RestLLM speaks the OpenAI-compatible chat completions REST surface
// directly, for self-hosted endpoints (vLLM, Ollama and the like).
type RestLLM struct {
	client *resty.Client
	model  string
	temp   float64
}

func NewRestLLM(baseURL, apiKey, model string, temp float64) *RestLLM {
	client := resty.New().SetBaseURL(baseURL)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &RestLLM{client: client, model: model, temp: temp}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (l *RestLLM) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)

	if len(systemPrompt) > 0 {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body := map[string]any{
		"model":           l.model,
		"messages":        messages,
		"temperature":     l.temp,
		"response_format": map[string]string{"type": "json_object"},
	}

	var completion chatCompletionResponse

	res, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&completion).
		Post("/v1/chat/completions")

	if err != nil {
		slog.Error("completion endpoint unreachable", "error", err)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if !res.IsSuccess() {
		slog.Error("completion endpoint returned error", "status_code", res.StatusCode(), "body", res.String())
		return "", fmt.Errorf("completion request failed with status %d", res.StatusCode())
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
