package ai

import (
	"context"
	"errors"
	"fmt"

	"prai/internal/observability"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(key, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(key),
		model:  model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, p Prompt) (Result, error) {

	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
	}

	observability.ModelCalls.WithLabelValues("openai").Inc()

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		observability.ModelErrors.WithLabelValues("openai").Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("openai: %w", ErrModelTimeout)
		}
		return Result{}, fmt.Errorf("openai: %v: %w", err, ErrModelUnavailable)
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openai: empty response: %w", ErrModelUnavailable)
	}

	observability.ModelTokens.WithLabelValues("openai", o.model, "prompt").Add(float64(resp.Usage.PromptTokens))
	observability.ModelTokens.WithLabelValues("openai", o.model, "completion").Add(float64(resp.Usage.CompletionTokens))

	return Result{
		Text:     resp.Choices[0].Message.Content,
		Provider: "openai",
		Model:    o.model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
