package ai

import "context"

type Prompt struct {
	System string
	User   string
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Result struct {
	Text     string
	Provider string
	Model    string
	Usage    Usage
}

//go:generate mockery --name Provider --output ../mocks --with-expecter
type Provider interface {
	Generate(ctx context.Context, p Prompt) (Result, error)
}
