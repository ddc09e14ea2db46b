package ai

import "context"

type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

func NewFallback(p1, p2 Provider) *FallbackProvider {
	return &FallbackProvider{
		primary:   p1,
		secondary: p2,
	}
}

func (f *FallbackProvider) Generate(ctx context.Context, p Prompt) (Result, error) {

	resp, err := f.primary.Generate(ctx, p)
	if err == nil {
		return resp, nil
	}

	if ctx.Err() != nil {
		// No point retrying elsewhere once the caller's deadline is gone.
		return Result{}, err
	}

	return f.secondary.Generate(ctx, p)
}
