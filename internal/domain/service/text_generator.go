package service

import "context"

// TextGenerator is the generative-language provider: a prompt goes in, text comes out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
