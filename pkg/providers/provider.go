package providers

import "context"

// Generator is the capability a generative text service exposes: one prompt
// in, one reply out. Implementations are constructed once at startup and
// injected wherever generation is needed, so tests can substitute a double.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
