package composer

import "context"

// Request is a single-turn text generation request.
type Request struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Response carries the raw completion text.
type Response struct {
	Text string
}

// LLMClient abstracts the text-generation provider so the Composer can be
// tested without the network and providers can be swapped or chained.
type LLMClient interface {
	Complete(ctx context.Context, req Request) (Response, error)
}
