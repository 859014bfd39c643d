package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Embedder produces one embedding vector per input text, in input order.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}
