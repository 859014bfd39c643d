package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/ekazakov/screening/pkg/llm"
)

// Provider measures topical closeness of two texts as the cosine similarity
// of their embedding vectors.
type Provider interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

type provider struct {
	embedder llm.Embedder
}

// NewProvider wraps an Embedder into a similarity provider.
func NewProvider(e llm.Embedder) Provider {
	return &provider{embedder: e}
}

func (p *provider) Similarity(ctx context.Context, a, b string) (float64, error) {
	vectors, err := p.embedder.Embed(ctx, []string{a, b})
	if err != nil {
		return 0, err
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("expected 2 vectors, got %d", len(vectors))
	}
	return Cosine(vectors[0], vectors[1])
}

// Cosine returns the cosine similarity of two vectors of equal dimension.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("empty vectors")
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
