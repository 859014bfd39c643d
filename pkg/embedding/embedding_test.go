package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		want    float64
		wantErr bool
	}{
		{name: "identical vectors", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 1.0},
		{name: "orthogonal vectors", a: []float64{1, 0}, b: []float64{0, 1}, want: 0.0},
		{name: "opposite vectors", a: []float64{1, 0}, b: []float64{-1, 0}, want: -1.0},
		{name: "scaled vectors keep similarity", a: []float64{1, 1}, b: []float64{10, 10}, want: 1.0},
		{name: "dimension mismatch", a: []float64{1, 2}, b: []float64{1}, wantErr: true},
		{name: "empty vectors", a: nil, b: nil, wantErr: true},
		{name: "zero magnitude", a: []float64{0, 0}, b: []float64{1, 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

type fakeEmbedder struct {
	vectors [][]float64
	err     error
}

func (f *fakeEmbedder) Embed(context.Context, []string) ([][]float64, error) {
	return f.vectors, f.err
}

func TestProviderSimilarity(t *testing.T) {
	t.Run("embeds both texts and compares", func(t *testing.T) {
		p := NewProvider(&fakeEmbedder{vectors: [][]float64{{1, 0}, {1, 0}}})
		got, err := p.Similarity(context.Background(), "resume", "jd")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("propagates embedder errors", func(t *testing.T) {
		p := NewProvider(&fakeEmbedder{err: errors.New("encoding failure")})
		_, err := p.Similarity(context.Background(), "resume", "jd")
		assert.Error(t, err)
	})

	t.Run("rejects wrong vector count", func(t *testing.T) {
		p := NewProvider(&fakeEmbedder{vectors: [][]float64{{1, 0}}})
		_, err := p.Similarity(context.Background(), "resume", "jd")
		assert.Error(t, err)
	})
}
