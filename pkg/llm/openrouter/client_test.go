package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestAsk(t *testing.T) {
	t.Run("returns first choice content", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

			var req chatCompletionsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "hello"}},
				},
			})
		})

		c := New("key", srv.URL, "test-model", "", "", "")
		out, err := c.Ask(context.Background(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("empty api key", func(t *testing.T) {
		c := New("", "http://unused", "m", "", "", "")
		_, err := c.Ask(context.Background(), "s", "u")
		assert.Error(t, err)
	})

	t.Run("http error surfaces", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		c := New("key", srv.URL, "m", "", "", "")
		_, err := c.Ask(context.Background(), "s", "u")
		assert.ErrorContains(t, err, "429")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})
		c := New("key", srv.URL, "m", "", "", "")
		_, err := c.Ask(context.Background(), "s", "u")
		assert.ErrorContains(t, err, "no choices")
	})
}

func TestEmbed(t *testing.T) {
	t.Run("returns vectors in input order", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings", r.URL.Path)

			var req embeddingsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"a", "b"}, req.Input)

			// Deliberately out of order: the client must reorder by index.
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"index": 1, "embedding": []float64{0, 1}},
					{"index": 0, "embedding": []float64{1, 0}},
				},
			})
		})

		c := New("key", srv.URL, "", "embed-model", "", "")
		vectors, err := c.Embed(context.Background(), []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		assert.Equal(t, []float64{1, 0}, vectors[0])
		assert.Equal(t, []float64{0, 1}, vectors[1])
	})

	t.Run("count mismatch", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"index": 0, "embedding": []float64{1}}},
			})
		})
		c := New("key", srv.URL, "", "m", "", "")
		_, err := c.Embed(context.Background(), []string{"a", "b"})
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		c := New("key", "http://unused", "", "m", "", "")
		_, err := c.Embed(context.Background(), nil)
		assert.Error(t, err)
	})
}
