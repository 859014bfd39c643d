package apikey

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", New(key), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMiddleware(t *testing.T) {
	app := newApp("secret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid key", "secret", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"prefix of key", "secre", http.StatusUnauthorized},
		{"key with suffix", "secret1", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
