package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChat struct {
	answer   string
	err      error
	lastUser string
}

func (f *fakeChat) Ask(_ context.Context, _, userPrompt string) (string, error) {
	f.lastUser = userPrompt
	return f.answer, f.err
}

func TestSummarize(t *testing.T) {
	t.Run("returns trimmed model answer", func(t *testing.T) {
		chat := &fakeChat{answer: "  A concise summary.  "}
		s := New(chat, zap.NewNop())
		got := s.Summarize(context.Background(), "Experienced Python engineer.")
		assert.Equal(t, "A concise summary.", got)
		assert.Contains(t, chat.lastUser, "Experienced Python engineer.")
	})

	t.Run("truncates long input before prompting", func(t *testing.T) {
		chat := &fakeChat{answer: "ok"}
		s := New(chat, zap.NewNop())
		long := strings.Repeat("x", 5000)
		s.Summarize(context.Background(), long)
		require.NotEmpty(t, chat.lastUser)
		assert.NotContains(t, chat.lastUser, strings.Repeat("x", 2001))
		assert.Contains(t, chat.lastUser, strings.Repeat("x", 2000))
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		chat := &fakeChat{answer: "should not be called"}
		s := New(chat, zap.NewNop())
		assert.Equal(t, "", s.Summarize(context.Background(), "   "))
		assert.Empty(t, chat.lastUser)
	})

	t.Run("provider failure degrades to excerpt", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("model unavailable")}
		s := New(chat, zap.NewNop())
		got := s.Summarize(context.Background(), "Senior data engineer with Python and SQL experience.")
		assert.Equal(t, "Senior data engineer with Python and SQL experience.", got)
	})

	t.Run("excerpt cuts long text at a word boundary", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("down")}
		s := New(chat, zap.NewNop())
		long := strings.Repeat("word ", 200)
		got := s.Summarize(context.Background(), long)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len(got), 250)
	})
}
