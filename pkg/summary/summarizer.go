package summary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ekazakov/screening/pkg/llm"
)

// Service produces a short candidate summary from extracted resume text.
type Service struct {
	llm           llm.ChatModel
	maxInputChars int
	maxWords      int
	log           *zap.Logger
}

func New(model llm.ChatModel, log *zap.Logger) *Service {
	return &Service{
		llm:           model,
		maxInputChars: 2000,
		maxWords:      120,
		log:           log,
	}
}

// Summarize asks the chat model for a concise summary of the resume text.
// The input is truncated before prompting to keep things fast. A provider
// failure degrades to a plain leading excerpt instead of surfacing an error,
// so summarization outages cannot abort an analysis batch.
func (s *Service) Summarize(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if len(text) > s.maxInputChars {
		text = text[:s.maxInputChars]
	}
	if text == "" {
		return ""
	}
	system := "You summarize candidate resumes for recruiters. Reply with the summary only, no preamble."
	user := fmt.Sprintf(
		"Summarize the following resume text in at most %d words, as one short paragraph:\n<<<\n%s\n>>>",
		s.maxWords,
		text,
	)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		s.log.Warn("summarizer degraded to excerpt", zap.Error(err))
		return excerpt(text, 240)
	}
	return strings.TrimSpace(answer)
}

// excerpt returns the leading part of the text cut at a word boundary.
func excerpt(text string, limit int) string {
	fields := strings.Fields(text)
	var b strings.Builder
	for _, w := range fields {
		if b.Len()+len(w)+1 > limit {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	out := b.String()
	if out != strings.Join(fields, " ") {
		out += "..."
	}
	return out
}
