package screening

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ekazakov/screening/pkg/insights"
	"github.com/ekazakov/screening/pkg/metadata"
	"github.com/ekazakov/screening/pkg/nlp"
	"github.com/ekazakov/screening/pkg/scoring"
)

// ErrNoJobDescription is returned when neither an explicit JD nor the
// static-JD flag is supplied. Handlers report it as a structured payload,
// not a transport error.
var ErrNoJobDescription = errors.New("no job description provided")

// TextExtractor turns uploaded file bytes into plain text.
type TextExtractor func(filename string, data []byte) (string, error)

// Summarizer produces a short candidate summary; it must not fail the
// request (degradation is the provider's concern).
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Service runs the full per-resume pipeline: extract text, detect skills,
// score, generate insights, summarize, assemble. Shared state (vocabulary,
// static JD) is read-only after construction, so one Service instance is
// safe for concurrent requests.
type Service struct {
	vocab      nlp.Vocabulary
	staticJD   string
	extract    TextExtractor
	scorer     *scoring.Scorer
	summarizer Summarizer
	meta       *metadata.Generator
	log        *zap.Logger
}

func NewService(
	vocab nlp.Vocabulary,
	staticJD string,
	extract TextExtractor,
	scorer *scoring.Scorer,
	summarizer Summarizer,
	meta *metadata.Generator,
	log *zap.Logger,
) *Service {
	return &Service{
		vocab:      vocab,
		staticJD:   staticJD,
		extract:    extract,
		scorer:     scorer,
		summarizer: summarizer,
		meta:       meta,
		log:        log,
	}
}

// ResolveJobDescription picks the JD for a request: explicit text wins,
// then the preloaded static document when requested, otherwise the request
// cannot proceed.
func (s *Service) ResolveJobDescription(jd string, useStatic bool) (string, error) {
	if strings.TrimSpace(jd) != "" {
		return jd, nil
	}
	if useStatic {
		return s.staticJD, nil
	}
	return "", ErrNoJobDescription
}

// Analyze scores every upload against the JD and returns results in
// submission order. Files are processed sequentially within the request.
// An unreadable file fails the whole request with the file named; scoring
// provider failures never do (they degrade inside the scorer).
func (s *Service) Analyze(ctx context.Context, jdText string, uploads []Upload) ([]Result, error) {
	start := time.Now()
	jdSkills := s.vocab.Extract(jdText)

	results := make([]Result, 0, len(uploads))
	for _, up := range uploads {
		resumeText, err := s.extract(up.Filename, up.Data)
		if err != nil {
			return nil, fmt.Errorf("extract text from %s: %w", up.Filename, err)
		}
		results = append(results, s.analyzeOne(ctx, start, jdText, jdSkills, up.Filename, resumeText))
	}
	return results, nil
}

func (s *Service) analyzeOne(ctx context.Context, start time.Time, jdText string, jdSkills []string, filename, resumeText string) Result {
	resumeSkills := s.vocab.Extract(resumeText)
	missingSkills := nlp.FindMissing(jdSkills, resumeSkills)

	strengths := insights.Strengths(resumeSkills, jdSkills, resumeText)
	gaps := insights.Gaps(missingSkills)

	semanticScore := s.scorer.SemanticScore(ctx, resumeText, jdText)
	skillsMatchScore := s.scorer.SkillsMatchScore(jdSkills, resumeSkills)
	overallFitScore := s.scorer.OverallFitScore(semanticScore, skillsMatchScore)

	summaryText := s.summarizer.Summarize(ctx, resumeText)

	s.log.Debug("resume analyzed",
		zap.String("file", filename),
		zap.Float64("semantic", semanticScore),
		zap.Float64("skills_match", skillsMatchScore),
		zap.Float64("overall", overallFitScore),
	)

	return Result{
		Metadata: s.meta.Generate(start),
		FileName: filename,
		Analysis: Scores{
			SemanticScore:    scoring.Round3(semanticScore),
			SkillsMatchScore: skillsMatchScore,
			OverallFitScore:  overallFitScore,
		},
		Insights: Insights{
			SkillsDetected: orEmpty(resumeSkills),
			MissingSkills:  orEmpty(missingSkills),
			Strengths:      orEmpty(strengths),
			Gaps:           orEmpty(gaps),
			OverallInsight: overallInsight(resumeSkills, missingSkills),
			Summary:        summaryText,
		},
	}
}

// overallInsight builds the one-line verdict from up to 2 top detected and
// up to 2 top missing skills.
func overallInsight(resumeSkills, missingSkills []string) string {
	return fmt.Sprintf(
		"Strong in %s but missing %s.",
		strings.Join(topN(resumeSkills, 2), ", "),
		strings.Join(topN(missingSkills, 2), ", "),
	)
}

// Rank orders results by descending overall fit and wraps them in a batch
// envelope. The sort is stable: ties keep submission order.
func Rank(results []Result) Ranking {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Analysis.OverallFitScore > ranked[j].Analysis.OverallFitScore
	})
	return Ranking{
		Service:       ServiceName,
		Version:       Version,
		TotalResumes:  len(ranked),
		RankedResults: ranked,
	}
}

func topN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
