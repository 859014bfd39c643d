package scoring

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/ekazakov/screening/pkg/embedding"
)

// Default blend weights: semantic 60%, skills 40%.
const (
	DefaultSemanticWeight = 0.6
	DefaultSkillsWeight   = 0.4
)

// Scorer computes the three signals that make up a fit score. Every method
// returns a valid number even when a provider fails: failures degrade to 0.0
// and go to the log, never to the caller, so one bad input cannot abort a
// multi-resume batch.
type Scorer struct {
	provider       embedding.Provider
	semanticWeight float64
	skillsWeight   float64
	log            *zap.Logger
}

// New builds a Scorer. The weight sum is deliberately not validated:
// callers that pass weights not summing to 1 get an unnormalized but still
// deterministic overall score.
func New(provider embedding.Provider, semanticWeight, skillsWeight float64, log *zap.Logger) *Scorer {
	return &Scorer{
		provider:       provider,
		semanticWeight: semanticWeight,
		skillsWeight:   skillsWeight,
		log:            log,
	}
}

// SemanticScore returns the embedding similarity of resume and job
// description, clamped to [0,1]. Provider errors degrade to 0.0.
func (s *Scorer) SemanticScore(ctx context.Context, resumeText, jdText string) float64 {
	score, err := s.provider.Similarity(ctx, resumeText, jdText)
	if err != nil {
		s.log.Warn("semantic score degraded to fallback", zap.Error(err))
		return 0.0
	}
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}

// SkillsMatchScore returns the percentage of JD skills present in the
// resume, in [0,100], rounded to 2 decimals. Both sides are trimmed,
// lowercased and deduplicated first. An empty JD skill set scores 0.0.
func (s *Scorer) SkillsMatchScore(jdSkills, resumeSkills []string) float64 {
	jdSet := normalizeSet(jdSkills)
	if len(jdSet) == 0 {
		return 0.0
	}
	resumeSet := normalizeSet(resumeSkills)
	matched := 0
	for skill := range jdSet {
		if _, ok := resumeSet[skill]; ok {
			matched++
		}
	}
	return round2(float64(matched) / float64(len(jdSet)) * 100.0)
}

// OverallFitScore blends the two signals into one score in [0,100] under
// the configured weights, rounded to 2 decimals. Monotonically
// non-decreasing in both inputs.
func (s *Scorer) OverallFitScore(semanticScore, skillsMatchPercent float64) float64 {
	overall := s.semanticWeight*(semanticScore*100.0) + s.skillsWeight*skillsMatchPercent
	return round2(overall)
}

func normalizeSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round3 is used for presenting the semantic score in API payloads.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
