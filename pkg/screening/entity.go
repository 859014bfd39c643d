package screening

import "github.com/ekazakov/screening/pkg/metadata"

// Service identity reported in payloads and on the informational endpoints.
const (
	ServiceName = "AI Resume Screening SaaS"
	Version     = "1.0.4"
	Description = "AI Resume Screening System with scoring, insights, and SaaS metadata"
)

// Upload is one resume file read fully into memory.
type Upload struct {
	Filename string
	Data     []byte
}

// Scores holds the three signals for one resume. OverallFitScore is a
// deterministic blend of the other two under fixed weights.
type Scores struct {
	SemanticScore    float64 `json:"semantic_score"`
	SkillsMatchScore float64 `json:"skills_match_score"`
	OverallFitScore  float64 `json:"overall_fit_score"`
}

// Insights is the human-readable part of a result.
type Insights struct {
	SkillsDetected []string `json:"skills_detected"`
	MissingSkills  []string `json:"missing_skills"`
	Strengths      []string `json:"strengths"`
	Gaps           []string `json:"gaps"`
	OverallInsight string   `json:"overall_insight"`
	Summary        string   `json:"summary"`
}

// Result is the analysis of one resume. It lives for exactly one
// request/response cycle and is immutable after assembly.
type Result struct {
	metadata.Metadata
	FileName string   `json:"file_name"`
	Analysis Scores   `json:"analysis"`
	Insights Insights `json:"insights"`
}

// Ranking wraps a multi-resume batch, ordered by descending overall fit.
type Ranking struct {
	Service       string   `json:"service"`
	Version       string   `json:"version"`
	TotalResumes  int      `json:"total_resumes"`
	RankedResults []Result `json:"ranked_results"`
}
