package metadata

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Metadata is the per-result bookkeeping attached to every analysis:
// unique request id, wall-clock timestamp and processing latency.
type Metadata struct {
	Service          string  `json:"service"`
	Version          string  `json:"version"`
	CandidateID      string  `json:"candidate_id"`
	Timestamp        string  `json:"timestamp"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

// Generator stamps results with service identity and timing.
type Generator struct {
	service string
	version string
	now     func() time.Time
}

func NewGenerator(service, version string) *Generator {
	return &Generator{service: service, version: version, now: time.Now}
}

// Generate builds metadata for a result, measuring elapsed time since the
// request started.
func (g *Generator) Generate(start time.Time) Metadata {
	end := g.now()
	elapsed := float64(end.Sub(start)) / float64(time.Millisecond)
	return Metadata{
		Service:          g.service,
		Version:          g.version,
		CandidateID:      uuid.NewString(),
		Timestamp:        end.Format("2006-01-02 15:04:05"),
		ProcessingTimeMS: math.Round(elapsed*100) / 100,
	}
}
