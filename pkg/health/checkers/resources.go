package checkers

import (
	"context"
	"errors"
	"strings"

	"github.com/ekazakov/screening/pkg/nlp"
)

// ResourcesChecker verifies the static resources the pipeline depends on:
// the skill vocabulary and the default job description. Both are loaded at
// startup, so this mostly guards against empty or misconfigured files.
type ResourcesChecker struct {
	vocab    nlp.Vocabulary
	staticJD string
}

func NewResourcesChecker(vocab nlp.Vocabulary, staticJD string) *ResourcesChecker {
	return &ResourcesChecker{vocab: vocab, staticJD: staticJD}
}

func (c *ResourcesChecker) Name() string { return "resources" }

func (c *ResourcesChecker) Check(_ context.Context) error {
	if len(c.vocab) == 0 {
		return errors.New("skill vocabulary is empty")
	}
	if strings.TrimSpace(c.staticJD) == "" {
		return errors.New("default job description is empty")
	}
	return nil
}
