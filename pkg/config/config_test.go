package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "data/skills_list.json", cfg.SkillsPath)
	assert.Equal(t, "data/job_description.txt", cfg.JobDescriptionPath)
	assert.InDelta(t, 0.6, cfg.SemanticWeight, 1e-9)
	assert.InDelta(t, 0.4, cfg.SkillsWeight, 1e-9)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEMANTIC_WEIGHT", "0.7")
	t.Setenv("SKILLS_WEIGHT", "0.3")
	t.Setenv("DEBUG", "true")
	t.Setenv("SKILLS_PATH", "/etc/screening/skills.json")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.InDelta(t, 0.7, cfg.SemanticWeight, 1e-9)
	assert.InDelta(t, 0.3, cfg.SkillsWeight, 1e-9)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/etc/screening/skills.json", cfg.SkillsPath)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SEMANTIC_WEIGHT", "not-a-number")
	t.Setenv("DEBUG", "not-a-bool")

	cfg := Load()
	assert.InDelta(t, 0.6, cfg.SemanticWeight, 1e-9)
	assert.False(t, cfg.Debug)
}
