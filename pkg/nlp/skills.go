package nlp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vocabulary is the ordered list of known skills, loaded once at startup and
// shared read-only between requests.
type Vocabulary []string

type skillsFile struct {
	Skills []string `json:"skills"`
}

// LoadVocabulary reads the skill list from a JSON file of the form
// {"skills": ["python", "sql", ...]}. Entries are lowercased and trimmed;
// empty entries are dropped.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skills file: %w", err)
	}
	var f skillsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse skills file %s: %w", path, err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("skills file %s contains no skills", path)
	}
	out := make(Vocabulary, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// Extract returns the vocabulary entries found in the text. Matching is
// substring containment over the normalized text, so short entries can fire
// inside longer words ("java" inside "javascript"). That looseness is part
// of the scoring contract; ContainsPhrase exists for callers that want whole
// words. The result is deduplicated and keeps vocabulary order.
func (v Vocabulary) Extract(text string) []string {
	normalized := NormalizeForMatch(text)
	var found []string
	seen := make(map[string]struct{}, len(v))
	for _, skill := range v {
		if _, ok := seen[skill]; ok {
			continue
		}
		if strings.Contains(normalized, skill) {
			seen[skill] = struct{}{}
			found = append(found, skill)
		}
	}
	return found
}

// FindMissing returns the required skills absent from present, preserving
// the order of required.
func FindMissing(required, present []string) []string {
	have := make(map[string]struct{}, len(present))
	for _, s := range present {
		have[s] = struct{}{}
	}
	var missing []string
	for _, s := range required {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
