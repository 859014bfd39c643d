package nlp

import (
	"regexp"
	"strings"
)

// Characters outside this class are replaced with spaces. "+", "." and "#"
// stay so that skills like "c++", ".net" and "c#" survive normalization.
var nonSkillChar = regexp.MustCompile(`[^a-z0-9+.# ]`)

// NormalizeForMatch lowercases the text and replaces every character that
// cannot appear in a skill token with a space. Runs of spaces are kept as-is:
// matching is plain substring containment over this form, and collapsing
// would change which phrases are found.
func NormalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return nonSkillChar.ReplaceAllString(s, " ")
}

// ContainsPhrase reports whether the normalized phrase occurs in the
// normalized text as whole words. This is the stricter alternative to the
// substring policy used by Vocabulary.Extract.
// Example: "rest api" is found in " ... rest api ..." but not in "rest apis".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
