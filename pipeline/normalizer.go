package pipeline

import (
	"strings"
	"unicode"
)

// Normalizer maps raw vision-service label text to canonical food names, or
// discards labels as non-food. Pure function over the static tables; a label
// that matches nothing food-related is the expected filtering outcome, not
// an error.
type Normalizer struct {
	tables *Tables
}

func NewNormalizer(t *Tables) *Normalizer {
	return &Normalizer{tables: t}
}

// Normalize returns the canonical food name for one raw label and whether
// the label survived filtering.
//
// Matching order: exact synonym, denylist rejection, exact nutrient-table
// entry, then the longest food or synonym phrase contained in the label
// (most specific wins).
func (n *Normalizer) Normalize(text string) (string, bool) {
	cleaned := cleanLabel(text)
	if cleaned == "" {
		return "", false
	}

	if target, ok := n.tables.Synonyms[cleaned]; ok {
		return target, true
	}
	if n.tables.denied(cleaned) {
		return "", false
	}
	if _, ok := n.tables.food(cleaned); ok {
		return cleaned, true
	}

	// Loose match: pick the longest known phrase appearing whole in the
	// label, e.g. "grilled chicken breast" -> "chicken breast" over
	// "chicken".
	var bestPhrase, bestTarget string
	consider := func(phrase, target string) {
		if !containsPhrase(cleaned, phrase) {
			return
		}
		if len(phrase) > len(bestPhrase) ||
			(len(phrase) == len(bestPhrase) && phrase < bestPhrase) {
			bestPhrase, bestTarget = phrase, target
		}
	}
	for name := range n.tables.Foods {
		consider(name, name)
	}
	// Specificity is judged by the matched alias, not its target.
	for alias, target := range n.tables.Synonyms {
		consider(alias, target)
	}
	if bestTarget != "" {
		return bestTarget, true
	}
	return "", false
}

// cleanLabel lower-cases, strips punctuation and collapses whitespace.
func cleanLabel(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsPhrase reports whether phrase occurs in text on word boundaries.
func containsPhrase(text, phrase string) bool {
	if text == phrase {
		return true
	}
	return strings.HasPrefix(text, phrase+" ") ||
		strings.HasSuffix(text, " "+phrase) ||
		strings.Contains(text, " "+phrase+" ")
}
