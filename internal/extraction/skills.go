package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// extractSkills scans the technical and soft-skill lexicons against the text
// with a case-insensitive substring test. Short terms like "r" or "ai" can
// match inside unrelated words; this is a known imprecision of the substring
// heuristic that is kept for behavioral compatibility.
func (e *Extractor) extractSkills(text string) []types.SkillSignal {
	seen := make(map[string]int)
	var skills []types.SkillSignal

	for _, dt := range e.lex.DetectionTerms() {
		count := strings.Count(text, dt.Term)
		if count == 0 {
			continue
		}

		category := types.CategorySoft
		if dt.Technical {
			category = types.CategoryTechnical
		}
		signal := types.SkillSignal{
			Term:       titleCase(dt.Term),
			Confidence: skillConfidence(count),
			Category:   category,
		}

		// Deduplicate by case-insensitive term, keeping the highest
		// confidence while preserving first-seen position.
		key := strings.ToLower(signal.Term)
		if idx, ok := seen[key]; ok {
			if signal.Confidence > skills[idx].Confidence {
				skills[idx].Confidence = signal.Confidence
			}
			continue
		}
		seen[key] = len(skills)
		skills = append(skills, signal)
	}

	// Descending by confidence; SliceStable keeps first-seen order on ties.
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Confidence > skills[j].Confidence
	})
	return skills
}

// skillConfidence maps mention frequency to a confidence estimate. The step
// values are tuned constants: 1 mention is a weak signal, repeats increase
// certainty with diminishing returns.
func skillConfidence(count int) float64 {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 0.70
	case count == 2:
		return 0.85
	default:
		c := 0.90 + 0.05*float64(count-2)
		if c > 1.0 {
			return 1.0
		}
		return c
	}
}

// titleCase capitalizes the first letter of each space-separated word.
// Lexicon terms are stored lowercase; profiles carry them in display form.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
