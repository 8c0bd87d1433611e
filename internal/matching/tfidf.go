package matching

import (
	"errors"
	"math"
	"strings"
)

// errZeroVector reports that one side of a similarity computation has no
// weight, making cosine similarity undefined.
var errZeroVector = errors.New("similarity undefined for zero-weight term vector")

// round2 rounds to two decimal places for boundary values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// termFrequencies builds a term-frequency vector from whitespace-separated
// tokens.
func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, token := range strings.Fields(text) {
		freq[token]++
	}
	return freq
}

// cosineSimilarity computes the cosine similarity of the term-frequency
// vectors of two texts. It returns errZeroVector when either text has no
// tokens; callers recover by falling back to their exact-match score.
func cosineSimilarity(a, b string) (float64, error) {
	va := termFrequencies(a)
	vb := termFrequencies(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0, errZeroVector
	}

	var dot, normA, normB float64
	for term, wa := range va {
		normA += wa * wa
		if wb, ok := vb[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range vb {
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0, errZeroVector
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
