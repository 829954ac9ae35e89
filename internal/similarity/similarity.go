// Package similarity provides the vector and set similarity measures used by
// the matcher: cosine over sparse term-weight vectors and Jaccard over sets.
package similarity

import "math"

// Cosine returns the cosine similarity between two sparse term-weight
// vectors, in [0,1]. Either vector having zero norm yields 0.
func Cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}

// Jaccard returns |A ∩ B| / |A ∪ B| in [0,1]. Two empty sets yield 0 rather
// than NaN.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for item := range a {
		if b[item] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Set converts a slice of terms into the membership form Jaccard consumes.
func Set(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
