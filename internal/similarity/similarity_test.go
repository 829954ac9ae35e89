package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := map[string]float64{"python": 2, "react": 1, "aws": 0.5}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_ZeroVector(t *testing.T) {
	v := map[string]float64{"python": 2}

	assert.Equal(t, 0.0, Cosine(v, map[string]float64{}))
	assert.Equal(t, 0.0, Cosine(map[string]float64{}, v))
	assert.Equal(t, 0.0, Cosine(v, map[string]float64{"python": 0}))
}

func TestCosine_Orthogonal(t *testing.T) {
	a := map[string]float64{"python": 1}
	b := map[string]float64{"java": 1}

	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_PartialOverlap(t *testing.T) {
	a := map[string]float64{"python": 1, "react": 1}
	b := map[string]float64{"python": 1, "java": 1}

	// dot=1, norms=sqrt(2) each
	assert.InDelta(t, 0.5, Cosine(a, b), 1e-9)
}

func TestJaccard_IdenticalNonEmpty(t *testing.T) {
	s := Set([]string{"python", "react"})

	assert.Equal(t, 1.0, Jaccard(s, s))
}

func TestJaccard_BothEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard(map[string]bool{}, map[string]bool{}))
}

func TestJaccard_PartialOverlap(t *testing.T) {
	a := Set([]string{"python", "react", "aws"})
	b := Set([]string{"python", "java"})

	// intersection 1, union 4
	assert.InDelta(t, 0.25, Jaccard(a, b), 1e-9)
}

func TestSet_Deduplicates(t *testing.T) {
	s := Set([]string{"python", "python", "react"})

	assert.Len(t, s, 2)
	assert.True(t, s["python"])
	assert.True(t, s["react"])
}
