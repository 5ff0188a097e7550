package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROCPerfectClassifier(t *testing.T) {
	yTrue := []int{0, 0, 1, 1}
	scores := []float64{0.1, 0.2, 0.8, 0.9}

	curve := ROC(yTrue, scores)
	assert.InDelta(t, 1.0, AUC(curve), 1e-9)

	// Curve starts at (0,0) and ends at (1,1).
	assert.Equal(t, ROCPoint{0, 0}, curve[0])
	assert.Equal(t, ROCPoint{1, 1}, curve[len(curve)-1])
}

func TestROCWorstClassifier(t *testing.T) {
	yTrue := []int{1, 1, 0, 0}
	scores := []float64{0.1, 0.2, 0.8, 0.9}
	assert.InDelta(t, 0.0, AUC(ROC(yTrue, scores)), 1e-9)
}

func TestROCChance(t *testing.T) {
	// All scores tied: one sweep step takes in everything, giving the
	// chance diagonal.
	yTrue := []int{1, 0, 1, 0}
	scores := []float64{0.5, 0.5, 0.5, 0.5}

	curve := ROC(yTrue, scores)
	require.Len(t, curve, 2)
	assert.InDelta(t, 0.5, AUC(curve), 1e-9)
}

func TestROCKnownAUC(t *testing.T) {
	// One ranking inversion out of four positive/negative pairs.
	yTrue := []int{1, 0, 1, 0}
	scores := []float64{0.9, 0.8, 0.7, 0.1}
	assert.InDelta(t, 0.75, AUC(ROC(yTrue, scores)), 1e-9)
}

func TestROCSingleClass(t *testing.T) {
	curve := ROC([]int{1, 1, 1}, []float64{0.2, 0.5, 0.9})
	require.Len(t, curve, 2)
	assert.InDelta(t, 0.5, AUC(curve), 1e-9)

	curve = ROC([]int{0, 0}, []float64{0.2, 0.5})
	assert.InDelta(t, 0.5, AUC(curve), 1e-9)
}
