package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearly separable data: class 1 iff x1 + x2 > 0.
func separableData(n int, seed int64) ([][]float64, []float64) {
	r := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := r.Float64()*4 - 2
		x2 := r.Float64()*4 - 2
		X[i] = []float64{x1, x2}
		if x1+x2 > 0 {
			y[i] = 1
		}
	}
	return X, y
}

func TestLogisticRegressionFit(t *testing.T) {
	X, y := separableData(400, 1)
	clf := NewLogisticRegression(0.5, 300, 32, 42)
	require.NoError(t, clf.Fit(X, y))

	pred := clf.Predict(X)
	correct := 0
	for i := range pred {
		if pred[i] == y[i] {
			correct++
		}
	}
	acc := float64(correct) / float64(len(y))
	assert.Greater(t, acc, 0.95, "training accuracy on separable data")

	// The decision boundary is x1 + x2 = 0, so both weights point the
	// same way.
	assert.Greater(t, clf.W[0], 0.0)
	assert.Greater(t, clf.W[1], 0.0)
}

func TestLogisticRegressionDeterministic(t *testing.T) {
	X, y := separableData(200, 3)

	a := NewLogisticRegression(0.1, 50, 16, 7)
	require.NoError(t, a.Fit(X, y))
	b := NewLogisticRegression(0.1, 50, 16, 7)
	require.NoError(t, b.Fit(X, y))

	assert.Equal(t, a.W, b.W)
	assert.Equal(t, a.B, b.B)
}

func TestLogisticRegressionErrors(t *testing.T) {
	clf := NewLogisticRegression(0.1, 10, 4, 1)
	assert.Error(t, clf.Fit(nil, nil))
	assert.Error(t, clf.Fit([][]float64{{1}}, []float64{1, 0}))
	assert.Error(t, clf.Fit([][]float64{{1, 2}, {1}}, []float64{1, 0}))
}

func TestPredictProba(t *testing.T) {
	clf := &LogisticRegression{W: []float64{1}, B: 0}

	p := clf.PredictProba([][]float64{{0}, {10}, {-10}})
	assert.InDelta(t, 0.5, p[0], 1e-9)
	assert.Greater(t, p[1], 0.99)
	assert.Less(t, p[2], 0.01)

	assert.Nil(t, clf.PredictProba(nil))
}
