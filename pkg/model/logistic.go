package model

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/hjwestbye/titanic/pkg/optim"
)

// LogisticRegression is a binary classifier with a sigmoid link, trained by
// mini-batch gradient descent. All randomness (weight init, batch order)
// comes from Seed, so a fit is reproducible.
type LogisticRegression struct {
	W         []float64 // weights, one per feature
	B         float64   // bias
	Lr        float64
	Epochs    int
	BatchSize int
	Seed      int64
}

var _ Classifier = (*LogisticRegression)(nil)

// NewLogisticRegression sets the hyperparameters; weights are allocated on
// the first call to Fit once the feature count is known.
func NewLogisticRegression(lr float64, epochs, batchSize int, seed int64) *LogisticRegression {
	return &LogisticRegression{Lr: lr, Epochs: epochs, BatchSize: batchSize, Seed: seed}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// bceGradient returns the mean binary cross-entropy loss over the batch and
// its gradient with respect to the predictions.
func bceGradient(yTrue, yPred []float64) (float64, []float64) {
	n := len(yTrue)
	s := 0.0
	grad := make([]float64, n)
	for i := 0; i < n; i++ {
		p := math.Min(math.Max(yPred[i], 1e-12), 1-1e-12)
		y := yTrue[i]
		s += -(y*math.Log(p) + (1-y)*math.Log(1-p))
		grad[i] = (p - y) / float64(n)
	}
	return s / float64(n), grad
}

// Fit trains on X, y with mini-batch SGD.
func (m *LogisticRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	if len(X) != len(y) {
		return errors.New("feature/label length mismatch")
	}
	nFeatures := len(X[0])
	r := rand.New(rand.NewSource(m.Seed))

	// Small random init to break symmetry.
	m.W = make([]float64, nFeatures)
	for i := range m.W {
		m.W[i] = r.NormFloat64() * 0.01
	}
	m.B = 0

	opt := optim.NewSGD(m.Lr)
	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}

	batchSize := m.BatchSize
	if batchSize <= 0 || batchSize > len(X) {
		batchSize = len(X)
	}

	for ep := 0; ep < m.Epochs; ep++ {
		r.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

		for start := 0; start < len(indices); start += batchSize {
			end := start + batchSize
			if end > len(indices) {
				end = len(indices)
			}
			bX := make([][]float64, 0, end-start)
			bY := make([]float64, 0, end-start)
			for _, idx := range indices[start:end] {
				if len(X[idx]) != nFeatures {
					return errors.New("ragged feature matrix")
				}
				bX = append(bX, X[idx])
				bY = append(bY, y[idx])
			}

			p := m.PredictProba(bX)
			_, dy := bceGradient(bY, p)

			gW := make([]float64, nFeatures)
			gb := 0.0
			for i, row := range bX {
				d := dy[i]
				for j, xij := range row {
					gW[j] += d * xij
				}
				gb += d
			}

			opt.Step(m.W, gW)
			m.B -= m.Lr * gb
		}
	}
	return nil
}

// PredictProba returns p(y=1) for each row of X. Rows are scored in
// parallel across the available cores.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(X) {
			end = len(X)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				sum := m.B
				for j, v := range X[i] {
					sum += m.W[j] * v
				}
				out[i] = sigmoid(sum)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// Predict returns hard 0/1 labels at the 0.5 threshold.
func (m *LogisticRegression) Predict(X [][]float64) []float64 {
	proba := m.PredictProba(X)
	out := make([]float64, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
