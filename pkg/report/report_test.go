package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Input:        filepath.Join("testdata", "manifest.csv"),
		OutputDir:    t.TempDir(),
		Seed:         42,
		TestFrac:     0.25,
		LearningRate: 0.1,
		Epochs:       100,
		BatchSize:    8,
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	m, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 32, m.Rows)
	assert.Equal(t, 8, m.TestRows)
	assert.Equal(t, 24, m.TrainRows)
	assert.Equal(t, 2, m.AgesFilled)
	assert.Equal(t, "S", m.EmbarkedFill)
	assert.Equal(t, 1, m.FaresFilled)
	assert.Greater(t, m.AgeFill, 0.0)

	assert.GreaterOrEqual(t, m.Accuracy, 0.0)
	assert.LessOrEqual(t, m.Accuracy, 1.0)
	assert.GreaterOrEqual(t, m.AUC, 0.0)
	assert.LessOrEqual(t, m.AUC, 1.0)
	assert.Equal(t, m.TestRows, m.Confusion.Total())
	assert.Len(t, m.Weights, 7)

	// metrics.json round-trips to the same values.
	buf, err := os.ReadFile(filepath.Join(cfg.OutputDir, "metrics.json"))
	require.NoError(t, err)
	var onDisk Metrics
	require.NoError(t, json.Unmarshal(buf, &onDisk))
	assert.Equal(t, m.Accuracy, onDisk.Accuracy)
	assert.Equal(t, m.AUC, onDisk.AUC)
	assert.Equal(t, m.Confusion, onDisk.Confusion)
}

func TestRunDeterministic(t *testing.T) {
	a, err := Run(testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	b, err := Run(testConfig(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, a.Accuracy, b.Accuracy)
	assert.Equal(t, a.AUC, b.AUC)
	assert.Equal(t, a.Weights, b.Weights)
	assert.Equal(t, a.Bias, b.Bias)
	assert.Equal(t, a.Confusion, b.Confusion)
}

func TestRunCharts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Charts = true
	_, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	for _, name := range []string{
		"survival_by_sex.png", "survival_by_class.png",
		"age_histogram.png", "fare_by_class.png", "roc.png",
		"metrics.json",
	} {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunStratified(t *testing.T) {
	cfg := testConfig(t)
	cfg.Stratify = true
	m, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	// 16/16 class balance in the fixture carries into the 8-row fold.
	assert.Equal(t, 4, m.Confusion.TP+m.Confusion.FN)
	assert.Equal(t, 4, m.Confusion.TN+m.Confusion.FP)
}

func TestRunBadInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input = filepath.Join("testdata", "nope.csv")
	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
}

func TestRunBadSplit(t *testing.T) {
	cfg := testConfig(t)
	cfg.TestFrac = 1.5
	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
}
