package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hjwestbye/titanic/pkg/model"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSurvivalBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")
	counts := map[string][2]int{
		"female": {81, 233},
		"male":   {468, 109},
	}
	require.NoError(t, SurvivalBars(counts, "Survival by Sex", "Sex", path))
	assertPNG(t, path)
}

func TestAgeHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ages.png")
	ages := []float64{2, 14, 22, 26, 27, 35, 35, 38, 38, 54}
	require.NoError(t, AgeHistogram(ages, path))
	assertPNG(t, path)
}

func TestFareByClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fares.png")
	fares := map[int][]float64{
		1: {51.86, 53.1, 71.28, 80},
		2: {13, 26, 30.07},
		3: {7.25, 7.92, 8.05, 8.46, 11.13, 21.07},
	}
	require.NoError(t, FareByClass(fares, path))
	assertPNG(t, path)
}

func TestROCCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roc.png")
	curve := []model.ROCPoint{
		{FPR: 0, TPR: 0},
		{FPR: 0, TPR: 0.5},
		{FPR: 0.25, TPR: 0.75},
		{FPR: 0.5, TPR: 1},
		{FPR: 1, TPR: 1},
	}
	require.NoError(t, ROCCurve(curve, 0.84, path))
	assertPNG(t, path)
}
