// Package report runs the survival analysis end to end and writes its
// artifacts: metrics.json plus the descriptive and evaluation charts.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hjwestbye/titanic/pkg/dataprep"
	"github.com/hjwestbye/titanic/pkg/dataset"
	"github.com/hjwestbye/titanic/pkg/model"
	"github.com/hjwestbye/titanic/pkg/split"
	"github.com/hjwestbye/titanic/pkg/stats"
	"github.com/hjwestbye/titanic/pkg/viz"
)

// Config carries every knob of one analysis run.
type Config struct {
	Input        string
	OutputDir    string
	Seed         int64
	TestFrac     float64
	Stratify     bool
	LearningRate float64
	Epochs       int
	BatchSize    int
	Charts       bool
}

// Metrics is the machine-readable result of a run, written as metrics.json.
type Metrics struct {
	Rows         int                   `json:"rows"`
	TrainRows    int                   `json:"trainRows"`
	TestRows     int                   `json:"testRows"`
	Seed         int64                 `json:"seed"`
	AgeFill      float64               `json:"ageFill"`
	AgesFilled   int                   `json:"agesFilled"`
	EmbarkedFill string                `json:"embarkedFill"`
	FaresFilled  int                   `json:"faresFilled"`
	Features     []string              `json:"features"`
	Weights      map[string]float64    `json:"weights"`
	Bias         float64               `json:"bias"`
	Accuracy     float64               `json:"accuracy"`
	Precision    float64               `json:"precision"`
	Recall       float64               `json:"recall"`
	F1           float64               `json:"f1"`
	AUC          float64               `json:"auc"`
	Confusion    model.ConfusionMatrix `json:"confusionMatrix"`
	ROC          []model.ROCPoint      `json:"roc"`
}

// Run executes load → clean → visualize → split → fit → evaluate and writes
// the artifacts into cfg.OutputDir. The returned Metrics mirror what was
// written to metrics.json.
func Run(cfg Config, log zerolog.Logger) (*Metrics, error) {
	table, err := dataset.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	log.Info().Int("rows", table.Len()).Str("input", cfg.Input).Msg("manifest loaded")

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	m := &Metrics{
		Rows:     table.Len(),
		Seed:     cfg.Seed,
		Features: dataprep.FeatureNames,
	}

	// Descriptive charts use the observed values, before imputation.
	if cfg.Charts {
		if err := renderDescriptive(table, cfg.OutputDir); err != nil {
			return nil, err
		}
	}

	// Fixed fill rules from the original analysis.
	m.AgeFill, m.AgesFilled = dataprep.ImputeAges(table)
	m.EmbarkedFill, _ = dataprep.ImputeEmbarked(table)
	m.FaresFilled = dataprep.ImputeFares(table)
	log.Info().
		Float64("ageFill", m.AgeFill).Int("agesFilled", m.AgesFilled).
		Str("embarkedFill", m.EmbarkedFill).Int("faresFilled", m.FaresFilled).
		Msg("missing values imputed")

	X, y, err := dataprep.BuildFeatures(table)
	if err != nil {
		return nil, err
	}

	splitFn := split.TrainTestSplit
	if cfg.Stratify {
		splitFn = split.Stratified
	}
	XTrain, XTest, yTrain, yTest, err := splitFn(X, y, cfg.TestFrac, cfg.Seed)
	if err != nil {
		return nil, err
	}
	m.TrainRows, m.TestRows = len(XTrain), len(XTest)
	log.Info().Int("train", m.TrainRows).Int("test", m.TestRows).Msg("split done")

	scaler := stats.NewStandardScaler()
	XTrain = scaler.FitTransform(XTrain)
	XTest = scaler.Transform(XTest)

	clf := model.NewLogisticRegression(cfg.LearningRate, cfg.Epochs, cfg.BatchSize, cfg.Seed)
	if err := clf.Fit(XTrain, yTrain); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	m.Bias = clf.B
	m.Weights = map[string]float64{}
	for i, name := range dataprep.FeatureNames {
		m.Weights[name] = clf.W[i]
	}

	proba := clf.PredictProba(XTest)
	yPred := model.BinaryPredFromProba(proba, 0.5)
	yTrue := make([]int, len(yTest))
	for i, v := range yTest {
		yTrue[i] = int(v)
	}

	m.Accuracy = model.Accuracy(yTrue, yPred)
	m.Precision, m.Recall, m.F1 = model.PrecisionRecallF1(yTrue, yPred)
	m.Confusion = model.NewConfusionMatrix(yTrue, yPred)
	m.ROC = model.ROC(yTrue, proba)
	m.AUC = model.AUC(m.ROC)
	log.Info().
		Float64("accuracy", m.Accuracy).Float64("auc", m.AUC).
		Float64("f1", m.F1).Msg("validation metrics")

	if cfg.Charts {
		if err := viz.ROCCurve(m.ROC, m.AUC, filepath.Join(cfg.OutputDir, "roc.png")); err != nil {
			return nil, err
		}
	}

	if err := writeMetrics(m, filepath.Join(cfg.OutputDir, "metrics.json")); err != nil {
		return nil, err
	}
	return m, nil
}

func renderDescriptive(table *dataset.Table, dir string) error {
	bySex := table.SurvivalCounts(func(p dataset.Passenger) string { return p.Sex })
	if err := viz.SurvivalBars(bySex, "Survival by Sex", "Sex",
		filepath.Join(dir, "survival_by_sex.png")); err != nil {
		return err
	}

	byClass := table.SurvivalCounts(func(p dataset.Passenger) string { return strconv.Itoa(p.Pclass) })
	if err := viz.SurvivalBars(byClass, "Survival by Class", "Pclass",
		filepath.Join(dir, "survival_by_class.png")); err != nil {
		return err
	}

	if err := viz.AgeHistogram(table.Ages(), filepath.Join(dir, "age_histogram.png")); err != nil {
		return err
	}

	fares := map[int][]float64{}
	for _, c := range []int{1, 2, 3} {
		fares[c] = table.Fares(c)
	}
	return viz.FareByClass(fares, filepath.Join(dir, "fare_by_class.png"))
}

func writeMetrics(m *Metrics, path string) error {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
