package dataprep

import (
	"fmt"

	"github.com/hjwestbye/titanic/pkg/dataset"
)

// FeatureNames lists the model predictors in design-matrix column order.
var FeatureNames = []string{"Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked"}

// BuildFeatures assembles the design matrix and the Survived targets.
// The table must be imputed first; a row with a still-missing Age, Fare or
// Embarked value fails the build.
func BuildFeatures(t *dataset.Table) (X [][]float64, y []float64, err error) {
	X = make([][]float64, 0, t.Len())
	y = make([]float64, 0, t.Len())
	for _, p := range t.Passengers {
		if !p.HasAge || !p.HasFare || p.Embarked == "" {
			return nil, nil, fmt.Errorf("passenger %d has unimputed fields", p.ID)
		}
		sex, err := EncodeSex(p.Sex)
		if err != nil {
			return nil, nil, fmt.Errorf("passenger %d: %w", p.ID, err)
		}
		embarked, err := EncodeEmbarked(p.Embarked)
		if err != nil {
			return nil, nil, fmt.Errorf("passenger %d: %w", p.ID, err)
		}
		X = append(X, []float64{
			float64(p.Pclass), sex, p.Age,
			float64(p.SibSp), float64(p.Parch), p.Fare, embarked,
		})
		y = append(y, float64(p.Survived))
	}
	return X, y, nil
}
