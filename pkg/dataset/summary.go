package dataset

import (
	"strconv"

	"github.com/hjwestbye/titanic/pkg/stats"
)

// ColumnSummary describes one column of the manifest. Numeric columns carry
// the moment fields, categorical ones the level counts.
type ColumnSummary struct {
	Name    string
	Count   int
	Missing int
	Mean    float64
	Std     float64
	Min     float64
	Max     float64
	Median  float64
	Levels  map[string]int
}

// Summary computes descriptive statistics for every column a survival
// analysis cares about: numeric moments for Age, Fare, SibSp and Parch,
// level counts for Survived, Pclass, Sex and Embarked.
func (t *Table) Summary() []ColumnSummary {
	n := len(t.Passengers)

	numeric := func(name string, vals []float64) ColumnSummary {
		s := ColumnSummary{Name: name, Count: len(vals), Missing: n - len(vals)}
		if len(vals) > 0 {
			s.Mean = stats.Mean(vals)
			s.Std = stats.Std(vals)
			s.Min, s.Max = stats.MinMax(vals)
			s.Median = stats.Median(vals)
		}
		return s
	}
	categorical := func(name string, value func(Passenger) string) ColumnSummary {
		s := ColumnSummary{Name: name, Levels: map[string]int{}}
		for _, p := range t.Passengers {
			v := value(p)
			if v == "" {
				s.Missing++
				continue
			}
			s.Count++
			s.Levels[v]++
		}
		return s
	}

	var sibsp, parch []float64
	for _, p := range t.Passengers {
		sibsp = append(sibsp, float64(p.SibSp))
		parch = append(parch, float64(p.Parch))
	}

	return []ColumnSummary{
		categorical("Survived", func(p Passenger) string { return strconv.Itoa(p.Survived) }),
		categorical("Pclass", func(p Passenger) string { return strconv.Itoa(p.Pclass) }),
		categorical("Sex", func(p Passenger) string { return p.Sex }),
		numeric("Age", t.Ages()),
		numeric("SibSp", sibsp),
		numeric("Parch", parch),
		numeric("Fare", t.Fares(0)),
		categorical("Embarked", func(p Passenger) string { return p.Embarked }),
	}
}
