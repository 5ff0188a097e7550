package dataprep

import (
	"github.com/hjwestbye/titanic/pkg/dataset"
	"github.com/hjwestbye/titanic/pkg/stats"
)

// ImputeAges fills missing ages with the mean of the observed ages.
// It returns the fill value used and the number of rows filled.
func ImputeAges(t *dataset.Table) (fill float64, filled int) {
	fill = stats.Mean(t.Ages())
	for i := range t.Passengers {
		if !t.Passengers[i].HasAge {
			t.Passengers[i].Age = fill
			t.Passengers[i].HasAge = true
			filled++
		}
	}
	return fill, filled
}

// ImputeEmbarked fills missing embarkation ports with the modal port.
// It returns the port used and the number of rows filled.
func ImputeEmbarked(t *dataset.Table) (port string, filled int) {
	counts := map[string]int{}
	for _, p := range t.Passengers {
		if p.Embarked != "" {
			counts[p.Embarked]++
		}
	}
	best := 0
	for k, c := range counts {
		if c > best || (c == best && k < port) {
			best = c
			port = k
		}
	}
	for i := range t.Passengers {
		if t.Passengers[i].Embarked == "" {
			t.Passengers[i].Embarked = port
			filled++
		}
	}
	return port, filled
}

// ImputeFares fills missing fares with the median fare of the passenger's
// class, falling back to the overall median when a class has no observed
// fares. It returns the number of rows filled.
func ImputeFares(t *dataset.Table) (filled int) {
	overall := stats.Median(t.Fares(0))
	byClass := map[int]float64{}
	for _, c := range []int{1, 2, 3} {
		if fares := t.Fares(c); len(fares) > 0 {
			byClass[c] = stats.Median(fares)
		} else {
			byClass[c] = overall
		}
	}
	for i := range t.Passengers {
		if !t.Passengers[i].HasFare {
			t.Passengers[i].Fare = byClass[t.Passengers[i].Pclass]
			t.Passengers[i].HasFare = true
			filled++
		}
	}
	return filled
}
