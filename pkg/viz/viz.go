// Package viz renders the analysis charts as PNG files with gonum/plot.
package viz

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hjwestbye/titanic/pkg/model"
)

var (
	diedColor     = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	survivedColor = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	curveColor    = color.RGBA{B: 255, A: 255, R: 50, G: 50}
)

// SurvivalBars draws a grouped bar chart of died/survived counts per group
// (e.g. per sex or per class). Groups appear in sorted key order so the
// chart is stable across runs.
func SurvivalBars(counts map[string][2]int, title, xlabel, filename string) error {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	died := make(plotter.Values, len(keys))
	survived := make(plotter.Values, len(keys))
	for i, k := range keys {
		died[i] = float64(counts[k][0])
		survived[i] = float64(counts[k][1])
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Passengers"

	w := vg.Points(20)
	barsDied, err := plotter.NewBarChart(died, w)
	if err != nil {
		return fmt.Errorf("survival bars: %w", err)
	}
	barsDied.Color = diedColor
	barsDied.Offset = -w / 2

	barsSurvived, err := plotter.NewBarChart(survived, w)
	if err != nil {
		return fmt.Errorf("survival bars: %w", err)
	}
	barsSurvived.Color = survivedColor
	barsSurvived.Offset = w / 2

	p.Add(barsDied, barsSurvived)
	p.Legend.Add("died", barsDied)
	p.Legend.Add("survived", barsSurvived)
	p.Legend.Top = true
	p.NominalX(keys...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// AgeHistogram draws the age distribution.
func AgeHistogram(ages []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Age Distribution"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Passengers"

	h, err := plotter.NewHist(plotter.Values(ages), 16)
	if err != nil {
		return fmt.Errorf("age histogram: %w", err)
	}
	h.FillColor = curveColor
	p.Add(h)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// FareByClass draws one box plot of fares per passenger class. faresByClass
// is keyed 1..3.
func FareByClass(faresByClass map[int][]float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Fare by Passenger Class"
	p.X.Label.Text = "Pclass"
	p.Y.Label.Text = "Fare"

	classes := make([]int, 0, len(faresByClass))
	for c := range faresByClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	labels := make([]string, len(classes))
	for i, c := range classes {
		b, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(faresByClass[c]))
		if err != nil {
			return fmt.Errorf("fare box plot: %w", err)
		}
		p.Add(b)
		labels[i] = fmt.Sprintf("%d", c)
	}
	p.NominalX(labels...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// ROCCurve draws the curve against the chance diagonal, with the AUC in the
// title.
func ROCCurve(curve []model.ROCPoint, auc float64, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("ROC Curve (AUC = %.3f)", auc)
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(curve))
	for i, c := range curve {
		pts[i].X = c.FPR
		pts[i].Y = c.TPR
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("roc curve: %w", err)
	}
	l.Color = curveColor
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return fmt.Errorf("roc diagonal: %w", err)
	}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diag)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
