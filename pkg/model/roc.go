package model

import "sort"

// ROCPoint is one (false positive rate, true positive rate) coordinate.
type ROCPoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

// ROC sweeps the distinct scores in descending order as thresholds and
// returns the resulting curve from (0,0) to (1,1). Tied scores advance the
// sweep together, so the curve has one point per distinct score.
//
// If the labels contain only one class the curve is the chance diagonal,
// not NaN.
func ROC(yTrue []int, scores []float64) []ROCPoint {
	pos, neg := 0, 0
	for _, y := range yTrue {
		if y == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return []ROCPoint{{0, 0}, {1, 1}}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	curve := []ROCPoint{{0, 0}}
	tp, fp := 0, 0
	for i := 0; i < len(order); {
		s := scores[order[i]]
		for i < len(order) && scores[order[i]] == s {
			if yTrue[order[i]] == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		curve = append(curve, ROCPoint{
			FPR: float64(fp) / float64(neg),
			TPR: float64(tp) / float64(pos),
		})
	}
	return curve
}

// AUC integrates a ROC curve with the trapezoid rule.
func AUC(curve []ROCPoint) float64 {
	area := 0.0
	for i := 1; i < len(curve); i++ {
		dx := curve[i].FPR - curve[i-1].FPR
		area += dx * (curve[i].TPR + curve[i-1].TPR) / 2
	}
	return area
}
