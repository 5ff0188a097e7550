package split

import (
	"fmt"
	"math/rand"
)

// TrainTestSplit partitions X, Y into train and validation sets. The shuffle
// is driven entirely by seed, so equal inputs and seed give equal splits.
func TrainTestSplit(X [][]float64, Y []float64, testFrac float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []float64, err error) {
	if len(X) != len(Y) {
		return nil, nil, nil, nil, fmt.Errorf("feature/label length mismatch: %d vs %d", len(X), len(Y))
	}
	if testFrac <= 0 || testFrac >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("test fraction must be in (0,1), got %g", testFrac)
	}
	n := len(X)
	r := rand.New(rand.NewSource(seed))
	indices := r.Perm(n)
	nTest := int(float64(n) * testFrac)
	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			YTest = append(YTest, Y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			YTrain = append(YTrain, Y[indices[i]])
		}
	}
	return XTrain, XTest, YTrain, YTest, nil
}

// Stratified splits like TrainTestSplit but preserves the 0/1 class balance
// of Y in both halves, which matters on small tables where a plain shuffle
// can skew the validation fold.
func Stratified(X [][]float64, Y []float64, testFrac float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []float64, err error) {
	if len(X) != len(Y) {
		return nil, nil, nil, nil, fmt.Errorf("feature/label length mismatch: %d vs %d", len(X), len(Y))
	}
	if testFrac <= 0 || testFrac >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("test fraction must be in (0,1), got %g", testFrac)
	}
	var pos, neg []int
	for i, y := range Y {
		if y >= 0.5 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	r := rand.New(rand.NewSource(seed))
	for _, class := range [][]int{neg, pos} {
		r.Shuffle(len(class), func(i, j int) { class[i], class[j] = class[j], class[i] })
		nTest := int(float64(len(class)) * testFrac)
		for i, idx := range class {
			if i < nTest {
				XTest = append(XTest, X[idx])
				YTest = append(YTest, Y[idx])
			} else {
				XTrain = append(XTrain, X[idx])
				YTrain = append(YTrain, Y[idx])
			}
		}
	}
	// Interleave order is class-blocked above; reshuffle train so batches
	// do not see one class first.
	r.Shuffle(len(XTrain), func(i, j int) {
		XTrain[i], XTrain[j] = XTrain[j], XTrain[i]
		YTrain[i], YTrain[j] = YTrain[j], YTrain[i]
	})
	return XTrain, XTest, YTrain, YTest, nil
}
