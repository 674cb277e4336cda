package hmeasure

import (
	"gonum.org/v1/gonum/stat"
)

// BuildROC sweeps every distinct score as a threshold, predicting class 1
// for scores at or above it, and returns the resulting ROC curve. The curve
// is non-decreasing in FPR and TPR, holds no repeated points, and runs from
// exactly (0,0) to exactly (1,1).
func BuildROC(scores BinaryClassScores) (Curve, error) {
	if err := scores.Validate(); err != nil {
		return nil, err
	}

	n := len(scores.Class0) + len(scores.Class1)
	y := make([]float64, 0, n)
	y = append(y, scores.Class0...)
	y = append(y, scores.Class1...)
	classes := make([]bool, n)
	for i := len(scores.Class0); i < n; i++ {
		classes[i] = true
	}
	stat.SortWeightedLabeled(y, classes, nil)

	// stat.ROC walks cutoffs from +Inf downwards, so both rates are
	// already non-decreasing.
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)

	curve := make(Curve, 0, len(tpr))
	for i := range tpr {
		p := Point{FPR: clamp01(fpr[i]), TPR: clamp01(tpr[i])}
		if i == 0 {
			p = origin
		}
		if i == len(tpr)-1 {
			p = corner
		}
		if len(curve) > 0 && curve[len(curve)-1] == p {
			continue
		}
		curve = append(curve, p)
	}
	return curve, nil
}

// clamp01 absorbs the rounding of 1-k/n style rates.
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
