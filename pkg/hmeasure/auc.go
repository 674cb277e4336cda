package hmeasure

import "gonum.org/v1/gonum/integrate"

// AUC returns the trapezoidal area under an ROC curve ordered by FPR.
func AUC(roc Curve) float64 {
	if len(roc) < 2 {
		return 0
	}
	return integrate.Trapezoidal(roc.FPR(), roc.TPR())
}
