package hmeasure

import (
	"math"

	"github.com/pkg/errors"
)

// priorTolerance bounds how far explicit priors may drift from summing to one.
const priorTolerance = 1e-9

// BinaryClassScores holds classifier scores split by true class. Larger
// scores indicate stronger membership of class 1.
type BinaryClassScores struct {
	Class0 []float64 `json:"class0"`
	Class1 []float64 `json:"class1"`
}

// Validate reports ErrInvalidInput if either class is empty or holds a
// non-finite score.
func (s BinaryClassScores) Validate() error {
	if len(s.Class0) == 0 {
		return errors.Wrap(ErrInvalidInput, "class0 scores are empty")
	}
	if len(s.Class1) == 0 {
		return errors.Wrap(ErrInvalidInput, "class1 scores are empty")
	}
	if i, ok := firstNonFinite(s.Class0); ok {
		return errors.Wrapf(ErrInvalidInput, "class0 score %d is %v", i, s.Class0[i])
	}
	if i, ok := firstNonFinite(s.Class1); ok {
		return errors.Wrapf(ErrInvalidInput, "class1 score %d is %v", i, s.Class1[i])
	}
	return nil
}

func firstNonFinite(xs []float64) (int, bool) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i, true
		}
	}
	return 0, false
}

// BetaParams are the shape parameters of the cost ratio density.
type BetaParams struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// DefaultBetaParams returns Beta(2,2), the density Hand recommends as a
// common default.
func DefaultBetaParams() BetaParams {
	return BetaParams{Alpha: 2, Beta: 2}
}

// Validate reports ErrInvalidParameters unless both shapes are positive and finite.
func (p BetaParams) Validate() error {
	if !(p.Alpha > 0) || math.IsInf(p.Alpha, 0) {
		return errors.Wrapf(ErrInvalidParameters, "alpha must be positive and finite, got %v", p.Alpha)
	}
	if !(p.Beta > 0) || math.IsInf(p.Beta, 0) {
		return errors.Wrapf(ErrInvalidParameters, "beta must be positive and finite, got %v", p.Beta)
	}
	return nil
}

// Priors are the class prevalences used to weight the two error types.
type Priors struct {
	Class0 float64 `json:"class0"`
	Class1 float64 `json:"class1"`
}

// SamplePriors derives priors from the class sample sizes.
func SamplePriors(n0, n1 int) Priors {
	total := float64(n0 + n1)
	return Priors{Class0: float64(n0) / total, Class1: float64(n1) / total}
}

// Validate reports ErrInvalidPriors unless both priors lie in (0,1) and sum to one.
func (p Priors) Validate() error {
	if !(p.Class0 > 0 && p.Class0 < 1) || !(p.Class1 > 0 && p.Class1 < 1) {
		return errors.Wrapf(ErrInvalidPriors, "priors must lie in (0,1), got %v and %v", p.Class0, p.Class1)
	}
	if math.Abs(p.Class0+p.Class1-1) > priorTolerance {
		return errors.Wrapf(ErrInvalidPriors, "priors must sum to 1, got %v", p.Class0+p.Class1)
	}
	return nil
}

// Point is an operating point in ROC space.
type Point struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

var (
	origin = Point{FPR: 0, TPR: 0}
	corner = Point{FPR: 1, TPR: 1}
)

// Curve is an ordered sequence of ROC points.
type Curve []Point

// FPR returns the false positive rates of the curve in order.
func (c Curve) FPR() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.FPR
	}
	return out
}

// TPR returns the true positive rates of the curve in order.
func (c Curve) TPR() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.TPR
	}
	return out
}

// IntegrationComponent is the contribution of one hull vertex to the loss
// integral: the vertex is the loss-minimising operating point for every cost
// ratio in [CostLow, CostHigh].
type IntegrationComponent struct {
	CostHigh float64 `json:"cost_high"`
	CostLow  float64 `json:"cost_low"`
	Point    Point   `json:"point"`
	Loss     float64 `json:"loss"`
}

// Result is the outcome of one H-measure computation. It is never modified
// after it is returned.
type Result struct {
	H             float64                `json:"h"`
	AUC           float64                `json:"auc"`
	Loss          float64                `json:"loss"`
	ReferenceLoss float64                `json:"reference_loss"`
	Priors        Priors                 `json:"priors"`
	Density       BetaParams             `json:"density"`
	ROC           Curve                  `json:"roc_curve"`
	ConvexHull    Curve                  `json:"convex_hull"`
	Components    []IntegrationComponent `json:"integration_components"`
	Class0        []float64              `json:"class0_scores"`
	Class1        []float64              `json:"class1_scores"`
}
