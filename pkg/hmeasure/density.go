package hmeasure

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// CostRatioDensity is a Beta density over the cost ratio c in (0,1), where c
// is the relative cost of misclassifying a class-0 instance and 1-c that of
// misclassifying a class-1 instance.
//
// The partial moments are evaluated in closed form by default. With a
// positive node count they are integrated numerically with fixed-order
// Gauss-Legendre quadrature instead.
type CostRatioDensity struct {
	params BetaParams
	dist   distuv.Beta
	// c*u(c) and (1-c)*u(c) are Beta(a+1,b) and Beta(a,b+1) densities
	// scaled by the mean and its complement.
	costDist       distuv.Beta
	complementDist distuv.Beta
	mean           float64
	nodes          int
}

// NewCostRatioDensity builds the Beta(alpha, beta) cost density.
func NewCostRatioDensity(params BetaParams) (*CostRatioDensity, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	a, b := params.Alpha, params.Beta
	return &CostRatioDensity{
		params:         params,
		dist:           distuv.Beta{Alpha: a, Beta: b},
		costDist:       distuv.Beta{Alpha: a + 1, Beta: b},
		complementDist: distuv.Beta{Alpha: a, Beta: b + 1},
		mean:           a / (a + b),
	}, nil
}

// newQuadratureDensity is NewCostRatioDensity with numeric partial moments.
func newQuadratureDensity(params BetaParams, nodes int) (*CostRatioDensity, error) {
	d, err := NewCostRatioDensity(params)
	if err != nil {
		return nil, err
	}
	d.nodes = nodes
	return d, nil
}

// Params returns the shape parameters.
func (d *CostRatioDensity) Params() BetaParams {
	return d.params
}

// PDF returns the density at c, zero outside [0,1].
func (d *CostRatioDensity) PDF(c float64) float64 {
	if c < 0 || c > 1 {
		return 0
	}
	return d.dist.Prob(c)
}

// CDF returns the probability that the cost ratio does not exceed c.
func (d *CostRatioDensity) CDF(c float64) float64 {
	return d.dist.CDF(c)
}

// CostMoment returns the integral of c*u(c) over [lo, hi].
func (d *CostRatioDensity) CostMoment(lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	if d.nodes > 0 {
		return quad.Fixed(func(c float64) float64 { return c * d.PDF(c) }, lo, hi, d.nodes, nil, 0)
	}
	return d.mean * (d.costDist.CDF(hi) - d.costDist.CDF(lo))
}

// ComplementMoment returns the integral of (1-c)*u(c) over [lo, hi].
func (d *CostRatioDensity) ComplementMoment(lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	if d.nodes > 0 {
		return quad.Fixed(func(c float64) float64 { return (1 - c) * d.PDF(c) }, lo, hi, d.nodes, nil, 0)
	}
	return (1 - d.mean) * (d.complementDist.CDF(hi) - d.complementDist.CDF(lo))
}

// loss is the expected loss of operating at p for cost ratios in [lo, hi].
func (d *CostRatioDensity) loss(p Point, priors Priors, lo, hi float64) float64 {
	return priors.Class0*p.FPR*d.CostMoment(lo, hi) + priors.Class1*(1-p.TPR)*d.ComplementMoment(lo, hi)
}

// referenceLoss is the loss of the better trivial rule at every cost ratio:
// always predicting class 1 below c = pi1, always class 0 above it.
func (d *CostRatioDensity) referenceLoss(priors Priors) (float64, error) {
	l := d.loss(corner, priors, 0, priors.Class1) + d.loss(origin, priors, priors.Class1, 1)
	if !(l > 0) || l > 1 {
		return 0, errors.Wrapf(ErrDegenerateDensity, "reference loss is %v", l)
	}
	return l, nil
}
