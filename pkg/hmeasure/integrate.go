package hmeasure

import (
	"github.com/pkg/errors"
)

// Integral is the outcome of integrating a convex hull against a cost density.
type Integral struct {
	H             float64
	Loss          float64
	ReferenceLoss float64
	Components    []IntegrationComponent
}

// Integrate computes the expected minimum loss over the hull under the cost
// density and normalises it against the better trivial rule:
// H = 1 - Loss/ReferenceLoss.
//
// Walking the hull from (0,0) to (1,1), the segment P[k]->P[k+1] switches
// optimality at c[k] = pi1*dTPR / (pi0*dFPR + pi1*dTPR), so P[k] is optimal
// on [c[k], c[k-1]] with c[-1] = 1 and c[m-1] = 0.
func Integrate(hull Curve, density *CostRatioDensity, priors Priors) (Integral, error) {
	if density == nil {
		return Integral{}, errors.Wrap(ErrInvalidParameters, "cost density is nil")
	}
	if err := priors.Validate(); err != nil {
		return Integral{}, err
	}
	if len(hull) < 2 {
		return Integral{}, errors.Wrapf(ErrDegenerateCurve, "hull has %d points", len(hull))
	}
	if hull[0] != origin || hull[len(hull)-1] != corner {
		return Integral{}, errors.Wrap(ErrInvalidInput, "hull must run from (0,0) to (1,1)")
	}

	reference, err := density.referenceLoss(priors)
	if err != nil {
		return Integral{}, err
	}

	var (
		components = make([]IntegrationComponent, 0, len(hull))
		total      float64
		high       = 1.0
	)
	for k, p := range hull {
		low := 0.0
		if k < len(hull)-1 {
			low = switchingCost(p, hull[k+1], priors)
		}
		if high > low {
			l := density.loss(p, priors, low, high)
			components = append(components, IntegrationComponent{
				CostHigh: high,
				CostLow:  low,
				Point:    p,
				Loss:     l,
			})
			total += l
			high = low
		}
	}

	return Integral{
		H:             1 - total/reference,
		Loss:          total,
		ReferenceLoss: reference,
		Components:    components,
	}, nil
}

// switchingCost is the cost ratio at which operating at b instead of a
// becomes optimal.
func switchingCost(a, b Point, priors Priors) float64 {
	dTPR := priors.Class1 * (b.TPR - a.TPR)
	den := priors.Class0*(b.FPR-a.FPR) + dTPR
	if den <= 0 {
		return 1
	}
	return dTPR / den
}
