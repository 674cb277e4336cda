package hmeasure

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// ConvexHull reduces an ROC curve to its upper convex hull, running from
// (0,0) to (1,1). Points that are not extreme points of the upper-left
// envelope can never minimise loss for any cost ratio and are dropped,
// including collinear ones. At equal FPR only the point with the highest TPR
// survives, except that (0,0) always starts the hull.
func ConvexHull(roc Curve) (Curve, error) {
	distinct := 0
	for i, p := range roc {
		if math.IsNaN(p.FPR) || math.IsNaN(p.TPR) || p.FPR < 0 || p.FPR > 1 || p.TPR < 0 || p.TPR > 1 {
			return nil, errors.Wrapf(ErrInvalidInput, "point %d (%v, %v) lies outside the unit square", i, p.FPR, p.TPR)
		}
		if i == 0 || roc[i-1] != p {
			distinct++
		}
	}
	if distinct < 2 {
		return nil, errors.Wrapf(ErrDegenerateCurve, "curve has %d distinct points", distinct)
	}

	pts := make(Curve, 0, len(roc)+1)
	pts = append(pts, roc...)
	pts = append(pts, corner)
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.FPR, b.FPR); c != 0 {
			return c
		}
		return cmp.Compare(b.TPR, a.TPR)
	})
	pts = slices.CompactFunc(pts, func(a, b Point) bool { return a.FPR == b.FPR })
	if pts[0] != origin {
		pts = slices.Insert(pts, 0, origin)
	}

	hull := make(Curve, 0, len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) >= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull, nil
}

// cross is the z component of (a-o)x(b-o); negative means o->a->b turns clockwise.
func cross(o, a, b Point) float64 {
	return (a.FPR-o.FPR)*(b.TPR-o.TPR) - (a.TPR-o.TPR)*(b.FPR-o.FPR)
}
