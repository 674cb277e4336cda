package hmeasure

import "github.com/pkg/errors"

// Sentinel errors for conditions callers may need to handle differently.
// Returned errors wrap one of these; match with errors.Is.
var (
	// ErrInvalidInput indicates an empty score collection, a non-finite
	// score, or a malformed curve.
	ErrInvalidInput = errors.New("hmeasure: invalid input")

	// ErrInvalidParameters indicates Beta shape parameters that are not
	// strictly positive and finite.
	ErrInvalidParameters = errors.New("hmeasure: invalid cost density parameters")

	// ErrInvalidPriors indicates explicit class priors outside (0,1) or not
	// summing to one.
	ErrInvalidPriors = errors.New("hmeasure: invalid class priors")

	// ErrDegenerateCurve indicates a curve with fewer than two distinct points.
	ErrDegenerateCurve = errors.New("hmeasure: degenerate ROC curve")

	// ErrDegenerateDensity indicates a zero or non-finite reference loss.
	ErrDegenerateDensity = errors.New("hmeasure: degenerate cost density")
)
