package hmeasure

import (
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Evaluator computes H-measures under one fixed cost density. Holding the
// density fixed is what makes H values comparable across classifiers.
type Evaluator struct {
	density *CostRatioDensity
	priors  *Priors
	logger  zerolog.Logger
}

// New creates an Evaluator for the Beta cost density with the given shapes.
func New(params BetaParams, opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.priors != nil {
		if err := cfg.priors.Validate(); err != nil {
			return nil, err
		}
	}

	density, err := newQuadratureDensity(params, cfg.quadratureNodes)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		density: density,
		priors:  cfg.priors,
		logger:  cfg.logger,
	}, nil
}

// Density returns the cost density shared by every computation.
func (e *Evaluator) Density() *CostRatioDensity {
	return e.density
}

// Compute runs the full pipeline for one classifier. The caller's slices are
// copied, never modified.
func (e *Evaluator) Compute(scores BinaryClassScores) (*Result, error) {
	startTime := time.Now()

	roc, err := BuildROC(scores)
	if err != nil {
		return nil, err
	}

	hull, err := ConvexHull(roc)
	if err != nil {
		return nil, err
	}

	priors := SamplePriors(len(scores.Class0), len(scores.Class1))
	if e.priors != nil {
		priors = *e.priors
	}

	integral, err := Integrate(hull, e.density, priors)
	if err != nil {
		return nil, errors.WithMessage(err, "integrating convex hull")
	}

	e.logger.Debug().
		Int("class0", len(scores.Class0)).
		Int("class1", len(scores.Class1)).
		Int("roc_points", len(roc)).
		Int("hull_points", len(hull)).
		Float64("h", integral.H).
		Dur("elapsed", time.Since(startTime)).
		Msg("computed H-measure")

	return &Result{
		H:             integral.H,
		AUC:           AUC(roc),
		Loss:          integral.Loss,
		ReferenceLoss: integral.ReferenceLoss,
		Priors:        priors,
		Density:       e.density.Params(),
		ROC:           roc,
		ConvexHull:    hull,
		Components:    integral.Components,
		Class0:        slices.Clone(scores.Class0),
		Class1:        slices.Clone(scores.Class1),
	}, nil
}

// Compute returns the H-measure of a classifier from its class-0 and class-1
// scores under a Beta(alpha, beta) cost density.
func Compute(class0, class1 []float64, alpha, beta float64, opts ...Option) (*Result, error) {
	e, err := New(BetaParams{Alpha: alpha, Beta: beta}, opts...)
	if err != nil {
		return nil, err
	}
	return e.Compute(BinaryClassScores{Class0: class0, Class1: class1})
}
