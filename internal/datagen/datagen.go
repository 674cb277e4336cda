// Package datagen draws synthetic classifier scores for demos and benchmarks.
package datagen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// ErrInvalidSize is returned when a class is asked for no scores.
var ErrInvalidSize = errors.New("sample size must be positive")

// Params describes the score distribution of each class.
type Params struct {
	Class0     hmeasure.BetaParams `json:"class0"`
	Class1     hmeasure.BetaParams `json:"class1"`
	Class0Size int                 `json:"class0_size"`
	Class1Size int                 `json:"class1_size"`
}

// DefaultParams returns a moderately separable, slightly imbalanced problem.
func DefaultParams() Params {
	return Params{
		Class0:     hmeasure.BetaParams{Alpha: 2, Beta: 6},
		Class1:     hmeasure.BetaParams{Alpha: 6, Beta: 2},
		Class0Size: 2000,
		Class1Size: 1800,
	}
}

// Validate checks both Beta shapes and that each class gets at least one score.
func (p Params) Validate() error {
	if err := p.Class0.Validate(); err != nil {
		return fmt.Errorf("class 0: %w", err)
	}
	if err := p.Class1.Validate(); err != nil {
		return fmt.Errorf("class 1: %w", err)
	}
	if p.Class0Size <= 0 || p.Class1Size <= 0 {
		return fmt.Errorf("%w: got %d and %d", ErrInvalidSize, p.Class0Size, p.Class1Size)
	}
	return nil
}

// Generate draws scores for both classes. The same seed always yields the
// same scores.
func Generate(p Params, seed uint64) (hmeasure.BinaryClassScores, error) {
	if err := p.Validate(); err != nil {
		return hmeasure.BinaryClassScores{}, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return hmeasure.BinaryClassScores{
		Class0: sample(rng, p.Class0, p.Class0Size),
		Class1: sample(rng, p.Class1, p.Class1Size),
	}, nil
}

// sample uses inverse transform sampling so the stream depends only on rng.
func sample(rng *rand.Rand, params hmeasure.BetaParams, n int) []float64 {
	dist := distuv.Beta{Alpha: params.Alpha, Beta: params.Beta}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Quantile(rng.Float64())
	}
	return out
}
