package hmeasure

import (
	"cmp"
	"context"
	"maps"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Ranking is one classifier's place in a comparison.
type Ranking struct {
	Name   string  `json:"name"`
	Result *Result `json:"result"`
}

// Compare computes the H-measure of every named classifier under the
// evaluator's density and returns them best first. Equal H values are
// ordered by name. Any failing classifier fails the whole comparison.
func (e *Evaluator) Compare(ctx context.Context, classifiers map[string]BinaryClassScores) ([]Ranking, error) {
	if len(classifiers) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no classifiers to compare")
	}

	names := slices.Sorted(maps.Keys(classifiers))
	rankings := make([]Ranking, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Compute(classifiers[name])
			if err != nil {
				return errors.WithMessagef(err, "classifier %q", name)
			}
			rankings[i] = Ranking{Name: name, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(rankings, func(a, b Ranking) int {
		return cmp.Compare(b.Result.H, a.Result.H)
	})

	e.logger.Debug().Int("classifiers", len(rankings)).Str("best", rankings[0].Name).Msg("compared classifiers")
	return rankings, nil
}
