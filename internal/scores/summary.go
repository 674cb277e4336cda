package scores

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// ClassSummary describes the score distribution of one class.
type ClassSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summary describes both classes of a score table.
type Summary struct {
	Class0 ClassSummary `json:"class0"`
	Class1 ClassSummary `json:"class1"`
}

// Summarize computes descriptive statistics for each class.
func Summarize(scores hmeasure.BinaryClassScores) (Summary, error) {
	c0, err := summarizeClass(scores.Class0)
	if err != nil {
		return Summary{}, fmt.Errorf("class 0: %w", err)
	}
	c1, err := summarizeClass(scores.Class1)
	if err != nil {
		return Summary{}, fmt.Errorf("class 1: %w", err)
	}
	return Summary{Class0: c0, Class1: c1}, nil
}

func summarizeClass(xs []float64) (ClassSummary, error) {
	if len(xs) == 0 {
		return ClassSummary{}, ErrNoScores
	}
	data := stats.Float64Data(xs)

	min, err := data.Min()
	if err != nil {
		return ClassSummary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return ClassSummary{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return ClassSummary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return ClassSummary{}, err
	}
	stdDev, err := data.StandardDeviation()
	if err != nil {
		return ClassSummary{}, err
	}

	return ClassSummary{
		Count:  len(xs),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
	}, nil
}
