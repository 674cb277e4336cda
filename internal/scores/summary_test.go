package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func TestSummarize(t *testing.T) {
	got, err := Summarize(hmeasure.BinaryClassScores{
		Class0: []float64{4, 1, 3, 2},
		Class1: []float64{0.5},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, got.Class0.Count)
	assert.Equal(t, 1.0, got.Class0.Min)
	assert.Equal(t, 4.0, got.Class0.Max)
	assert.InDelta(t, 2.5, got.Class0.Mean, 1e-12)
	assert.InDelta(t, 2.5, got.Class0.Median, 1e-12)
	assert.InDelta(t, 1.118033988749895, got.Class0.StdDev, 1e-12)

	assert.Equal(t, ClassSummary{Count: 1, Min: 0.5, Max: 0.5, Mean: 0.5, Median: 0.5}, got.Class1)
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	class0 := []float64{4, 1, 3, 2}
	_, err := Summarize(hmeasure.BinaryClassScores{Class0: class0, Class1: []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 3, 2}, class0)
}

func TestSummarize_EmptyClass(t *testing.T) {
	_, err := Summarize(hmeasure.BinaryClassScores{Class0: []float64{1}})
	assert.ErrorIs(t, err, ErrNoScores)
}
