package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func TestPlotRankings(t *testing.T) {
	rankings := []hmeasure.Ranking{
		{Name: "perfect", Result: &hmeasure.Result{H: 1, AUC: 1}},
		{Name: "half", Result: &hmeasure.Result{H: 0.5, AUC: 0.8}},
		{Name: "chance", Result: &hmeasure.Result{H: 0, AUC: 0.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, PlotRankings(&buf, rankings, "Ranking"))
	out := buf.String()

	assert.Contains(t, out, "Ranking:")
	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "perfect") || strings.HasPrefix(l, "half") || strings.HasPrefix(l, "chance") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 3)
	assert.Equal(t, maxBarWidth, strings.Count(rows[0], "█"))
	assert.Equal(t, maxBarWidth/2, strings.Count(rows[1], "█"))
	assert.Contains(t, rows[2], "▏")
}

func TestPlotHull(t *testing.T) {
	res, err := hmeasure.Compute(
		[]float64{0.0, 0.01, 0.02, 0.03, 0.2, 0.6, 0.66, 0.7},
		[]float64{0.3, 0.35, 0.36, 0.42, 0.5, 0.8, 0.82, 0.99},
		2, 2,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PlotHull(&buf, res))
	assert.Contains(t, buf.String(), "H=0.537109")
	assert.Contains(t, buf.String(), "0.000000 | 0.375000 | [0.625000, 1.000000]")
	assert.Contains(t, buf.String(), "0.375000 | 1.000000 | [0.000000, 0.625000]")
	assert.Contains(t, buf.String(), "L=0.072327 Lmax=0.156250")
}
