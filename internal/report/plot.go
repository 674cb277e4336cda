// Package report renders H-measure results for terminals.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

const maxBarWidth = 50

// PlotRankings draws one horizontal bar per classifier, scaled so a full bar
// is H = 1. Rankings are drawn in the order given.
func PlotRankings(w io.Writer, rankings []hmeasure.Ranking, title string) error {
	nameWidth := len("Classifier")
	for _, r := range rankings {
		nameWidth = max(nameWidth, utf8.RuneCountInString(r.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", title)
	fmt.Fprintf(&b, "%-*s | H        | AUC      | Bar Chart\n", nameWidth, "Classifier")
	fmt.Fprintf(&b, "%s-|----------|----------|%s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", maxBarWidth))

	for _, r := range rankings {
		h := r.Result.H
		barWidth := int(min(max(h, 0), 1) * maxBarWidth)

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}
		fmt.Fprintf(&b, "%-*s | %.6f | %.6f | %s\n", nameWidth, r.Name, h, r.Result.AUC, bar)
	}

	fmt.Fprintf(&b, "\nBar width represents H on [0, 1] (0 to %d chars)\n", maxBarWidth)
	_, err := io.WriteString(w, b.String())
	return err
}

// PlotHull lists the convex hull vertices with the cost interval over which
// each is the loss-minimising operating point.
func PlotHull(w io.Writer, res *hmeasure.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nConvex hull (H=%.6f, %d of %d ROC points):\n", res.H, len(res.ConvexHull), len(res.ROC))
	fmt.Fprintln(&b, "FPR      | TPR      | Cost interval         | Loss")
	fmt.Fprintln(&b, "---------|----------|-----------------------|---------")
	for _, c := range res.Components {
		fmt.Fprintf(&b, "%.6f | %.6f | [%.6f, %.6f] | %.6f\n", c.Point.FPR, c.Point.TPR, c.CostLow, c.CostHigh, c.Loss)
	}
	fmt.Fprintf(&b, "L=%.6f Lmax=%.6f\n", res.Loss, res.ReferenceLoss)
	_, err := io.WriteString(w, b.String())
	return err
}
