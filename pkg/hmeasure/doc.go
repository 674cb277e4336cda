// Package hmeasure computes the H-measure of a binary classifier.
//
// The H-measure (D. J. Hand, "Measuring classifier performance: a coherent
// alternative to the area under the ROC curve", Mach Learn 2009) scores a
// classifier by the minimum expected misclassification loss it achieves
// under a Beta density over the relative cost of the two error types,
// normalised against the best trivial rule. Unlike AUC the cost density is
// chosen by the analyst and held fixed across every classifier compared.
//
// # Quick Start
//
//	res, err := hmeasure.Compute(class0Scores, class1Scores, 2, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("H=%.4f AUC=%.4f\n", res.H, res.AUC)
//
// To compare several classifiers under the same density, build an
// Evaluator once and reuse it:
//
//	ev, err := hmeasure.New(hmeasure.DefaultBetaParams())
//	ranked, err := ev.Compare(ctx, map[string]hmeasure.BinaryClassScores{...})
//
// # Pipeline
//
// Scores are turned into an ROC curve (BuildROC), reduced to its upper
// convex hull (ConvexHull) and integrated against the cost density
// (Integrate). Each stage returns a fresh value; callers' slices are never
// modified.
//
// # Thread Safety
//
// Evaluator is immutable after New and safe for concurrent use.
package hmeasure
