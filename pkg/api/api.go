// Package api holds the wire types shared by the H-measure server and client.
//
// Every POST route is named after its request type, e.g. ComputeRequest is
// served at /ComputeRequest. Every response is wrapped in StdResponse.
package api

import (
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

const HealthRoute = "/health"

// StdResponse represents the standardized response structure
type StdResponse[T any] struct {
	Body  T       `json:"body"`
	Error *string `json:"error,omitempty"`
}

// DensityRequest optionally overrides the server's cost density and priors.
// Alpha and Beta must be given together, as must the two priors.
type DensityRequest struct {
	Alpha       *float64 `json:"alpha,omitempty"`
	Beta        *float64 `json:"beta,omitempty"`
	Class0Prior *float64 `json:"class0_prior,omitempty"`
	Class1Prior *float64 `json:"class1_prior,omitempty"`
}

// WithDensity sets both density shapes.
func (d *DensityRequest) WithDensity(params hmeasure.BetaParams) {
	d.Alpha, d.Beta = &params.Alpha, &params.Beta
}

// WithPriors sets both class priors.
func (d *DensityRequest) WithPriors(class0, class1 float64) {
	d.Class0Prior, d.Class1Prior = &class0, &class1
}

// ComputeRequest asks for the H-measure of one classifier.
type ComputeRequest struct {
	DensityRequest
	Class0 []float64 `json:"class0"`
	Class1 []float64 `json:"class1"`
	// Curves keeps the ROC curve, hull, integration components and echoed
	// scores in the response.
	Curves bool `json:"curves,omitempty"`
}

type ComputeResponse struct {
	Result *hmeasure.Result `json:"result"`
}

// CompareRequest asks for a ranking of several classifiers under one density.
type CompareRequest struct {
	DensityRequest
	Classifiers map[string]hmeasure.BinaryClassScores `json:"classifiers"`
	Curves      bool                                  `json:"curves,omitempty"`
}

type CompareResponse struct {
	Rankings []hmeasure.Ranking `json:"rankings"`
}

type HealthResponse struct {
	Status  string              `json:"status"`
	Density hmeasure.BetaParams `json:"density"`
}
