package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/pkg/api"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(createResponse(api.HealthResponse{
		Status:  "ok",
		Density: s.evaluator.Density().Params(),
	}, nil))
}

func (s *Server) handleCompute(c *fiber.Ctx, req api.ComputeRequest) (api.ComputeResponse, error) {
	evaluator, err := s.evaluatorFor(req.DensityRequest)
	if err != nil {
		return api.ComputeResponse{}, err
	}

	result, err := evaluator.Compute(hmeasure.BinaryClassScores{Class0: req.Class0, Class1: req.Class1})
	if err != nil {
		return api.ComputeResponse{}, err
	}

	log.Debug().
		Int("class0", len(req.Class0)).
		Int("class1", len(req.Class1)).
		Float64("h", result.H).
		Msg("Served compute request")

	if !req.Curves {
		result = stripCurves(result)
	}
	return api.ComputeResponse{Result: result}, nil
}

func (s *Server) handleCompare(c *fiber.Ctx, req api.CompareRequest) (api.CompareResponse, error) {
	evaluator, err := s.evaluatorFor(req.DensityRequest)
	if err != nil {
		return api.CompareResponse{}, err
	}

	rankings, err := evaluator.Compare(c.UserContext(), req.Classifiers)
	if err != nil {
		return api.CompareResponse{}, err
	}

	if !req.Curves {
		for i := range rankings {
			rankings[i].Result = stripCurves(rankings[i].Result)
		}
	}
	return api.CompareResponse{Rankings: rankings}, nil
}

// evaluatorFor returns the shared evaluator unless the request overrides the
// density or priors.
func (s *Server) evaluatorFor(req api.DensityRequest) (*hmeasure.Evaluator, error) {
	if req.Alpha == nil && req.Beta == nil && req.Class0Prior == nil && req.Class1Prior == nil {
		return s.evaluator, nil
	}

	params := s.config.Density
	if (req.Alpha == nil) != (req.Beta == nil) {
		return nil, errors.Wrap(hmeasure.ErrInvalidParameters, "alpha and beta must be given together")
	}
	if req.Alpha != nil {
		params = hmeasure.BetaParams{Alpha: *req.Alpha, Beta: *req.Beta}
	}

	opts := append([]hmeasure.Option(nil), s.config.Options...)
	if (req.Class0Prior == nil) != (req.Class1Prior == nil) {
		return nil, errors.Wrap(hmeasure.ErrInvalidPriors, "class0_prior and class1_prior must be given together")
	}
	if req.Class0Prior != nil {
		opts = append(opts, hmeasure.WithPriors(*req.Class0Prior, *req.Class1Prior))
	}
	return hmeasure.New(params, opts...)
}
