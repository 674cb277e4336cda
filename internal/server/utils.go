package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/hmeasure/pkg/api"
	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

// createResponse creates a StdResponse with the given body and error
func createResponse[T any](body T, err error) api.StdResponse[T] {
	if err != nil {
		errMsg := err.Error()
		return api.StdResponse[T]{
			Body:  body,
			Error: &errMsg,
		}
	}
	return api.StdResponse[T]{
		Body:  body,
		Error: nil,
	}
}

// statusCode maps an error to the HTTP status it is reported with.
func statusCode(err error) int {
	var e *fiber.Error
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.Is(err, hmeasure.ErrInvalidInput),
		errors.Is(err, hmeasure.ErrInvalidParameters),
		errors.Is(err, hmeasure.ErrInvalidPriors):
		return fiber.StatusBadRequest
	case errors.Is(err, hmeasure.ErrDegenerateCurve),
		errors.Is(err, hmeasure.ErrDegenerateDensity):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// stripCurves drops the bulky per-point detail from a result.
func stripCurves(r *hmeasure.Result) *hmeasure.Result {
	if r == nil {
		return nil
	}
	out := *r
	out.ROC = nil
	out.ConvexHull = nil
	out.Components = nil
	out.Class0 = nil
	out.Class1 = nil
	return &out
}
