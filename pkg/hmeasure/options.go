package hmeasure

import (
	"github.com/rs/zerolog"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	priors          *Priors
	quadratureNodes int
	logger          zerolog.Logger
}

func defaultConfig() config {
	return config{
		logger: zerolog.Nop(),
	}
}

// WithPriors fixes the class priors instead of deriving them from the
// sample sizes, e.g. when training data was over- or under-sampled.
func WithPriors(class0, class1 float64) Option {
	return func(c *config) {
		c.priors = &Priors{Class0: class0, Class1: class1}
	}
}

// WithQuadrature integrates the cost density numerically with an n-node
// Gauss-Legendre rule instead of the closed form. n <= 0 keeps the closed form.
func WithQuadrature(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.quadratureNodes = n
		}
	}
}

// WithLogger sets the logger. Evaluators are silent without one.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
