package scores

import "fmt"

// Option configures how a score table is read.
type Option func(*config)

type config struct {
	class0Col int
	class1Col int
	header    bool
	sheet     string
	err       error
}

func defaultConfig() config {
	return config{
		class0Col: 1,
		class1Col: 2,
		header:    true,
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// WithColumns selects the zero-based columns holding class-0 and class-1
// scores, e.g. WithColumns(0, 1) for a table without an index column.
// Negative or equal indexes make the load fail with ErrInvalidColumns.
func WithColumns(class0, class1 int) Option {
	return func(c *config) {
		if class0 < 0 || class1 < 0 || class0 == class1 {
			c.err = fmt.Errorf("%w: class-0 column %d, class-1 column %d", ErrInvalidColumns, class0, class1)
			return
		}
		c.class0Col = class0
		c.class1Col = class1
	}
}

// WithoutHeader treats the first row as data.
func WithoutHeader() Option {
	return func(c *config) {
		c.header = false
	}
}

// WithSheet reads the named worksheet of a workbook instead of the first one.
func WithSheet(name string) Option {
	return func(c *config) {
		c.sheet = name
	}
}
