package conv2d

import "github.com/ssanderson/foundations-of-numerical-computing/internal/parallel"

// Option configures a convolution call or a Convolver.
type Option func(*config)

type config struct {
	parallel parallel.Config
	generic  bool
}

func defaultConfig() config {
	return config{parallel: parallel.Sequential()}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers spreads the reduction over n goroutines.
// n == 1 keeps the default single-threaded behavior; n <= 0 uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(c *config) {
		minChunk := c.parallel.MinChunkSize
		switch {
		case n == 1:
			c.parallel = parallel.Sequential()
		case n <= 0:
			c.parallel = parallel.DefaultConfig()
		default:
			c.parallel = parallel.Config{Enabled: true, NumWorkers: n, MinChunkSize: parallel.DefaultConfig().MinChunkSize}
		}
		if minChunk > 1 {
			c.parallel.MinChunkSize = minChunk
		}
	}
}

// WithMinChunk sets the minimum number of candidate windows handled per goroutine.
func WithMinChunk(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallel.MinChunkSize = n
		}
	}
}

// WithGenericKernel disables the vectorized float64 dot product and uses the
// plain multiply-add loop for every element type.
func WithGenericKernel() Option {
	return func(c *config) {
		c.generic = true
	}
}
