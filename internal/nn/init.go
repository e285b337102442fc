package nn

import (
	"math"
	"math/rand/v2"
)

// Initializer draws the initial value of one weight.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws weights from U(lo, hi).
func Uniform(lo, hi float64) Initializer {
	return func(rng *rand.Rand, _, _ int) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps the variance of tanh activations roughly constant across layers.
func Xavier() Initializer {
	return func(rng *rand.Rand, fanIn, fanOut int) float64 {
		if fanIn+fanOut == 0 {
			return 0
		}
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return (rng.Float64()*2.0 - 1.0) * bound
	}
}

// Option configures how modules are constructed.
type Option func(*options)

type options struct {
	init Initializer
	rng  *rand.Rand
}

func buildOptions(opts []Option) *options {
	o := &options{init: Uniform(0, 1)}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		//nolint:gosec // weight initialization is not security sensitive
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// WithInitializer sets the weight initializer. The default is Uniform(0, 1).
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.init = init
	}
}

// WithRand sets the random source used for weights.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed makes initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		//nolint:gosec // weight initialization is not security sensitive
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}
