package burst

import "math/rand/v2"

// Option configures a Generator during creation.
//
// Example:
//
//	// Unseeded: every run differs
//	g := burst.New()
//
//	// Reproducible output
//	g := burst.New(burst.WithSeed(7))
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	rng *rand.Rand
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		rng: nil, // Will be seeded from the runtime source if nil
	}
}

// WithSeed makes blob placement deterministic.
// Two generators created with the same seed render identical images.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used for blob placement.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}
