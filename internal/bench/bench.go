// internal/bench/bench.go
// Package bench contains the measurement primitives: a single-shot workload
// timer, a product sampler, and the statistical analysis over sampled means.
package bench

import (
	"context"
	"errors"
	"time"
)

// ErrNoSamples is returned by MeasureProducts when the iteration count is not
// positive: the mean of an empty sample set is undefined, so the sampler
// refuses to produce one.
var ErrNoSamples = errors.New("bench: no samples (iterations must be >= 1)")

// DefaultProducts is the sample product list used when the caller supplies none.
var DefaultProducts = []string{"ProductA", "ProductB", "ProductC", "ProductD"}

// MeasureWork times a single invocation of work and returns the elapsed time
// in seconds. time.Now carries a monotonic clock reading, so the result is
// never negative. Panics inside work propagate to the caller.
func MeasureWork(work func()) float64 {
	start := time.Now()
	work()
	return time.Since(start).Seconds()
}

// productWork is the synthetic stand-in for real product work: a tight
// numeric loop plus a short sleep simulating I/O.
func productWork() {
	sum := 0
	for i := 0; i < 50; i++ {
		sum += i * i
	}
	_ = sum
	time.Sleep(100 * time.Microsecond)
}

// MeasureProducts samples the synthetic workload iterations times for each
// product and returns a map from product name to mean elapsed seconds.
// Duplicate product names collapse to a single entry. A non-positive
// iteration count returns ErrNoSamples.
func MeasureProducts(products []string, iterations int) (map[string]float64, error) {
	return MeasureProductsContext(context.Background(), products, iterations, nil)
}

// MeasureProductsContext is MeasureProducts with cooperative cancellation and
// an optional progress callback invoked after each product completes. The
// context is checked between products, not mid-sample, so a cancelled run
// never reports a partially sampled product.
func MeasureProductsContext(ctx context.Context, products []string, iterations int, onProduct func(name string, done, total int)) (map[string]float64, error) {
	if iterations <= 0 {
		return nil, ErrNoSamples
	}

	results := make(map[string]float64, len(products))
	for i, product := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		total := 0.0
		for n := 0; n < iterations; n++ {
			total += MeasureWork(productWork)
		}
		results[product] = total / float64(iterations)

		if onProduct != nil {
			onProduct(product, i+1, len(products))
		}
	}
	return results, nil
}
