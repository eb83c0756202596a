// Package weighted implements categorical sampling over raw weights.
//
// Weights are used as-is and do not need to sum to 1: a draw lands in
// [0, sum(weights)) and a cumulative scan selects the bucket. Callers that
// skew individual weights after the fact (without renormalizing) get exactly
// the proportional shift they wrote down.
package weighted

import "math/rand"

// Choice pairs a value with its raw weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Pick draws one value from choices proportionally to their weights.
// Zero-weight choices are never selected. The second return is false when
// choices is empty or the total weight is not positive.
func Pick[T any](rng *rand.Rand, choices []Choice[T]) (T, bool) {
	var zero T

	total := 0.0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	target := rng.Float64() * total
	acc := 0.0
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		acc += c.Weight
		if target < acc {
			return c.Value, true
		}
	}

	// Floating point accumulation can leave target a hair past the last
	// bucket; fall through to the final positive-weight choice.
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i].Weight > 0 {
			return choices[i].Value, true
		}
	}
	return zero, false
}
