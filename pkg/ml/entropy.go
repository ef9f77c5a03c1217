package ml

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// SimpleEntropy is the two-class entropy of counts m and n, in bits.
// Both counts must be positive.
func SimpleEntropy(m, n float64) (float64, error) {
	if !(m > 0) || !(n > 0) {
		return 0, errors.Wrapf(ErrDomain, "entropy counts %v, %v", m, n)
	}
	var sum = m + n
	return (-m*math.Log2(m/sum) - n*math.Log2(n/sum)) / sum, nil
}

// Entropy returns -Σ p*log2(p) where p[i] = event[i] / Σ event.
// Every count must be positive.
func Entropy(event []float64) (float64, error) {
	if len(event) == 0 {
		return 0, errors.Wrap(ErrShape, "entropy of empty event")
	}
	for i, x := range event {
		if !(x > 0) {
			return 0, errors.Wrapf(ErrDomain, "event count %v at index %v", x, i)
		}
	}
	var total = floats.Sum(event)
	var entropy float64
	for _, x := range event {
		var p = x / total
		entropy += -p * math.Log2(p)
	}
	return entropy, nil
}
