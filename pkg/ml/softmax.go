package ml

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Softmax maps scores to positive values that sum to 1, keeping their order.
// The maximum score is subtracted before exponentiation, which does not
// change the result but keeps exp from overflowing.
func Softmax(l []float64) ([]float64, error) {
	if len(l) == 0 {
		return nil, errors.Wrap(ErrShape, "softmax of empty sequence")
	}
	for i, x := range l {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Wrapf(ErrDomain, "softmax score %v at index %v", x, i)
		}
	}
	var maxScore = floats.Max(l)
	var result = make([]float64, len(l))
	for i, x := range l {
		result[i] = math.Exp(x - maxScore)
	}
	floats.Scale(1/floats.Sum(result), result)
	return result, nil
}
