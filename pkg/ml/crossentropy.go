package ml

import (
	"github.com/pkg/errors"
)

// CrossEntropy returns the binary cross-entropy of predictions p against
// labels y:
//
//	CE = -Σ y[i]*ln(p[i]) + (1-y[i])*ln(1-p[i])
//
// Every p[i] must be strictly between 0 and 1. Labels are not restricted.
func CrossEntropy(y, p []float64) (float64, error) {
	var err = checkSameShape(y, p)
	if err != nil {
		return 0, err
	}
	var cost CrossEntropyCost
	var sum float64
	for i := range p {
		if !(p[i] > 0 && p[i] < 1) {
			return 0, errors.Wrapf(ErrDomain, "prediction %v at index %v", p[i], i)
		}
		sum += cost.Cost(p[i], y[i])
	}
	return sum, nil
}
