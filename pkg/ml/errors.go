package ml

import "github.com/pkg/errors"

var (
	// ErrDomain is returned when a logarithm or a division gets an argument
	// outside of its domain.
	ErrDomain = errors.New("ml: argument out of domain")
	// ErrShape is returned for empty sequences or sequences of different length.
	ErrShape = errors.New("ml: bad sequence shape")
)

func checkSameShape(a, b []float64) error {
	if len(a) == 0 {
		return errors.Wrap(ErrShape, "empty sequence")
	}
	if len(a) != len(b) {
		return errors.Wrapf(ErrShape, "length mismatch %v != %v", len(a), len(b))
	}
	return nil
}
